// Command mupdf-go exercises the binding from the shell: document
// inspection, text extraction, rasterization and PDF conversion.
//
// Usage:
//
//	mupdf-go info file.pdf
//	mupdf-go text [-page N] file.pdf
//	mupdf-go draw [-pages 1-3] [-dpi 144] [-profile render.yaml] -out dir file.pdf
//	mupdf-go convert -out out.pdf file.epub
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mupdf-go: ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if !mupdf.Built() {
		log.Fatal("native library not built into this binary")
	}

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "info":
		err = runInfo(flag.Args()[1:])
	case "text":
		err = runText(flag.Args()[1:])
	case "draw":
		err = runDraw(context.Background(), flag.Args()[1:])
	case "convert":
		err = runConvert(flag.Args()[1:])
	case "version":
		fmt.Printf("mupdf-go %s (commit %s, built %s)\n", mupdf.WrapperVersion(), mupdf.GitCommit, mupdf.BuildDate)
		fmt.Printf("mupdf %s\n", mupdf.NativeVersion())
	default:
		log.Printf("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: mupdf-go <command> [flags] <file>

Commands:
  info      print format, metadata, page count and outline
  text      extract structured text to stdout
  draw      render pages to image files
  convert   convert a document to PDF
  version   print version information

Run "mupdf-go <command> -h" for command flags.
`)
}

// openContext builds the shared base context with warnings forwarded
// to stderr.
func openContext() (*mupdf.Context, error) {
	cfg := mupdf.DefaultConfig()
	cfg.Warnings = newStderrLogger()
	return mupdf.NewContext(cfg)
}
