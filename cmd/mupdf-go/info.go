package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
	"github.com/fitzgo/mupdf-go/pkg/mupdf/logging"
)

func newStderrLogger() logging.Logger {
	return logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	password := fs.String("password", "", "document password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("info: expected exactly one file")
	}

	c, err := openContext()
	if err != nil {
		return err
	}
	defer c.Close()

	doc, err := mupdf.OpenDocument(c, fs.Arg(0))
	if err != nil {
		return err
	}
	defer doc.Drop()

	if err := authenticate(doc, *password); err != nil {
		return err
	}

	for _, key := range []string{
		mupdf.MetaFormat,
		mupdf.MetaEncryption,
		mupdf.MetaInfoTitle,
		mupdf.MetaInfoAuthor,
		mupdf.MetaInfoCreator,
		mupdf.MetaInfoProducer,
	} {
		v, err := doc.Metadata(key)
		if err != nil {
			return err
		}
		if v != "" {
			fmt.Printf("%-20s %s\n", key+":", v)
		}
	}

	n, err := doc.PageCount()
	if err != nil {
		return err
	}
	fmt.Printf("%-20s %d\n", "pages:", n)

	outlines, err := doc.Outlines()
	if err != nil {
		return err
	}
	if len(outlines) > 0 {
		fmt.Println("outline:")
		printOutlines(outlines, 1)
	}
	return nil
}

func printOutlines(nodes []mupdf.Outline, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if n.Page.Page >= 0 {
			fmt.Printf("%s%s (page %d)\n", indent, n.Title, n.Page.Page+1)
		} else {
			fmt.Printf("%s%s\n", indent, n.Title)
		}
		printOutlines(n.Down, depth+1)
	}
}

func authenticate(doc *mupdf.Document, password string) error {
	needs, err := doc.NeedsPassword()
	if err != nil {
		return err
	}
	if !needs {
		return nil
	}
	ok, err := doc.AuthenticatePassword(password)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("password rejected")
	}
	return nil
}
