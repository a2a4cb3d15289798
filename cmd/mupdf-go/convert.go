package main

import (
	"flag"
	"fmt"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	out := fs.String("out", "out.pdf", "output PDF path")
	rotate := fs.Int("rotate", 0, "rotate pages, multiple of 90 degrees")
	password := fs.String("password", "", "document password")
	garbage := fs.Int("garbage", 1, "garbage collection level for the written PDF")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("convert: expected exactly one file")
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

	count, err := doc.PageCount()
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("document has no pages")
	}

	pdf, err := doc.ConvertToPDF(0, count-1, *rotate, nil)
	if err != nil {
		return err
	}
	defer pdf.Drop()

	opts := mupdf.PDFWriteOptions{Compress: true, Garbage: *garbage}
	if err := pdf.Save(*out, opts); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d pages)\n", *out, count)
	return nil
}
