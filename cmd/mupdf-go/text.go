package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func runText(args []string) error {
	fs := flag.NewFlagSet("text", flag.ExitOnError)
	page := fs.Int("page", 0, "1-based page to extract; 0 means all pages")
	password := fs.String("password", "", "document password")
	format := fs.String("format", "text", "output format: text, html, xhtml, xml, json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("text: expected exactly one file")
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
	first, last := 0, count-1
	if *page > 0 {
		first, last = *page-1, *page-1
	}

	for i := first; i <= last; i++ {
		if err := emitPageText(doc, i, *format); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}
	return nil
}

func emitPageText(doc *mupdf.Document, pageNo int, format string) error {
	pg, err := doc.LoadPage(pageNo)
	if err != nil {
		return err
	}
	defer pg.Drop()

	tp, err := pg.ToTextPage(mupdf.TextPageOptions{})
	if err != nil {
		return err
	}
	defer tp.Drop()

	var out string
	switch format {
	case "text":
		out, err = tp.Text()
	case "html":
		out, err = tp.HTML(pageNo)
	case "xhtml":
		out, err = tp.XHTML(pageNo)
	case "xml":
		out, err = tp.XML(pageNo)
	case "json":
		out, err = tp.JSON(1)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(out)
	return err
}
