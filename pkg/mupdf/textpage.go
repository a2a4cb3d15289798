package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// TextPageFlags tune structured text extraction.
type TextPageFlags int

const (
	TextPreserveLigatures  TextPageFlags = 1 << 0
	TextPreserveWhitespace TextPageFlags = 1 << 1
	TextPreserveImages     TextPageFlags = 1 << 2
	TextInhibitSpaces      TextPageFlags = 1 << 3
	TextDehyphenate        TextPageFlags = 1 << 4
	TextPreserveSpans      TextPageFlags = 1 << 5
)

// TextPageOptions configure structured text extraction.
type TextPageOptions struct {
	Flags TextPageFlags
}

// TextBlockKind discriminates text blocks from image blocks.
type TextBlockKind int

const (
	TextBlockText  TextBlockKind = 0
	TextBlockImage TextBlockKind = 1
)

// TextChar is a single placed character.
type TextChar struct {
	Rune     rune
	Origin   Point
	Quad     Quad
	Size     float32
	FontName string
}

// TextLine is one line of placed characters.
type TextLine struct {
	WMode int
	Dir   Point
	BBox  Rect
	Chars []TextChar
}

// TextBlock is one block of a structured text page. Lines is populated
// for text blocks, Transform for image blocks.
type TextBlock struct {
	Kind      TextBlockKind
	BBox      Rect
	Lines     []TextLine
	Transform Matrix
}

// TextPage holds extracted text as a tree of blocks, lines and
// characters, with render formats and search on top.
type TextPage struct {
	ctx *Context
	h   *ffi.TextPage
}

func newTextPage(c *Context, h *ffi.TextPage) *TextPage {
	tp := &TextPage{ctx: c, h: h}
	runtime.SetFinalizer(tp, func(tp *TextPage) { tp.Drop() })
	return tp
}

func (tp *TextPage) live() (*ffi.Context, error) {
	if tp == nil || tp.h == nil {
		return nil, ErrClosed
	}
	return tp.ctx.handle()
}

// Blocks copies the page contents out into plain Go values.
func (tp *TextPage) Blocks() ([]TextBlock, error) {
	fc, err := tp.live()
	if err != nil {
		return nil, err
	}
	blocks := tp.h.Blocks(fc)
	if blocks == nil {
		return nil, nil
	}
	out := make([]TextBlock, len(blocks))
	for i, b := range blocks {
		block := TextBlock{
			Kind:      TextBlockKind(b.Kind),
			BBox:      rectFromFFI(b.BBox),
			Transform: matrixFromFFI(b.Transform),
		}
		for _, ln := range b.Lines {
			line := TextLine{
				WMode: ln.WMode,
				Dir:   pointFromFFI(ln.Dir),
				BBox:  rectFromFFI(ln.BBox),
			}
			for _, ch := range ln.Chars {
				line.Chars = append(line.Chars, TextChar{
					Rune:     ch.Rune,
					Origin:   pointFromFFI(ch.Origin),
					Quad:     quadFromFFI(ch.Quad),
					Size:     ch.Size,
					FontName: ch.FontName,
				})
			}
			block.Lines = append(block.Lines, line)
		}
		out[i] = block
	}
	return out, nil
}

// Text renders the page as plain text with newlines between lines.
func (tp *TextPage) Text() (string, error) {
	fc, err := tp.live()
	if err != nil {
		return "", err
	}
	s, err := tp.h.AsText(fc)
	return s, remapError(err)
}

// HTML renders the page as a standalone styled HTML document. id
// numbers the page element.
func (tp *TextPage) HTML(id int) (string, error) {
	fc, err := tp.live()
	if err != nil {
		return "", err
	}
	s, err := tp.h.AsHTML(fc, id)
	return s, remapError(err)
}

// XHTML renders the page as a standalone XHTML document.
func (tp *TextPage) XHTML(id int) (string, error) {
	fc, err := tp.live()
	if err != nil {
		return "", err
	}
	s, err := tp.h.AsXHTML(fc, id)
	return s, remapError(err)
}

// XML renders the page as detailed XML with per-character placement.
func (tp *TextPage) XML(id int) (string, error) {
	fc, err := tp.live()
	if err != nil {
		return "", err
	}
	s, err := tp.h.AsXML(fc, id)
	return s, remapError(err)
}

// JSON renders the page as JSON with coordinates scaled by scale.
func (tp *TextPage) JSON(scale float32) (string, error) {
	fc, err := tp.live()
	if err != nil {
		return "", err
	}
	s, err := tp.h.AsJSON(fc, scale)
	return s, remapError(err)
}

// Search finds up to hitMax occurrences of needle and returns their
// covering quads.
func (tp *TextPage) Search(needle string, hitMax int) ([]Quad, error) {
	fc, err := tp.live()
	if err != nil {
		return nil, err
	}
	qs, err := tp.h.Search(fc, needle, hitMax)
	if err != nil {
		return nil, remapError(err)
	}
	return quadsFromFFI(qs), nil
}

// HighlightSelection returns up to maxQuads quads covering the text
// between the points a and b.
func (tp *TextPage) HighlightSelection(a, b Point, maxQuads int) ([]Quad, error) {
	fc, err := tp.live()
	if err != nil {
		return nil, err
	}
	qs, err := tp.h.HighlightSelection(fc, a.ffi(), b.ffi(), maxQuads)
	if err != nil {
		return nil, remapError(err)
	}
	return quadsFromFFI(qs), nil
}

// Drop releases the text page.
func (tp *TextPage) Drop() {
	if tp == nil || tp.h == nil {
		return
	}
	runtime.SetFinalizer(tp, nil)
	h := tp.h
	tp.h = nil
	tp.ctx.dropNative("text page", func(fc *ffi.Context) { h.Drop(fc) })
}
