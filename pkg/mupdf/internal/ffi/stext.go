//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"

// The block payload is a union, which cgo cannot address directly.
static fz_stext_line *mupdfgo_block_first_line(fz_stext_block *b) { return b->u.t.first_line; }
static fz_matrix mupdfgo_block_transform(fz_stext_block *b) { return b->u.i.transform; }
*/
import "C"

import "unsafe"

// TextPage wraps a native fz_stext_page holding extracted text as a
// tree of blocks, lines and characters.
type TextPage struct {
	p *C.fz_stext_page
}

func NewTextPage(ctx *Context, mediabox Rect) (*TextPage, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_stext_page(ctx.ctx, cRect(mediabox), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &TextPage{p: p}, nil
}

// Blocks copies the page contents out. Text blocks carry lines and
// characters, image blocks carry their placement transform.
func (tp *TextPage) Blocks(ctx *Context) []TextBlock {
	var blocks []TextBlock
	for b := tp.p.first_block; b != nil; b = b.next {
		block := TextBlock{
			Kind: TextBlockKind(b._type),
			BBox: goRect(b.bbox),
		}
		switch block.Kind {
		case TextBlockText:
			for ln := C.mupdfgo_block_first_line(b); ln != nil; ln = ln.next {
				line := TextLine{
					WMode: int(ln.wmode),
					Dir:   goPoint(ln.dir),
					BBox:  goRect(ln.bbox),
				}
				for ch := ln.first_char; ch != nil; ch = ch.next {
					c := TextChar{
						Rune:   rune(ch.c),
						Origin: goPoint(ch.origin),
						Quad:   goQuad(ch.quad),
						Size:   float32(ch.size),
					}
					if ch.font != nil {
						c.FontName = C.GoString(C.fz_font_name(ctx.ctx, ch.font))
					}
					line.Chars = append(line.Chars, c)
				}
				block.Lines = append(block.Lines, line)
			}
		case TextBlockImage:
			block.Transform = goMatrix(C.mupdfgo_block_transform(b))
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// printTo runs print against a fresh buffer-backed output and returns
// the written bytes as a string. print bails out as soon as the shared
// error slot is set.
func (tp *TextPage) printTo(ctx *Context, print func(out *C.fz_output, cerr **C.mupdf_error_t)) (string, error) {
	buf, err := NewBuffer(ctx, 8192)
	if err != nil {
		return "", err
	}
	defer buf.Drop(ctx)
	var cerr *C.mupdf_error_t
	out := C.mupdf_new_output_with_buffer(ctx.ctx, buf.p, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	defer C.mupdf_drop_output(ctx.ctx, out)
	print(out, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	C.mupdf_close_output(ctx.ctx, out, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	data, err := buf.Bytes(ctx)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (tp *TextPage) AsText(ctx *Context) (string, error) {
	return tp.printTo(ctx, func(out *C.fz_output, cerr **C.mupdf_error_t) {
		C.mupdf_print_stext_page_as_text(ctx.ctx, out, tp.p, cerr)
	})
}

// AsHTML renders the page as a standalone styled HTML document. id
// numbers the page element.
func (tp *TextPage) AsHTML(ctx *Context, id int) (string, error) {
	return tp.printTo(ctx, func(out *C.fz_output, cerr **C.mupdf_error_t) {
		C.mupdf_print_stext_header_as_html(ctx.ctx, out, cerr)
		if *cerr != nil {
			return
		}
		C.mupdf_print_stext_page_as_html(ctx.ctx, out, tp.p, C.int(id), cerr)
		if *cerr != nil {
			return
		}
		C.mupdf_print_stext_trailer_as_html(ctx.ctx, out, cerr)
	})
}

// AsXHTML renders the page as a standalone XHTML document. id numbers
// the page element.
func (tp *TextPage) AsXHTML(ctx *Context, id int) (string, error) {
	return tp.printTo(ctx, func(out *C.fz_output, cerr **C.mupdf_error_t) {
		C.mupdf_print_stext_header_as_xhtml(ctx.ctx, out, cerr)
		if *cerr != nil {
			return
		}
		C.mupdf_print_stext_page_as_xhtml(ctx.ctx, out, tp.p, C.int(id), cerr)
		if *cerr != nil {
			return
		}
		C.mupdf_print_stext_trailer_as_xhtml(ctx.ctx, out, cerr)
	})
}

func (tp *TextPage) AsXML(ctx *Context, id int) (string, error) {
	return tp.printTo(ctx, func(out *C.fz_output, cerr **C.mupdf_error_t) {
		C.mupdf_print_stext_page_as_xml(ctx.ctx, out, tp.p, C.int(id), cerr)
	})
}

// AsJSON renders the page as JSON with coordinates scaled by scale.
func (tp *TextPage) AsJSON(ctx *Context, scale float32) (string, error) {
	return tp.printTo(ctx, func(out *C.fz_output, cerr **C.mupdf_error_t) {
		C.mupdf_print_stext_page_as_json(ctx.ctx, out, tp.p, C.float(scale), cerr)
	})
}

func (tp *TextPage) Search(ctx *Context, needle string, hitMax int) ([]Quad, error) {
	cn := C.CString(needle)
	defer C.free(unsafe.Pointer(cn))
	var hits C.int
	var cerr *C.mupdf_error_t
	quads := C.mupdf_search_stext_page(ctx.ctx, tp.p, cn, C.int(hitMax), &hits, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return takeQuads(ctx, quads, int(hits)), nil
}

// HighlightSelection returns up to maxQuads quads covering the text
// between the points a and b.
func (tp *TextPage) HighlightSelection(ctx *Context, a, b Point, maxQuads int) ([]Quad, error) {
	if maxQuads <= 0 {
		return nil, nil
	}
	qs := make([]C.fz_quad, maxQuads)
	var cerr *C.mupdf_error_t
	n := C.mupdf_highlight_selection(ctx.ctx, tp.p, cPoint(a), cPoint(b), &qs[0], C.int(maxQuads), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	out := make([]Quad, int(n))
	for i := range out {
		out[i] = goQuad(qs[i])
	}
	return out, nil
}

func (tp *TextPage) Drop(ctx *Context) {
	if tp == nil || tp.p == nil {
		return
	}
	C.fz_drop_stext_page(ctx.ctx, tp.p)
	tp.p = nil
}
