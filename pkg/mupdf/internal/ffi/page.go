//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Page wraps a native fz_page of any document format.
type Page struct {
	p *C.fz_page
}

func (pg *Page) Bound(ctx *Context) (Rect, error) {
	var cerr *C.mupdf_error_t
	r := C.mupdf_bound_page(ctx.ctx, pg.p, &cerr)
	if err := takeError(cerr); err != nil {
		return Rect{}, err
	}
	return goRect(r), nil
}

// ToPixmap renders the page under ctm into a fresh pixmap. showExtras
// includes annotations and widgets in the render.
func (pg *Page) ToPixmap(ctx *Context, ctm Matrix, cs *Colorspace, alpha, showExtras bool) (*Pixmap, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_page_to_pixmap(ctx.ctx, pg.p, cMatrix(ctm), cs.p, C.bool(alpha), C.bool(showExtras), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Pixmap{p: p}, nil
}

// ToSVG renders the page under ctm as an SVG document.
func (pg *Page) ToSVG(ctx *Context, ctm Matrix, cookie *Cookie) (string, error) {
	var ck *C.fz_cookie
	if cookie != nil {
		ck = cookie.p
	}
	var cerr *C.mupdf_error_t
	p := C.mupdf_page_to_svg(ctx.ctx, pg.p, cMatrix(ctm), ck, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	buf := &Buffer{p: p}
	data, err := buf.Bytes(ctx)
	buf.Drop(ctx)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToTextPage extracts the page into a structured text page using the
// given extraction flags.
func (pg *Page) ToTextPage(ctx *Context, flags int) (*TextPage, error) {
	opts := C.fz_stext_options{flags: C.int(flags)}
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_stext_page_from_page(ctx.ctx, pg.p, &opts, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &TextPage{p: p}, nil
}

// ToDisplayList records the page into a display list. annots includes
// annotation appearance streams in the recording.
func (pg *Page) ToDisplayList(ctx *Context, annots bool) (*DisplayList, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_page_to_display_list(ctx.ctx, pg.p, C.bool(annots), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &DisplayList{p: p}, nil
}

// Run replays page contents, annotations and widgets through dev.
func (pg *Page) Run(ctx *Context, dev *Device, ctm Matrix, cookie *Cookie) error {
	var ck *C.fz_cookie
	if cookie != nil {
		ck = cookie.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_run_page(ctx.ctx, pg.p, dev.p, cMatrix(ctm), ck, &cerr)
	return takeError(cerr)
}

func (pg *Page) RunContents(ctx *Context, dev *Device, ctm Matrix, cookie *Cookie) error {
	var ck *C.fz_cookie
	if cookie != nil {
		ck = cookie.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_run_page_contents(ctx.ctx, pg.p, dev.p, cMatrix(ctm), ck, &cerr)
	return takeError(cerr)
}

func (pg *Page) RunAnnots(ctx *Context, dev *Device, ctm Matrix, cookie *Cookie) error {
	var ck *C.fz_cookie
	if cookie != nil {
		ck = cookie.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_run_page_annots(ctx.ctx, pg.p, dev.p, cMatrix(ctm), ck, &cerr)
	return takeError(cerr)
}

func (pg *Page) RunWidgets(ctx *Context, dev *Device, ctm Matrix, cookie *Cookie) error {
	var ck *C.fz_cookie
	if cookie != nil {
		ck = cookie.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_run_page_widgets(ctx.ctx, pg.p, dev.p, cMatrix(ctm), ck, &cerr)
	return takeError(cerr)
}

// Links copies the page's hyperlink regions out.
func (pg *Page) Links(ctx *Context) ([]Link, error) {
	var cerr *C.mupdf_error_t
	head := C.mupdf_load_links(ctx.ctx, pg.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if head == nil {
		return nil, nil
	}
	var out []Link
	for node := head; node != nil; node = node.next {
		out = append(out, Link{
			Bounds: goRect(node.rect),
			URI:    C.GoString(node.uri),
		})
	}
	C.fz_drop_link(ctx.ctx, head)
	return out, nil
}

// Search finds up to hitMax occurrences of needle and returns their
// bounding quads.
func (pg *Page) Search(ctx *Context, needle string, hitMax int) ([]Quad, error) {
	cn := C.CString(needle)
	defer C.free(unsafe.Pointer(cn))
	var hits C.int
	var cerr *C.mupdf_error_t
	quads := C.mupdf_search_page(ctx.ctx, pg.p, cn, C.int(hitMax), &hits, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return takeQuads(ctx, quads, int(hits)), nil
}

// takeQuads copies a native quad array out and releases it.
func takeQuads(ctx *Context, quads *C.fz_quad, n int) []Quad {
	if quads == nil {
		return nil
	}
	var out []Quad
	if n > 0 {
		out = make([]Quad, n)
		for i, q := range unsafe.Slice(quads, n) {
			out[i] = goQuad(q)
		}
	}
	C.fz_free(ctx.ctx, unsafe.Pointer(quads))
	return out
}

func (pg *Page) Drop(ctx *Context) {
	if pg == nil || pg.p == nil {
		return
	}
	C.fz_drop_page(ctx.ctx, pg.p)
	pg.p = nil
}
