//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// DisplayList wraps a native fz_display_list, a recorded sequence of
// device calls that can be replayed any number of times.
type DisplayList struct {
	p *C.fz_display_list
}

func NewDisplayList(ctx *Context, mediabox Rect) (*DisplayList, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_display_list(ctx.ctx, cRect(mediabox), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &DisplayList{p: p}, nil
}

func (dl *DisplayList) Bounds(ctx *Context) Rect {
	return goRect(C.fz_bound_display_list(ctx.ctx, dl.p))
}

// ToPixmap replays the list under ctm into a fresh pixmap.
func (dl *DisplayList) ToPixmap(ctx *Context, ctm Matrix, cs *Colorspace, alpha bool) (*Pixmap, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_display_list_to_pixmap(ctx.ctx, dl.p, cMatrix(ctm), cs.p, C.bool(alpha), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Pixmap{p: p}, nil
}

// ToTextPage extracts the recorded text into a structured text page.
func (dl *DisplayList) ToTextPage(ctx *Context, flags int) (*TextPage, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_display_list_to_text_page(ctx.ctx, dl.p, C.int(flags), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &TextPage{p: p}, nil
}

// Run replays the list through dev, clipped to area.
func (dl *DisplayList) Run(ctx *Context, dev *Device, ctm Matrix, area Rect, cookie *Cookie) error {
	var ck *C.fz_cookie
	if cookie != nil {
		ck = cookie.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_display_list_run(ctx.ctx, dl.p, dev.p, cMatrix(ctm), cRect(area), ck, &cerr)
	return takeError(cerr)
}

func (dl *DisplayList) Search(ctx *Context, needle string, hitMax int) ([]Quad, error) {
	cn := C.CString(needle)
	defer C.free(unsafe.Pointer(cn))
	var hits C.int
	var cerr *C.mupdf_error_t
	quads := C.mupdf_search_display_list(ctx.ctx, dl.p, cn, C.int(hitMax), &hits, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return takeQuads(ctx, quads, int(hits)), nil
}

func (dl *DisplayList) Drop(ctx *Context) {
	if dl == nil || dl.p == nil {
		return
	}
	C.fz_drop_display_list(ctx.ctx, dl.p)
	dl.p = nil
}
