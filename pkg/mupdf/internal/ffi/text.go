//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Text wraps a native fz_text, a run of positioned glyphs ready to be
// handed to a device.
type Text struct {
	p *C.fz_text
}

func NewText(ctx *Context) (*Text, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_text(ctx.ctx, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Text{p: p}, nil
}

// TextLanguageFromString parses an ISO 639 language tag into the native
// language code. Unknown tags map to the unset language.
func TextLanguageFromString(s string) int {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return int(C.fz_text_language_from_string(cs))
}

// ShowString lays out s in the given font starting at the transform trm
// and returns the transform advanced past the laid-out text.
func (t *Text) ShowString(ctx *Context, font *Font, trm Matrix, s string, wmode bool, language int) (Matrix, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	var cerr *C.mupdf_error_t
	m := C.mupdf_show_string(ctx.ctx, t.p, font.p, cMatrix(trm), cs, C.bool(wmode), C.int(language), &cerr)
	if err := takeError(cerr); err != nil {
		return Matrix{}, err
	}
	return goMatrix(m), nil
}

// Bound measures the text under ctm. A non-nil stroke state widens the
// bounds by the stroke.
func (t *Text) Bound(ctx *Context, stroke *StrokeState, ctm Matrix) (Rect, error) {
	var sp *C.fz_stroke_state
	if stroke != nil {
		sp = stroke.p
	}
	var cerr *C.mupdf_error_t
	r := C.mupdf_bound_text(ctx.ctx, t.p, sp, cMatrix(ctm), &cerr)
	if err := takeError(cerr); err != nil {
		return Rect{}, err
	}
	return goRect(r), nil
}

func (t *Text) Drop(ctx *Context) {
	if t == nil || t.p == nil {
		return
	}
	C.fz_drop_text(ctx.ctx, t.p)
	t.p = nil
}
