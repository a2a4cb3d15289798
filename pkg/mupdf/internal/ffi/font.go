//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Font wraps a native fz_font, either a built-in base14 face or one
// loaded from font data.
type Font struct {
	p *C.fz_font
}

// NewFont loads a font by name, consulting the built-in base14 set
// first. index selects a face within a collection file.
func NewFont(ctx *Context, name string, index int) (*Font, error) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_font(ctx.ctx, cn, C.int(index), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Font{p: p}, nil
}

func NewFontFromBuffer(ctx *Context, name string, index int, buf *Buffer) (*Font, error) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_font_from_buffer(ctx.ctx, cn, C.int(index), buf.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Font{p: p}, nil
}

func (f *Font) Name(ctx *Context) string {
	return C.GoString(C.fz_font_name(ctx.ctx, f.p))
}

// EncodeCharacter maps a unicode code point to a glyph id, zero when
// the font has no glyph for it.
func (f *Font) EncodeCharacter(ctx *Context, unicode rune) (int, error) {
	var cerr *C.mupdf_error_t
	g := C.mupdf_encode_character(ctx.ctx, f.p, C.int(unicode), &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(g), nil
}

// AdvanceGlyph reports the glyph advance in text space units. wmode
// selects vertical layout.
func (f *Font) AdvanceGlyph(ctx *Context, glyph int, wmode bool) (float32, error) {
	var cerr *C.mupdf_error_t
	adv := C.mupdf_advance_glyph(ctx.ctx, f.p, C.int(glyph), C.bool(wmode), &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return float32(adv), nil
}

// OutlineGlyph returns the glyph outline as a path, or nil for glyphs
// without one, such as bitmap-only faces.
func (f *Font) OutlineGlyph(ctx *Context, glyph int, ctm Matrix) (*Path, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_outline_glyph(ctx.ctx, f.p, C.int(glyph), cMatrix(ctm), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &Path{p: p}, nil
}

func (f *Font) Drop(ctx *Context) {
	if f == nil || f.p == nil {
		return
	}
	C.fz_drop_font(ctx.ctx, f.p)
	f.p = nil
}
