//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Pixmap wraps a native fz_pixmap, a rectangular sample grid with an
// optional alpha channel.
type Pixmap struct {
	p *C.fz_pixmap
}

func NewPixmap(ctx *Context, cs *Colorspace, x, y, w, h int, alpha bool) (*Pixmap, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_pixmap(ctx.ctx, cs.p, C.int(x), C.int(y), C.int(w), C.int(h), C.bool(alpha), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Pixmap{p: p}, nil
}

func (px *Pixmap) Clone(ctx *Context) (*Pixmap, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_clone_pixmap(ctx.ctx, px.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Pixmap{p: p}, nil
}

// Clear resets every sample to zero, which is transparent for alpha
// pixmaps and black for plain ones.
func (px *Pixmap) Clear(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_clear_pixmap(ctx.ctx, px.p, &cerr)
	return takeError(cerr)
}

func (px *Pixmap) ClearWithValue(ctx *Context, value int) error {
	var cerr *C.mupdf_error_t
	C.mupdf_clear_pixmap_with_value(ctx.ctx, px.p, C.int(value), &cerr)
	return takeError(cerr)
}

func (px *Pixmap) Invert(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_invert_pixmap(ctx.ctx, px.p, &cerr)
	return takeError(cerr)
}

// Gamma applies a gamma curve to the samples. The pixmap must carry a
// colorspace.
func (px *Pixmap) Gamma(ctx *Context, gamma float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_gamma_pixmap(ctx.ctx, px.p, C.float(gamma), &cerr)
	return takeError(cerr)
}

// Tint maps black and white to the given hex sRGB colors. Only gray and
// RGB pixmaps can be tinted.
func (px *Pixmap) Tint(ctx *Context, black, white int) error {
	var cerr *C.mupdf_error_t
	C.mupdf_tint_pixmap(ctx.ctx, px.p, C.int(black), C.int(white), &cerr)
	return takeError(cerr)
}

func (px *Pixmap) SaveAs(ctx *Context, filename string, format int) error {
	cf := C.CString(filename)
	defer C.free(unsafe.Pointer(cf))
	var cerr *C.mupdf_error_t
	C.mupdf_save_pixmap_as(ctx.ctx, px.p, cf, C.int(format), &cerr)
	return takeError(cerr)
}

// ImageData encodes the pixmap in the given format and returns the
// encoded bytes in a fresh buffer.
func (px *Pixmap) ImageData(ctx *Context, format int) (*Buffer, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pixmap_get_image_data(ctx.ctx, px.p, C.int(format), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

func (px *Pixmap) X(ctx *Context) int {
	return int(C.fz_pixmap_x(ctx.ctx, px.p))
}

func (px *Pixmap) Y(ctx *Context) int {
	return int(C.fz_pixmap_y(ctx.ctx, px.p))
}

func (px *Pixmap) Width(ctx *Context) int {
	return int(C.fz_pixmap_width(ctx.ctx, px.p))
}

func (px *Pixmap) Height(ctx *Context) int {
	return int(C.fz_pixmap_height(ctx.ctx, px.p))
}

// N reports the number of components per sample, alpha included.
func (px *Pixmap) N(ctx *Context) int {
	return int(C.fz_pixmap_components(ctx.ctx, px.p))
}

func (px *Pixmap) Alpha(ctx *Context) bool {
	return C.fz_pixmap_alpha(ctx.ctx, px.p) != 0
}

func (px *Pixmap) Stride(ctx *Context) int {
	return int(C.fz_pixmap_stride(ctx.ctx, px.p))
}

func (px *Pixmap) Resolution() (xres, yres int) {
	return int(px.p.xres), int(px.p.yres)
}

func (px *Pixmap) SetResolution(xres, yres int) {
	px.p.xres = C.int(xres)
	px.p.yres = C.int(yres)
}

func (px *Pixmap) Colorspace(ctx *Context) *Colorspace {
	cs := C.fz_pixmap_colorspace(ctx.ctx, px.p)
	if cs == nil {
		return nil
	}
	return &Colorspace{p: cs, borrowed: true}
}

// Samples copies the raw sample bytes out, stride times height of them.
func (px *Pixmap) Samples(ctx *Context) []byte {
	n := px.Stride(ctx) * px.Height(ctx)
	if n == 0 {
		return nil
	}
	src := C.fz_pixmap_samples(ctx.ctx, px.p)
	return C.GoBytes(unsafe.Pointer(src), C.int(n))
}

func (px *Pixmap) Drop(ctx *Context) {
	if px == nil || px.p == nil {
		return
	}
	C.fz_drop_pixmap(ctx.ctx, px.p)
	px.p = nil
}
