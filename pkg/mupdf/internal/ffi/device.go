//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Device wraps a native fz_device. Draw, display list and stext
// devices are owned handles; the device handed out by a document
// writer is borrowed and dropped by the writer itself.
type Device struct {
	p        *C.fz_device
	list     *C.fz_display_list
	borrowed bool
}

// NewDrawDevice rasterizes into px. An infinite clip renders the whole
// pixmap; a finite one restricts drawing to that region.
func NewDrawDevice(ctx *Context, px *Pixmap, clip IRect) (*Device, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_draw_device(ctx.ctx, px.p, cIRect(clip), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Device{p: p}, nil
}

// NewDisplayListDevice records device calls into list. The device keeps
// a reference on the list until the device itself is dropped.
func NewDisplayListDevice(ctx *Context, list *DisplayList) (*Device, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_display_list_device(ctx.ctx, list.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Device{p: p, list: list.p}, nil
}

// NewStextDevice extracts structured text into tp.
func NewStextDevice(ctx *Context, tp *TextPage, flags int) (*Device, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_stext_device(ctx.ctx, tp.p, C.int(flags), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Device{p: p}, nil
}

// Close flushes pending output. Callers close before dropping; a drop
// without close abandons partial output.
func (d *Device) Close(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_close_device(ctx.ctx, d.p, &cerr)
	return takeError(cerr)
}

func (d *Device) FillPath(ctx *Context, path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	var cerr *C.mupdf_error_t
	C.mupdf_fill_path(ctx.ctx, d.p, path.p, C.bool(evenOdd), cMatrix(ctm), cs.p, floatsPtr(color), C.float(alpha), cColorParams(cp), &cerr)
	runtime.KeepAlive(color)
	return takeError(cerr)
}

func (d *Device) StrokePath(ctx *Context, path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	var cerr *C.mupdf_error_t
	C.mupdf_stroke_path(ctx.ctx, d.p, path.p, stroke.p, cMatrix(ctm), cs.p, floatsPtr(color), C.float(alpha), cColorParams(cp), &cerr)
	runtime.KeepAlive(color)
	return takeError(cerr)
}

func (d *Device) ClipPath(ctx *Context, path *Path, evenOdd bool, ctm Matrix) error {
	var cerr *C.mupdf_error_t
	C.mupdf_clip_path(ctx.ctx, d.p, path.p, C.bool(evenOdd), cMatrix(ctm), &cerr)
	return takeError(cerr)
}

func (d *Device) ClipStrokePath(ctx *Context, path *Path, stroke *StrokeState, ctm Matrix) error {
	var cerr *C.mupdf_error_t
	C.mupdf_clip_stroke_path(ctx.ctx, d.p, path.p, stroke.p, cMatrix(ctm), &cerr)
	return takeError(cerr)
}

func (d *Device) FillText(ctx *Context, text *Text, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	var cerr *C.mupdf_error_t
	C.mupdf_fill_text(ctx.ctx, d.p, text.p, cMatrix(ctm), cs.p, floatsPtr(color), C.float(alpha), cColorParams(cp), &cerr)
	runtime.KeepAlive(color)
	return takeError(cerr)
}

func (d *Device) StrokeText(ctx *Context, text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	var cerr *C.mupdf_error_t
	C.mupdf_stroke_text(ctx.ctx, d.p, text.p, stroke.p, cMatrix(ctm), cs.p, floatsPtr(color), C.float(alpha), cColorParams(cp), &cerr)
	runtime.KeepAlive(color)
	return takeError(cerr)
}

func (d *Device) ClipText(ctx *Context, text *Text, ctm Matrix) error {
	var cerr *C.mupdf_error_t
	C.mupdf_clip_text(ctx.ctx, d.p, text.p, cMatrix(ctm), &cerr)
	return takeError(cerr)
}

func (d *Device) ClipStrokeText(ctx *Context, text *Text, stroke *StrokeState, ctm Matrix) error {
	var cerr *C.mupdf_error_t
	C.mupdf_clip_stroke_text(ctx.ctx, d.p, text.p, stroke.p, cMatrix(ctm), &cerr)
	return takeError(cerr)
}

// IgnoreText records text for extraction purposes without painting it.
func (d *Device) IgnoreText(ctx *Context, text *Text, ctm Matrix) error {
	var cerr *C.mupdf_error_t
	C.mupdf_ignore_text(ctx.ctx, d.p, text.p, cMatrix(ctm), &cerr)
	return takeError(cerr)
}

func (d *Device) FillImage(ctx *Context, img *Image, ctm Matrix, alpha float32, cp ColorParams) error {
	var cerr *C.mupdf_error_t
	C.mupdf_fill_image(ctx.ctx, d.p, img.p, cMatrix(ctm), C.float(alpha), cColorParams(cp), &cerr)
	return takeError(cerr)
}

// FillImageMask paints color through the image's alpha.
func (d *Device) FillImageMask(ctx *Context, img *Image, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	var cerr *C.mupdf_error_t
	C.mupdf_fill_image_mask(ctx.ctx, d.p, img.p, cMatrix(ctm), cs.p, floatsPtr(color), C.float(alpha), cColorParams(cp), &cerr)
	runtime.KeepAlive(color)
	return takeError(cerr)
}

func (d *Device) ClipImageMask(ctx *Context, img *Image, ctm Matrix) error {
	var cerr *C.mupdf_error_t
	C.mupdf_clip_image_mask(ctx.ctx, d.p, img.p, cMatrix(ctm), &cerr)
	return takeError(cerr)
}

func (d *Device) PopClip(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pop_clip(ctx.ctx, d.p, &cerr)
	return takeError(cerr)
}

func (d *Device) BeginMask(ctx *Context, area Rect, luminosity bool, cs *Colorspace, color []float32, cp ColorParams) error {
	var csp *C.fz_colorspace
	if cs != nil {
		csp = cs.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_begin_mask(ctx.ctx, d.p, cRect(area), C.bool(luminosity), csp, floatsPtr(color), cColorParams(cp), &cerr)
	runtime.KeepAlive(color)
	return takeError(cerr)
}

func (d *Device) EndMask(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_end_mask(ctx.ctx, d.p, &cerr)
	return takeError(cerr)
}

func (d *Device) BeginGroup(ctx *Context, area Rect, cs *Colorspace, isolated, knockout bool, blendmode int, alpha float32) error {
	var csp *C.fz_colorspace
	if cs != nil {
		csp = cs.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_begin_group(ctx.ctx, d.p, cRect(area), csp, C.bool(isolated), C.bool(knockout), C.int(blendmode), C.float(alpha), &cerr)
	return takeError(cerr)
}

func (d *Device) EndGroup(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_end_group(ctx.ctx, d.p, &cerr)
	return takeError(cerr)
}

// BeginTile opens a tiled repeat of view across area. A non-zero id
// keys a tile cache entry; the result is non-zero when the device had
// the tile cached and the caller may skip the tile contents.
func (d *Device) BeginTile(ctx *Context, area, view Rect, xstep, ystep float32, ctm Matrix, id int) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_begin_tile(ctx.ctx, d.p, cRect(area), cRect(view), C.float(xstep), C.float(ystep), cMatrix(ctm), C.int(id), &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (d *Device) EndTile(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_end_tile(ctx.ctx, d.p, &cerr)
	return takeError(cerr)
}

func (d *Device) BeginLayer(ctx *Context, name string) error {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	var cerr *C.mupdf_error_t
	C.mupdf_begin_layer(ctx.ctx, d.p, cn, &cerr)
	return takeError(cerr)
}

func (d *Device) EndLayer(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_end_layer(ctx.ctx, d.p, &cerr)
	return takeError(cerr)
}

func (d *Device) Drop(ctx *Context) {
	if d == nil || d.p == nil {
		return
	}
	if !d.borrowed {
		C.fz_drop_device(ctx.ctx, d.p)
	}
	d.p = nil
	if d.list != nil {
		C.fz_drop_display_list(ctx.ctx, d.list)
		d.list = nil
	}
}
