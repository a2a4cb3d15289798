//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Image wraps a native fz_image, a compressed image resource that is
// decoded to a pixmap on demand.
type Image struct {
	p *C.fz_image
}

func NewImageFromPixmap(ctx *Context, px *Pixmap) (*Image, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_image_from_pixmap(ctx.ctx, px.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Image{p: p}, nil
}

func NewImageFromFile(ctx *Context, filename string) (*Image, error) {
	cf := C.CString(filename)
	defer C.free(unsafe.Pointer(cf))
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_image_from_file(ctx.ctx, cf, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Image{p: p}, nil
}

// NewImageFromDisplayList rasterizes a display list into an image of
// the given size in points.
func NewImageFromDisplayList(ctx *Context, list *DisplayList, w, h float32) (*Image, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_image_from_display_list(ctx.ctx, list.p, C.float(w), C.float(h), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Image{p: p}, nil
}

func (im *Image) Width() int {
	return int(im.p.w)
}

func (im *Image) Height() int {
	return int(im.p.h)
}

// ToPixmap decodes the image to its natural size.
func (im *Image) ToPixmap(ctx *Context) (*Pixmap, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_get_pixmap_from_image(ctx.ctx, im.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Pixmap{p: p}, nil
}

func (im *Image) Drop(ctx *Context) {
	if im == nil || im.p == nil {
		return
	}
	C.fz_drop_image(ctx.ctx, im.p)
	im.p = nil
}
