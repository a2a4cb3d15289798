package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// Image is a compressed image resource, decoded to a pixmap on demand.
type Image struct {
	ctx *Context
	h   *ffi.Image
}

func newImage(c *Context, h *ffi.Image) *Image {
	im := &Image{ctx: c, h: h}
	runtime.SetFinalizer(im, func(im *Image) { im.Drop() })
	return im
}

// NewImageFromPixmap wraps a pixmap's samples as an image resource.
func NewImageFromPixmap(c *Context, px *Pixmap) (*Image, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if px == nil || px.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewImageFromPixmap(fc, px.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newImage(c, h), nil
}

// NewImageFromFile loads an image file (PNG, JPEG, ...) by path.
func NewImageFromFile(c *Context, filename string) (*Image, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewImageFromFile(fc, filename)
	if err != nil {
		return nil, remapError(err)
	}
	return newImage(c, h), nil
}

// NewImageFromDisplayList rasterizes a display list into an image of
// the given size in points.
func NewImageFromDisplayList(c *Context, list *DisplayList, w, h float32) (*Image, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if list == nil || list.h == nil {
		return nil, ErrClosed
	}
	ih, err := ffi.NewImageFromDisplayList(fc, list.h, w, h)
	if err != nil {
		return nil, remapError(err)
	}
	return newImage(c, ih), nil
}

// Width reports the image width in pixels.
func (im *Image) Width() int {
	if im == nil || im.h == nil {
		return 0
	}
	return im.h.Width()
}

// Height reports the image height in pixels.
func (im *Image) Height() int {
	if im == nil || im.h == nil {
		return 0
	}
	return im.h.Height()
}

// ToPixmap decodes the image into a fresh pixmap.
func (im *Image) ToPixmap() (*Pixmap, error) {
	if im == nil || im.h == nil {
		return nil, ErrClosed
	}
	fc, err := im.ctx.handle()
	if err != nil {
		return nil, err
	}
	h, err := im.h.ToPixmap(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPixmap(im.ctx, h), nil
}

// Drop releases the image.
func (im *Image) Drop() {
	if im == nil || im.h == nil {
		return
	}
	runtime.SetFinalizer(im, nil)
	h := im.h
	im.h = nil
	im.ctx.dropNative("image", func(fc *ffi.Context) { h.Drop(fc) })
}
