package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// DisplayList records device calls for later replays. Once recorded a
// list is immutable and may be replayed from several clone contexts.
type DisplayList struct {
	ctx *Context
	h   *ffi.DisplayList
}

func newDisplayList(c *Context, h *ffi.DisplayList) *DisplayList {
	dl := &DisplayList{ctx: c, h: h}
	runtime.SetFinalizer(dl, func(dl *DisplayList) { dl.Drop() })
	return dl
}

// NewDisplayList creates an empty list covering mediabox.
func NewDisplayList(c *Context, mediabox Rect) (*DisplayList, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewDisplayList(fc, mediabox.ffi())
	if err != nil {
		return nil, remapError(err)
	}
	return newDisplayList(c, h), nil
}

func (dl *DisplayList) live() (*ffi.Context, error) {
	if dl == nil || dl.h == nil {
		return nil, ErrClosed
	}
	return dl.ctx.handle()
}

// Bounds returns the rect the recorded commands cover.
func (dl *DisplayList) Bounds() (Rect, error) {
	fc, err := dl.live()
	if err != nil {
		return Rect{}, err
	}
	return rectFromFFI(dl.h.Bounds(fc)), nil
}

// ToPixmap rasterizes the list under ctm into a fresh pixmap.
func (dl *DisplayList) ToPixmap(ctm Matrix, cs *Colorspace, alpha bool) (*Pixmap, error) {
	fc, err := dl.live()
	if err != nil {
		return nil, err
	}
	if cs == nil || cs.h == nil {
		return nil, ErrClosed
	}
	h, err := dl.h.ToPixmap(fc, ctm.ffi(), cs.h, alpha)
	if err != nil {
		return nil, remapError(err)
	}
	return newPixmap(dl.ctx, h), nil
}

// ToTextPage extracts the text recorded in the list.
func (dl *DisplayList) ToTextPage(opts TextPageOptions) (*TextPage, error) {
	fc, err := dl.live()
	if err != nil {
		return nil, err
	}
	h, err := dl.h.ToTextPage(fc, int(opts.Flags))
	if err != nil {
		return nil, remapError(err)
	}
	return newTextPage(dl.ctx, h), nil
}

// Run replays the recorded commands through dev, clipped to area.
func (dl *DisplayList) Run(dev *Device, ctm Matrix, area Rect, k *Cookie) error {
	fc, err := dl.live()
	if err != nil {
		return err
	}
	if dev == nil || dev.h == nil {
		return ErrClosed
	}
	var kh *ffi.Cookie
	if k != nil {
		kh = k.h
	}
	return remapError(dl.h.Run(fc, dev.h, ctm.ffi(), area.ffi(), kh))
}

// Search finds up to hitMax occurrences of needle in the recorded text
// and returns their covering quads.
func (dl *DisplayList) Search(needle string, hitMax int) ([]Quad, error) {
	fc, err := dl.live()
	if err != nil {
		return nil, err
	}
	qs, err := dl.h.Search(fc, needle, hitMax)
	if err != nil {
		return nil, remapError(err)
	}
	return quadsFromFFI(qs), nil
}

// Drop releases the display list.
func (dl *DisplayList) Drop() {
	if dl == nil || dl.h == nil {
		return
	}
	runtime.SetFinalizer(dl, nil)
	h := dl.h
	dl.h = nil
	dl.ctx.dropNative("display list", func(fc *ffi.Context) { h.Drop(fc) })
}
