package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// Font is a typeface handle, either one of the built-in base14 faces
// or a face loaded from font data.
type Font struct {
	ctx *Context
	h   *ffi.Font
}

func newFont(c *Context, h *ffi.Font) *Font {
	f := &Font{ctx: c, h: h}
	runtime.SetFinalizer(f, func(f *Font) { f.Drop() })
	return f
}

// NewFont loads a font by name, consulting the built-in set first.
// index selects a face within a collection file.
func NewFont(c *Context, name string, index int) (*Font, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewFont(fc, name, index)
	if err != nil {
		return nil, remapError(err)
	}
	return newFont(c, h), nil
}

// NewFontFromBytes loads a font from raw font file data.
func NewFontFromBytes(c *Context, name string, index int, data []byte) (*Font, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	buf, err := ffi.NewBufferFromBytes(fc, data)
	if err != nil {
		return nil, remapError(err)
	}
	defer buf.Drop(fc)
	h, err := ffi.NewFontFromBuffer(fc, name, index, buf)
	if err != nil {
		return nil, remapError(err)
	}
	return newFont(c, h), nil
}

func (f *Font) live() (*ffi.Context, error) {
	if f == nil || f.h == nil {
		return nil, ErrClosed
	}
	return f.ctx.handle()
}

// Name returns the face name recorded in the font.
func (f *Font) Name() (string, error) {
	fc, err := f.live()
	if err != nil {
		return "", err
	}
	return f.h.Name(fc), nil
}

// EncodeCharacter maps a unicode code point to a glyph id, zero when
// the font has no glyph for it.
func (f *Font) EncodeCharacter(unicode rune) (int, error) {
	fc, err := f.live()
	if err != nil {
		return 0, err
	}
	g, err := f.h.EncodeCharacter(fc, unicode)
	return g, remapError(err)
}

// AdvanceGlyph reports the glyph advance in text space units. wmode
// selects vertical layout.
func (f *Font) AdvanceGlyph(glyph int, wmode bool) (float32, error) {
	fc, err := f.live()
	if err != nil {
		return 0, err
	}
	adv, err := f.h.AdvanceGlyph(fc, glyph, wmode)
	return adv, remapError(err)
}

// OutlineGlyph returns the glyph outline as a path, or nil for glyphs
// without one.
func (f *Font) OutlineGlyph(glyph int, ctm Matrix) (*Path, error) {
	fc, err := f.live()
	if err != nil {
		return nil, err
	}
	h, err := f.h.OutlineGlyph(fc, glyph, ctm.ffi())
	if err != nil {
		return nil, remapError(err)
	}
	if h == nil {
		return nil, nil
	}
	return newPath(f.ctx, h), nil
}

// Drop releases the font.
func (f *Font) Drop() {
	if f == nil || f.h == nil {
		return
	}
	runtime.SetFinalizer(f, nil)
	h := f.h
	f.h = nil
	f.ctx.dropNative("font", func(fc *ffi.Context) { h.Drop(fc) })
}
