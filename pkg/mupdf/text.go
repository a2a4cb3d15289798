package mupdf

import (
	"runtime"

	"golang.org/x/text/language"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// TextOptions configure Text.ShowString. The zero value lays text out
// horizontally with no language hint.
type TextOptions struct {
	// Vertical selects top-to-bottom writing mode.
	Vertical bool

	// Language tags the span for extraction and shaping. The zero tag
	// leaves the language unset; a tag without a usable ISO 639 base
	// language is rejected with ErrInvalidLanguage.
	Language language.Tag
}

// Text is a run of positioned glyphs ready to be handed to a device.
type Text struct {
	ctx *Context
	h   *ffi.Text
}

// NewText creates an empty text object.
func NewText(c *Context) (*Text, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewText(fc)
	if err != nil {
		return nil, remapError(err)
	}
	t := &Text{ctx: c, h: h}
	runtime.SetFinalizer(t, func(t *Text) { t.Drop() })
	return t, nil
}

func (t *Text) live() (*ffi.Context, error) {
	if t == nil || t.h == nil {
		return nil, ErrClosed
	}
	return t.ctx.handle()
}

// ShowString lays out s in font starting at the transform trm and
// returns the transform advanced past the laid-out text.
func (t *Text) ShowString(font *Font, trm Matrix, s string, opts TextOptions) (Matrix, error) {
	fc, err := t.live()
	if err != nil {
		return Matrix{}, err
	}
	if font == nil || font.h == nil {
		return Matrix{}, ErrClosed
	}
	lang, err := nativeLanguage(opts.Language)
	if err != nil {
		return Matrix{}, err
	}
	out, err := t.h.ShowString(fc, font.h, trm.ffi(), s, opts.Vertical, lang)
	if err != nil {
		return Matrix{}, remapError(err)
	}
	return matrixFromFFI(out), nil
}

// nativeLanguage maps a BCP 47 tag to the native language code. The
// native side only understands bare ISO 639 codes, so the tag must
// carry a confidently-known base language.
func nativeLanguage(tag language.Tag) (int, error) {
	if tag == language.Und {
		return 0, nil
	}
	base, conf := tag.Base()
	if conf == language.No {
		return 0, ErrInvalidLanguage
	}
	return ffi.TextLanguageFromString(base.String()), nil
}

// Bounds measures the text under ctm. A non-nil stroke widens the
// bounds by the stroke.
func (t *Text) Bounds(stroke *StrokeState, ctm Matrix) (Rect, error) {
	fc, err := t.live()
	if err != nil {
		return Rect{}, err
	}
	var sh *ffi.StrokeState
	if stroke != nil {
		sh = stroke.h
	}
	r, err := t.h.Bound(fc, sh, ctm.ffi())
	if err != nil {
		return Rect{}, remapError(err)
	}
	return rectFromFFI(r), nil
}

// Drop releases the text object.
func (t *Text) Drop() {
	if t == nil || t.h == nil {
		return
	}
	runtime.SetFinalizer(t, nil)
	h := t.h
	t.h = nil
	t.ctx.dropNative("text", func(fc *ffi.Context) { h.Drop(fc) })
}
