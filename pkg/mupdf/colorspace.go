package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// ColorParams tune color conversion: rendering intent, black point
// compensation, overprint and overprint mode.
type ColorParams struct {
	RI  uint8
	BP  uint8
	OP  uint8
	OPM uint8
}

// DefaultColorParams matches the native defaults, relative colorimetric
// intent with black point compensation.
var DefaultColorParams = ColorParams{RI: 1, BP: 1}

func (p ColorParams) ffi() ffi.ColorParams {
	return ffi.ColorParams{RI: p.RI, BP: p.BP, OP: p.OP, OPM: p.OPM}
}

// Colorspace describes how pixmap samples are interpreted. The device
// colorspaces are Borrowed singletons owned by their context; Drop on
// them only detaches.
type Colorspace struct {
	ctx      *Context
	h        *ffi.Colorspace
	borrowed bool
}

func borrowedColorspace(c *Context, h *ffi.Colorspace) *Colorspace {
	if h == nil {
		return nil
	}
	return &Colorspace{ctx: c, h: h, borrowed: true}
}

// DeviceGray returns the 1-component device gray colorspace.
func DeviceGray(c *Context) (*Colorspace, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	return borrowedColorspace(c, ffi.DeviceGray(fc)), nil
}

// DeviceRGB returns the 3-component device RGB colorspace.
func DeviceRGB(c *Context) (*Colorspace, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	return borrowedColorspace(c, ffi.DeviceRGB(fc)), nil
}

// DeviceBGR returns device RGB with reversed component order.
func DeviceBGR(c *Context) (*Colorspace, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	return borrowedColorspace(c, ffi.DeviceBGR(fc)), nil
}

// DeviceCMYK returns the 4-component device CMYK colorspace.
func DeviceCMYK(c *Context) (*Colorspace, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	return borrowedColorspace(c, ffi.DeviceCMYK(fc)), nil
}

func (cs *Colorspace) live() (*ffi.Context, error) {
	if cs == nil || cs.h == nil {
		return nil, ErrClosed
	}
	return cs.ctx.handle()
}

// N reports the number of color components, alpha excluded.
func (cs *Colorspace) N() (int, error) {
	fc, err := cs.live()
	if err != nil {
		return 0, err
	}
	return cs.h.N(fc), nil
}

// Name returns the native colorspace name, such as "DeviceRGB".
func (cs *Colorspace) Name() (string, error) {
	fc, err := cs.live()
	if err != nil {
		return "", err
	}
	return cs.h.Name(fc), nil
}

// ConvertColor converts color from the receiver into dst, optionally
// routing through the proofing colorspace via. color carries one value
// per source component; the result has one value per dst component.
func (cs *Colorspace) ConvertColor(dst, via *Colorspace, color []float32, params ColorParams) ([]float32, error) {
	fc, err := cs.live()
	if err != nil {
		return nil, err
	}
	if dst == nil || dst.h == nil {
		return nil, ErrClosed
	}
	var viaFFI *ffi.Colorspace
	if via != nil {
		viaFFI = via.h
	}
	out, err := cs.h.ConvertColor(fc, dst.h, viaFFI, color, params.ffi())
	return out, remapError(err)
}

// Drop detaches the wrapper, releasing the native reference for owned
// colorspaces. Device singletons are borrowed and never released.
func (cs *Colorspace) Drop() {
	if cs == nil || cs.h == nil {
		return
	}
	runtime.SetFinalizer(cs, nil)
	h := cs.h
	cs.h = nil
	if cs.borrowed {
		return
	}
	cs.ctx.dropNative("colorspace", func(fc *ffi.Context) { h.Drop(fc) })
}
