//go:build cgo && !windows

package ffi

/*
#include "wrapper.h"
*/
import "C"

// Colorspace wraps a native fz_colorspace. The device colorspaces are
// owned by the context and marked borrowed so Drop leaves them alone.
type Colorspace struct {
	p        *C.fz_colorspace
	borrowed bool
}

func DeviceGray(ctx *Context) *Colorspace {
	return &Colorspace{p: C.fz_device_gray(ctx.ctx), borrowed: true}
}

func DeviceRGB(ctx *Context) *Colorspace {
	return &Colorspace{p: C.fz_device_rgb(ctx.ctx), borrowed: true}
}

func DeviceBGR(ctx *Context) *Colorspace {
	return &Colorspace{p: C.fz_device_bgr(ctx.ctx), borrowed: true}
}

func DeviceCMYK(ctx *Context) *Colorspace {
	return &Colorspace{p: C.fz_device_cmyk(ctx.ctx), borrowed: true}
}

// N reports the number of color components, such as 1 for gray and 4
// for CMYK.
func (cs *Colorspace) N(ctx *Context) int {
	return int(C.fz_colorspace_n(ctx.ctx, cs.p))
}

func (cs *Colorspace) Name(ctx *Context) string {
	return C.GoString(C.fz_colorspace_name(ctx.ctx, cs.p))
}

// ConvertColor converts color from the receiver colorspace into dst,
// optionally routing through the proofing colorspace via. color must
// carry one value per source component.
func (cs *Colorspace) ConvertColor(ctx *Context, dst, via *Colorspace, color []float32, params ColorParams) ([]float32, error) {
	var sv, dv [C.FZ_MAX_COLORS]C.float
	for i, v := range color {
		sv[i] = C.float(v)
	}
	var viaPtr *C.fz_colorspace
	if via != nil {
		viaPtr = via.p
	}
	var cerr *C.mupdf_error_t
	C.mupdf_convert_color(ctx.ctx, cs.p, &sv[0], dst.p, &dv[0], viaPtr, cColorParams(params), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	out := make([]float32, dst.N(ctx))
	for i := range out {
		out[i] = float32(dv[i])
	}
	return out, nil
}

func (cs *Colorspace) Drop(ctx *Context) {
	if cs == nil || cs.p == nil {
		return
	}
	if !cs.borrowed {
		C.fz_drop_colorspace(ctx.ctx, cs.p)
	}
	cs.p = nil
}
