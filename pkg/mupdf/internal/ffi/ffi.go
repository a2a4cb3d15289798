//go:build cgo && !windows

package ffi

/*
#cgo CFLAGS: -I${SRCDIR}/../../../../native/mupdf/include
#cgo LDFLAGS: -L${SRCDIR}/../../../../native/mupdf/build/release -lmupdf -lmupdf-third
#cgo LDFLAGS: -lm -lpthread
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Built reports whether the native library is linked into this binary.
const Built = true

// Version is the native library version string.
func Version() string {
	return C.GoString(C.mupdf_version())
}

// takeError copies a native error record into a Go error and releases
// the native side. A nil record maps to a nil error.
func takeError(cerr *C.mupdf_error_t) error {
	if cerr == nil {
		return nil
	}
	err := &Error{Code: ErrorCode(cerr.code), Message: C.GoString(cerr.message)}
	C.mupdf_drop_error(cerr)
	return err
}

func cRect(r Rect) C.fz_rect {
	return C.fz_rect{x0: C.float(r.X0), y0: C.float(r.Y0), x1: C.float(r.X1), y1: C.float(r.Y1)}
}

func goRect(r C.fz_rect) Rect {
	return Rect{X0: float32(r.x0), Y0: float32(r.y0), X1: float32(r.x1), Y1: float32(r.y1)}
}

func cIRect(r IRect) C.fz_irect {
	return C.fz_irect{x0: C.int(r.X0), y0: C.int(r.Y0), x1: C.int(r.X1), y1: C.int(r.Y1)}
}

func goIRect(r C.fz_irect) IRect {
	return IRect{X0: int32(r.x0), Y0: int32(r.y0), X1: int32(r.x1), Y1: int32(r.y1)}
}

func cPoint(p Point) C.fz_point {
	return C.fz_point{x: C.float(p.X), y: C.float(p.Y)}
}

func goPoint(p C.fz_point) Point {
	return Point{X: float32(p.x), Y: float32(p.y)}
}

func cMatrix(m Matrix) C.fz_matrix {
	return C.fz_matrix{a: C.float(m.A), b: C.float(m.B), c: C.float(m.C), d: C.float(m.D), e: C.float(m.E), f: C.float(m.F)}
}

func goMatrix(m C.fz_matrix) Matrix {
	return Matrix{A: float32(m.a), B: float32(m.b), C: float32(m.c), D: float32(m.d), E: float32(m.e), F: float32(m.f)}
}

func cQuad(q Quad) C.fz_quad {
	return C.fz_quad{ul: cPoint(q.UL), ur: cPoint(q.UR), ll: cPoint(q.LL), lr: cPoint(q.LR)}
}

func goQuad(q C.fz_quad) Quad {
	return Quad{UL: goPoint(q.ul), UR: goPoint(q.ur), LL: goPoint(q.ll), LR: goPoint(q.lr)}
}

func goLocation(l C.fz_location) Location {
	return Location{Chapter: int(l.chapter), Page: int(l.page)}
}

func cColorParams(p ColorParams) C.fz_color_params {
	return C.fz_color_params{ri: C.uint8_t(p.RI), bp: C.uint8_t(p.BP), op: C.uint8_t(p.OP), opm: C.uint8_t(p.OPM)}
}

func cint(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// bytesPtr returns the address of the first byte, or nil for an empty
// slice. The caller must keep the slice alive across the native call.
func bytesPtr(b []byte) *C.uchar {
	if len(b) == 0 {
		return nil
	}
	return (*C.uchar)(unsafe.Pointer(&b[0]))
}

func floatsPtr(f []float32) *C.float {
	if len(f) == 0 {
		return nil
	}
	return (*C.float)(unsafe.Pointer(&f[0]))
}
