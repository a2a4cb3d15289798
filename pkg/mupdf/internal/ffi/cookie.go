//go:build cgo && !windows

package ffi

/*
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Cookie is the native progress and abort channel for a running render.
// Writes to the abort flag are picked up between rendering bands.
type Cookie struct {
	p *C.fz_cookie
}

func NewCookie(ctx *Context) (*Cookie, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_cookie(ctx.ctx, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Cookie{p: p}, nil
}

// Abort requests that the running operation stop at the next check.
func (k *Cookie) Abort() {
	k.p.abort = 1
}

func (k *Cookie) Aborted() bool {
	return k.p.abort != 0
}

// Progress reports operations completed and the expected total. The
// total is zero when unknown.
func (k *Cookie) Progress() (done, max int) {
	return int(k.p.progress), int(k.p.progress_max)
}

// Errors counts rendering errors suppressed so far.
func (k *Cookie) Errors() int {
	return int(k.p.errors)
}

// Incomplete reports whether rendering stopped before the full page.
func (k *Cookie) Incomplete() bool {
	return k.p.incomplete != 0
}

func (k *Cookie) Drop(ctx *Context) {
	if k == nil || k.p == nil {
		return
	}
	C.fz_free(ctx.ctx, unsafe.Pointer(k.p))
	k.p = nil
}
