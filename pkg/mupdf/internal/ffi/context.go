//go:build cgo && !windows

package ffi

/*
#include "wrapper.h"
*/
import "C"

import "errors"

var errContextInit = errors.New("mupdf/internal/ffi: context initialization failed")

// Context wraps one native interpreter context. A base context owns its
// lock table; clones share the base's table and allocator and are the
// unit of multi-threaded rendering.
type Context struct {
	ctx        *C.fz_context
	locks      *C.mupdf_locks_t
	warnHandle handle
}

// NewContext allocates a base context with its own lock table and the
// given store limit in bytes (0 means unlimited).
func NewContext(maxStore uint64) (*Context, error) {
	var locks *C.mupdf_locks_t
	ctx := C.mupdf_new_base_context(C.size_t(maxStore), &locks)
	if ctx == nil {
		return nil, errContextInit
	}
	return &Context{ctx: ctx, locks: locks}, nil
}

// Clone derives a context sharing the receiver's store and lock table.
// Only a base context may be cloned.
func (c *Context) Clone() (*Context, error) {
	cc := C.mupdf_clone_context(c.ctx)
	if cc == nil {
		return nil, errContextInit
	}
	return &Context{ctx: cc}, nil
}

// IsBase reports whether the context owns its lock table.
func (c *Context) IsBase() bool {
	return c.locks != nil
}

// Drop releases the context. Dropping the base context frees the lock
// table, so all clones must be dropped first.
func (c *Context) Drop() {
	if c == nil || c.ctx == nil {
		return
	}
	c.ClearWarningHandler()
	if c.locks != nil {
		C.mupdf_drop_base_context(c.ctx, c.locks)
	} else {
		C.mupdf_drop_context(c.ctx)
	}
	c.ctx = nil
	c.locks = nil
}

// InstallWarningHandler routes native warnings on this context to fn.
// The previous handler, if any, is replaced.
func (c *Context) InstallWarningHandler(fn func(string)) {
	c.ClearWarningHandler()
	h, ptr := put(fn)
	c.warnHandle = h
	C.mupdf_install_warning_callback(c.ctx, ptr)
}

// ClearWarningHandler silences native warnings on this context.
func (c *Context) ClearWarningHandler() {
	if c.warnHandle == 0 {
		return
	}
	if c.ctx != nil {
		C.mupdf_clear_warning_callback(c.ctx)
	}
	del(c.warnHandle)
	c.warnHandle = 0
}

// AdjustRectForStroke expands r to cover what stroking it with stroke
// under ctm would touch.
func (c *Context) AdjustRectForStroke(r Rect, stroke *StrokeState, ctm Matrix) (Rect, error) {
	var cerr *C.mupdf_error_t
	out := C.mupdf_adjust_rect_for_stroke(c.ctx, cRect(r), stroke.p, cMatrix(ctm), &cerr)
	if err := takeError(cerr); err != nil {
		return Rect{}, err
	}
	return goRect(out), nil
}
