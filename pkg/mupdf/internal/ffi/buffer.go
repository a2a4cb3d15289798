//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Buffer wraps a native fz_buffer, a growable byte sink shared by the
// stream, output, and stext layers.
type Buffer struct {
	p *C.fz_buffer
}

func NewBuffer(ctx *Context, capacity int) (*Buffer, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_buffer(ctx.ctx, C.size_t(capacity), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

// NewBufferFromBytes copies data into a fresh native buffer.
func NewBufferFromBytes(ctx *Context, data []byte) (*Buffer, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_buffer_from_bytes(ctx.ctx, bytesPtr(data), C.size_t(len(data)), &cerr)
	runtime.KeepAlive(data)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

func NewBufferFromString(ctx *Context, s string) (*Buffer, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	var cerr *C.mupdf_error_t
	p := C.mupdf_buffer_from_str(ctx.ctx, cs, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

// NewBufferFromBase64 decodes a base64 string into a fresh buffer.
func NewBufferFromBase64(ctx *Context, s string) (*Buffer, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	var cerr *C.mupdf_error_t
	p := C.mupdf_buffer_from_base64(ctx.ctx, cs, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

func (b *Buffer) Len(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_buffer_len(ctx.ctx, b.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ReadAt copies up to len(p) bytes starting at off into p. Reading at
// the exact end of the buffer returns (0, nil); the caller maps that to
// EOF. An offset past the end is an error.
func (b *Buffer) ReadAt(ctx *Context, p []byte, off int) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_buffer_read_bytes(ctx.ctx, b.p, C.size_t(off), bytesPtr(p), C.size_t(len(p)), &cerr)
	runtime.KeepAlive(p)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (b *Buffer) Write(ctx *Context, p []byte) (int, error) {
	var cerr *C.mupdf_error_t
	C.mupdf_buffer_write_bytes(ctx.ctx, b.p, bytesPtr(p), C.size_t(len(p)), &cerr)
	runtime.KeepAlive(p)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Bytes copies the whole buffer contents out.
func (b *Buffer) Bytes(ctx *Context) ([]byte, error) {
	n, err := b.Len(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	if _, err := b.ReadAt(ctx, out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Buffer) Drop(ctx *Context) {
	if b == nil || b.p == nil {
		return
	}
	C.fz_drop_buffer(ctx.ctx, b.p)
	b.p = nil
}
