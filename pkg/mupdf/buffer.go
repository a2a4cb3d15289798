package mupdf

import (
	"io"
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// Buffer is a growable byte buffer in native memory. It implements
// io.ReaderAt and io.Writer over the native storage.
type Buffer struct {
	ctx *Context
	h   *ffi.Buffer
}

var (
	_ io.ReaderAt = (*Buffer)(nil)
	_ io.Writer   = (*Buffer)(nil)
)

func newBuffer(c *Context, h *ffi.Buffer) *Buffer {
	b := &Buffer{ctx: c, h: h}
	runtime.SetFinalizer(b, func(b *Buffer) { b.Drop() })
	return b
}

// NewBuffer allocates an empty buffer with the given initial capacity.
func NewBuffer(c *Context, capacity int) (*Buffer, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewBuffer(fc, capacity)
	if err != nil {
		return nil, remapError(err)
	}
	return newBuffer(c, h), nil
}

// NewBufferFromBytes copies data into a fresh native buffer.
func NewBufferFromBytes(c *Context, data []byte) (*Buffer, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewBufferFromBytes(fc, data)
	if err != nil {
		return nil, remapError(err)
	}
	return newBuffer(c, h), nil
}

// NewBufferFromString copies s into a fresh native buffer.
func NewBufferFromString(c *Context, s string) (*Buffer, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewBufferFromString(fc, s)
	if err != nil {
		return nil, remapError(err)
	}
	return newBuffer(c, h), nil
}

// NewBufferFromBase64 decodes s and stores the result in a fresh
// native buffer.
func NewBufferFromBase64(c *Context, s string) (*Buffer, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewBufferFromBase64(fc, s)
	if err != nil {
		return nil, remapError(err)
	}
	return newBuffer(c, h), nil
}

func (b *Buffer) live() (*ffi.Context, error) {
	if b == nil || b.h == nil {
		return nil, ErrClosed
	}
	return b.ctx.handle()
}

// Len returns the number of bytes stored.
func (b *Buffer) Len() (int, error) {
	fc, err := b.live()
	if err != nil {
		return 0, err
	}
	n, err := b.h.Len(fc)
	return n, remapError(err)
}

// ReadAt copies bytes starting at off into p, with io.ReaderAt
// semantics: reading at the exact end of the buffer yields (0, io.EOF),
// a short read yields the copied count and io.EOF, and an offset past
// the end is an error.
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	fc, err := b.live()
	if err != nil {
		return 0, err
	}
	n, err := b.h.ReadAt(fc, p, int(off))
	if err != nil {
		return 0, remapError(err)
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Write appends p to the buffer.
func (b *Buffer) Write(p []byte) (int, error) {
	fc, err := b.live()
	if err != nil {
		return 0, err
	}
	n, err := b.h.Write(fc, p)
	return n, remapError(err)
}

// Bytes copies the whole contents out into Go memory.
func (b *Buffer) Bytes() ([]byte, error) {
	fc, err := b.live()
	if err != nil {
		return nil, err
	}
	data, err := b.h.Bytes(fc)
	return data, remapError(err)
}

// Drop releases the native buffer. Drop is idempotent and safe on nil.
func (b *Buffer) Drop() {
	if b == nil || b.h == nil {
		return
	}
	runtime.SetFinalizer(b, nil)
	h := b.h
	b.h = nil
	b.ctx.dropNative("buffer", func(fc *ffi.Context) { h.Drop(fc) })
}
