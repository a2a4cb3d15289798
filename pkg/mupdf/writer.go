package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// DocumentWriter produces a new document page by page. Formats and
// their options follow the native "mutool convert" syntax, such as
// format "pdf" or "svg" with options like "compress".
type DocumentWriter struct {
	ctx  *Context
	h    *ffi.DocumentWriter
	page *Device // Borrowed device of the open page, if any
}

func newDocumentWriter(c *Context, h *ffi.DocumentWriter) *DocumentWriter {
	w := &DocumentWriter{ctx: c, h: h}
	runtime.SetFinalizer(w, func(w *DocumentWriter) { w.Drop() })
	return w
}

// NewDocumentWriter creates a writer producing the given format at
// path. An empty format is inferred from the path extension.
func NewDocumentWriter(c *Context, path, format, options string) (*DocumentWriter, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewDocumentWriter(fc, path, format, options)
	if err != nil {
		return nil, remapError(err)
	}
	return newDocumentWriter(c, h), nil
}

// NewPDFOCRWriter creates a writer producing a PDF with an OCR text
// layer over rendered page images.
func NewPDFOCRWriter(c *Context, path, options string) (*DocumentWriter, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewPDFOCRWriter(fc, path, options)
	if err != nil {
		return nil, remapError(err)
	}
	return newDocumentWriter(c, h), nil
}

func (w *DocumentWriter) live() (*ffi.Context, error) {
	if w == nil || w.h == nil {
		return nil, ErrClosed
	}
	return w.ctx.handle()
}

// BeginPage starts a page covering mediabox and returns the device to
// draw it with. The device is Borrowed: the writer owns it, EndPage
// releases it, and the caller must not Drop it or use it afterwards.
func (w *DocumentWriter) BeginPage(mediabox Rect) (*Device, error) {
	fc, err := w.live()
	if err != nil {
		return nil, err
	}
	h, err := w.h.BeginPage(fc, mediabox.ffi())
	if err != nil {
		return nil, remapError(err)
	}
	dev := &Device{ctx: w.ctx, h: h, borrowed: true}
	w.page = dev
	return dev, nil
}

// EndPage finishes the page begun by BeginPage and detaches its
// device.
func (w *DocumentWriter) EndPage() error {
	fc, err := w.live()
	if err != nil {
		return err
	}
	if w.page != nil {
		w.page.h = nil
		w.page = nil
	}
	return remapError(w.h.EndPage(fc))
}

// Close finishes the document, flushing trailers and cross references.
// The writer must still be dropped afterwards.
func (w *DocumentWriter) Close() error {
	fc, err := w.live()
	if err != nil {
		return err
	}
	return remapError(w.h.Close(fc))
}

// Drop releases the writer.
func (w *DocumentWriter) Drop() {
	if w == nil || w.h == nil {
		return
	}
	runtime.SetFinalizer(w, nil)
	if w.page != nil {
		w.page.h = nil
		w.page = nil
	}
	h := w.h
	w.h = nil
	w.ctx.dropNative("document writer", func(fc *ffi.Context) { h.Drop(fc) })
}
