//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// DocumentWriter wraps a native fz_document_writer producing paged
// output such as PDF, CBZ or PNG sequences.
type DocumentWriter struct {
	p *C.fz_document_writer
}

// NewDocumentWriter creates a writer for filename. format names the
// output format, or is guessed from the filename when empty. options is
// a comma separated option string in the native syntax.
func NewDocumentWriter(ctx *Context, filename, format, options string) (*DocumentWriter, error) {
	cf := C.CString(filename)
	defer C.free(unsafe.Pointer(cf))
	cfmt := C.CString(format)
	defer C.free(unsafe.Pointer(cfmt))
	co := C.CString(options)
	defer C.free(unsafe.Pointer(co))
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_document_writer(ctx.ctx, cf, cfmt, co, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &DocumentWriter{p: p}, nil
}

// NewPDFOCRWriter creates a writer that rasterizes pages and wraps
// them in a PDF with an OCR text layer.
func NewPDFOCRWriter(ctx *Context, path, options string) (*DocumentWriter, error) {
	cp := C.CString(path)
	defer C.free(unsafe.Pointer(cp))
	co := C.CString(options)
	defer C.free(unsafe.Pointer(co))
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_pdfocr_writer(ctx.ctx, cp, co, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &DocumentWriter{p: p}, nil
}

// BeginPage opens a page of the given size and returns the device to
// draw it with. The device belongs to the writer and is released by
// EndPage, never dropped by the caller.
func (w *DocumentWriter) BeginPage(ctx *Context, mediabox Rect) (*Device, error) {
	var cerr *C.mupdf_error_t
	dev := C.mupdf_document_writer_begin_page(ctx.ctx, w.p, cRect(mediabox), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Device{p: dev, borrowed: true}, nil
}

func (w *DocumentWriter) EndPage(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_document_writer_end_page(ctx.ctx, w.p, &cerr)
	return takeError(cerr)
}

// Close finishes the output file. Dropping without closing abandons it.
func (w *DocumentWriter) Close(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_close_document_writer(ctx.ctx, w.p, &cerr)
	return takeError(cerr)
}

func (w *DocumentWriter) Drop(ctx *Context) {
	if w == nil || w.p == nil {
		return
	}
	C.mupdf_drop_document_writer(ctx.ctx, w.p)
	w.p = nil
}
