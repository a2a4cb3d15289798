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

// PDFAnnotation wraps a native pdf_annot. Every handle owns a
// reference, including those returned by the page iteration calls.
type PDFAnnotation struct {
	p *C.pdf_annot
}

// Next returns the following annotation on the same page, or nil at
// the end of the list.
func (a *PDFAnnotation) Next(ctx *Context) (*PDFAnnotation, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_next_annot(ctx.ctx, a.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PDFAnnotation{p: p}, nil
}

// Type reports the annotation subtype as the native enum value.
func (a *PDFAnnotation) Type(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	t := C.mupdf_pdf_annot_type(ctx.ctx, a.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(t), nil
}

func (a *PDFAnnotation) Author(ctx *Context) (string, error) {
	var cerr *C.mupdf_error_t
	cs := C.mupdf_pdf_annot_author(ctx.ctx, a.p, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	return C.GoString(cs), nil
}

func (a *PDFAnnotation) SetAuthor(ctx *Context, author string) error {
	ca := C.CString(author)
	defer C.free(unsafe.Pointer(ca))
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_author(ctx.ctx, a.p, ca, &cerr)
	return takeError(cerr)
}

func (a *PDFAnnotation) Contents(ctx *Context) (string, error) {
	var cerr *C.mupdf_error_t
	cs := C.mupdf_pdf_annot_contents(ctx.ctx, a.p, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	return C.GoString(cs), nil
}

func (a *PDFAnnotation) SetContents(ctx *Context, contents string) error {
	cc := C.CString(contents)
	defer C.free(unsafe.Pointer(cc))
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_contents(ctx.ctx, a.p, cc, &cerr)
	return takeError(cerr)
}

func (a *PDFAnnotation) Rect(ctx *Context) (Rect, error) {
	var cerr *C.mupdf_error_t
	r := C.mupdf_pdf_annot_rect(ctx.ctx, a.p, &cerr)
	if err := takeError(cerr); err != nil {
		return Rect{}, err
	}
	return goRect(r), nil
}

func (a *PDFAnnotation) SetRect(ctx *Context, rect Rect) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_rect(ctx.ctx, a.p, cRect(rect), &cerr)
	return takeError(cerr)
}

// SetColor writes the annotation color with one, three or four
// components.
func (a *PDFAnnotation) SetColor(ctx *Context, color []float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_color(ctx.ctx, a.p, C.int(len(color)), floatsPtr(color), &cerr)
	runtime.KeepAlive(color)
	return takeError(cerr)
}

func (a *PDFAnnotation) Flags(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	f := C.mupdf_pdf_annot_flags(ctx.ctx, a.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(f), nil
}

func (a *PDFAnnotation) SetFlags(ctx *Context, flags int) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_flags(ctx.ctx, a.p, C.int(flags), &cerr)
	return takeError(cerr)
}

// SetLine writes the endpoints of a line annotation.
func (a *PDFAnnotation) SetLine(ctx *Context, start, end Point) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_line(ctx.ctx, a.p, cPoint(start), cPoint(end), &cerr)
	return takeError(cerr)
}

func (a *PDFAnnotation) SetBorderWidth(ctx *Context, width float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_border_width(ctx.ctx, a.p, C.float(width), &cerr)
	return takeError(cerr)
}

// SetPopup attaches a popup window region to the annotation.
func (a *PDFAnnotation) SetPopup(ctx *Context, rect Rect) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_popup(ctx.ctx, a.p, cRect(rect), &cerr)
	return takeError(cerr)
}

func (a *PDFAnnotation) SetActive(ctx *Context, active bool) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_active(ctx.ctx, a.p, C.bool(active), &cerr)
	return takeError(cerr)
}

// SetIsOpen marks a popup or text annotation as open or closed.
func (a *PDFAnnotation) SetIsOpen(ctx *Context, open bool) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_set_annot_is_open(ctx.ctx, a.p, C.bool(open), &cerr)
	return takeError(cerr)
}

// Update regenerates the annotation appearance if it is dirty. It
// reports whether anything changed.
func (a *PDFAnnotation) Update(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_update_annot(ctx.ctx, a.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (a *PDFAnnotation) Drop(ctx *Context) {
	if a == nil || a.p == nil {
		return
	}
	C.mupdf_pdf_drop_annot(ctx.ctx, a.p)
	a.p = nil
}
