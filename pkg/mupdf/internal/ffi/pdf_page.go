//go:build cgo && !windows

package ffi

/*
#include "wrapper.h"
*/
import "C"

// PDFPage wraps a native pdf_page, giving access to the page
// dictionary behind a generic page.
type PDFPage struct {
	p *C.pdf_page
}

// PDFPageFromPage casts a generic page down to its PDF form. Pages of
// non-PDF documents report nil with no error. The result holds its own
// reference on top of the generic page's.
func PDFPageFromPage(ctx *Context, page *Page) (*PDFPage, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_page_from_fz_page(ctx.ctx, page.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PDFPage{p: p}, nil
}

// Obj returns the page dictionary.
func (pp *PDFPage) Obj(ctx *Context) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_page_obj(ctx.ctx, pp.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// Rotation reads the page's inherited Rotate entry in degrees.
func (pp *PDFPage) Rotation(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	r := C.mupdf_pdf_page_rotation(ctx.ctx, pp.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(r), nil
}

// SetRotation writes the Rotate entry. Only multiples of 90 are valid.
func (pp *PDFPage) SetRotation(ctx *Context, rotation int) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_page_set_rotation(ctx.ctx, pp.p, C.int(rotation), &cerr)
	return takeError(cerr)
}

func (pp *PDFPage) CropBox(ctx *Context) (Rect, error) {
	var cerr *C.mupdf_error_t
	r := C.mupdf_pdf_page_crop_box(ctx.ctx, pp.p, &cerr)
	if err := takeError(cerr); err != nil {
		return Rect{}, err
	}
	return goRect(r), nil
}

// SetCropBox writes the CropBox entry. The rectangle is given with the
// origin at the page's top left corner.
func (pp *PDFPage) SetCropBox(ctx *Context, rect Rect) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_page_set_crop_box(ctx.ctx, pp.p, cRect(rect), &cerr)
	return takeError(cerr)
}

// CropBoxPosition reports the crop box offset within the media box.
func (pp *PDFPage) CropBoxPosition(ctx *Context) Point {
	return goPoint(C.mupdf_pdf_page_crop_box_position(ctx.ctx, pp.p))
}

func (pp *PDFPage) MediaBox(ctx *Context) Rect {
	return goRect(C.mupdf_pdf_page_media_box(ctx.ctx, pp.p))
}

// Transform reports the matrix mapping page space to the fitz space
// used for rendering.
func (pp *PDFPage) Transform(ctx *Context) (Matrix, error) {
	var cerr *C.mupdf_error_t
	m := C.mupdf_pdf_page_transform(ctx.ctx, pp.p, &cerr)
	if err := takeError(cerr); err != nil {
		return Matrix{}, err
	}
	return goMatrix(m), nil
}

// PDFPageObjTransform reports the page space to fitz space matrix of
// an unloaded page dictionary.
func PDFPageObjTransform(ctx *Context, pageObj *PDFObject) (Matrix, error) {
	var cerr *C.mupdf_error_t
	m := C.mupdf_pdf_page_obj_transform(ctx.ctx, pageObj.p, &cerr)
	if err := takeError(cerr); err != nil {
		return Matrix{}, err
	}
	return goMatrix(m), nil
}

// Update regenerates dirty annotation appearances. It reports whether
// anything changed.
func (pp *PDFPage) Update(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_update_page(ctx.ctx, pp.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

// Redact applies the page's redaction annotations, removing the
// content underneath them. It reports whether anything was redacted.
func (pp *PDFPage) Redact(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_redact_page(ctx.ctx, pp.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

// FirstAnnot returns the first annotation on the page, or nil when the
// page has none.
func (pp *PDFPage) FirstAnnot(ctx *Context) (*PDFAnnotation, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_first_annot(ctx.ctx, pp.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PDFAnnotation{p: p}, nil
}

// CreateAnnot adds a fresh annotation of the given subtype to the page.
func (pp *PDFPage) CreateAnnot(ctx *Context, subtype int) (*PDFAnnotation, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_create_annot(ctx.ctx, pp.p, C.int(subtype), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFAnnotation{p: p}, nil
}

// DeleteAnnot unlinks annot from the page. The handle remains valid
// until dropped.
func (pp *PDFPage) DeleteAnnot(ctx *Context, annot *PDFAnnotation) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_delete_annot(ctx.ctx, pp.p, annot.p, &cerr)
	return takeError(cerr)
}

func (pp *PDFPage) Drop(ctx *Context) {
	if pp == nil || pp.p == nil {
		return
	}
	C.mupdf_pdf_drop_page(ctx.ctx, pp.p)
	pp.p = nil
}
