//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// PDFDocument wraps a native pdf_document, giving access to the PDF
// object layer underneath the generic document interface.
type PDFDocument struct {
	p *C.pdf_document
}

func NewPDFDocument(ctx *Context) (*PDFDocument, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_create_document(ctx.ctx, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFDocument{p: p}, nil
}

func OpenPDFDocument(ctx *Context, filename string) (*PDFDocument, error) {
	cf := C.CString(filename)
	defer C.free(unsafe.Pointer(cf))
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_open_document(ctx.ctx, cf, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFDocument{p: p}, nil
}

func OpenPDFDocumentFromBytes(ctx *Context, buf *Buffer) (*PDFDocument, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_open_document_from_bytes(ctx.ctx, buf.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFDocument{p: p}, nil
}

// PDFDocumentFromDocument casts a generic document down to its PDF
// form. Non-PDF documents report nil with no error. The result holds
// its own reference.
func PDFDocumentFromDocument(ctx *Context, doc *Document) (*PDFDocument, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_document_from_fz_document(ctx.ctx, doc.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PDFDocument{p: p}, nil
}

// Super returns the generic document view of the PDF, with its own
// reference.
func (pd *PDFDocument) Super(ctx *Context) (*Document, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_document_super(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Document{p: p}, nil
}

// Version reports the PDF version as major times ten plus minor, so 17
// for PDF 1.7.
func (pd *PDFDocument) Version(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	v := C.mupdf_pdf_document_version(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(v), nil
}

func (pd *PDFDocument) HasUnsavedChanges(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_has_unsaved_changes(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (pd *PDFDocument) CanBeSavedIncrementally(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_can_be_saved_incrementally(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func cWriteOptions(o PDFWriteOptions) C.pdf_write_options {
	pwo := C.pdf_default_write_options
	pwo.do_incremental = cint(o.Incremental)
	pwo.do_pretty = cint(o.Pretty)
	pwo.do_ascii = cint(o.ASCII)
	pwo.do_compress = cint(o.Compress)
	pwo.do_compress_images = cint(o.CompressImages)
	pwo.do_compress_fonts = cint(o.CompressFonts)
	pwo.do_decompress = cint(o.Decompress)
	pwo.do_garbage = C.int(o.Garbage)
	pwo.do_linear = cint(o.Linearize)
	pwo.do_clean = cint(o.Clean)
	pwo.do_sanitize = cint(o.Sanitize)
	pwo.do_appearance = cint(o.Appearance)
	pwo.do_encrypt = C.int(o.Encrypt)
	pwo.dont_regenerate_id = cint(o.DontRegenerateID)
	pwo.permissions = C.int(o.Permissions)
	copyPassword(&pwo.opwd_utf8, o.OwnerPassword)
	copyPassword(&pwo.upwd_utf8, o.UserPassword)
	return pwo
}

// copyPassword fills a fixed native password field, truncating to the
// field size with room for the terminator.
func copyPassword(dst *[128]C.char, s string) {
	n := len(s)
	if n > 127 {
		n = 127
	}
	for i := 0; i < n; i++ {
		dst[i] = C.char(s[i])
	}
	dst[n] = 0
}

// Save writes the document to filename with the given options.
func (pd *PDFDocument) Save(ctx *Context, filename string, opts PDFWriteOptions) error {
	cf := C.CString(filename)
	defer C.free(unsafe.Pointer(cf))
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_save_document(ctx.ctx, pd.p, cf, cWriteOptions(opts), &cerr)
	return takeError(cerr)
}

// WriteToBuffer serializes the document into a fresh buffer.
func (pd *PDFDocument) WriteToBuffer(ctx *Context, opts PDFWriteOptions) (*Buffer, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_write_document(ctx.ctx, pd.p, cWriteOptions(opts), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

func (pd *PDFDocument) EnableJS(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_enable_js(ctx.ctx, pd.p, &cerr)
	return takeError(cerr)
}

func (pd *PDFDocument) DisableJS(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_disable_js(ctx.ctx, pd.p, &cerr)
	return takeError(cerr)
}

func (pd *PDFDocument) JSSupported(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_js_supported(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

// CalculateForm re-evaluates form field calculations. Documents
// without a pending recalculation are left untouched.
func (pd *PDFDocument) CalculateForm(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_calculate_form(ctx.ctx, pd.p, &cerr)
	return takeError(cerr)
}

func (pd *PDFDocument) Trailer(ctx *Context) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_trailer(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (pd *PDFDocument) Catalog(ctx *Context) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_catalog(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// CountObjects reports the xref size, one more than the highest object
// number.
func (pd *PDFDocument) CountObjects(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_pdf_count_objects(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (pd *PDFDocument) CountPages(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_pdf_count_pages(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

// AddObject writes obj into the xref and returns an indirect reference
// to it.
func (pd *PDFDocument) AddObject(ctx *Context, obj *PDFObject) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_add_object(ctx.ctx, pd.p, obj.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// CreateObject reserves a fresh object slot and returns an indirect
// reference to it.
func (pd *PDFDocument) CreateObject(ctx *Context) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_create_object(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (pd *PDFDocument) DeleteObject(ctx *Context, num int) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_delete_object(ctx.ctx, pd.p, C.int(num), &cerr)
	return takeError(cerr)
}

// AddImage embeds an image resource and returns an indirect reference
// to it.
func (pd *PDFDocument) AddImage(ctx *Context, img *Image) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_add_image(ctx.ctx, pd.p, img.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// AddFont embeds font as a CID font and returns an indirect reference
// to it.
func (pd *PDFDocument) AddFont(ctx *Context, font *Font) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_add_font(ctx.ctx, pd.p, font.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// AddCJKFont embeds font as a CJK font using a predefined CMap for the
// given ordering.
func (pd *PDFDocument) AddCJKFont(ctx *Context, font *Font, ordering, wmode int, serif bool) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_add_cjk_font(ctx.ctx, pd.p, font.p, C.int(ordering), C.int(wmode), C.bool(serif), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// AddSimpleFont embeds font with a simple single-byte encoding.
func (pd *PDFDocument) AddSimpleFont(ctx *Context, font *Font, encoding int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_add_simple_font(ctx.ctx, pd.p, font.p, C.int(encoding), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// NewGraftMap creates a map that deduplicates objects grafted into
// this document from other documents.
func (pd *PDFDocument) NewGraftMap(ctx *Context) (*PDFGraftMap, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_graft_map(ctx.ctx, pd.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFGraftMap{p: p}, nil
}

// GraftObject deep copies an object from another document into this
// one without deduplication.
func (pd *PDFDocument) GraftObject(ctx *Context, obj *PDFObject) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_graft_object(ctx.ctx, pd.p, obj.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// NewPage creates and inserts an empty page of the given size.
// Negative page numbers count from the end.
func (pd *PDFDocument) NewPage(ctx *Context, pageNo int, width, height float32) (*PDFPage, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_page(ctx.ctx, pd.p, C.int(pageNo), C.float(width), C.float(height), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFPage{p: p}, nil
}

// LookupPageObj returns the page dictionary of the numbered page.
func (pd *PDFDocument) LookupPageObj(ctx *Context, pageNo int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_lookup_page_obj(ctx.ctx, pd.p, C.int(pageNo), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// InsertPage links a page dictionary into the page tree at pageNo,
// which may equal the page count to append.
func (pd *PDFDocument) InsertPage(ctx *Context, pageNo int, page *PDFObject) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_insert_page(ctx.ctx, pd.p, C.int(pageNo), page.p, &cerr)
	return takeError(cerr)
}

func (pd *PDFDocument) DeletePage(ctx *Context, pageNo int) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_delete_page(ctx.ctx, pd.p, C.int(pageNo), &cerr)
	return takeError(cerr)
}

func (pd *PDFDocument) Drop(ctx *Context) {
	if pd == nil || pd.p == nil {
		return
	}
	C.pdf_drop_document(ctx.ctx, pd.p)
	pd.p = nil
}

// PDFGraftMap wraps a native pdf_graft_map bound to its destination
// document.
type PDFGraftMap struct {
	p *C.pdf_graft_map
}

// GraftMappedObject deep copies an object into the map's destination
// document, reusing copies made through this map before.
func (gm *PDFGraftMap) GraftMappedObject(ctx *Context, obj *PDFObject) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_graft_mapped_object(ctx.ctx, gm.p, obj.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (gm *PDFGraftMap) Drop(ctx *Context) {
	if gm == nil || gm.p == nil {
		return
	}
	C.pdf_drop_graft_map(ctx.ctx, gm.p)
	gm.p = nil
}
