//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"

// is_open is a bitfield, which cgo cannot address directly.
static int mupdfgo_outline_is_open(fz_outline *o) { return o->is_open; }
*/
import "C"

import (
	"errors"
	"unsafe"
)

// errNoDocument is returned when a handler declines a document without
// raising a native error, such as an unrecognized magic string.
var errNoDocument = errors.New("mupdf/internal/ffi: no document handler accepted the input")

// Document wraps a native fz_document of any registered format.
type Document struct {
	p *C.fz_document
}

func OpenDocument(ctx *Context, filename string) (*Document, error) {
	cf := C.CString(filename)
	defer C.free(unsafe.Pointer(cf))
	var cerr *C.mupdf_error_t
	p := C.mupdf_open_document(ctx.ctx, cf, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errNoDocument
	}
	return &Document{p: p}, nil
}

// OpenDocumentFromBytes opens a document from an in-memory buffer. The
// magic string is a file extension or MIME type used to pick a handler.
func OpenDocumentFromBytes(ctx *Context, buf *Buffer, magic string) (*Document, error) {
	cm := C.CString(magic)
	defer C.free(unsafe.Pointer(cm))
	var cerr *C.mupdf_error_t
	p := C.mupdf_open_document_from_bytes(ctx.ctx, buf.p, cm, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errNoDocument
	}
	return &Document{p: p}, nil
}

// RecognizeDocument reports whether a handler is registered for the
// magic string.
func RecognizeDocument(ctx *Context, magic string) (bool, error) {
	cm := C.CString(magic)
	defer C.free(unsafe.Pointer(cm))
	var cerr *C.mupdf_error_t
	ok := C.mupdf_recognize_document(ctx.ctx, cm, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (d *Document) NeedsPassword(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_needs_password(ctx.ctx, d.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (d *Document) AuthenticatePassword(ctx *Context, password string) (bool, error) {
	cp := C.CString(password)
	defer C.free(unsafe.Pointer(cp))
	var cerr *C.mupdf_error_t
	ok := C.mupdf_authenticate_password(ctx.ctx, d.p, cp, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (d *Document) HasPermission(ctx *Context, perm Permission) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_has_permission(ctx.ctx, d.p, C.int(perm), &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (d *Document) PageCount(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_document_page_count(ctx.ctx, d.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Metadata looks up an info key such as "format" or "info:Title". A
// missing key reports an empty value.
func (d *Document) Metadata(ctx *Context, key string) (string, error) {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	var cerr *C.mupdf_error_t
	cs := C.mupdf_lookup_metadata(ctx.ctx, d.p, ck, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	if cs == nil {
		return "", nil
	}
	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs), nil
}

func (d *Document) IsReflowable(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_is_document_reflowable(ctx.ctx, d.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

// Layout reflows a reflowable document to the given page size and em
// size. Fixed-layout documents are left untouched.
func (d *Document) Layout(ctx *Context, width, height, em float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_layout_document(ctx.ctx, d.p, C.float(width), C.float(height), C.float(em), &cerr)
	return takeError(cerr)
}

func (d *Document) LoadPage(ctx *Context, pageNo int) (*Page, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_load_page(ctx.ctx, d.p, C.int(pageNo), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Page{p: p}, nil
}

// ConvertToPDF renders the page range [start, end] into a fresh PDF
// document. Pages are rotated by the given multiple of 90 degrees. A
// non-nil cookie lets the caller abort between pages.
func (d *Document) ConvertToPDF(ctx *Context, start, end, rotate int, cookie *Cookie) (*PDFDocument, error) {
	var ck *C.fz_cookie
	if cookie != nil {
		ck = cookie.p
	}
	var cerr *C.mupdf_error_t
	p := C.mupdf_convert_to_pdf(ctx.ctx, d.p, C.int(start), C.int(end), C.int(rotate), ck, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFDocument{p: p}, nil
}

// ResolveLink maps an internal link URI to its target location and
// position on the page. An unresolvable URI reports chapter and page -1.
func (d *Document) ResolveLink(ctx *Context, uri string) (Location, Point, error) {
	cu := C.CString(uri)
	defer C.free(unsafe.Pointer(cu))
	var x, y C.float
	var cerr *C.mupdf_error_t
	loc := C.mupdf_resolve_link(ctx.ctx, d.p, cu, &x, &y, &cerr)
	if err := takeError(cerr); err != nil {
		return Location{}, Point{}, err
	}
	return goLocation(loc), Point{X: float32(x), Y: float32(y)}, nil
}

// ResolveLinkDest resolves a link URI to a full destination, including
// the fit style and target rectangle.
func (d *Document) ResolveLinkDest(ctx *Context, uri string) (LinkDest, error) {
	cu := C.CString(uri)
	defer C.free(unsafe.Pointer(cu))
	var cerr *C.mupdf_error_t
	dest := C.mupdf_resolve_link_dest(ctx.ctx, d.p, cu, &cerr)
	if err := takeError(cerr); err != nil {
		return LinkDest{}, err
	}
	return LinkDest{
		Loc:  goLocation(dest.loc),
		Kind: DestKind(dest._type),
		X:    float32(dest.x),
		Y:    float32(dest.y),
		W:    float32(dest.w),
		H:    float32(dest.h),
		Zoom: float32(dest.zoom),
	}, nil
}

// OutputIntent reports the document's rendering intent colorspace, or
// nil when none is declared. The colorspace is borrowed from the
// document and must not be dropped.
func (d *Document) OutputIntent(ctx *Context) (*Colorspace, error) {
	var cerr *C.mupdf_error_t
	cs := C.mupdf_document_output_intent(ctx.ctx, d.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, nil
	}
	return &Colorspace{p: cs, borrowed: true}, nil
}

// LoadOutline copies the document outline tree, or nil when the
// document has none.
func (d *Document) LoadOutline(ctx *Context) ([]Outline, error) {
	var cerr *C.mupdf_error_t
	root := C.mupdf_load_outline(ctx.ctx, d.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	out := copyOutline(root)
	C.fz_drop_outline(ctx.ctx, root)
	return out, nil
}

func copyOutline(node *C.fz_outline) []Outline {
	var out []Outline
	for ; node != nil; node = node.next {
		o := Outline{
			Title:  C.GoString(node.title),
			URI:    C.GoString(node.uri),
			Page:   goLocation(node.page),
			X:      float32(node.x),
			Y:      float32(node.y),
			IsOpen: C.mupdfgo_outline_is_open(node) != 0,
		}
		if node.down != nil {
			o.Down = copyOutline(node.down)
		}
		out = append(out, o)
	}
	return out
}

func (d *Document) Drop(ctx *Context) {
	if d == nil || d.p == nil {
		return
	}
	C.fz_drop_document(ctx.ctx, d.p)
	d.p = nil
}
