package mupdf

import (
	"io"
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// PDFWriteOptions mirror the native document save options field for
// field. The zero value writes a plain full save.
type PDFWriteOptions struct {
	Incremental      bool
	Pretty           bool
	ASCII            bool
	Compress         bool
	CompressImages   bool
	CompressFonts    bool
	Decompress       bool
	Garbage          int
	Linearize        bool
	Clean            bool
	Sanitize         bool
	Appearance       bool
	Encrypt          int
	DontRegenerateID bool
	Permissions      int
	OwnerPassword    string
	UserPassword     string
}

func (o PDFWriteOptions) ffi() ffi.PDFWriteOptions {
	return ffi.PDFWriteOptions(o)
}

// PDFDocument is the PDF-specific view of a document: object graph
// access, page tree editing, saving.
type PDFDocument struct {
	ctx *Context
	h   *ffi.PDFDocument
}

func newPDFDocument(c *Context, h *ffi.PDFDocument) *PDFDocument {
	pd := &PDFDocument{ctx: c, h: h}
	runtime.SetFinalizer(pd, func(pd *PDFDocument) { pd.Drop() })
	return pd
}

// NewPDFDocument creates a fresh, empty PDF document.
func NewPDFDocument(c *Context) (*PDFDocument, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewPDFDocument(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFDocument(c, h), nil
}

// OpenPDFDocument opens the PDF at path.
func OpenPDFDocument(c *Context, path string) (*PDFDocument, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.OpenPDFDocument(fc, path)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFDocument(c, h), nil
}

// OpenPDFDocumentFromBytes opens a PDF held in memory.
func OpenPDFDocumentFromBytes(c *Context, data []byte) (*PDFDocument, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	buf, err := ffi.NewBufferFromBytes(fc, data)
	if err != nil {
		return nil, remapError(err)
	}
	defer buf.Drop(fc)
	h, err := ffi.OpenPDFDocumentFromBytes(fc, buf)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFDocument(c, h), nil
}

// PDFDocumentFromDocument returns the PDF view of doc, or an error
// when doc is not a PDF.
func PDFDocumentFromDocument(c *Context, doc *Document) (*PDFDocument, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.PDFDocumentFromDocument(fc, doc.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFDocument(c, h), nil
}

func (pd *PDFDocument) live() (*ffi.Context, error) {
	if pd == nil || pd.h == nil {
		return nil, ErrClosed
	}
	return pd.ctx.handle()
}

// Document returns the generic view of the PDF, with its own owned
// reference.
func (pd *PDFDocument) Document() (*Document, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	h, err := pd.h.Super(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newDocument(pd.ctx, h), nil
}

// PDFVersion reports the format version as major*10+minor, such as 17
// for PDF 1.7.
func (pd *PDFDocument) PDFVersion() (int, error) {
	fc, err := pd.live()
	if err != nil {
		return 0, err
	}
	v, err := pd.h.Version(fc)
	return v, remapError(err)
}

// HasUnsavedChanges reports whether the document was modified since it
// was opened or last saved.
func (pd *PDFDocument) HasUnsavedChanges() (bool, error) {
	fc, err := pd.live()
	if err != nil {
		return false, err
	}
	ok, err := pd.h.HasUnsavedChanges(fc)
	return ok, remapError(err)
}

// CanBeSavedIncrementally reports whether an incremental save is
// possible.
func (pd *PDFDocument) CanBeSavedIncrementally() (bool, error) {
	fc, err := pd.live()
	if err != nil {
		return false, err
	}
	ok, err := pd.h.CanBeSavedIncrementally(fc)
	return ok, remapError(err)
}

// Save writes the document to path with the given options.
func (pd *PDFDocument) Save(path string, opts PDFWriteOptions) error {
	fc, err := pd.live()
	if err != nil {
		return err
	}
	return remapError(pd.h.Save(fc, path, opts.ffi()))
}

// Bytes serializes the document with the given options and returns the
// PDF file bytes.
func (pd *PDFDocument) Bytes(opts PDFWriteOptions) ([]byte, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	buf, err := pd.h.WriteToBuffer(fc, opts.ffi())
	if err != nil {
		return nil, remapError(err)
	}
	defer buf.Drop(fc)
	data, err := buf.Bytes(fc)
	return data, remapError(err)
}

// WriteTo serializes the document with the given options and writes the
// PDF file bytes to w, returning the number of bytes written.
func (pd *PDFDocument) WriteTo(w io.Writer, opts PDFWriteOptions) (int64, error) {
	data, err := pd.Bytes(opts)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// EnableJS turns on the document's JavaScript interpreter.
func (pd *PDFDocument) EnableJS() error {
	fc, err := pd.live()
	if err != nil {
		return err
	}
	return remapError(pd.h.EnableJS(fc))
}

// DisableJS turns the JavaScript interpreter off.
func (pd *PDFDocument) DisableJS() error {
	fc, err := pd.live()
	if err != nil {
		return err
	}
	return remapError(pd.h.DisableJS(fc))
}

// IsJSSupported reports whether a JavaScript engine is compiled in.
func (pd *PDFDocument) IsJSSupported() (bool, error) {
	fc, err := pd.live()
	if err != nil {
		return false, err
	}
	ok, err := pd.h.JSSupported(fc)
	return ok, remapError(err)
}

// CalculateForm re-evaluates the document's form calculation order.
func (pd *PDFDocument) CalculateForm() error {
	fc, err := pd.live()
	if err != nil {
		return err
	}
	return remapError(pd.h.CalculateForm(fc))
}

// Trailer returns the document trailer dictionary.
func (pd *PDFDocument) Trailer() (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	h, err := pd.h.Trailer(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// Catalog returns the document catalog (root) dictionary.
func (pd *PDFDocument) Catalog() (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	h, err := pd.h.Catalog(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// CountObjects reports the size of the cross-reference table.
func (pd *PDFDocument) CountObjects() (int, error) {
	fc, err := pd.live()
	if err != nil {
		return 0, err
	}
	n, err := pd.h.CountObjects(fc)
	return n, remapError(err)
}

// CountPages reports the number of pages.
func (pd *PDFDocument) CountPages() (int, error) {
	fc, err := pd.live()
	if err != nil {
		return 0, err
	}
	n, err := pd.h.CountPages(fc)
	return n, remapError(err)
}

// AddObject adds obj to the cross-reference table and returns an
// indirect reference to it.
func (pd *PDFDocument) AddObject(obj *PDFObject) (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.h == nil {
		return nil, ErrClosed
	}
	h, err := pd.h.AddObject(fc, obj.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// CreateObject reserves a fresh object slot and returns an indirect
// reference to it.
func (pd *PDFDocument) CreateObject() (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	h, err := pd.h.CreateObject(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// DeleteObject removes object num from the cross-reference table.
func (pd *PDFDocument) DeleteObject(num int) error {
	fc, err := pd.live()
	if err != nil {
		return err
	}
	return remapError(pd.h.DeleteObject(fc, num))
}

// AddImage embeds img as a document resource and returns its indirect
// reference.
func (pd *PDFDocument) AddImage(img *Image) (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	if img == nil || img.h == nil {
		return nil, ErrClosed
	}
	h, err := pd.h.AddImage(fc, img.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// AddFont embeds font as a CID font resource.
func (pd *PDFDocument) AddFont(font *Font) (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	if font == nil || font.h == nil {
		return nil, ErrClosed
	}
	h, err := pd.h.AddFont(fc, font.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// AddCJKFont embeds font as a CJK font resource with the given
// ordering (registry) and writing mode.
func (pd *PDFDocument) AddCJKFont(font *Font, ordering, wmode int, serif bool) (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	if font == nil || font.h == nil {
		return nil, ErrClosed
	}
	h, err := pd.h.AddCJKFont(fc, font.h, ordering, wmode, serif)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// AddSimpleFont embeds font as a simple (single-byte) font resource
// with the given encoding.
func (pd *PDFDocument) AddSimpleFont(font *Font, encoding int) (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	if font == nil || font.h == nil {
		return nil, ErrClosed
	}
	h, err := pd.h.AddSimpleFont(fc, font.h, encoding)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// NewGraftMap creates a graft map for copying object subtrees into
// this document while deduplicating shared objects.
func (pd *PDFDocument) NewGraftMap() (*PDFGraftMap, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	h, err := pd.h.NewGraftMap(fc)
	if err != nil {
		return nil, remapError(err)
	}
	gm := &PDFGraftMap{ctx: pd.ctx, h: h}
	runtime.SetFinalizer(gm, func(gm *PDFGraftMap) { gm.Drop() })
	return gm, nil
}

// GraftObject copies obj (from another document) into this document
// without deduplication. Use a graft map when copying several objects
// that share descendants.
func (pd *PDFDocument) GraftObject(obj *PDFObject) (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.h == nil {
		return nil, ErrClosed
	}
	h, err := pd.h.GraftObject(fc, obj.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// NewPage inserts a fresh empty page of the given size in points at
// index pageNo; -1 or the page count appends.
func (pd *PDFDocument) NewPage(pageNo int, width, height float32) (*PDFPage, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	h, err := pd.h.NewPage(fc, pageNo, width, height)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFPage(pd.ctx, h), nil
}

// FindPage returns the page object at index pageNo.
func (pd *PDFDocument) FindPage(pageNo int) (*PDFObject, error) {
	fc, err := pd.live()
	if err != nil {
		return nil, err
	}
	h, err := pd.h.LookupPageObj(fc, pageNo)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pd.ctx, h), nil
}

// InsertPage inserts the page object at index pageNo. Valid indexes
// run from 0 through the current page count.
func (pd *PDFDocument) InsertPage(pageNo int, page *PDFObject) error {
	fc, err := pd.live()
	if err != nil {
		return err
	}
	if page == nil || page.h == nil {
		return ErrClosed
	}
	return remapError(pd.h.InsertPage(fc, pageNo, page.h))
}

// DeletePage removes the page at index pageNo. Valid indexes run from
// 0 through the current page count minus one.
func (pd *PDFDocument) DeletePage(pageNo int) error {
	fc, err := pd.live()
	if err != nil {
		return err
	}
	return remapError(pd.h.DeletePage(fc, pageNo))
}

// Drop releases the PDF document.
func (pd *PDFDocument) Drop() {
	if pd == nil || pd.h == nil {
		return
	}
	runtime.SetFinalizer(pd, nil)
	h := pd.h
	pd.h = nil
	pd.ctx.dropNative("pdf document", func(fc *ffi.Context) { h.Drop(fc) })
}

// PDFGraftMap tracks objects already copied between two documents so
// shared subtrees are grafted once.
type PDFGraftMap struct {
	ctx *Context
	h   *ffi.PDFGraftMap
}

// GraftObject copies obj into the map's destination document, reusing
// previously grafted objects.
func (gm *PDFGraftMap) GraftObject(obj *PDFObject) (*PDFObject, error) {
	if gm == nil || gm.h == nil {
		return nil, ErrClosed
	}
	fc, err := gm.ctx.handle()
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.h == nil {
		return nil, ErrClosed
	}
	h, err := gm.h.GraftMappedObject(fc, obj.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(gm.ctx, h), nil
}

// Drop releases the graft map.
func (gm *PDFGraftMap) Drop() {
	if gm == nil || gm.h == nil {
		return
	}
	runtime.SetFinalizer(gm, nil)
	h := gm.h
	gm.h = nil
	gm.ctx.dropNative("graft map", func(fc *ffi.Context) { h.Drop(fc) })
}
