package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// Metadata keys understood by Document.Metadata.
const (
	MetaFormat           = "format"
	MetaEncryption       = "encryption"
	MetaInfoAuthor       = "info:Author"
	MetaInfoTitle        = "info:Title"
	MetaInfoSubject      = "info:Subject"
	MetaInfoKeywords     = "info:Keywords"
	MetaInfoCreator      = "info:Creator"
	MetaInfoProducer     = "info:Producer"
	MetaInfoCreationDate = "info:CreationDate"
	MetaInfoModDate      = "info:ModDate"
)

// Permission selects a document permission to test.
type Permission rune

const (
	PermissionPrint    Permission = 'p'
	PermissionCopy     Permission = 'c'
	PermissionEdit     Permission = 'e'
	PermissionAnnotate Permission = 'n'
)

// Outline is one entry of the document outline tree. Outlines hold no
// native references and never need dropping.
type Outline struct {
	Title  string
	URI    string
	Page   Location
	X, Y   float32
	IsOpen bool
	Down   []Outline
}

// Link is one hyperlink region on a page.
type Link struct {
	Bounds Rect
	URI    string
}

// Document is an open document of any registered format: PDF, XPS,
// EPUB, CBZ, images and the other compiled-in handlers.
type Document struct {
	ctx *Context
	h   *ffi.Document
}

func newDocument(c *Context, h *ffi.Document) *Document {
	d := &Document{ctx: c, h: h}
	runtime.SetFinalizer(d, func(d *Document) { d.Drop() })
	return d
}

// OpenDocument opens the document at path, picking a format handler by
// file content and extension.
func OpenDocument(c *Context, path string) (*Document, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.OpenDocument(fc, path)
	if err != nil {
		return nil, remapError(err)
	}
	return newDocument(c, h), nil
}

// OpenDocumentFromBytes opens a document held in memory. The magic
// string is a file extension or MIME type used to pick the handler,
// such as "pdf" or "application/epub+zip".
func OpenDocumentFromBytes(c *Context, data []byte, magic string) (*Document, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	buf, err := ffi.NewBufferFromBytes(fc, data)
	if err != nil {
		return nil, remapError(err)
	}
	defer buf.Drop(fc)
	h, err := ffi.OpenDocumentFromBytes(fc, buf, magic)
	if err != nil {
		return nil, remapError(err)
	}
	return newDocument(c, h), nil
}

// RecognizeDocument reports whether a handler is registered for the
// magic string.
func RecognizeDocument(c *Context, magic string) (bool, error) {
	fc, err := c.handle()
	if err != nil {
		return false, err
	}
	ok, err := ffi.RecognizeDocument(fc, magic)
	return ok, remapError(err)
}

func (d *Document) live() (*ffi.Context, error) {
	if d == nil || d.h == nil {
		return nil, ErrClosed
	}
	return d.ctx.handle()
}

// NeedsPassword reports whether the document requires authentication
// before its pages can be loaded.
func (d *Document) NeedsPassword() (bool, error) {
	fc, err := d.live()
	if err != nil {
		return false, err
	}
	ok, err := d.h.NeedsPassword(fc)
	return ok, remapError(err)
}

// AuthenticatePassword presents a password and reports whether it was
// accepted.
func (d *Document) AuthenticatePassword(password string) (bool, error) {
	fc, err := d.live()
	if err != nil {
		return false, err
	}
	ok, err := d.h.AuthenticatePassword(fc, password)
	return ok, remapError(err)
}

// HasPermission reports whether the document grants the permission.
func (d *Document) HasPermission(perm Permission) (bool, error) {
	fc, err := d.live()
	if err != nil {
		return false, err
	}
	ok, err := d.h.HasPermission(fc, ffi.Permission(perm))
	return ok, remapError(err)
}

// PageCount returns the number of pages.
func (d *Document) PageCount() (int, error) {
	fc, err := d.live()
	if err != nil {
		return 0, err
	}
	n, err := d.h.PageCount(fc)
	return n, remapError(err)
}

// Metadata looks up an info key such as MetaInfoTitle. A missing key
// reports an empty value.
func (d *Document) Metadata(key string) (string, error) {
	fc, err := d.live()
	if err != nil {
		return "", err
	}
	v, err := d.h.Metadata(fc, key)
	return v, remapError(err)
}

// IsReflowable reports whether the document re-layouts to a given page
// size, as EPUB and HTML do.
func (d *Document) IsReflowable() (bool, error) {
	fc, err := d.live()
	if err != nil {
		return false, err
	}
	ok, err := d.h.IsReflowable(fc)
	return ok, remapError(err)
}

// Layout reflows a reflowable document to the given page size in
// points and em size. Width and height must be positive.
func (d *Document) Layout(width, height, em float32) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.Layout(fc, width, height, em))
}

// LoadPage loads the zero-based page pageNo.
func (d *Document) LoadPage(pageNo int) (*Page, error) {
	fc, err := d.live()
	if err != nil {
		return nil, err
	}
	h, err := d.h.LoadPage(fc, pageNo)
	if err != nil {
		return nil, remapError(err)
	}
	return newPage(d.ctx, h), nil
}

// ConvertToPDF renders the page range [start, end] into a fresh PDF
// document. rotate must be a multiple of 90 degrees. A non-nil cookie
// lets the caller abort between pages.
func (d *Document) ConvertToPDF(start, end, rotate int, k *Cookie) (*PDFDocument, error) {
	fc, err := d.live()
	if err != nil {
		return nil, err
	}
	var kh *ffi.Cookie
	if k != nil {
		kh = k.h
	}
	h, err := d.h.ConvertToPDF(fc, start, end, rotate, kh)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFDocument(d.ctx, h), nil
}

// ResolveLink maps an internal link URI to its target location and
// position on the page. An unresolvable URI reports chapter and page -1.
func (d *Document) ResolveLink(uri string) (Location, Point, error) {
	fc, err := d.live()
	if err != nil {
		return Location{}, Point{}, err
	}
	loc, pt, err := d.h.ResolveLink(fc, uri)
	if err != nil {
		return Location{}, Point{}, remapError(err)
	}
	return locationFromFFI(loc), pointFromFFI(pt), nil
}

// ResolveLinkDest resolves a link URI to a full destination, including
// the view fitting style.
func (d *Document) ResolveLinkDest(uri string) (LinkDest, error) {
	fc, err := d.live()
	if err != nil {
		return LinkDest{}, err
	}
	dest, err := d.h.ResolveLinkDest(fc, uri)
	if err != nil {
		return LinkDest{}, remapError(err)
	}
	return LinkDest{
		Loc:  locationFromFFI(dest.Loc),
		Kind: DestKind(dest.Kind),
		X:    dest.X, Y: dest.Y, W: dest.W, H: dest.H, Zoom: dest.Zoom,
	}, nil
}

// OutputIntent reports the document's rendering intent colorspace as a
// Borrowed wrapper, or nil when none is declared.
func (d *Document) OutputIntent() (*Colorspace, error) {
	fc, err := d.live()
	if err != nil {
		return nil, err
	}
	cs, err := d.h.OutputIntent(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return borrowedColorspace(d.ctx, cs), nil
}

// Outlines copies the document outline tree, or nil when the document
// has none.
func (d *Document) Outlines() ([]Outline, error) {
	fc, err := d.live()
	if err != nil {
		return nil, err
	}
	nodes, err := d.h.LoadOutline(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return outlinesFromFFI(nodes), nil
}

func outlinesFromFFI(nodes []ffi.Outline) []Outline {
	if nodes == nil {
		return nil
	}
	out := make([]Outline, len(nodes))
	for i, n := range nodes {
		out[i] = Outline{
			Title:  n.Title,
			URI:    n.URI,
			Page:   locationFromFFI(n.Page),
			X:      n.X,
			Y:      n.Y,
			IsOpen: n.IsOpen,
			Down:   outlinesFromFFI(n.Down),
		}
	}
	return out
}

// Drop releases the document. Pages loaded from it must be dropped
// first.
func (d *Document) Drop() {
	if d == nil || d.h == nil {
		return
	}
	runtime.SetFinalizer(d, nil)
	h := d.h
	d.h = nil
	d.ctx.dropNative("document", func(fc *ffi.Context) { h.Drop(fc) })
}
