package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// PDFPage gives access to the PDF-specific side of a page: its
// dictionary, the Rotate and CropBox entries, and its annotations.
type PDFPage struct {
	ctx *Context
	h   *ffi.PDFPage
}

func newPDFPage(c *Context, h *ffi.PDFPage) *PDFPage {
	pp := &PDFPage{ctx: c, h: h}
	runtime.SetFinalizer(pp, func(pp *PDFPage) { pp.Drop() })
	return pp
}

func (pp *PDFPage) live() (*ffi.Context, error) {
	if pp == nil || pp.h == nil {
		return nil, ErrClosed
	}
	return pp.ctx.handle()
}

// Object returns the page dictionary.
func (pp *PDFPage) Object() (*PDFObject, error) {
	fc, err := pp.live()
	if err != nil {
		return nil, err
	}
	h, err := pp.h.Obj(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(pp.ctx, h), nil
}

// Rotation reads the page's inherited Rotate entry in degrees.
func (pp *PDFPage) Rotation() (int, error) {
	fc, err := pp.live()
	if err != nil {
		return 0, err
	}
	r, err := pp.h.Rotation(fc)
	return r, remapError(err)
}

// SetRotation writes the Rotate entry. Rotations that are not a
// multiple of 90 degrees are rejected.
func (pp *PDFPage) SetRotation(rotation int) error {
	fc, err := pp.live()
	if err != nil {
		return err
	}
	return remapError(pp.h.SetRotation(fc, rotation))
}

// CropBox reads the effective crop box, with the origin at the page's
// top left corner.
func (pp *PDFPage) CropBox() (Rect, error) {
	fc, err := pp.live()
	if err != nil {
		return Rect{}, err
	}
	r, err := pp.h.CropBox(fc)
	return rectFromFFI(r), remapError(err)
}

// SetCropBox writes the CropBox entry, with the origin at the page's
// top left corner.
func (pp *PDFPage) SetCropBox(rect Rect) error {
	fc, err := pp.live()
	if err != nil {
		return err
	}
	return remapError(pp.h.SetCropBox(fc, rect.ffi()))
}

// CropBoxPosition reports the crop box offset within the media box.
func (pp *PDFPage) CropBoxPosition() (Point, error) {
	fc, err := pp.live()
	if err != nil {
		return Point{}, err
	}
	return pointFromFFI(pp.h.CropBoxPosition(fc)), nil
}

// MediaBox reads the page's media box.
func (pp *PDFPage) MediaBox() (Rect, error) {
	fc, err := pp.live()
	if err != nil {
		return Rect{}, err
	}
	return rectFromFFI(pp.h.MediaBox(fc)), nil
}

// Transform reports the matrix mapping page space to the coordinate
// space used for rendering.
func (pp *PDFPage) Transform() (Matrix, error) {
	fc, err := pp.live()
	if err != nil {
		return Matrix{}, err
	}
	m, err := pp.h.Transform(fc)
	return matrixFromFFI(m), remapError(err)
}

// Update regenerates dirty annotation appearances. It reports whether
// anything changed.
func (pp *PDFPage) Update() (bool, error) {
	fc, err := pp.live()
	if err != nil {
		return false, err
	}
	ok, err := pp.h.Update(fc)
	return ok, remapError(err)
}

// Redact applies the page's redaction annotations, removing the page
// content underneath them. It reports whether anything was redacted.
func (pp *PDFPage) Redact() (bool, error) {
	fc, err := pp.live()
	if err != nil {
		return false, err
	}
	ok, err := pp.h.Redact(fc)
	return ok, remapError(err)
}

// FirstAnnot returns the page's first annotation, or nil when the page
// has none. Walk the rest with PDFAnnotation.Next.
func (pp *PDFPage) FirstAnnot() (*PDFAnnotation, error) {
	fc, err := pp.live()
	if err != nil {
		return nil, err
	}
	h, err := pp.h.FirstAnnot(fc)
	if err != nil {
		return nil, remapError(err)
	}
	if h == nil {
		return nil, nil
	}
	return newPDFAnnotation(pp.ctx, h), nil
}

// Annotations collects every annotation on the page.
func (pp *PDFPage) Annotations() ([]*PDFAnnotation, error) {
	var out []*PDFAnnotation
	a, err := pp.FirstAnnot()
	if err != nil {
		return nil, err
	}
	for a != nil {
		out = append(out, a)
		a, err = a.Next()
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// CreateAnnotation adds a fresh annotation of the given type to the
// page.
func (pp *PDFPage) CreateAnnotation(kind AnnotationType) (*PDFAnnotation, error) {
	fc, err := pp.live()
	if err != nil {
		return nil, err
	}
	h, err := pp.h.CreateAnnot(fc, int(kind))
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFAnnotation(pp.ctx, h), nil
}

// DeleteAnnotation unlinks annot from the page. The wrapper stays valid
// until dropped.
func (pp *PDFPage) DeleteAnnotation(annot *PDFAnnotation) error {
	fc, err := pp.live()
	if err != nil {
		return err
	}
	if annot == nil || annot.h == nil {
		return ErrClosed
	}
	return remapError(pp.h.DeleteAnnot(fc, annot.h))
}

// Drop releases the page.
func (pp *PDFPage) Drop() {
	if pp == nil || pp.h == nil {
		return
	}
	runtime.SetFinalizer(pp, nil)
	h := pp.h
	pp.h = nil
	pp.ctx.dropNative("pdf page", func(fc *ffi.Context) { h.Drop(fc) })
}
