package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// AnnotationType identifies an annotation subtype, in the native
// numbering.
type AnnotationType int

const (
	AnnotText AnnotationType = iota
	AnnotLink
	AnnotFreeText
	AnnotLine
	AnnotSquare
	AnnotCircle
	AnnotPolygon
	AnnotPolyLine
	AnnotHighlight
	AnnotUnderline
	AnnotSquiggly
	AnnotStrikeOut
	AnnotRedact
	AnnotStamp
	AnnotCaret
	AnnotInk
	AnnotPopup
	AnnotFileAttachment
	AnnotSound
	AnnotMovie
	AnnotRichMedia
	AnnotWidget
	AnnotScreen
	AnnotPrinterMark
	AnnotTrapNet
	AnnotWatermark
	Annot3D
	AnnotProjection

	AnnotUnknown AnnotationType = -1
)

// Annotation flag bits, as stored in the /F entry.
const (
	AnnotFlagInvisible      = 1 << 0
	AnnotFlagHidden         = 1 << 1
	AnnotFlagPrint          = 1 << 2
	AnnotFlagNoZoom         = 1 << 3
	AnnotFlagNoRotate       = 1 << 4
	AnnotFlagNoView         = 1 << 5
	AnnotFlagReadOnly       = 1 << 6
	AnnotFlagLocked         = 1 << 7
	AnnotFlagToggleNoView   = 1 << 8
	AnnotFlagLockedContents = 1 << 9
)

// PDFAnnotation is one annotation on a PDFPage. Setters mark the
// annotation dirty; call PDFPage.Update (or save the document) to
// regenerate its appearance stream.
type PDFAnnotation struct {
	ctx *Context
	h   *ffi.PDFAnnotation
}

func newPDFAnnotation(c *Context, h *ffi.PDFAnnotation) *PDFAnnotation {
	a := &PDFAnnotation{ctx: c, h: h}
	runtime.SetFinalizer(a, func(a *PDFAnnotation) { a.Drop() })
	return a
}

func (a *PDFAnnotation) live() (*ffi.Context, error) {
	if a == nil || a.h == nil {
		return nil, ErrClosed
	}
	return a.ctx.handle()
}

// Next returns the following annotation on the page, or nil at the end
// of the list.
func (a *PDFAnnotation) Next() (*PDFAnnotation, error) {
	fc, err := a.live()
	if err != nil {
		return nil, err
	}
	h, err := a.h.Next(fc)
	if err != nil {
		return nil, remapError(err)
	}
	if h == nil {
		return nil, nil
	}
	return newPDFAnnotation(a.ctx, h), nil
}

// Type reports the annotation subtype.
func (a *PDFAnnotation) Type() (AnnotationType, error) {
	fc, err := a.live()
	if err != nil {
		return AnnotUnknown, err
	}
	t, err := a.h.Type(fc)
	return AnnotationType(t), remapError(err)
}

// Author reads the /T entry.
func (a *PDFAnnotation) Author() (string, error) {
	fc, err := a.live()
	if err != nil {
		return "", err
	}
	s, err := a.h.Author(fc)
	return s, remapError(err)
}

// SetAuthor writes the /T entry.
func (a *PDFAnnotation) SetAuthor(author string) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetAuthor(fc, author))
}

// Contents reads the /Contents text.
func (a *PDFAnnotation) Contents() (string, error) {
	fc, err := a.live()
	if err != nil {
		return "", err
	}
	s, err := a.h.Contents(fc)
	return s, remapError(err)
}

// SetContents writes the /Contents text.
func (a *PDFAnnotation) SetContents(contents string) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetContents(fc, contents))
}

// Rect reads the annotation rectangle in page space.
func (a *PDFAnnotation) Rect() (Rect, error) {
	fc, err := a.live()
	if err != nil {
		return Rect{}, err
	}
	r, err := a.h.Rect(fc)
	return rectFromFFI(r), remapError(err)
}

// SetRect moves and resizes the annotation.
func (a *PDFAnnotation) SetRect(rect Rect) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetRect(fc, rect.ffi()))
}

// SetColor writes the stroke color: 1, 3 or 4 components for gray,
// RGB or CMYK.
func (a *PDFAnnotation) SetColor(color []float32) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetColor(fc, color))
}

// Flags reads the /F bit set.
func (a *PDFAnnotation) Flags() (int, error) {
	fc, err := a.live()
	if err != nil {
		return 0, err
	}
	f, err := a.h.Flags(fc)
	return f, remapError(err)
}

// SetFlags writes the /F bit set.
func (a *PDFAnnotation) SetFlags(flags int) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetFlags(fc, flags))
}

// SetLine sets the endpoints of a line annotation.
func (a *PDFAnnotation) SetLine(start, end Point) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetLine(fc, start.ffi(), end.ffi()))
}

// SetBorderWidth sets the border line width in points.
func (a *PDFAnnotation) SetBorderWidth(width float32) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetBorderWidth(fc, width))
}

// SetPopup places the popup window shown for the annotation's contents.
func (a *PDFAnnotation) SetPopup(rect Rect) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetPopup(fc, rect.ffi()))
}

// SetActive marks the annotation as being held down, as a widget under
// a pressed pointer.
func (a *PDFAnnotation) SetActive(active bool) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetActive(fc, active))
}

// SetIsOpen opens or closes the annotation's popup.
func (a *PDFAnnotation) SetIsOpen(open bool) error {
	fc, err := a.live()
	if err != nil {
		return err
	}
	return remapError(a.h.SetIsOpen(fc, open))
}

// Update regenerates the annotation's appearance stream if it is
// dirty. It reports whether anything changed.
func (a *PDFAnnotation) Update() (bool, error) {
	fc, err := a.live()
	if err != nil {
		return false, err
	}
	ok, err := a.h.Update(fc)
	return ok, remapError(err)
}

// Drop releases the annotation.
func (a *PDFAnnotation) Drop() {
	if a == nil || a.h == nil {
		return
	}
	runtime.SetFinalizer(a, nil)
	h := a.h
	a.h = nil
	a.ctx.dropNative("pdf annotation", func(fc *ffi.Context) { h.Drop(fc) })
}
