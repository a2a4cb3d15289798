package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// Page is one loaded page of a Document. It stays valid until dropped,
// independent of other pages.
type Page struct {
	ctx *Context
	h   *ffi.Page
}

func newPage(c *Context, h *ffi.Page) *Page {
	pg := &Page{ctx: c, h: h}
	runtime.SetFinalizer(pg, func(pg *Page) { pg.Drop() })
	return pg
}

func (pg *Page) live() (*ffi.Context, error) {
	if pg == nil || pg.h == nil {
		return nil, ErrClosed
	}
	return pg.ctx.handle()
}

// Bounds returns the page rectangle in points.
func (pg *Page) Bounds() (Rect, error) {
	fc, err := pg.live()
	if err != nil {
		return Rect{}, err
	}
	r, err := pg.h.Bound(fc)
	if err != nil {
		return Rect{}, remapError(err)
	}
	return rectFromFFI(r), nil
}

// ToPixmap rasterizes the page under ctm into a fresh pixmap.
// showExtras includes annotations and widgets.
func (pg *Page) ToPixmap(ctm Matrix, cs *Colorspace, alpha, showExtras bool) (*Pixmap, error) {
	fc, err := pg.live()
	if err != nil {
		return nil, err
	}
	if cs == nil || cs.h == nil {
		return nil, ErrClosed
	}
	h, err := pg.h.ToPixmap(fc, ctm.ffi(), cs.h, alpha, showExtras)
	if err != nil {
		return nil, remapError(err)
	}
	return newPixmap(pg.ctx, h), nil
}

// ToSVG renders the page under ctm as an SVG document.
func (pg *Page) ToSVG(ctm Matrix, k *Cookie) (string, error) {
	fc, err := pg.live()
	if err != nil {
		return "", err
	}
	var kh *ffi.Cookie
	if k != nil {
		kh = k.h
	}
	svg, err := pg.h.ToSVG(fc, ctm.ffi(), kh)
	return svg, remapError(err)
}

// ToDisplayList records the page into a display list for later
// replays. annots includes annotation appearance streams.
func (pg *Page) ToDisplayList(annots bool) (*DisplayList, error) {
	fc, err := pg.live()
	if err != nil {
		return nil, err
	}
	h, err := pg.h.ToDisplayList(fc, annots)
	if err != nil {
		return nil, remapError(err)
	}
	return newDisplayList(pg.ctx, h), nil
}

// ToTextPage extracts the page text into a structured text page.
func (pg *Page) ToTextPage(opts TextPageOptions) (*TextPage, error) {
	fc, err := pg.live()
	if err != nil {
		return nil, err
	}
	h, err := pg.h.ToTextPage(fc, int(opts.Flags))
	if err != nil {
		return nil, remapError(err)
	}
	return newTextPage(pg.ctx, h), nil
}

// Run replays the whole page, annotations and widgets included,
// through the device under ctm.
func (pg *Page) Run(dev *Device, ctm Matrix, k *Cookie) error {
	return pg.runWith(dev, ctm, k, (*ffi.Page).Run)
}

// RunContents replays only the page contents, without annotations.
func (pg *Page) RunContents(dev *Device, ctm Matrix, k *Cookie) error {
	return pg.runWith(dev, ctm, k, (*ffi.Page).RunContents)
}

// RunAnnotations replays only the page annotations.
func (pg *Page) RunAnnotations(dev *Device, ctm Matrix, k *Cookie) error {
	return pg.runWith(dev, ctm, k, (*ffi.Page).RunAnnots)
}

// RunWidgets replays only the page form widgets.
func (pg *Page) RunWidgets(dev *Device, ctm Matrix, k *Cookie) error {
	return pg.runWith(dev, ctm, k, (*ffi.Page).RunWidgets)
}

func (pg *Page) runWith(dev *Device, ctm Matrix, k *Cookie,
	run func(*ffi.Page, *ffi.Context, *ffi.Device, ffi.Matrix, *ffi.Cookie) error) error {
	fc, err := pg.live()
	if err != nil {
		return err
	}
	if dev == nil || dev.h == nil {
		return ErrClosed
	}
	var kh *ffi.Cookie
	if k != nil {
		kh = k.h
	}
	return remapError(run(pg.h, fc, dev.h, ctm.ffi(), kh))
}

// Search finds up to hitMax occurrences of needle on the page and
// returns their covering quads.
func (pg *Page) Search(needle string, hitMax int) ([]Quad, error) {
	fc, err := pg.live()
	if err != nil {
		return nil, err
	}
	qs, err := pg.h.Search(fc, needle, hitMax)
	if err != nil {
		return nil, remapError(err)
	}
	return quadsFromFFI(qs), nil
}

// Links returns the hyperlink regions on the page.
func (pg *Page) Links() ([]Link, error) {
	fc, err := pg.live()
	if err != nil {
		return nil, err
	}
	links, err := pg.h.Links(fc)
	if err != nil {
		return nil, remapError(err)
	}
	if links == nil {
		return nil, nil
	}
	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = Link{Bounds: rectFromFFI(l.Bounds), URI: l.URI}
	}
	return out, nil
}

// PDFPage returns the PDF-specific view of the page, or an error when
// the page does not come from a PDF document.
func (pg *Page) PDFPage() (*PDFPage, error) {
	fc, err := pg.live()
	if err != nil {
		return nil, err
	}
	h, err := ffi.PDFPageFromPage(fc, pg.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFPage(pg.ctx, h), nil
}

// Drop releases the page.
func (pg *Page) Drop() {
	if pg == nil || pg.h == nil {
		return
	}
	runtime.SetFinalizer(pg, nil)
	h := pg.h
	pg.h = nil
	pg.ctx.dropNative("page", func(fc *ffi.Context) { h.Drop(fc) })
}
