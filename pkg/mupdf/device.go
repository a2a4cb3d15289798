package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// BlendMode selects how groups composite, in the native numbering.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
)

// Device receives drawing commands: from a page replay, a display
// list, or direct calls. The built-in devices rasterize, record, or
// extract text.
//
// Devices returned by DocumentWriter.BeginPage are Borrowed: the
// writer owns them and EndPage releases them.
type Device struct {
	ctx      *Context
	h        *ffi.Device
	borrowed bool
}

func newDevice(c *Context, h *ffi.Device) *Device {
	d := &Device{ctx: c, h: h}
	runtime.SetFinalizer(d, func(d *Device) { d.Drop() })
	return d
}

// NewDrawDevice creates a device rasterizing into px, clipped to clip.
// Pass InfiniteIRect to draw everywhere.
func NewDrawDevice(c *Context, px *Pixmap, clip IRect) (*Device, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if px == nil || px.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewDrawDevice(fc, px.h, clip.ffi())
	if err != nil {
		return nil, remapError(err)
	}
	return newDevice(c, h), nil
}

// NewDisplayListDevice creates a device recording into list.
func NewDisplayListDevice(c *Context, list *DisplayList) (*Device, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if list == nil || list.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewDisplayListDevice(fc, list.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newDevice(c, h), nil
}

// NewTextPageDevice creates a device extracting structured text into tp.
func NewTextPageDevice(c *Context, tp *TextPage, opts TextPageOptions) (*Device, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if tp == nil || tp.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewStextDevice(fc, tp.h, int(opts.Flags))
	if err != nil {
		return nil, remapError(err)
	}
	return newDevice(c, h), nil
}

func (d *Device) live() (*ffi.Context, error) {
	if d == nil || d.h == nil {
		return nil, ErrClosed
	}
	return d.ctx.handle()
}

// Close flushes the device. Pending output (text page sorting, display
// list trailers) only lands after Close.
func (d *Device) Close() error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.Close(fc))
}

// FillPath fills path with a color from cs.
func (d *Device) FillPath(path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if path == nil || path.h == nil || cs == nil || cs.h == nil {
		return ErrClosed
	}
	return remapError(d.h.FillPath(fc, path.h, evenOdd, ctm.ffi(), cs.h, color, alpha, cp.ffi()))
}

// StrokePath strokes path with the given stroke state and color.
func (d *Device) StrokePath(path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if path == nil || path.h == nil || stroke == nil || stroke.h == nil || cs == nil || cs.h == nil {
		return ErrClosed
	}
	return remapError(d.h.StrokePath(fc, path.h, stroke.h, ctm.ffi(), cs.h, color, alpha, cp.ffi()))
}

// ClipPath pushes path as a clip region.
func (d *Device) ClipPath(path *Path, evenOdd bool, ctm Matrix) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if path == nil || path.h == nil {
		return ErrClosed
	}
	return remapError(d.h.ClipPath(fc, path.h, evenOdd, ctm.ffi()))
}

// ClipStrokePath pushes the stroked outline of path as a clip region.
func (d *Device) ClipStrokePath(path *Path, stroke *StrokeState, ctm Matrix) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if path == nil || path.h == nil || stroke == nil || stroke.h == nil {
		return ErrClosed
	}
	return remapError(d.h.ClipStrokePath(fc, path.h, stroke.h, ctm.ffi()))
}

// FillText fills the glyphs of text with a color from cs.
func (d *Device) FillText(text *Text, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if text == nil || text.h == nil || cs == nil || cs.h == nil {
		return ErrClosed
	}
	return remapError(d.h.FillText(fc, text.h, ctm.ffi(), cs.h, color, alpha, cp.ffi()))
}

// StrokeText strokes the glyph outlines of text.
func (d *Device) StrokeText(text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if text == nil || text.h == nil || stroke == nil || stroke.h == nil || cs == nil || cs.h == nil {
		return ErrClosed
	}
	return remapError(d.h.StrokeText(fc, text.h, stroke.h, ctm.ffi(), cs.h, color, alpha, cp.ffi()))
}

// ClipText pushes the glyphs of text as a clip region.
func (d *Device) ClipText(text *Text, ctm Matrix) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if text == nil || text.h == nil {
		return ErrClosed
	}
	return remapError(d.h.ClipText(fc, text.h, ctm.ffi()))
}

// ClipStrokeText pushes the stroked glyph outlines as a clip region.
func (d *Device) ClipStrokeText(text *Text, stroke *StrokeState, ctm Matrix) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if text == nil || text.h == nil || stroke == nil || stroke.h == nil {
		return ErrClosed
	}
	return remapError(d.h.ClipStrokeText(fc, text.h, stroke.h, ctm.ffi()))
}

// IgnoreText records text for extraction without painting it.
func (d *Device) IgnoreText(text *Text, ctm Matrix) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if text == nil || text.h == nil {
		return ErrClosed
	}
	return remapError(d.h.IgnoreText(fc, text.h, ctm.ffi()))
}

// FillImage paints img under ctm.
func (d *Device) FillImage(img *Image, ctm Matrix, alpha float32, cp ColorParams) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if img == nil || img.h == nil {
		return ErrClosed
	}
	return remapError(d.h.FillImage(fc, img.h, ctm.ffi(), alpha, cp.ffi()))
}

// FillImageMask paints a color through img used as a stencil mask.
func (d *Device) FillImageMask(img *Image, ctm Matrix, cs *Colorspace, color []float32, alpha float32, cp ColorParams) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if img == nil || img.h == nil || cs == nil || cs.h == nil {
		return ErrClosed
	}
	return remapError(d.h.FillImageMask(fc, img.h, ctm.ffi(), cs.h, color, alpha, cp.ffi()))
}

// ClipImageMask pushes img as a stencil clip region.
func (d *Device) ClipImageMask(img *Image, ctm Matrix) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if img == nil || img.h == nil {
		return ErrClosed
	}
	return remapError(d.h.ClipImageMask(fc, img.h, ctm.ffi()))
}

// PopClip pops the innermost clip region.
func (d *Device) PopClip() error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.PopClip(fc))
}

// BeginMask starts rendering a soft mask covering area.
func (d *Device) BeginMask(area Rect, luminosity bool, cs *Colorspace, color []float32, cp ColorParams) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if cs == nil || cs.h == nil {
		return ErrClosed
	}
	return remapError(d.h.BeginMask(fc, area.ffi(), luminosity, cs.h, color, cp.ffi()))
}

// EndMask finishes the soft mask and begins the masked content.
func (d *Device) EndMask() error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.EndMask(fc))
}

// BeginGroup starts a transparency group over area.
func (d *Device) BeginGroup(area Rect, cs *Colorspace, isolated, knockout bool, mode BlendMode, alpha float32) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	if cs == nil || cs.h == nil {
		return ErrClosed
	}
	return remapError(d.h.BeginGroup(fc, area.ffi(), cs.h, isolated, knockout, int(mode), alpha))
}

// EndGroup composites the finished transparency group.
func (d *Device) EndGroup() error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.EndGroup(fc))
}

// BeginTile starts a tiled pattern cell. A non-zero id lets the device
// reuse a previously rendered cell; the return value is non-zero when
// the cached cell was used and the caller may skip the cell content.
func (d *Device) BeginTile(area, view Rect, xstep, ystep float32, ctm Matrix, id int) (int, error) {
	fc, err := d.live()
	if err != nil {
		return 0, err
	}
	n, err := d.h.BeginTile(fc, area.ffi(), view.ffi(), xstep, ystep, ctm.ffi(), id)
	return n, remapError(err)
}

// EndTile finishes the pattern cell.
func (d *Device) EndTile() error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.EndTile(fc))
}

// BeginLayer marks the start of a named optional content layer.
func (d *Device) BeginLayer(name string) error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.BeginLayer(fc, name))
}

// EndLayer marks the end of the current layer.
func (d *Device) EndLayer() error {
	fc, err := d.live()
	if err != nil {
		return err
	}
	return remapError(d.h.EndLayer(fc))
}

// Drop releases the device. Borrowed devices (from a document writer)
// only detach; the writer remains responsible for the native handle.
func (d *Device) Drop() {
	if d == nil || d.h == nil {
		return
	}
	runtime.SetFinalizer(d, nil)
	h := d.h
	d.h = nil
	if d.borrowed {
		return
	}
	d.ctx.dropNative("device", func(fc *ffi.Context) { h.Drop(fc) })
}
