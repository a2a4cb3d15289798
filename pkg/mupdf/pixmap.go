package mupdf

import (
	"fmt"
	"image"
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// SaveFormat selects the encoding used by Pixmap.SaveAs and
// Pixmap.EncodeAs. Unknown values fall back to PNG.
type SaveFormat int

const (
	SavePNG SaveFormat = iota
	SavePNM
	SavePAM
	SavePSD
	SavePS
)

// Pixmap is a rectangular grid of samples with an optional alpha
// channel, the result of rasterization.
type Pixmap struct {
	ctx *Context
	h   *ffi.Pixmap
}

func newPixmap(c *Context, h *ffi.Pixmap) *Pixmap {
	px := &Pixmap{ctx: c, h: h}
	runtime.SetFinalizer(px, func(px *Pixmap) { px.Drop() })
	return px
}

// NewPixmap allocates an uninitialized pixmap with origin x, y and the
// given size. A nil colorspace with alpha makes an alpha-only pixmap.
func NewPixmap(c *Context, cs *Colorspace, x, y, w, h int, alpha bool) (*Pixmap, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	var csFFI *ffi.Colorspace
	if cs != nil {
		csFFI = cs.h
	}
	ph, err := ffi.NewPixmap(fc, csFFI, x, y, w, h, alpha)
	if err != nil {
		return nil, remapError(err)
	}
	return newPixmap(c, ph), nil
}

func (px *Pixmap) live() (*ffi.Context, error) {
	if px == nil || px.h == nil {
		return nil, ErrClosed
	}
	return px.ctx.handle()
}

// Clone deep-copies the pixmap.
func (px *Pixmap) Clone() (*Pixmap, error) {
	fc, err := px.live()
	if err != nil {
		return nil, err
	}
	h, err := px.h.Clone(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPixmap(px.ctx, h), nil
}

// Clear resets every sample to zero: transparent for alpha pixmaps,
// black otherwise.
func (px *Pixmap) Clear() error {
	fc, err := px.live()
	if err != nil {
		return err
	}
	return remapError(px.h.Clear(fc))
}

// ClearWith sets every sample to value, typically 0xff for white.
func (px *Pixmap) ClearWith(value int) error {
	fc, err := px.live()
	if err != nil {
		return err
	}
	return remapError(px.h.ClearWithValue(fc, value))
}

// Invert inverts all color samples, leaving alpha alone.
func (px *Pixmap) Invert() error {
	fc, err := px.live()
	if err != nil {
		return err
	}
	return remapError(px.h.Invert(fc))
}

// Gamma applies a gamma curve to the samples. The pixmap must carry a
// colorspace.
func (px *Pixmap) Gamma(gamma float32) error {
	fc, err := px.live()
	if err != nil {
		return err
	}
	return remapError(px.h.Gamma(fc, gamma))
}

// Tint maps black and white to the given 0xRRGGBB colors. Only gray
// and RGB pixmaps can be tinted.
func (px *Pixmap) Tint(black, white int) error {
	fc, err := px.live()
	if err != nil {
		return err
	}
	return remapError(px.h.Tint(fc, black, white))
}

// SaveAs writes the pixmap to a file in the given format.
func (px *Pixmap) SaveAs(filename string, format SaveFormat) error {
	fc, err := px.live()
	if err != nil {
		return err
	}
	return remapError(px.h.SaveAs(fc, filename, int(format)))
}

// EncodeAs returns the pixmap encoded in the given format.
func (px *Pixmap) EncodeAs(format SaveFormat) ([]byte, error) {
	fc, err := px.live()
	if err != nil {
		return nil, err
	}
	buf, err := px.h.ImageData(fc, int(format))
	if err != nil {
		return nil, remapError(err)
	}
	defer buf.Drop(fc)
	data, err := buf.Bytes(fc)
	return data, remapError(err)
}

// X returns the pixmap origin's x coordinate.
func (px *Pixmap) X() int {
	fc, err := px.live()
	if err != nil {
		return 0
	}
	return px.h.X(fc)
}

// Y returns the pixmap origin's y coordinate.
func (px *Pixmap) Y() int {
	fc, err := px.live()
	if err != nil {
		return 0
	}
	return px.h.Y(fc)
}

// Width returns the pixmap width in pixels.
func (px *Pixmap) Width() int {
	fc, err := px.live()
	if err != nil {
		return 0
	}
	return px.h.Width(fc)
}

// Height returns the pixmap height in pixels.
func (px *Pixmap) Height() int {
	fc, err := px.live()
	if err != nil {
		return 0
	}
	return px.h.Height(fc)
}

// NumComponents reports components per sample, alpha included.
func (px *Pixmap) NumComponents() int {
	fc, err := px.live()
	if err != nil {
		return 0
	}
	return px.h.N(fc)
}

// Alpha reports whether the pixmap carries an alpha channel.
func (px *Pixmap) Alpha() bool {
	fc, err := px.live()
	if err != nil {
		return false
	}
	return px.h.Alpha(fc)
}

// Stride reports the byte distance between rows.
func (px *Pixmap) Stride() int {
	fc, err := px.live()
	if err != nil {
		return 0
	}
	return px.h.Stride(fc)
}

// Resolution reports the stored resolution in dots per inch.
func (px *Pixmap) Resolution() (xres, yres int) {
	if px == nil || px.h == nil {
		return 0, 0
	}
	return px.h.Resolution()
}

// SetResolution records the resolution in dots per inch.
func (px *Pixmap) SetResolution(xres, yres int) {
	if px == nil || px.h == nil {
		return
	}
	px.h.SetResolution(xres, yres)
}

// ColorSpace returns the pixmap's colorspace as a Borrowed wrapper, or
// nil for alpha-only pixmaps.
func (px *Pixmap) ColorSpace() (*Colorspace, error) {
	fc, err := px.live()
	if err != nil {
		return nil, err
	}
	return borrowedColorspace(px.ctx, px.h.Colorspace(fc)), nil
}

// Samples copies the raw sample bytes out, stride times height of them.
func (px *Pixmap) Samples() ([]byte, error) {
	fc, err := px.live()
	if err != nil {
		return nil, err
	}
	return px.h.Samples(fc), nil
}

// RGBA converts the pixmap into a stdlib image. The pixmap must be
// device RGB, with or without alpha.
func (px *Pixmap) RGBA() (*image.RGBA, error) {
	fc, err := px.live()
	if err != nil {
		return nil, err
	}
	n := px.h.N(fc)
	alpha := px.h.Alpha(fc)
	if n != 3 && !(n == 4 && alpha) {
		return nil, fmt.Errorf("mupdf: pixmap with %d components is not RGB", n)
	}
	w, h, stride := px.h.Width(fc), px.h.Height(fc), px.h.Stride(fc)
	samples := px.h.Samples(fc)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := samples[y*stride:]
		dst := img.Pix[y*img.Stride:]
		if n == 4 {
			copy(dst[:4*w], src[:4*w])
			continue
		}
		for x := 0; x < w; x++ {
			dst[4*x+0] = src[3*x+0]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 0xff
		}
	}
	return img, nil
}

// Gray converts the pixmap into a stdlib grayscale image. The pixmap
// must be single-component gray without alpha.
func (px *Pixmap) Gray() (*image.Gray, error) {
	fc, err := px.live()
	if err != nil {
		return nil, err
	}
	if px.h.N(fc) != 1 {
		return nil, fmt.Errorf("mupdf: pixmap with %d components is not gray", px.h.N(fc))
	}
	w, h, stride := px.h.Width(fc), px.h.Height(fc), px.h.Stride(fc)
	samples := px.h.Samples(fc)
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w], samples[y*stride:y*stride+w])
	}
	return img, nil
}

// Drop releases the pixmap.
func (px *Pixmap) Drop() {
	if px == nil || px.h == nil {
		return
	}
	runtime.SetFinalizer(px, nil)
	h := px.h
	px.h = nil
	px.ctx.dropNative("pixmap", func(fc *ffi.Context) { h.Drop(fc) })
}
