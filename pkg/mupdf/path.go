package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// LineCap styles for stroke ends.
type LineCap int32

const (
	LineCapButt     LineCap = 0
	LineCapRound    LineCap = 1
	LineCapSquare   LineCap = 2
	LineCapTriangle LineCap = 3
)

// LineJoin styles for stroke corners.
type LineJoin int32

const (
	LineJoinMiter    LineJoin = 0
	LineJoinRound    LineJoin = 1
	LineJoinBevel    LineJoin = 2
	LineJoinMiterXPS LineJoin = 3
)

// PathWalker receives the commands of a path, decomposed to the four
// basic operators.
type PathWalker interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CurveTo(cx1, cy1, cx2, cy2, ex, ey float32)
	ClosePath()
}

// Path is a vector outline built from move, line, curve and close
// commands.
type Path struct {
	ctx *Context
	h   *ffi.Path
}

func newPath(c *Context, h *ffi.Path) *Path {
	p := &Path{ctx: c, h: h}
	runtime.SetFinalizer(p, func(p *Path) { p.Drop() })
	return p
}

// NewPath creates an empty path.
func NewPath(c *Context) (*Path, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewPath(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPath(c, h), nil
}

func (p *Path) live() (*ffi.Context, error) {
	if p == nil || p.h == nil {
		return nil, ErrClosed
	}
	return p.ctx.handle()
}

// Clone deep-copies the path.
func (p *Path) Clone() (*Path, error) {
	fc, err := p.live()
	if err != nil {
		return nil, err
	}
	h, err := p.h.Clone(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPath(p.ctx, h), nil
}

// Trim shrinks the path's storage to what it actually uses and seals
// it against further commands.
func (p *Path) Trim() error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.Trim(fc))
}

// MoveTo starts a new subpath at x, y.
func (p *Path) MoveTo(x, y float32) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.MoveTo(fc, x, y))
}

// LineTo appends a straight segment to x, y.
func (p *Path) LineTo(x, y float32) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.LineTo(fc, x, y))
}

// CurveTo appends a cubic bezier with two control points.
func (p *Path) CurveTo(cx1, cy1, cx2, cy2, ex, ey float32) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.CurveTo(fc, cx1, cy1, cx2, cy2, ex, ey))
}

// CurveToV appends a cubic bezier whose first control point coincides
// with the current point.
func (p *Path) CurveToV(cx, cy, ex, ey float32) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.CurveToV(fc, cx, cy, ex, ey))
}

// CurveToY appends a cubic bezier whose second control point coincides
// with the end point.
func (p *Path) CurveToY(cx, cy, ex, ey float32) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.CurveToY(fc, cx, cy, ex, ey))
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.ClosePath(fc))
}

// Rect appends a closed rectangle subpath.
func (p *Path) Rect(x1, y1, x2, y2 float32) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.RectTo(fc, x1, y1, x2, y2))
}

// Transform maps every path point through ctm in place.
func (p *Path) Transform(ctm Matrix) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.Transform(fc, ctm.ffi()))
}

// Bounds measures the path under ctm. A non-nil stroke widens the
// bounds by the stroke.
func (p *Path) Bounds(stroke *StrokeState, ctm Matrix) (Rect, error) {
	fc, err := p.live()
	if err != nil {
		return Rect{}, err
	}
	var sh *ffi.StrokeState
	if stroke != nil {
		sh = stroke.h
	}
	r, err := p.h.Bound(fc, sh, ctm.ffi())
	if err != nil {
		return Rect{}, remapError(err)
	}
	return rectFromFFI(r), nil
}

// Walk replays the path commands into w.
func (p *Path) Walk(w PathWalker) error {
	fc, err := p.live()
	if err != nil {
		return err
	}
	return remapError(p.h.Walk(fc, w))
}

// Drop releases the path.
func (p *Path) Drop() {
	if p == nil || p.h == nil {
		return
	}
	runtime.SetFinalizer(p, nil)
	h := p.h
	p.h = nil
	p.ctx.dropNative("path", func(fc *ffi.Context) { h.Drop(fc) })
}

// StrokeOptions configure a new stroke state. The zero value gives a
// hairline butt-capped miter stroke.
type StrokeOptions struct {
	StartCap   LineCap
	DashCap    LineCap
	EndCap     LineCap
	LineJoin   LineJoin
	LineWidth  float32
	MiterLimit float32
	DashPhase  float32
	Dash       []float32
}

// StrokeState describes how paths and text are stroked. The dash
// pattern is deep-copied into native memory at construction.
type StrokeState struct {
	ctx *Context
	h   *ffi.StrokeState
}

func newStrokeState(c *Context, h *ffi.StrokeState) *StrokeState {
	s := &StrokeState{ctx: c, h: h}
	runtime.SetFinalizer(s, func(s *StrokeState) { s.Drop() })
	return s
}

// NewStrokeState builds a stroke state from opts.
func NewStrokeState(c *Context, opts StrokeOptions) (*StrokeState, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewStrokeState(fc,
		ffi.LineCap(opts.StartCap), ffi.LineCap(opts.DashCap), ffi.LineCap(opts.EndCap),
		ffi.LineJoin(opts.LineJoin), opts.LineWidth, opts.MiterLimit, opts.DashPhase, opts.Dash)
	if err != nil {
		return nil, remapError(err)
	}
	return newStrokeState(c, h), nil
}

// DefaultStrokeState returns a copy of the native default stroke.
func DefaultStrokeState(c *Context) (*StrokeState, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.DefaultStrokeState(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newStrokeState(c, h), nil
}

func (s *StrokeState) StartCap() LineCap {
	if s == nil || s.h == nil {
		return 0
	}
	return LineCap(s.h.StartCap())
}

func (s *StrokeState) DashCap() LineCap {
	if s == nil || s.h == nil {
		return 0
	}
	return LineCap(s.h.DashCap())
}

func (s *StrokeState) EndCap() LineCap {
	if s == nil || s.h == nil {
		return 0
	}
	return LineCap(s.h.EndCap())
}

func (s *StrokeState) LineJoin() LineJoin {
	if s == nil || s.h == nil {
		return 0
	}
	return LineJoin(s.h.LineJoin())
}

func (s *StrokeState) LineWidth() float32 {
	if s == nil || s.h == nil {
		return 0
	}
	return s.h.LineWidth()
}

func (s *StrokeState) MiterLimit() float32 {
	if s == nil || s.h == nil {
		return 0
	}
	return s.h.MiterLimit()
}

func (s *StrokeState) DashPhase() float32 {
	if s == nil || s.h == nil {
		return 0
	}
	return s.h.DashPhase()
}

// Dashes copies the dash pattern out of native memory.
func (s *StrokeState) Dashes() []float32 {
	if s == nil || s.h == nil {
		return nil
	}
	return s.h.Dashes()
}

// Drop releases the stroke state.
func (s *StrokeState) Drop() {
	if s == nil || s.h == nil {
		return
	}
	runtime.SetFinalizer(s, nil)
	h := s.h
	s.h = nil
	s.ctx.dropNative("stroke state", func(fc *ffi.Context) { h.Drop(fc) })
}
