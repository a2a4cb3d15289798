//go:build cgo && !windows

package ffi

/*
#include "wrapper.h"
*/
import "C"

// Path wraps a native fz_path, a sequence of move, line, curve and
// close commands.
type Path struct {
	p *C.fz_path
}

// StrokeState wraps a native fz_stroke_state describing caps, joins,
// width and dashing.
type StrokeState struct {
	p *C.fz_stroke_state
}

// DefaultStrokeState clones the native default stroke, a one unit butt
// capped mitered line.
func DefaultStrokeState(ctx *Context) (*StrokeState, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_default_stroke_state(ctx.ctx, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &StrokeState{p: p}, nil
}

func NewStrokeState(ctx *Context, startCap, dashCap, endCap LineCap, lineJoin LineJoin, lineWidth, miterLimit, dashPhase float32, dash []float32) (*StrokeState, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_stroke_state(ctx.ctx,
		C.fz_linecap(startCap), C.fz_linecap(dashCap), C.fz_linecap(endCap), C.fz_linejoin(lineJoin),
		C.float(lineWidth), C.float(miterLimit), C.float(dashPhase),
		floatsPtr(dash), C.int(len(dash)), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &StrokeState{p: p}, nil
}

func (s *StrokeState) StartCap() LineCap   { return LineCap(s.p.start_cap) }
func (s *StrokeState) DashCap() LineCap    { return LineCap(s.p.dash_cap) }
func (s *StrokeState) EndCap() LineCap     { return LineCap(s.p.end_cap) }
func (s *StrokeState) LineJoin() LineJoin  { return LineJoin(s.p.linejoin) }
func (s *StrokeState) LineWidth() float32  { return float32(s.p.linewidth) }
func (s *StrokeState) MiterLimit() float32 { return float32(s.p.miterlimit) }
func (s *StrokeState) DashPhase() float32  { return float32(s.p.dash_phase) }

func (s *StrokeState) Dashes() []float32 {
	n := int(s.p.dash_len)
	if n == 0 {
		return nil
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(s.p.dash_list[i])
	}
	return out
}

func (s *StrokeState) Drop(ctx *Context) {
	if s == nil || s.p == nil {
		return
	}
	C.fz_drop_stroke_state(ctx.ctx, s.p)
	s.p = nil
}

func NewPath(ctx *Context) (*Path, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_new_path(ctx.ctx, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Path{p: p}, nil
}

func (p *Path) Clone(ctx *Context) (*Path, error) {
	var cerr *C.mupdf_error_t
	cp := C.mupdf_clone_path(ctx.ctx, p.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Path{p: cp}, nil
}

// Trim releases the slack in the command storage once the path is
// fully built.
func (p *Path) Trim(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_trim_path(ctx.ctx, p.p, &cerr)
	return takeError(cerr)
}

func (p *Path) MoveTo(ctx *Context, x, y float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_moveto(ctx.ctx, p.p, C.float(x), C.float(y), &cerr)
	return takeError(cerr)
}

func (p *Path) LineTo(ctx *Context, x, y float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_lineto(ctx.ctx, p.p, C.float(x), C.float(y), &cerr)
	return takeError(cerr)
}

func (p *Path) ClosePath(ctx *Context) error {
	var cerr *C.mupdf_error_t
	C.mupdf_closepath(ctx.ctx, p.p, &cerr)
	return takeError(cerr)
}

func (p *Path) RectTo(ctx *Context, x1, y1, x2, y2 float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_rectto(ctx.ctx, p.p, C.float(x1), C.float(y1), C.float(x2), C.float(y2), &cerr)
	return takeError(cerr)
}

func (p *Path) CurveTo(ctx *Context, cx1, cy1, cx2, cy2, ex, ey float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_curveto(ctx.ctx, p.p, C.float(cx1), C.float(cy1), C.float(cx2), C.float(cy2), C.float(ex), C.float(ey), &cerr)
	return takeError(cerr)
}

// CurveToV emits a cubic whose first control point coincides with the
// current point.
func (p *Path) CurveToV(ctx *Context, cx, cy, ex, ey float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_curvetov(ctx.ctx, p.p, C.float(cx), C.float(cy), C.float(ex), C.float(ey), &cerr)
	return takeError(cerr)
}

// CurveToY emits a cubic whose second control point coincides with the
// end point.
func (p *Path) CurveToY(ctx *Context, cx, cy, ex, ey float32) error {
	var cerr *C.mupdf_error_t
	C.mupdf_curvetoy(ctx.ctx, p.p, C.float(cx), C.float(cy), C.float(ex), C.float(ey), &cerr)
	return takeError(cerr)
}

func (p *Path) Transform(ctx *Context, ctm Matrix) error {
	var cerr *C.mupdf_error_t
	C.mupdf_transform_path(ctx.ctx, p.p, cMatrix(ctm), &cerr)
	return takeError(cerr)
}

// Bound measures the path under ctm. A non-nil stroke state widens the
// bounds by the stroke.
func (p *Path) Bound(ctx *Context, stroke *StrokeState, ctm Matrix) (Rect, error) {
	var sp *C.fz_stroke_state
	if stroke != nil {
		sp = stroke.p
	}
	var cerr *C.mupdf_error_t
	r := C.mupdf_bound_path(ctx.ctx, p.p, sp, cMatrix(ctm), &cerr)
	if err := takeError(cerr); err != nil {
		return Rect{}, err
	}
	return goRect(r), nil
}

// Walk replays the path commands into w. Quads and rects are
// decomposed into the four basic operators.
func (p *Path) Walk(ctx *Context, w PathWalker) error {
	h, arg := put(w)
	defer del(h)
	var cerr *C.mupdf_error_t
	C.mupdf_walk_path(ctx.ctx, p.p, &C.mupdf_go_path_walker, arg, &cerr)
	return takeError(cerr)
}

func (p *Path) Drop(ctx *Context) {
	if p == nil || p.p == nil {
		return
	}
	C.fz_drop_path(ctx.ctx, p.p)
	p.p = nil
}
