package mupdf

import (
	"math"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// Geometry values use float32 throughout to match the native
// single-precision types exactly; a value that round-trips through the
// native library compares equal.

const (
	// Coordinate sentinels marking the infinite rect, the same bit
	// patterns the native library uses.
	MinInfCoord = -2147483648
	MaxInfCoord = 2147483520
)

// Point is a position in user or device space.
type Point struct {
	X, Y float32
}

// Transform maps the point through m.
func (p Point) Transform(m Matrix) Point {
	return Point{
		X: p.X*m.A + p.Y*m.C + m.E,
		Y: p.X*m.B + p.Y*m.D + m.F,
	}
}

// Rect is an axis-aligned rectangle. A rect with X1 <= X0 or Y1 <= Y0
// is empty.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// Infinite is the rect covering everything.
var Infinite = Rect{X0: MinInfCoord, Y0: MinInfCoord, X1: MaxInfCoord, Y1: MaxInfCoord}

func (r Rect) Width() float32  { return r.X1 - r.X0 }
func (r Rect) Height() float32 { return r.Y1 - r.Y0 }

func (r Rect) IsEmpty() bool    { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }
func (r Rect) IsInfinite() bool { return r.X0 == MinInfCoord }

// Contains reports whether p lies inside r. Points on the X1/Y1 edge
// are outside, matching the native convention.
func (r Rect) Contains(p Point) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Union returns the smallest rect covering r and o. Empty inputs are
// ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Transform maps the rect through m and returns the bounding box of
// the result. Infinite rects stay infinite.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsInfinite() {
		return r
	}
	corners := [4]Point{
		Point{r.X0, r.Y0}.Transform(m),
		Point{r.X1, r.Y0}.Transform(m),
		Point{r.X0, r.Y1}.Transform(m),
		Point{r.X1, r.Y1}.Transform(m),
	}
	out := Rect{X0: corners[0].X, Y0: corners[0].Y, X1: corners[0].X, Y1: corners[0].Y}
	for _, c := range corners[1:] {
		out.X0 = min(out.X0, c.X)
		out.Y0 = min(out.Y0, c.Y)
		out.X1 = max(out.X1, c.X)
		out.Y1 = max(out.Y1, c.Y)
	}
	return out
}

// Round returns the smallest IRect covering r, with the native
// half-pixel slop that keeps hairlines visible.
func (r Rect) Round() IRect {
	return IRect{
		X0: int32(math.Floor(float64(r.X0) + 0.001)),
		Y0: int32(math.Floor(float64(r.Y0) + 0.001)),
		X1: int32(math.Ceil(float64(r.X1) - 0.001)),
		Y1: int32(math.Ceil(float64(r.Y1) - 0.001)),
	}
}

// IRect is a rectangle on integer pixel boundaries.
type IRect struct {
	X0, Y0, X1, Y1 int32
}

// InfiniteIRect is the integer rect covering everything.
var InfiniteIRect = IRect{X0: MinInfCoord, Y0: MinInfCoord, X1: MaxInfCoord, Y1: MaxInfCoord}

func (r IRect) Width() int32  { return r.X1 - r.X0 }
func (r IRect) Height() int32 { return r.Y1 - r.Y0 }

func (r IRect) IsEmpty() bool    { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }
func (r IRect) IsInfinite() bool { return r.X0 == MinInfCoord }

// Rect widens r back to float coordinates.
func (r IRect) Rect() Rect {
	return Rect{X0: float32(r.X0), Y0: float32(r.Y0), X1: float32(r.X1), Y1: float32(r.Y1)}
}

// Matrix is a 2x3 affine transform in the usual PDF layout:
//
//	/ A B 0 \
//	| C D 0 |
//	\ E F 1 /
type Matrix struct {
	A, B, C, D, E, F float32
}

// Identity is the do-nothing transform.
var Identity = Matrix{A: 1, D: 1}

// Scale returns a transform scaling by sx horizontally and sy
// vertically.
func Scale(sx, sy float32) Matrix {
	return Matrix{A: sx, D: sy}
}

// Translate returns a transform shifting by tx, ty.
func Translate(tx, ty float32) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Rotate returns a counterclockwise rotation by degrees. Multiples of
// 90 produce exact matrices.
func Rotate(degrees float32) Matrix {
	for degrees < 0 {
		degrees += 360
	}
	for degrees >= 360 {
		degrees -= 360
	}
	switch degrees {
	case 0:
		return Identity
	case 90:
		return Matrix{B: 1, C: -1}
	case 180:
		return Matrix{A: -1, D: -1}
	case 270:
		return Matrix{B: -1, C: 1}
	}
	s := float32(math.Sin(float64(degrees) * math.Pi / 180))
	c := float32(math.Cos(float64(degrees) * math.Pi / 180))
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Concat returns the transform applying m first, then o.
func (m Matrix) Concat(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
		E: m.E*o.A + m.F*o.C + o.E,
		F: m.E*o.B + m.F*o.D + o.F,
	}
}

// Quad is a four-cornered region, not necessarily axis-aligned. Search
// hits and text selections come back as quads.
type Quad struct {
	UL, UR, LL, LR Point
}

// QuadFromRect covers r with an axis-aligned quad.
func QuadFromRect(r Rect) Quad {
	return Quad{
		UL: Point{r.X0, r.Y0},
		UR: Point{r.X1, r.Y0},
		LL: Point{r.X0, r.Y1},
		LR: Point{r.X1, r.Y1},
	}
}

// Bounds returns the bounding rect of the quad.
func (q Quad) Bounds() Rect {
	return Rect{
		X0: min(min(q.UL.X, q.UR.X), min(q.LL.X, q.LR.X)),
		Y0: min(min(q.UL.Y, q.UR.Y), min(q.LL.Y, q.LR.Y)),
		X1: max(max(q.UL.X, q.UR.X), max(q.LL.X, q.LR.X)),
		Y1: max(max(q.UL.Y, q.UR.Y), max(q.LL.Y, q.LR.Y)),
	}
}

// Location addresses a page within a chaptered document. Plain
// documents have a single chapter 0.
type Location struct {
	Chapter, Page int
}

// DestKind selects the view fitting style of a link destination.
type DestKind int

const (
	DestFit DestKind = iota
	DestFitB
	DestFitH
	DestFitBH
	DestFitV
	DestFitBV
	DestFitR
	DestXYZ
)

// LinkDest describes where a resolved link points.
type LinkDest struct {
	Loc              Location
	Kind             DestKind
	X, Y, W, H, Zoom float32
}

// Conversions between the public and ffi value types. The field layouts
// are identical; the duplication keeps the internal package out of the
// exported API.

func (p Point) ffi() ffi.Point   { return ffi.Point{X: p.X, Y: p.Y} }
func (r Rect) ffi() ffi.Rect     { return ffi.Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1} }
func (r IRect) ffi() ffi.IRect   { return ffi.IRect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1} }
func (m Matrix) ffi() ffi.Matrix { return ffi.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F} }

func pointFromFFI(p ffi.Point) Point { return Point{X: p.X, Y: p.Y} }
func rectFromFFI(r ffi.Rect) Rect    { return Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1} }
func matrixFromFFI(m ffi.Matrix) Matrix {
	return Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func quadFromFFI(q ffi.Quad) Quad {
	return Quad{UL: pointFromFFI(q.UL), UR: pointFromFFI(q.UR), LL: pointFromFFI(q.LL), LR: pointFromFFI(q.LR)}
}

func quadsFromFFI(qs []ffi.Quad) []Quad {
	if qs == nil {
		return nil
	}
	out := make([]Quad, len(qs))
	for i, q := range qs {
		out[i] = quadFromFFI(q)
	}
	return out
}

func locationFromFFI(l ffi.Location) Location { return Location{Chapter: l.Chapter, Page: l.Page} }
