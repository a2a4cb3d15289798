package ffi

// Geometry values cross the boundary by value, field for field. They
// deliberately use float32 to match the native single-precision types,
// so a value that round-trips through native code compares equal.

const (
	// Coordinate sentinels marking the infinite rect, same bit
	// patterns the native library uses.
	MinInfCoord = -2147483648
	MaxInfCoord = 2147483520
)

type Point struct {
	X, Y float32
}

type Rect struct {
	X0, Y0, X1, Y1 float32
}

type IRect struct {
	X0, Y0, X1, Y1 int32
}

type Matrix struct {
	A, B, C, D, E, F float32
}

// Quad is a four-cornered region, not necessarily axis-aligned.
type Quad struct {
	UL, UR, LL, LR Point
}

// Location addresses a page within a chaptered document. Plain
// documents have a single chapter 0.
type Location struct {
	Chapter, Page int
}

// Identity is the do-nothing transform.
var Identity = Matrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}

var (
	InfiniteRect  = Rect{X0: MinInfCoord, Y0: MinInfCoord, X1: MaxInfCoord, Y1: MaxInfCoord}
	InfiniteIRect = IRect{X0: MinInfCoord, Y0: MinInfCoord, X1: MaxInfCoord, Y1: MaxInfCoord}
)

func (r Rect) IsInfinite() bool { return r.X0 == MinInfCoord }

func (r IRect) IsInfinite() bool { return r.X0 == MinInfCoord }

// DestKind mirrors the native link destination styles.
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

// LinkDest describes where a resolved link points, including the view
// fitting hint.
type LinkDest struct {
	Loc              Location
	Kind             DestKind
	X, Y, W, H, Zoom float32
}
