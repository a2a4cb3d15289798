package mupdf_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

// Geometry is pure Go and needs no native library.

func TestMatrixRotateExactness(t *testing.T) {
	cases := map[float32]mupdf.Matrix{
		0:    mupdf.Identity,
		90:   {B: 1, C: -1},
		180:  {A: -1, D: -1},
		270:  {B: -1, C: 1},
		-90:  {B: -1, C: 1},
		360:  mupdf.Identity,
		450:  {B: 1, C: -1},
		-180: {A: -1, D: -1},
	}
	for degrees, want := range cases {
		if got := mupdf.Rotate(degrees); got != want {
			t.Errorf("Rotate(%v) = %+v, want %+v", degrees, got, want)
		}
	}
}

func TestMatrixConcat(t *testing.T) {
	m := mupdf.Translate(10, 20).Concat(mupdf.Scale(2, 3))
	p := mupdf.Point{X: 1, Y: 1}.Transform(m)
	// Translate first, then scale.
	want := mupdf.Point{X: 22, Y: 63}
	if p != want {
		t.Fatalf("transformed point = %+v, want %+v", p, want)
	}
}

func TestRectTransform(t *testing.T) {
	r := mupdf.Rect{X0: 0, Y0: 0, X1: 10, Y1: 20}

	got := r.Transform(mupdf.Rotate(90))
	want := mupdf.Rect{X0: -20, Y0: 0, X1: 0, Y1: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rotated rect mismatch (-want +got):\n%s", diff)
	}

	if !mupdf.Infinite.Transform(mupdf.Scale(2, 2)).IsInfinite() {
		t.Fatal("infinite rect lost infinity under transform")
	}
}

func TestRectUnion(t *testing.T) {
	a := mupdf.Rect{X0: 0, Y0: 0, X1: 5, Y1: 5}
	b := mupdf.Rect{X0: 3, Y0: -2, X1: 9, Y1: 4}
	empty := mupdf.Rect{}

	got := a.Union(b)
	want := mupdf.Rect{X0: 0, Y0: -2, X1: 9, Y1: 5}
	if got != want {
		t.Fatalf("union = %+v, want %+v", got, want)
	}
	if a.Union(empty) != a || empty.Union(a) != a {
		t.Fatal("union with empty rect must be identity")
	}
}

func TestRectRound(t *testing.T) {
	r := mupdf.Rect{X0: 0.5, Y0: 0.5, X1: 9.5, Y1: 9.5}
	got := r.Round()
	want := mupdf.IRect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	if got != want {
		t.Fatalf("rounded = %+v, want %+v", got, want)
	}

	// Coordinates a hair off a pixel boundary snap to it.
	r = mupdf.Rect{X0: 1.0005, Y0: 2.0002, X1: 2.9995, Y1: 3.9999}
	got = r.Round()
	want = mupdf.IRect{X0: 1, Y0: 2, X1: 3, Y1: 4}
	if got != want {
		t.Fatalf("rounded = %+v, want %+v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := mupdf.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	if !r.Contains(mupdf.Point{X: 0, Y: 0}) {
		t.Fatal("lower corner must be inside")
	}
	if r.Contains(mupdf.Point{X: 10, Y: 10}) {
		t.Fatal("upper corner must be outside")
	}
	if (mupdf.Rect{}).Contains(mupdf.Point{}) {
		t.Fatal("empty rect contains nothing")
	}
}

func TestQuadBounds(t *testing.T) {
	q := mupdf.QuadFromRect(mupdf.Rect{X0: 1, Y0: 2, X1: 3, Y1: 4})
	if got := q.Bounds(); got != (mupdf.Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}) {
		t.Fatalf("quad bounds = %+v", got)
	}
}
