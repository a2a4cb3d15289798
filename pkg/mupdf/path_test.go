package mupdf_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

// pathRecorder captures walked commands for structural comparison.
type pathRecorder struct {
	Commands []pathCommand
}

type pathCommand struct {
	Op     string
	Coords []float32
}

func (r *pathRecorder) MoveTo(x, y float32) {
	r.Commands = append(r.Commands, pathCommand{"move", []float32{x, y}})
}

func (r *pathRecorder) LineTo(x, y float32) {
	r.Commands = append(r.Commands, pathCommand{"line", []float32{x, y}})
}

func (r *pathRecorder) CurveTo(cx1, cy1, cx2, cy2, ex, ey float32) {
	r.Commands = append(r.Commands, pathCommand{"curve", []float32{cx1, cy1, cx2, cy2, ex, ey}})
}

func (r *pathRecorder) ClosePath() {
	r.Commands = append(r.Commands, pathCommand{"close", nil})
}

func TestPathWalk(t *testing.T) {
	c := newTestContext(t)

	p, err := mupdf.NewPath(c)
	require.NoError(t, err)
	defer p.Drop()

	require.NoError(t, p.MoveTo(10, 10))
	require.NoError(t, p.LineTo(100, 10))
	require.NoError(t, p.CurveTo(110, 10, 120, 20, 120, 30))
	require.NoError(t, p.ClosePath())

	var rec pathRecorder
	require.NoError(t, p.Walk(&rec))

	want := []pathCommand{
		{"move", []float32{10, 10}},
		{"line", []float32{100, 10}},
		{"curve", []float32{110, 10, 120, 20, 120, 30}},
		{"close", nil},
	}
	if diff := cmp.Diff(want, rec.Commands); diff != "" {
		t.Fatalf("walked commands mismatch (-want +got):\n%s", diff)
	}
}

func TestPathTransformAndBounds(t *testing.T) {
	c := newTestContext(t)

	p, err := mupdf.NewPath(c)
	require.NoError(t, err)
	defer p.Drop()

	require.NoError(t, p.Rect(0, 0, 10, 20))
	require.NoError(t, p.Transform(mupdf.Scale(2, 2)))

	bounds, err := p.Bounds(nil, mupdf.Identity)
	require.NoError(t, err)
	require.Equal(t, float32(20), bounds.Width())
	require.Equal(t, float32(40), bounds.Height())

	// A stroke widens the bounds by half the line width on each side.
	stroke, err := mupdf.NewStrokeState(c, mupdf.StrokeOptions{LineWidth: 4, MiterLimit: 10})
	require.NoError(t, err)
	defer stroke.Drop()

	stroked, err := p.Bounds(stroke, mupdf.Identity)
	require.NoError(t, err)
	require.Greater(t, stroked.Width(), bounds.Width())
}

func TestPathCloneIsIndependent(t *testing.T) {
	c := newTestContext(t)

	p, err := mupdf.NewPath(c)
	require.NoError(t, err)
	defer p.Drop()
	require.NoError(t, p.MoveTo(0, 0))
	require.NoError(t, p.LineTo(5, 5))

	clone, err := p.Clone()
	require.NoError(t, err)
	defer clone.Drop()
	require.NoError(t, clone.LineTo(10, 0))

	var orig, copied pathRecorder
	require.NoError(t, p.Walk(&orig))
	require.NoError(t, clone.Walk(&copied))
	require.Len(t, orig.Commands, 2)
	require.Len(t, copied.Commands, 3)
}

func TestStrokeStateAccessors(t *testing.T) {
	c := newTestContext(t)

	s, err := mupdf.NewStrokeState(c, mupdf.StrokeOptions{
		StartCap:   mupdf.LineCapRound,
		EndCap:     mupdf.LineCapSquare,
		LineJoin:   mupdf.LineJoinBevel,
		LineWidth:  2.5,
		MiterLimit: 8,
		DashPhase:  1,
		Dash:       []float32{3, 1, 2},
	})
	require.NoError(t, err)
	defer s.Drop()

	require.Equal(t, mupdf.LineCapRound, s.StartCap())
	require.Equal(t, mupdf.LineCapSquare, s.EndCap())
	require.Equal(t, mupdf.LineJoinBevel, s.LineJoin())
	require.Equal(t, float32(2.5), s.LineWidth())
	require.Equal(t, []float32{3, 1, 2}, s.Dashes())
}
