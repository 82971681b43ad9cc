package holemask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHole(t *testing.T, x, y string, opts ...HoleOption) Hole {
	t.Helper()
	h, err := NewHole(x, y, opts...)
	require.NoError(t, err)
	return h
}

func TestNewHoleDefaults(t *testing.T) {
	h := mustHole(t, "10px", "20%")
	assert.Equal(t, Px(10), h.X)
	assert.Equal(t, Pct(20), h.Y)
	assert.Equal(t, "0px", h.Size)
	assert.Equal(t, Middle, h.Anchor)
	assert.Equal(t, Rectangle, h.Shape)
}

func TestNewHoleOptions(t *testing.T) {
	h := mustHole(t, "0px", "0px",
		WithSize("100px"),
		WithAnchor(TopLeft),
		WithShape(Circle),
	)
	assert.Equal(t, "100px", h.Size)
	assert.Equal(t, TopLeft, h.Anchor)
	assert.Equal(t, Circle, h.Shape)
}

func TestNewHoleRejectsBadPosition(t *testing.T) {
	_, err := NewHole("banana", "0px")
	assert.ErrorIs(t, err, ErrMalformedLength)

	_, err = NewHole("0px", "10")
	assert.ErrorIs(t, err, ErrMalformedLength)
}

func TestComputeBoundaryRectAnchors(t *testing.T) {
	// Position (100px, 200px), box 40x60. Each anchor pins its named
	// corner of the box to the position.
	tests := []struct {
		name   string
		anchor Anchor
		want   PixelRect
	}{
		{"TopLeft", TopLeft, PixelRect{Left: 100, Top: 200, Right: 140, Bottom: 260}},
		{"TopRight", TopRight, PixelRect{Left: 60, Top: 200, Right: 100, Bottom: 260}},
		{"BottomLeft", BottomLeft, PixelRect{Left: 100, Top: 140, Right: 140, Bottom: 200}},
		{"BottomRight", BottomRight, PixelRect{Left: 60, Top: 140, Right: 100, Bottom: 200}},
		{"Middle", Middle, PixelRect{Left: 80, Top: 170, Right: 120, Bottom: 230}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHole(t, "100px", "200px",
				WithSize("40px 60px"), WithAnchor(tt.anchor))
			b, err := ComputeBoundary(h)
			require.NoError(t, err)

			box, ok := b.(RectBoundary)
			require.True(t, ok, "rectangle must yield a RectBoundary")
			got := box.Resolve(1000, 1000)
			assert.InDelta(t, tt.want.Left, got.Left, 1e-9)
			assert.InDelta(t, tt.want.Top, got.Top, 1e-9)
			assert.InDelta(t, tt.want.Right, got.Right, 1e-9)
			assert.InDelta(t, tt.want.Bottom, got.Bottom, 1e-9)
		})
	}
}

// For every anchor and any container, the resolved box keeps its size:
// right-left == w and bottom-top == h.
func TestRectAnchorSymmetry(t *testing.T) {
	anchors := []Anchor{Middle, TopLeft, TopRight, BottomLeft, BottomRight}
	containers := []struct{ w, h float64 }{
		{1000, 800}, {500, 300}, {1, 1}, {1920.5, 1079.5},
	}

	h := mustHole(t, "30%", "40px", WithSize("20% 50px"))
	for _, anchor := range anchors {
		h.Anchor = anchor
		b, err := ComputeBoundary(h)
		require.NoError(t, err)
		box := b.(RectBoundary)

		for _, c := range containers {
			got := box.Resolve(c.w, c.h)
			wantW := Pct(20).Resolve(c.w)
			assert.InDelta(t, wantW, got.Width(), 1e-9,
				"anchor %s container %gx%g", anchor, c.w, c.h)
			assert.InDelta(t, 50.0, got.Height(), 1e-9,
				"anchor %s container %gx%g", anchor, c.w, c.h)
		}
	}
}

// Middle places the position exactly at the box center.
func TestMiddleAnchorCentering(t *testing.T) {
	h := mustHole(t, "25%", "60px", WithSize("100px 30%"), WithAnchor(Middle))
	b, err := ComputeBoundary(h)
	require.NoError(t, err)
	box := b.(RectBoundary)

	for _, c := range []struct{ w, h float64 }{{1000, 800}, {640, 480}} {
		got := box.Resolve(c.w, c.h)
		assert.InDelta(t, Pct(25).Resolve(c.w), (got.Left+got.Right)/2, 1e-9)
		assert.InDelta(t, 60.0, (got.Top+got.Bottom)/2, 1e-9)
	}
}

func TestComputeBoundarySquare(t *testing.T) {
	// Squares ignore the second size token and use the first for both
	// sides.
	h := mustHole(t, "100px", "100px",
		WithSize("200px 400px"), WithShape(Square), WithAnchor(TopLeft))
	b, err := ComputeBoundary(h)
	require.NoError(t, err)

	got := b.(RectBoundary).Resolve(1000, 1000)
	assert.InDelta(t, 200.0, got.Width(), 1e-9)
	assert.InDelta(t, 200.0, got.Height(), 1e-9)
}

func TestComputeBoundaryCircleAnchors(t *testing.T) {
	// Diameter 100px, so the corner anchors shift the center inward by
	// the 50px radius on each axis.
	tests := []struct {
		name   string
		anchor Anchor
		wantX  float64
		wantY  float64
	}{
		{"Middle stays on position", Middle, 200, 300},
		{"TopLeft shifts right and down", TopLeft, 250, 350},
		{"TopRight shifts left and down", TopRight, 150, 350},
		{"BottomLeft shifts right and up", BottomLeft, 250, 250},
		{"BottomRight shifts left and up", BottomRight, 150, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHole(t, "200px", "300px",
				WithSize("100px"), WithShape(Circle), WithAnchor(tt.anchor))
			b, err := ComputeBoundary(h)
			require.NoError(t, err)

			circle, ok := b.(CircleBoundary)
			require.True(t, ok, "circle must yield a CircleBoundary")
			assert.Equal(t, Px(50), circle.Radius)

			got := circle.Resolve(1000, 800)
			assert.InDelta(t, tt.wantX, got.Center.X, 1e-9)
			assert.InDelta(t, tt.wantY, got.Center.Y, 1e-9)
			assert.InDelta(t, 50.0, got.Radius, 1e-9)
		})
	}
}

func TestCircleRadiusKeepsUnit(t *testing.T) {
	h := mustHole(t, "50%", "50%", WithSize("40%"), WithShape(Circle))
	b, err := ComputeBoundary(h)
	require.NoError(t, err)

	circle := b.(CircleBoundary)
	assert.Equal(t, Pct(20), circle.Radius)
	assert.InDelta(t, 200.0, circle.Resolve(1000, 800).Radius, 1e-9)
}

// Unrecognized anchors behave exactly like Middle.
func TestUnknownAnchorFallsBackToMiddle(t *testing.T) {
	unknown := Anchor(99)

	rect := mustHole(t, "100px", "100px", WithSize("40px"), WithAnchor(unknown))
	got, err := ComputeBoundary(rect)
	require.NoError(t, err)

	rect.Anchor = Middle
	want, err := ComputeBoundary(rect)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	circle := mustHole(t, "100px", "100px",
		WithSize("40px"), WithShape(Circle), WithAnchor(unknown))
	gotC, err := ComputeBoundary(circle)
	require.NoError(t, err)

	circle.Anchor = Middle
	wantC, err := ComputeBoundary(circle)
	require.NoError(t, err)
	assert.Equal(t, wantC, gotC)
}

func TestComputeBoundaryUnknownShape(t *testing.T) {
	h := mustHole(t, "0px", "0px", WithSize("100px"))
	h.Shape = Shape(7)

	_, err := ComputeBoundary(h)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}

func TestComputeBoundaryPropagatesSizeErrors(t *testing.T) {
	h := mustHole(t, "0px", "0px", WithSize("banana"))
	_, err := ComputeBoundary(h)
	assert.ErrorIs(t, err, ErrMalformedLength)

	h = mustHole(t, "0px", "0px", WithSize("1px 2px 3px"))
	_, err = ComputeBoundary(h)
	assert.ErrorIs(t, err, ErrInvalidSizeArity)
}

// Mixed-unit edges stay symbolic until resolution.
func TestBoundarySymbolicEdges(t *testing.T) {
	h := mustHole(t, "50%", "50%", WithSize("200px 100px"), WithAnchor(Middle))
	b, err := ComputeBoundary(h)
	require.NoError(t, err)

	box := b.(RectBoundary)
	assert.Equal(t, "50% - 100px", box.Left.String())
	assert.Equal(t, "50% - 50px", box.Top.String())
	assert.Equal(t, "50% + 100px", box.Right.String())
	assert.Equal(t, "50% + 50px", box.Bottom.String())
}
