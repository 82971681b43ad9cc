package holemask

// PixelRect is a fully resolved axis-aligned box in device pixels.
type PixelRect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent of the rect.
func (r PixelRect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rect.
func (r PixelRect) Height() float64 { return r.Bottom - r.Top }

// Empty reports whether the rect covers no area.
func (r PixelRect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies in the rect, boundary
// inclusive.
func (r PixelRect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// PixelCircle is a fully resolved circle in device pixels.
type PixelCircle struct {
	Center Point
	Radius float64
}

// Resolve converts the boundary's edge coordinates to device pixels.
// Horizontal coordinates resolve against the container width, vertical
// ones against the height. The container dimensions are read fresh per
// call; nothing is cached, since they can change between layout passes.
func (b RectBoundary) Resolve(containerW, containerH float64) PixelRect {
	r := PixelRect{
		Left:   b.Left.Resolve(containerW),
		Top:    b.Top.Resolve(containerH),
		Right:  b.Right.Resolve(containerW),
		Bottom: b.Bottom.Resolve(containerH),
	}
	Logger().Debug("resolved rect boundary",
		"left", r.Left, "top", r.Top, "right", r.Right, "bottom", r.Bottom)
	return r
}

// Resolve converts the circle's center and radius to device pixels.
// The center x resolves against the container width and y against the
// height; a percentage radius resolves against the width (the
// horizontal axis is the radial reference extent).
func (b CircleBoundary) Resolve(containerW, containerH float64) PixelCircle {
	c := PixelCircle{
		Center: Pt(b.CenterX.Resolve(containerW), b.CenterY.Resolve(containerH)),
		Radius: b.Radius.Resolve(containerW),
	}
	Logger().Debug("resolved circle boundary",
		"cx", c.Center.X, "cy", c.Center.Y, "radius", c.Radius)
	return c
}
