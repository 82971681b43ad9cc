package holemask

import "math"

// Point is a 2D point in device pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Contains reports whether the point lies in the circle, boundary
// inclusive: a click exactly on the rim counts as inside the hole.
//
// The caller decides what the boolean means (typically: inside routes
// the pointer event to whatever lies beneath the hole, outside treats
// it as an overlay interaction). That routing, and any event
// forwarding, is the presentation layer's concern.
func (c PixelCircle) Contains(p Point) bool {
	return p.Distance(c.Center) <= c.Radius
}
