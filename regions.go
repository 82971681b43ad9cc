package holemask

import "math"

// OpaqueRegions decomposes the overlay around a resolved box hole into
// four opaque strips: top (full width above the hole), bottom (full
// width below it), and left/right (between the top and bottom edges).
// Together the strips tile the container minus the hole with no
// overlap.
//
// The hole is clamped to the container first, so a hole touching or
// overhanging an edge produces an empty strip on that side rather than
// a negative one. Presentation layers paint these four rects to give
// the hole its cutout; circles have no rectilinear decomposition and
// are cut out radially by the presenter instead.
func OpaqueRegions(hole PixelRect, containerW, containerH float64) [4]PixelRect {
	h := PixelRect{
		Left:   clamp(hole.Left, 0, containerW),
		Top:    clamp(hole.Top, 0, containerH),
		Right:  clamp(hole.Right, 0, containerW),
		Bottom: clamp(hole.Bottom, 0, containerH),
	}

	top := PixelRect{Left: 0, Top: 0, Right: containerW, Bottom: h.Top}
	bottom := PixelRect{Left: 0, Top: h.Bottom, Right: containerW, Bottom: containerH}
	left := PixelRect{Left: 0, Top: h.Top, Right: h.Left, Bottom: h.Bottom}
	right := PixelRect{Left: h.Right, Top: h.Top, Right: containerW, Bottom: h.Bottom}

	return [4]PixelRect{top, bottom, left, right}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
