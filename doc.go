// Package holemask computes the geometry of a hole cut into an opaque
// rectangular overlay and decides whether pointer clicks fall inside
// or outside that hole.
//
// # Overview
//
// A hole is described declaratively: a shape (rectangle, square, or
// circle), a position, a size expression, and an anchor naming which
// feature point of the hole sits at the position. Every length carries
// a unit, either device pixels ("px") or a percentage of the container
// ("%"), and units may mix freely across coordinates.
//
// From a descriptor the package derives a boundary: the four edges of
// an axis-aligned box, or a center and radius for circles. Because
// absolute and percentage lengths cannot be combined into one number
// ahead of time, edge coordinates are deferred [Coord] expressions,
// resolved to pixels only when the caller supplies the container's
// current dimensions.
//
// # Quick Start
//
//	import "github.com/mokcj0825/hole-mask"
//
//	h, _ := holemask.NewHole("50%", "50%",
//		holemask.WithSize("200px 100px"))
//
//	b, _ := holemask.ComputeBoundary(h)
//	box := b.(holemask.RectBoundary).Resolve(1000, 800)
//	// box is {Left: 400, Top: 350, Right: 600, Bottom: 450}
//
//	// The overlay paints the four opaque strips around the hole:
//	strips := holemask.OpaqueRegions(box, 1000, 800)
//	_ = strips
//
// For circle holes the resolved form supports hit-testing, so the
// presenter can route a click under the overlay when it lands in the
// hole:
//
//	c := b.(holemask.CircleBoundary).Resolve(w, h)
//	if c.Contains(holemask.Pt(clickX, clickY)) {
//		// forward the event to whatever lies beneath the hole
//	}
//
// # Purity
//
// Every operation is a deterministic function of its explicit inputs.
// The package holds no state besides the optional logger, caches
// nothing (container dimensions are read fresh per call), and is safe
// for concurrent use from any number of goroutines.
//
// # Coordinate System
//
// Standard screen coordinates: origin at the container's top-left,
// x increasing right, y increasing down, all pixel values float64.
package holemask
