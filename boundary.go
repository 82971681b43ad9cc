package holemask

// Hole describes a cutout in an opaque overlay: a position, a size
// expression, an anchor, and a shape. It is immutable for the duration
// of one computation; every query recomputes from scratch.
//
// The X and Y position lengths and the size lengths may mix units
// freely (e.g. a percentage x with an absolute width) because each
// coordinate is algebraically independent.
type Hole struct {
	X      Length
	Y      Length
	Size   string
	Anchor Anchor
	Shape  Shape
}

// HoleOption configures a Hole during creation.
type HoleOption func(*Hole)

// WithSize sets the size expression: one or two whitespace-separated
// lengths, interpreted per the hole's shape (see NormalizeSize).
func WithSize(sizeText string) HoleOption {
	return func(h *Hole) {
		h.Size = sizeText
	}
}

// WithAnchor sets which feature point of the hole sits at the position.
func WithAnchor(a Anchor) HoleOption {
	return func(h *Hole) {
		h.Anchor = a
	}
}

// WithShape sets the hole's geometry.
func WithShape(s Shape) HoleOption {
	return func(h *Hole) {
		h.Shape = s
	}
}

// NewHole creates a Hole at the given position, parsing both
// coordinates. Defaults: size "0px", Middle anchor, Rectangle shape.
//
// Example:
//
//	h, err := holemask.NewHole("50%", "50%",
//		holemask.WithSize("200px 100px"),
//		holemask.WithShape(holemask.Rectangle))
func NewHole(x, y string, opts ...HoleOption) (Hole, error) {
	px, err := ParseLength(x)
	if err != nil {
		return Hole{}, err
	}
	py, err := ParseLength(y)
	if err != nil {
		return Hole{}, err
	}
	h := Hole{X: px, Y: py, Size: "0px", Anchor: Middle, Shape: Rectangle}
	for _, opt := range opts {
		opt(&h)
	}
	return h, nil
}

// Boundary is the computed geometry of a hole: a RectBoundary for box
// shapes or a CircleBoundary for circles. Coordinates are deferred
// Coord expressions; call the concrete type's Resolve with the
// container's pixel dimensions to obtain numbers.
type Boundary interface {
	boundary()
}

// RectBoundary is an axis-aligned box given by its four edge
// coordinates.
type RectBoundary struct {
	Left   Coord
	Top    Coord
	Right  Coord
	Bottom Coord
}

func (RectBoundary) boundary() {}

// CircleBoundary is a circle given by its center coordinates and a
// radius length (unit preserved from the size extent).
type CircleBoundary struct {
	CenterX Coord
	CenterY Coord
	Radius  Length
}

func (CircleBoundary) boundary() {}

// ComputeBoundary derives the hole's boundary from its descriptor:
// size normalization, then anchor-relative edge (or center) placement.
//
// For box shapes the named corner of the box coincides with the
// position; Middle centers the box on it. For circles the center is
// shifted inward from the position by one radius per axis for the
// corner anchors, and left at the position for Middle. Unknown anchor
// values take the Middle behavior; an unknown shape is an
// *UnsupportedShapeError.
func ComputeBoundary(h Hole) (Boundary, error) {
	size, err := NormalizeSize(h.Shape, h.Size)
	if err != nil {
		return nil, err
	}

	var b Boundary
	switch h.Shape {
	case Rectangle, Square:
		b = rectBoundary(h.X, h.Y, size, h.Anchor)
	case Circle:
		b = circleBoundary(h.X, h.Y, size.Width.half(), h.Anchor)
	default:
		return nil, &UnsupportedShapeError{Shape: h.Shape}
	}

	Logger().Debug("computed hole boundary",
		"shape", h.Shape, "anchor", h.Anchor, "size", h.Size)
	return b, nil
}

// rectBoundary spreads the box around the position so that the
// anchored corner lands on it.
func rectBoundary(px, py Length, size Size, anchor Anchor) RectBoundary {
	w, h := size.Width, size.Height

	switch anchor {
	case TopLeft:
		return RectBoundary{
			Left:   At(px),
			Top:    At(py),
			Right:  coordAdd(px, w),
			Bottom: coordAdd(py, h),
		}
	case TopRight:
		return RectBoundary{
			Left:   coordSub(px, w),
			Top:    At(py),
			Right:  At(px),
			Bottom: coordAdd(py, h),
		}
	case BottomLeft:
		return RectBoundary{
			Left:   At(px),
			Top:    coordSub(py, h),
			Right:  coordAdd(px, w),
			Bottom: At(py),
		}
	case BottomRight:
		return RectBoundary{
			Left:   coordSub(px, w),
			Top:    coordSub(py, h),
			Right:  At(px),
			Bottom: At(py),
		}
	default: // Middle and any unrecognized anchor
		return RectBoundary{
			Left:   coordSub(px, w.half()),
			Top:    coordSub(py, h.half()),
			Right:  coordAdd(px, w.half()),
			Bottom: coordAdd(py, h.half()),
		}
	}
}

// circleBoundary shifts the center inward by one radius per axis for
// the corner anchors; Middle leaves it on the position.
func circleBoundary(px, py, r Length, anchor Anchor) CircleBoundary {
	var cx, cy Coord
	switch anchor {
	case TopLeft:
		cx, cy = coordAdd(px, r), coordAdd(py, r)
	case TopRight:
		cx, cy = coordSub(px, r), coordAdd(py, r)
	case BottomLeft:
		cx, cy = coordAdd(px, r), coordSub(py, r)
	case BottomRight:
		cx, cy = coordSub(px, r), coordSub(py, r)
	default: // Middle and any unrecognized anchor
		cx, cy = At(px), At(py)
	}
	return CircleBoundary{CenterX: cx, CenterY: cy, Radius: r}
}
