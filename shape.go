package holemask

// Shape selects the geometry of the hole.
type Shape int

const (
	// Rectangle is an axis-aligned box sized by one or two lengths
	// (a single length is used for both width and height).
	Rectangle Shape = iota

	// Square is an axis-aligned box sized by a single length used for
	// both sides; extra size tokens are ignored.
	Square

	// Circle is sized by a single length used as the diameter; extra
	// size tokens are ignored.
	Circle
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "Rectangle"
	case Square:
		return "Square"
	case Circle:
		return "Circle"
	default:
		return "Unknown"
	}
}
