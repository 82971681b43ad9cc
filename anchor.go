package holemask

// Anchor designates which feature point of the hole coincides with the
// descriptor's position. Values outside the enumeration behave as
// Middle; that fallback is deliberate, mirroring permissive CSS-like
// keyword handling, and is not an error.
type Anchor int

const (
	// Middle centers the hole on the position.
	Middle Anchor = iota

	// TopLeft places the hole's top-left corner at the position.
	TopLeft

	// TopRight places the hole's top-right corner at the position.
	TopRight

	// BottomLeft places the hole's bottom-left corner at the position.
	BottomLeft

	// BottomRight places the hole's bottom-right corner at the position.
	BottomRight
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case Middle:
		return "Middle"
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Middle"
	}
}
