package holemask

type coordKind int

const (
	coordLiteral coordKind = iota
	coordSum
	coordDiff
)

// Coord is a coordinate whose pixel value may depend on the container
// size. It is either a literal Length or a symbolic sum/difference of
// a reference Length and a delta Length.
//
// The symbolic forms exist because absolute and percentage magnitudes
// are not commensurable: "50% + 100px" cannot be collapsed to one
// number until the container extent is known. Same-unit expressions
// are folded eagerly at construction (resolution is linear in both
// units, so folding is observably identical), except a difference
// that would fold below zero, which stays symbolic: a Length magnitude
// is never negative, but a resolved coordinate may be, for a hole
// hanging past the container's origin.
type Coord struct {
	kind  coordKind
	ref   Length
	delta Length
}

// At creates a literal coordinate from a single length.
func At(l Length) Coord {
	return Coord{kind: coordLiteral, ref: l}
}

// coordAdd builds ref + delta, folding when the units match.
func coordAdd(ref, delta Length) Coord {
	if ref.Unit == delta.Unit {
		return At(Length{Magnitude: ref.Magnitude + delta.Magnitude, Unit: ref.Unit})
	}
	return Coord{kind: coordSum, ref: ref, delta: delta}
}

// coordSub builds ref - delta, folding when the units match and the
// result is representable as a non-negative Length.
func coordSub(ref, delta Length) Coord {
	if ref.Unit == delta.Unit && ref.Magnitude >= delta.Magnitude {
		return At(Length{Magnitude: ref.Magnitude - delta.Magnitude, Unit: ref.Unit})
	}
	return Coord{kind: coordDiff, ref: ref, delta: delta}
}

// Resolve converts the coordinate to device pixels against a container
// extent. The reference and delta resolve independently against the
// same extent (each carries its own unit) and combine per the recorded
// operator.
func (c Coord) Resolve(containerExtent float64) float64 {
	switch c.kind {
	case coordSum:
		return c.ref.Resolve(containerExtent) + c.delta.Resolve(containerExtent)
	case coordDiff:
		return c.ref.Resolve(containerExtent) - c.delta.Resolve(containerExtent)
	default:
		return c.ref.Resolve(containerExtent)
	}
}

// String renders the coordinate in the mixed-unit expression language:
// "200px", "50% + 100px", "50% - 100px".
func (c Coord) String() string {
	switch c.kind {
	case coordSum:
		return c.ref.String() + " + " + c.delta.String()
	case coordDiff:
		return c.ref.String() + " - " + c.delta.String()
	default:
		return c.ref.String()
	}
}
