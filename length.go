package holemask

import "strconv"

// Unit identifies how a Length magnitude is interpreted.
type Unit int

const (
	// Absolute lengths are device pixels ("px"); the magnitude is used
	// as-is regardless of container size.
	Absolute Unit = iota

	// Percent lengths ("%") are a fraction of the container extent on
	// the relevant axis, resolved only when that extent is known.
	Percent
)

// String returns the unit suffix as it appears in the textual form.
func (u Unit) String() string {
	switch u {
	case Absolute:
		return "px"
	case Percent:
		return "%"
	default:
		return "Unknown"
	}
}

// Length is a non-negative magnitude paired with a unit.
// It is an immutable value type; the zero value is 0px.
type Length struct {
	Magnitude float64
	Unit      Unit
}

// Px is a convenience function to create an absolute Length.
func Px(m float64) Length {
	return Length{Magnitude: m, Unit: Absolute}
}

// Pct is a convenience function to create a percentage Length.
func Pct(m float64) Length {
	return Length{Magnitude: m, Unit: Percent}
}

// ParseLength parses the textual form of a length: an unsigned decimal
// number followed immediately by a unit suffix, "px" or "%"
// (case-sensitive). Examples: "200px", "50%", "12.5px".
//
// Anything else fails with a *MalformedLengthError carrying the
// offending text. There is no whitespace tolerance and no sign,
// exponent, or bare-number form.
func ParseLength(text string) (Length, error) {
	var unit Unit
	var num string
	switch {
	case len(text) > 2 && text[len(text)-2:] == "px":
		unit = Absolute
		num = text[:len(text)-2]
	case len(text) > 1 && text[len(text)-1] == '%':
		unit = Percent
		num = text[:len(text)-1]
	default:
		return Length{}, &MalformedLengthError{Text: text}
	}

	if !validMagnitude(num) {
		return Length{}, &MalformedLengthError{Text: text}
	}
	m, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, &MalformedLengthError{Text: text}
	}
	return Length{Magnitude: m, Unit: unit}, nil
}

// validMagnitude reports whether s matches \d+(\.\d+)? exactly.
// strconv.ParseFloat alone is too permissive (signs, exponents,
// leading dots), so the shape is checked first.
func validMagnitude(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the textual form of the length ("200px", "12.5%").
func (l Length) String() string {
	return strconv.FormatFloat(l.Magnitude, 'f', -1, 64) + l.Unit.String()
}

// Resolve converts the length to device pixels against a container
// extent. Absolute lengths pass through unchanged; percentages scale
// by the extent.
func (l Length) Resolve(containerExtent float64) float64 {
	if l.Unit == Percent {
		return containerExtent * l.Magnitude / 100
	}
	return l.Magnitude
}

// half returns a length of half the magnitude with the unit preserved.
func (l Length) half() Length {
	return Length{Magnitude: l.Magnitude / 2, Unit: l.Unit}
}
