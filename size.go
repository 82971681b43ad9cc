package holemask

import "strings"

// Size is a hole's normalized extent. For Square and Circle shapes
// Width and Height are equal (the extent / diameter).
type Size struct {
	Width  Length
	Height Length
}

// NormalizeSize parses a size expression into the shape-correct Size.
// The expression is one or more length tokens separated by whitespace.
//
// Rectangle accepts one token (used for both width and height) or two
// tokens (width then height); any other count is an
// *InvalidSizeArityError.
//
// Square and Circle take the first token as the extent and silently
// ignore the rest, mirroring CSS's first-value-wins truncation. That
// leniency is observable behavior and must not be turned into an
// error.
func NormalizeSize(shape Shape, sizeText string) (Size, error) {
	tokens := strings.Fields(sizeText)

	switch shape {
	case Rectangle:
		switch len(tokens) {
		case 1:
			l, err := ParseLength(tokens[0])
			if err != nil {
				return Size{}, err
			}
			return Size{Width: l, Height: l}, nil
		case 2:
			w, err := ParseLength(tokens[0])
			if err != nil {
				return Size{}, err
			}
			h, err := ParseLength(tokens[1])
			if err != nil {
				return Size{}, err
			}
			return Size{Width: w, Height: h}, nil
		default:
			return Size{}, &InvalidSizeArityError{Shape: shape, Got: len(tokens)}
		}

	case Square, Circle:
		if len(tokens) == 0 {
			return Size{}, &InvalidSizeArityError{Shape: shape, Got: 0}
		}
		extent, err := ParseLength(tokens[0])
		if err != nil {
			return Size{}, err
		}
		return Size{Width: extent, Height: extent}, nil

	default:
		return Size{}, &UnsupportedShapeError{Shape: shape}
	}
}
