package holemask

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The typed errors below
// wrap these and carry the offending input for inspection via errors.As.
var (
	ErrMalformedLength  = errors.New("holemask: malformed length")
	ErrInvalidSizeArity = errors.New("holemask: invalid size arity")
	ErrUnsupportedShape = errors.New("holemask: unsupported shape")
)

// MalformedLengthError reports text that does not match the length
// grammar <digits>[.<digits>](px|%).
type MalformedLengthError struct {
	Text string
}

func (e *MalformedLengthError) Error() string {
	return fmt.Sprintf("holemask: malformed length %q (want <number>px or <number>%%)", e.Text)
}

func (e *MalformedLengthError) Unwrap() error { return ErrMalformedLength }

// InvalidSizeArityError reports a size expression whose token count
// cannot be resolved for the shape (a rectangle needs one or two
// lengths; every shape needs at least one).
type InvalidSizeArityError struct {
	Shape Shape
	Got   int
}

func (e *InvalidSizeArityError) Error() string {
	return fmt.Sprintf("holemask: invalid size arity for %s: got %d length(s)", e.Shape, e.Got)
}

func (e *InvalidSizeArityError) Unwrap() error { return ErrInvalidSizeArity }

// UnsupportedShapeError reports a Shape value outside the known
// enumeration. Unlike anchors, shapes have no documented fallback, so
// an unknown value fails fast instead of silently guessing.
type UnsupportedShapeError struct {
	Shape Shape
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("holemask: unsupported shape %s (%d)", e.Shape, int(e.Shape))
}

func (e *UnsupportedShapeError) Unwrap() error { return ErrUnsupportedShape }
