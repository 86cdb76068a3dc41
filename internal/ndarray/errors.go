package ndarray

import (
	"errors"
	"fmt"
)

// Sentinel errors for the array core. They are wrapped with context,
// so test with errors.Is.
var (
	// ErrUnsupportedInput is returned for non-numeric scalars and for values
	// that an integer dtype cannot hold.
	ErrUnsupportedInput = errors.New("non-numerical data unsupported")

	// ErrUnsupportedDtype is returned for a (kind, size) pair outside the
	// supported variants.
	ErrUnsupportedDtype = errors.New("unsupported dtype")

	// ErrMalformedBuffer is returned when a buffer length is not a multiple of
	// the dtype item size.
	ErrMalformedBuffer = errors.New("malformed buffer")

	// ErrNonRectangular is returned when sibling sequences differ in length.
	ErrNonRectangular = errors.New("non-rectangular input")

	// ErrMaxDepth is returned when input nests deeper than the configured limit.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")

	// ErrShapeMismatch is returned when a flat data length disagrees with a shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfRange is returned by At for a bad index count or value.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ShapeError reports where in a nested input a structural problem was found.
type ShapeError struct {
	Err  error // One of ErrNonRectangular, ErrMaxDepth, ErrUnsupportedInput
	Path []int // Index path from the root to the offending value
	Want int   // Expected length, or -1 for a scalar
	Got  int   // Actual length, or -1 for a scalar
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if errors.Is(e.Err, ErrNonRectangular) {
		return fmt.Sprintf("%v at %v: want %s, got %s", e.Err, e.Path, describeLen(e.Want), describeLen(e.Got))
	}
	return fmt.Sprintf("%v at %v", e.Err, e.Path)
}

// Unwrap returns the sentinel error.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func describeLen(n int) string {
	if n < 0 {
		return "scalar"
	}
	return fmt.Sprintf("sequence of %d", n)
}
