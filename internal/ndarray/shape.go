package ndarray

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array, outermost first.
type Shape []int

// NumElements returns the number of scalars the shape describes.
// A rank-0 shape describes a single scalar. The result is meaningless for
// shapes that fail Validate; use size when the shape is untrusted.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// size returns the element count, or false if a dimension is negative or
// the product overflows int.
func (s Shape) size() (int, bool) {
	n := 1
	for _, dim := range s {
		if dim < 0 {
			return 0, false
		}
		if dim != 0 && n > math.MaxInt/dim {
			return 0, false
		}
		n *= dim
	}
	return n, true
}

// byteLen returns the buffer length the shape needs under d, or false if it
// cannot be represented.
func (s Shape) byteLen(d Dtype) (int, bool) {
	n, ok := s.size()
	if !ok {
		return 0, false
	}
	if d.itemSize > 0 && n > math.MaxInt/d.itemSize {
		return 0, false
	}
	return n * d.itemSize, true
}

// Validate checks that no dimension is negative and the element count fits in int.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	if _, ok := s.size(); !ok {
		return fmt.Errorf("shape %v has too many elements", s)
	}
	return nil
}

// Equal reports whether both shapes have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides returns the row-major element offset of a unit step along
// each axis. The last axis has stride 1.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		strides[axis] = step
		step *= s[axis]
	}
	return strides
}

// String renders the shape as "[2, 3]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(']')
	return b.String()
}
