package ndarray

import (
	"bytes"
	"fmt"
)

// NdArray is a contiguous array: one byte buffer, one dtype, one shape.
// The array owns its buffer exclusively.
type NdArray struct {
	data  []byte
	dtype Dtype
	shape Shape
}

// Option configures New.
type Option func(*NdArray)

// WithDtype sets the element dtype. The default is Float64.
func WithDtype(d Dtype) Option {
	return func(a *NdArray) {
		a.dtype = d
	}
}

// WithBuffer hands a pre-filled buffer to the array.
// The buffer is not copied or validated; the caller must not reuse it.
func WithBuffer(buf []byte) Option {
	return func(a *NdArray) {
		a.data = buf
	}
}

// New creates an array of the given shape.
// Without WithBuffer the buffer is empty with capacity reserved for
// shape.NumElements() elements, and must be populated before it is read.
//
// Example:
//
//	a := ndarray.New(ndarray.Shape{2, 3}, ndarray.WithDtype(ndarray.NewDtype(ndarray.Int32)))
func New(shape Shape, opts ...Option) *NdArray {
	a := &NdArray{
		dtype: NewDtype(Float64),
		shape: shape.Clone(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.data == nil {
		// An invalid shape reserves nothing; Populated then stays false.
		n, ok := a.shape.byteLen(a.dtype)
		if !ok {
			n = 0
		}
		a.data = make([]byte, 0, n)
	}
	return a
}

// Dtype returns the element dtype.
func (a *NdArray) Dtype() Dtype {
	return a.dtype
}

// Shape returns a copy of the array's shape. Its String form is "[2, 3]".
func (a *NdArray) Shape() Shape {
	return a.shape.Clone()
}

// NumElements returns the number of elements the shape describes.
func (a *NdArray) NumElements() int {
	return a.shape.NumElements()
}

// Len returns the buffer length in bytes.
func (a *NdArray) Len() int {
	return len(a.data)
}

// Bytes returns a copy of the buffer.
func (a *NdArray) Bytes() []byte {
	out := make([]byte, len(a.data))
	copy(out, a.data)
	return out
}

// Populated reports whether the buffer holds exactly one element per shape slot.
// It is false for shapes with negative or overflowing extents.
func (a *NdArray) Populated() bool {
	n, ok := a.shape.byteLen(a.dtype)
	return ok && len(a.data) == n
}

// Equal reports whether both arrays have the same dtype, shape and bytes.
func (a *NdArray) Equal(other *NdArray) bool {
	return a.dtype == other.dtype &&
		a.shape.Equal(other.shape) &&
		bytes.Equal(a.data, other.data)
}

// At decodes the element at the given indices, one per axis.
// The array must be populated.
func (a *NdArray) At(indices ...int) (float64, error) {
	if !a.Populated() {
		return 0, fmt.Errorf("%w: %d bytes for shape %v of %s",
			ErrMalformedBuffer, len(a.data), a.shape, a.dtype)
	}
	if len(indices) != len(a.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfRange, len(a.shape), len(indices))
	}

	offset := 0
	strides := a.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d for axis %d of size %d", ErrIndexOutOfRange, idx, i, a.shape[i])
		}
		offset += idx * strides[i]
	}

	size := a.dtype.ItemSize()
	values, err := Unpack(a.data[offset*size:(offset+1)*size], a.dtype)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// Values decodes the buffer.
func (a *NdArray) Values() ([]float64, error) {
	return Unpack(a.data, a.dtype)
}

// PrettyPrint renders the buffer contents, e.g. "[1, 2, 3, 4]".
func (a *NdArray) PrettyPrint() (string, error) {
	return Format(a.data, a.dtype)
}

// String returns a short summary of the array.
func (a *NdArray) String() string {
	return fmt.Sprintf("NdArray(%s, %s)", a.dtype, a.shape)
}
