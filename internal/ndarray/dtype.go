// Package ndarray provides the core array types for numcrab: dtypes, shapes,
// flattening of nested host input, and little-endian pack/unpack.
package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the numeric family of a dtype.
type Kind int

// Supported kinds.
const (
	Integer Kind = iota
	Float
)

// String returns the single-character kind code used in dtype names.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "i"
	case Float:
		return "f"
	default:
		return "?"
	}
}

// Variant selects one of the fixed dtypes.
type Variant int

// Supported dtype variants.
const (
	Int8 Variant = iota
	Int16
	Int32
	Float64
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseVariant maps a variant name ("int32") or dtype code ("i4") to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int8", "i1":
		return Int8, nil
	case "int16", "i2":
		return Int16, nil
	case "int32", "i4":
		return Int32, nil
	case "float64", "f8":
		return Float64, nil
	default:
		return 0, fmt.Errorf("%w: unknown dtype %q", ErrUnsupportedDtype, name)
	}
}

// Dtype describes the binary layout of one array element.
// It is a plain value and is copied wherever it is needed.
type Dtype struct {
	kind      Kind
	itemSize  int
	alignment int
}

// NewDtype returns the dtype for a variant.
// Unknown variants yield the zero Dtype, which Variant reports as unsupported.
func NewDtype(v Variant) Dtype {
	switch v {
	case Int8:
		return Dtype{kind: Integer, itemSize: 1, alignment: 1}
	case Int16:
		return Dtype{kind: Integer, itemSize: 2, alignment: 2}
	case Int32:
		return Dtype{kind: Integer, itemSize: 4, alignment: 4}
	case Float64:
		return Dtype{kind: Float, itemSize: 8, alignment: 8}
	default:
		return Dtype{}
	}
}

// Kind returns the numeric family.
func (d Dtype) Kind() Kind { return d.kind }

// ItemSize returns the size of one element in bytes.
func (d Dtype) ItemSize() int { return d.itemSize }

// Alignment returns the required byte alignment of one element.
func (d Dtype) Alignment() int { return d.alignment }

// Variant maps the dtype back to its variant.
// Every pack and unpack path dispatches through here, so a (kind, size) pair
// outside the supported set fails in one place.
func (d Dtype) Variant() (Variant, error) {
	switch {
	case d.kind == Integer && d.itemSize == 1:
		return Int8, nil
	case d.kind == Integer && d.itemSize == 2:
		return Int16, nil
	case d.kind == Integer && d.itemSize == 4:
		return Int32, nil
	case d.kind == Float && d.itemSize == 8:
		return Float64, nil
	default:
		return 0, fmt.Errorf("%w: kind %s size %d", ErrUnsupportedDtype, d.kind, d.itemSize)
	}
}

// Code returns the short form, e.g. "i4".
func (d Dtype) Code() string {
	return d.kind.String() + strconv.Itoa(d.itemSize)
}

// String returns the canonical display form, e.g. "dtype('f8')".
func (d Dtype) String() string {
	return "dtype('" + d.Code() + "')"
}

// PrettyPrint returns the same text as String.
func (d Dtype) PrettyPrint() string {
	return d.String()
}
