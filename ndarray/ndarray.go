// Copyright 2026 The numcrab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"io"

	"github.com/numcrab/numcrab/internal/config"
	"github.com/numcrab/numcrab/internal/diag"
	"github.com/numcrab/numcrab/internal/host"
	"github.com/numcrab/numcrab/internal/ndarray"
	"gonum.org/v1/gonum/mat"
)

// Type aliases for public API

// Dtype describes the binary layout of one element.
type Dtype = ndarray.Dtype

// Kind is the numeric family of a dtype.
type Kind = ndarray.Kind

// Kind constants.
const (
	Integer Kind = ndarray.Integer
	Float   Kind = ndarray.Float
)

// Variant selects one of the supported dtypes.
type Variant = ndarray.Variant

// Variant constants.
const (
	Int8    Variant = ndarray.Int8
	Int16   Variant = ndarray.Int16
	Int32   Variant = ndarray.Int32
	Float64 Variant = ndarray.Float64
)

// Inference policy and limits.
const (
	FractionTolerance     = ndarray.FractionTolerance
	DefaultIntegerVariant = ndarray.DefaultIntegerVariant
	DefaultMaxDepth       = ndarray.DefaultMaxDepth
)

// Shape represents array dimensions, outermost first.
// Example: Shape{2, 3} prints as "[2, 3]".
type Shape = ndarray.Shape

// NdArray is a contiguous array owning its byte buffer.
type NdArray = ndarray.NdArray

// Option configures New.
type Option = ndarray.Option

// Value is the host input abstraction walked by the builder.
type Value = ndarray.Value

// Builder turns host input into arrays.
type Builder = ndarray.Builder

// Config holds builder settings.
type Config = config.Config

// Errors returned by the array core.
var (
	ErrUnsupportedInput = ndarray.ErrUnsupportedInput
	ErrUnsupportedDtype = ndarray.ErrUnsupportedDtype
	ErrMalformedBuffer  = ndarray.ErrMalformedBuffer
	ErrNonRectangular   = ndarray.ErrNonRectangular
	ErrMaxDepth         = ndarray.ErrMaxDepth
	ErrShapeMismatch    = ndarray.ErrShapeMismatch
	ErrIndexOutOfRange  = ndarray.ErrIndexOutOfRange
)

// ShapeError locates a structural problem in nested input.
type ShapeError = ndarray.ShapeError

// NewDtype returns the dtype for a variant.
func NewDtype(v Variant) Dtype {
	return ndarray.NewDtype(v)
}

// ParseVariant maps "int32" or "i4" style names to a Variant.
func ParseVariant(name string) (Variant, error) {
	return ndarray.ParseVariant(name)
}

// New creates an array of the given shape. The dtype defaults to Float64.
func New(shape Shape, opts ...Option) *NdArray {
	return ndarray.New(shape, opts...)
}

// WithDtype sets the element dtype.
func WithDtype(d Dtype) Option {
	return ndarray.WithDtype(d)
}

// WithBuffer hands a pre-filled buffer to the array.
func WithBuffer(buf []byte) Option {
	return ndarray.WithBuffer(buf)
}

// DefaultConfig returns the built-in builder settings.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads builder settings from a JSON file.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// NewBuilder creates a Builder.
func NewBuilder(cfg Config) (*Builder, error) {
	return ndarray.NewBuilder(cfg)
}

// FromSequence builds an array from host input with the default settings.
func FromSequence(v Value, dtype ...Dtype) (*NdArray, error) {
	return ndarray.FromSequence(v, dtype...)
}

// FromValues packs flat data into an array of the given shape.
func FromValues(data []float64, shape Shape, dtype ...Dtype) (*NdArray, error) {
	return ndarray.FromValues(data, shape, dtype...)
}

// FromMatrix packs a gonum matrix into a Float64 array.
func FromMatrix(m mat.Matrix) (*NdArray, error) {
	return ndarray.FromMatrix(m)
}

// Array builds an array from nested Go slices.
//
// Example:
//
//	a, err := ndarray.Array([][]int{{1, 2}, {3, 4}})
//	s, _ := a.PrettyPrint() // "[1, 2, 3, 4]"
func Array(x any, dtype ...Dtype) (*NdArray, error) {
	return ndarray.FromSequence(host.FromGo(x), dtype...)
}

// FromGo wraps nested Go slices and arrays as builder input.
func FromGo(x any) Value {
	return host.FromGo(x)
}

// FromJSON builds an array from a JSON nested array.
func FromJSON(data []byte, dtype ...Dtype) (*NdArray, error) {
	v, err := host.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return ndarray.FromSequence(v, dtype...)
}

// Greet returns the host greeting.
func Greet() string {
	return diag.Greet()
}

// SetupLogging routes diagnostics to w. A nil writer mutes them.
func SetupLogging(w io.Writer) {
	if w == nil {
		diag.SetLogger(nil)
		return
	}
	diag.Setup(w)
}
