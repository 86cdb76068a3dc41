package ndarray

import (
	"fmt"

	"github.com/numcrab/numcrab/internal/config"
	"github.com/numcrab/numcrab/internal/diag"
)

// Builder turns host input into arrays.
// It holds no mutable state and can be shared.
type Builder struct {
	cfg config.Config
}

// NewBuilder creates a Builder from validated settings.
func NewBuilder(cfg config.Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg}, nil
}

// Config returns the builder settings.
func (b *Builder) Config() config.Config {
	return b.cfg
}

// Build flattens v, infers a dtype unless one is given, packs the data and
// returns the array. On error no array is returned.
//
// Example:
//
//	arr, err := b.Build(host.FromGo([][]int{{1, 2}, {3, 4}}))
//	s, _ := arr.PrettyPrint() // "[1, 2, 3, 4]"
func (b *Builder) Build(v Value, dtype ...Dtype) (*NdArray, error) {
	flat, err := Flatten(v, FlattenOptions{
		MaxDepth: b.cfg.MaxDepth,
		Ragged:   !b.cfg.StrictShape,
	})
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	var d Dtype
	if len(dtype) > 0 {
		d = dtype[0]
	} else {
		d = InferDtype(flat.Data)
		diag.Logf("inferred %s for %d elements", d, len(flat.Data))
	}

	buf, err := Pack(flat.Data, d)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	diag.Logf("built %s %v (%d bytes)", d, flat.Shape, len(buf))
	return New(flat.Shape, WithDtype(d), WithBuffer(buf)), nil
}

var defaultBuilder = &Builder{cfg: config.Default()}

// FromSequence builds an array with the default settings.
func FromSequence(v Value, dtype ...Dtype) (*NdArray, error) {
	return defaultBuilder.Build(v, dtype...)
}

// FromValues packs already flattened data into an array of the given shape.
// Without an explicit dtype one is inferred as in Build.
func FromValues(data []float64, shape Shape, dtype ...Dtype) (*NdArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	d := InferDtype(data)
	if len(dtype) > 0 {
		d = dtype[0]
	}
	buf, err := Pack(data, d)
	if err != nil {
		return nil, err
	}
	return New(shape, WithDtype(d), WithBuffer(buf)), nil
}
