package ndarray

import (
	"fmt"

	"github.com/numcrab/numcrab/internal/config"
)

// DefaultMaxDepth is the default limit on input nesting, and so on array rank.
const DefaultMaxDepth = config.DefaultMaxDepth

// Flat is nested input flattened into row-major order.
type Flat struct {
	Shape Shape
	Data  []float64
}

// FlattenOptions control Flatten. The zero value is strict with DefaultMaxDepth.
type FlattenOptions struct {
	// MaxDepth limits nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// Ragged skips the per-sibling length check. The shape still comes from
	// the first element at every level, and Flatten fails with
	// ErrShapeMismatch if the scalar count disagrees with it.
	Ragged bool
}

// InferShape derives a shape by taking the length at each level and
// descending into element 0 until a scalar is reached.
// An empty sequence gives [0] and a scalar gives [].
func InferShape(v Value, maxDepth int) (Shape, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	shape := Shape{}
	cur := v
	for cur.IsSequence() {
		if len(shape) >= maxDepth {
			return nil, &ShapeError{Err: ErrMaxDepth, Path: make([]int, len(shape))}
		}
		n := cur.Len()
		shape = append(shape, n)
		if n == 0 {
			break
		}
		cur = cur.Index(0)
	}
	return shape, nil
}

// Flatten walks v depth-first, left to right, and returns its shape and
// scalars. This is the one traversal order used for dtype inference and
// packing.
func Flatten(v Value, opts FlattenOptions) (Flat, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	shape, err := InferShape(v, maxDepth)
	if err != nil {
		return Flat{}, err
	}

	// The inferred shape is unchecked until the walk finishes, so data grows
	// with the input rather than being sized from the shape.
	w := &walker{shape: shape, maxDepth: maxDepth, ragged: opts.Ragged, data: []float64{}}
	if err := w.walk(v, 0); err != nil {
		return Flat{}, err
	}

	if n, ok := shape.size(); !ok || n != len(w.data) {
		return Flat{}, fmt.Errorf("%w: shape %v does not match %d input elements",
			ErrShapeMismatch, shape, len(w.data))
	}
	return Flat{Shape: shape, Data: w.data}, nil
}

type walker struct {
	shape    Shape
	maxDepth int
	ragged   bool
	data     []float64
	path     []int
}

func (w *walker) walk(v Value, depth int) error {
	if v.IsSequence() {
		if depth >= w.maxDepth {
			return w.fail(ErrMaxDepth, 0, 0)
		}
		n := v.Len()
		if !w.ragged {
			if depth >= len(w.shape) {
				return w.fail(ErrNonRectangular, -1, n)
			}
			if n != w.shape[depth] {
				return w.fail(ErrNonRectangular, w.shape[depth], n)
			}
		}
		for i := 0; i < n; i++ {
			w.path = append(w.path, i)
			if err := w.walk(v.Index(i), depth+1); err != nil {
				return err
			}
			w.path = w.path[:len(w.path)-1]
		}
		return nil
	}

	if !w.ragged && depth != len(w.shape) {
		return w.fail(ErrNonRectangular, w.shape[depth], -1)
	}
	f, ok := v.Float64()
	if !ok {
		return w.fail(ErrUnsupportedInput, 0, 0)
	}
	w.data = append(w.data, f)
	return nil
}

func (w *walker) fail(err error, want, got int) error {
	path := make([]int, len(w.path))
	copy(path, w.path)
	return &ShapeError{Err: err, Path: path, Want: want, Got: got}
}
