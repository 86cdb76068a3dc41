package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense decodes a rank-1 or rank-2 array into a gonum matrix.
// A rank-1 array becomes a single row.
func (a *NdArray) Dense() (*mat.Dense, error) {
	var rows, cols int
	switch len(a.shape) {
	case 1:
		rows, cols = 1, a.shape[0]
	case 2:
		rows, cols = a.shape[0], a.shape[1]
	default:
		return nil, fmt.Errorf("dense: need rank 1 or 2, got shape %v", a.shape)
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("dense: empty shape %v", a.shape)
	}
	if !a.Populated() {
		return nil, fmt.Errorf("%w: dense: %d bytes for shape %v of %s",
			ErrMalformedBuffer, len(a.data), a.shape, a.dtype)
	}

	values, err := a.Values()
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	return mat.NewDense(rows, cols, values), nil
}

// FromMatrix packs a gonum matrix into a Float64 array of shape [rows, cols].
func FromMatrix(m mat.Matrix) (*NdArray, error) {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return FromValues(data, Shape{rows, cols}, NewDtype(Float64))
}
