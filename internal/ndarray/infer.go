package ndarray

import "math"

// Dtype inference policy. These are fixed and not derived from the data's
// magnitude.
const (
	// FractionTolerance is the largest remainder modulo 1 still treated as integral.
	FractionTolerance = 1e-16

	// DefaultIntegerVariant is chosen for all-integral data.
	// Int8 and Int16 are only used when requested explicitly.
	DefaultIntegerVariant = Int32
)

// IsIntegral reports whether v has no fractional part beyond FractionTolerance.
// NaN and infinities are not integral.
func IsIntegral(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return math.Abs(math.Mod(v, 1)) <= FractionTolerance
}

// InferDtype picks Float64 if any value is fractional, otherwise the
// default integer dtype. The decision covers the whole dataset.
func InferDtype(data []float64) Dtype {
	for _, v := range data {
		if !IsIntegral(v) {
			return NewDtype(Float64)
		}
	}
	return NewDtype(DefaultIntegerVariant)
}
