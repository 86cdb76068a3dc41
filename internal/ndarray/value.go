package ndarray

// Value is the view of host input that the core walks.
// Host adapters (see internal/host) implement it over their native values.
type Value interface {
	// IsSequence reports whether the value holds elements.
	IsSequence() bool
	// Len returns the number of elements of a sequence.
	Len() int
	// Index returns element i of a sequence.
	Index(i int) Value
	// Float64 returns the scalar as a float64, or false if it is not numeric.
	Float64() (float64, bool)
}
