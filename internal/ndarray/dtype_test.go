package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDtypeDisplay(t *testing.T) {
	tests := []struct {
		variant   Variant
		want      string
		kind      Kind
		itemSize  int
		alignment int
	}{
		{Int8, "dtype('i1')", Integer, 1, 1},
		{Int16, "dtype('i2')", Integer, 2, 2},
		{Int32, "dtype('i4')", Integer, 4, 4},
		{Float64, "dtype('f8')", Float, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			d := NewDtype(tt.variant)
			assert.Equal(t, tt.want, d.String())
			assert.Equal(t, tt.want, d.PrettyPrint())
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.itemSize, d.ItemSize())
			assert.Equal(t, tt.alignment, d.Alignment())

			v, err := d.Variant()
			require.NoError(t, err)
			assert.Equal(t, tt.variant, v)
		})
	}
}

func TestDtypeEquality(t *testing.T) {
	assert.Equal(t, NewDtype(Int32), NewDtype(Int32))
	assert.NotEqual(t, NewDtype(Int32), NewDtype(Float64))
	assert.True(t, NewDtype(Float64) == NewDtype(Float64))
}

func TestDtypeUnsupportedPair(t *testing.T) {
	bad := []Dtype{
		{},
		{kind: Float, itemSize: 4, alignment: 4},
		{kind: Integer, itemSize: 8, alignment: 8},
		NewDtype(Variant(42)),
	}
	for _, d := range bad {
		_, err := d.Variant()
		assert.ErrorIs(t, err, ErrUnsupportedDtype, "dtype %s", d)
	}
}

func TestParseVariant(t *testing.T) {
	tests := map[string]Variant{
		"int8":    Int8,
		"i1":      Int8,
		"INT16":   Int16,
		"i2":      Int16,
		"int32":   Int32,
		" i4 ":    Int32,
		"float64": Float64,
		"f8":      Float64,
	}
	for name, want := range tests {
		got, err := ParseVariant(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseVariant("f4")
	assert.ErrorIs(t, err, ErrUnsupportedDtype)
}

func TestDtypeCode(t *testing.T) {
	assert.Equal(t, "i4", NewDtype(Int32).Code())
	assert.Equal(t, "f8", NewDtype(Float64).Code())
	assert.Equal(t, "i", Integer.String())
	assert.Equal(t, "f", Float.String())
}
