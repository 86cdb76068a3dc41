package ndarray

import (
	"fmt"
	"testing"

	"github.com/numcrab/numcrab/internal/config"
	"github.com/numcrab/numcrab/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSequenceEndToEnd(t *testing.T) {
	input := seq(nums(1, 2), nums(3, 4))

	a, err := FromSequence(input)
	require.NoError(t, err)
	assert.Equal(t, "dtype('i4')", a.Dtype().String())
	assert.Equal(t, "[2, 2]", a.Shape().String())
	s, err := a.PrettyPrint()
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4]", s)

	f, err := FromSequence(input, NewDtype(Float64))
	require.NoError(t, err)
	assert.Equal(t, "dtype('f8')", f.Dtype().String())
	assert.Equal(t, 32, f.Len())
	s, err = f.PrettyPrint()
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4]", s)
}

func TestFromSequenceInference(t *testing.T) {
	a, err := FromSequence(nums(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, NewDtype(Int32), a.Dtype())

	a, err = FromSequence(nums(1, 2.5, 3))
	require.NoError(t, err)
	assert.Equal(t, NewDtype(Float64), a.Dtype())
	s, err := a.PrettyPrint()
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5, 3]", s)
}

func TestFromSequenceBufferLength(t *testing.T) {
	inputs := []node{
		nums(1, 2, 3),
		seq(nums(1, 2, 3), nums(4, 5, 6)),
		seq(seq(nums(1.5, 2), nums(3, 4)), seq(nums(5, 6), nums(7, 8))),
		seq(),
		num(5),
	}
	variants := []Variant{Int8, Int16, Int32, Float64}

	for i, in := range inputs {
		for _, v := range variants {
			t.Run(fmt.Sprintf("%d/%s", i, v), func(t *testing.T) {
				a, err := FromSequence(in, NewDtype(v))
				require.NoError(t, err)
				assert.Equal(t, a.Shape().NumElements()*a.Dtype().ItemSize(), a.Len())
				assert.True(t, a.Populated())
			})
		}
	}
}

func TestFromSequenceEmptyAndScalar(t *testing.T) {
	a, err := FromSequence(seq())
	require.NoError(t, err)
	assert.Equal(t, "[0]", a.Shape().String())
	assert.Equal(t, NewDtype(Int32), a.Dtype())
	s, err := a.PrettyPrint()
	require.NoError(t, err)
	assert.Equal(t, "[]", s)

	a, err = FromSequence(num(2.25))
	require.NoError(t, err)
	assert.Equal(t, "[]", a.Shape().String())
	s, err = a.PrettyPrint()
	require.NoError(t, err)
	assert.Equal(t, "[2.25]", s)
}

func TestFromSequenceFailures(t *testing.T) {
	_, err := FromSequence(seq(num(1), text(), num(3)))
	assert.ErrorIs(t, err, ErrUnsupportedInput)

	_, err = FromSequence(seq(nums(1, 2), nums(3)))
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = FromSequence(nums(1, 2), Dtype{kind: Integer, itemSize: 8})
	assert.ErrorIs(t, err, ErrUnsupportedDtype)

	a, err := FromSequence(nums(1, 2))
	require.NoError(t, err)
	before := a.Bytes()

	// A failed build leaves existing arrays untouched.
	_, err = FromSequence(seq(num(1), text()))
	require.Error(t, err)
	assert.Equal(t, before, a.Bytes())
}

func TestBuilderConfig(t *testing.T) {
	_, err := NewBuilder(config.Config{MaxDepth: 0})
	assert.Error(t, err)

	b, err := NewBuilder(config.Config{MaxDepth: 2, StrictShape: true})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Config().MaxDepth)

	_, err = b.Build(seq(seq(nums(1))))
	assert.ErrorIs(t, err, ErrMaxDepth)

	_, err = b.Build(seq(nums(1, 2), nums(3, 4)))
	require.NoError(t, err)
}

func TestBuilderRagged(t *testing.T) {
	b, err := NewBuilder(config.Config{MaxDepth: 8, StrictShape: false})
	require.NoError(t, err)

	a, err := b.Build(seq(nums(1, 2), nums(3), nums(4, 5, 6)))
	require.NoError(t, err)
	assert.Equal(t, "[3, 2]", a.Shape().String())

	_, err = b.Build(seq(nums(1, 2), nums(3)))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBuilderLogs(t *testing.T) {
	var lines []string
	diag.SetLogger(func(format string, v ...any) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	defer diag.SetLogger(nil)

	_, err := FromSequence(nums(1, 2))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "inferred dtype('i4') for 2 elements", lines[0])
	assert.Equal(t, "built dtype('i4') [2] (8 bytes)", lines[1])
}

func TestFromValues(t *testing.T) {
	a, err := FromValues([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, NewDtype(Int32), a.Dtype())
	assert.Equal(t, "[2, 3]", a.Shape().String())

	a, err = FromValues([]float64{1, 2}, Shape{2}, NewDtype(Int8))
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())

	_, err = FromValues([]float64{1, 2, 3}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromValues(nil, Shape{-1})
	assert.Error(t, err)
}
