// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unpadTol = 1e-8

func TestPadTo(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	want := [][]float64{{1, 2, 0}, {3, 4, 0}, {0, 0, 0}}

	p, err := matrix.PadTo(m, 3, 3)
	require.NoError(t, err)
	CompareExact(t, want, p)

	p, err = matrix.PadTo(hide{m}, 3, 3)
	require.NoError(t, err)
	CompareExact(t, want, p)

	_, err = matrix.PadTo(m, 1, 3)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "PadTo never truncates")
}

func TestPadPair_ConformantShapes(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 4, 2)
	b := MustDense(t, 3, 5)
	pa, pb, err := matrix.PadPair(a, b)
	require.NoError(t, err)

	ar, ac := pa.Shape()
	br, bc := pb.Shape()
	assert.Equal(t, [2]int{4, 5}, [2]int{ar, ac})
	assert.Equal(t, [2]int{4, 5}, [2]int{br, bc})
}

func TestTrimZeroCols(t *testing.T) {
	t.Parallel()

	// Column 1 is an interior zero column and must survive; columns 2..3 are
	// trailing padding (1e-9 is below tolerance).
	m := NewFilledDense(t, 2, 4, []float64{
		1, 0, 0, 1e-9,
		2, 0, 0, 0,
	})

	k, err := matrix.TrailingZeroCols(m, unpadTol)
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	trimmed, err := matrix.TrimZeroCols(hide{m}, unpadTol)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}, {2}}, trimmed)

	// An entry exactly at tolerance is not zero.
	edge := NewFilledDense(t, 1, 2, []float64{1, unpadTol})
	trimmed, err = matrix.TrimZeroCols(edge, unpadTol)
	require.NoError(t, err)
	assert.Equal(t, 2, trimmed.Cols())
}

func TestTrimZeroRows(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 2, []float64{
		1, 2,
		0, 0,
		0, -1e-10,
	})
	trimmed, err := matrix.TrimZeroRows(m, unpadTol)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}}, trimmed)
}

// TestTrim_Idempotent: a second trim finds nothing more to remove.
func TestTrim_Idempotent(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 0,
	})
	once, err := matrix.TrimZeroCols(m, unpadTol)
	require.NoError(t, err)
	once, err = matrix.TrimZeroRows(once, unpadTol)
	require.NoError(t, err)

	twice, err := matrix.TrimZeroCols(once, unpadTol)
	require.NoError(t, err)
	twice, err = matrix.TrimZeroRows(twice, unpadTol)
	require.NoError(t, err)

	CompareExact(t, [][]float64{{1, 0}, {0, 2}}, once)
	CompareClose(t, once, twice, 0, 0)
}

func TestTrim_AllZeroIsEmpty(t *testing.T) {
	t.Parallel()

	z := MustDense(t, 2, 2)
	_, err := matrix.TrimZeroCols(z, unpadTol)
	assert.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.TrimZeroRows(z, unpadTol)
	assert.ErrorIs(t, err, matrix.ErrEmpty)
}
