// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 0, 0, 1, 4})
	b := NewFilledDense(t, 3, 2, []float64{1, 0, 2, 1, 3, -1})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	CompareExact(t, [][]float64{{5, 2}, {14, -3}}, fast)
	CompareClose(t, fast, slow, 0, 0)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, want, at)

	at, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, want, at)
}

func TestSubAndScale(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{3, 2, 1})
	b := NewFilledDense(t, 1, 3, []float64{1, 1, 1})

	d, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 1, 0}}, d)
	d, err = matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 1, 0}}, d)

	_, err = matrix.Sub(a, MustDense(t, 3, 1))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-6, -4, -2}}, s)

	// Scale never mutates its operand.
	assert.Equal(t, 3.0, MustAt(t, a, 0, 0))
}

// TestFrobeniusNormEqualsTraceOfGram checks ‖M‖²_F = trace(MᵀM).
func TestFrobeniusNormEqualsTraceOfGram(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 2, []float64{1, -2, 0.5, 3, -1, 4})
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	gram, err := matrix.Mul(mt, m)
	require.NoError(t, err)
	tr, err := matrix.Trace(gram)
	require.NoError(t, err)

	sq, err := matrix.FrobeniusNormSq(m)
	require.NoError(t, err)
	assert.InDelta(t, tr, sq, 1e-12)

	sqSlow, err := matrix.FrobeniusNormSq(hide{m})
	require.NoError(t, err)
	assert.Equal(t, sq, sqSlow)

	n, err := matrix.FrobeniusNorm(m)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(31.25), n, 1e-12)

	_, err = matrix.Trace(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	tr, err := matrix.Trace(id)
	require.NoError(t, err)
	assert.Equal(t, 3.0, tr)
	assert.Equal(t, 0.0, MustAt(t, id, 0, 2))
}
