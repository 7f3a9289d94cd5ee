// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	g, err := matrix.ToGonum(hide{m})
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, g.At(1, 2))

	// No aliasing in either direction.
	g.Set(0, 0, 42)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{42, 2, 3}, {4, 5, 6}}, back)

	// Non-contiguous gonum views go through the stride-aware copy.
	view := g.Slice(0, 2, 1, 3)
	sub, err := matrix.FromGonum(view)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 3}, {5, 6}}, sub)

	// Transposed view takes the generic At path.
	tr, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 4.0, MustAt(t, tr, 0, 1))

	_, err = matrix.FromGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ToGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
