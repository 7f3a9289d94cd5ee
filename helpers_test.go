// SPDX-License-Identifier: MIT

package procrustes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/procrustes/matrix"
)

const tol = 1e-8

// hide masks *matrix.Dense so the solver sees a foreign Matrix implementation.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

func mustMul(t *testing.T, a, b matrix.Matrix) matrix.Matrix {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}

func requireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

func frobSq(t *testing.T, m matrix.Matrix) float64 {
	t.Helper()
	v, err := matrix.FrobeniusNormSq(m)
	require.NoError(t, err)

	return v
}

// gramTrace returns trace(MᵀM).
func gramTrace(t *testing.T, m matrix.Matrix) float64 {
	t.Helper()
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	tr, err := matrix.Trace(mustMul(t, mt, m))
	require.NoError(t, err)

	return tr
}

func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	d, err := matrix.FromMatrix(m)
	require.NoError(t, err)

	return d.RawRows()
}

func columnMeansNearZero(t *testing.T, m matrix.Matrix) {
	t.Helper()
	means, err := matrix.ColumnMeans(m)
	require.NoError(t, err)
	for j, v := range means {
		require.LessOrEqualf(t, math.Abs(v), 1e-12, "column %d mean %g", j, v)
	}
}
