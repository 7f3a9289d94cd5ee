// SPDX-License-Identifier: MIT
// Package matrix: public facades over the unexported statistics and
// element-wise kernels, plus small constructors.

package matrix

import "fmt"

const opFromMatrix = "FromMatrix"

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// FromMatrix returns m as a *Dense: a deep copy when m is already *Dense,
// otherwise a materialization through At.
func FromMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opFromMatrix, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ColumnMeans returns the arithmetic mean of every column.
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// CenterColumns subtracts per-column means; returns (centered, means).
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// ScaleRows returns diag(w)·X: row i of X multiplied by w[i].
// len(w) must equal X.Rows() (ErrDimensionMismatch otherwise).
func ScaleRows(X Matrix, w []float64) (Matrix, error) { return ewScaleRows(X, w) }

// AllClose reports whether |a-b| ≤ atol + rtol*|b| element-wise.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
