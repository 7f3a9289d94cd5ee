// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Shape kernels used to make two matrices conformant: zero padding
//     (PadTo) and removal of trailing near-zero rows/columns (TrimZeroRows,
//     TrimZeroCols).
//
// Zero policy:
//   - An entry is "zero" when |v| < tol. A row/column is removable only if every
//     entry in it is zero. NaN is never zero (|NaN| < tol is false).
//   - Trimming scans inward from the last row/column and stops at the first
//     row/column holding any entry with |v| ≥ tol; interior zero rows/columns
//     are kept.
//
// Determinism:
//   - Fixed scan orders; results depend only on values and tol.

package matrix

import (
	"fmt"
	"math"
)

const (
	opPadTo        = "PadTo"
	opTrimZeroRows = "TrimZeroRows"
	opTrimZeroCols = "TrimZeroCols"
)

// PadTo returns a rows×cols copy of m with m in the top-left corner and zeros
// appended at the bottom and on the right.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when rows < m.Rows() or cols < m.Cols() (PadTo never truncates).
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func PadTo(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPadTo, err)
	}
	r, c := m.Rows(), m.Cols()
	if rows < r || cols < c {
		return nil, matrixErrorf(opPadTo, fmt.Errorf("%dx%d -> %dx%d: %w", r, c, rows, cols, ErrDimensionMismatch))
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opPadTo, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			copy(out.data[i*cols:i*cols+c], d.data[i*c:(i+1)*c])
		}
		return out, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opPadTo, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// PadPair pads a and b to the common shape (max rows, max cols).
// Both results are fresh copies even when no padding is needed.
func PadPair(a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opPadTo, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, nil, matrixErrorf(opPadTo, err)
	}
	rows := max(a.Rows(), b.Rows())
	cols := max(a.Cols(), b.Cols())

	pa, err := PadTo(a, rows, cols)
	if err != nil {
		return nil, nil, err
	}
	pb, err := PadTo(b, rows, cols)
	if err != nil {
		return nil, nil, err
	}

	return pa, pb, nil
}

// zeroAt reports whether entry (i,j) counts as zero under tol.
func zeroAt(m Matrix, i, j int, tol float64) (bool, error) {
	v, err := m.At(i, j)
	if err != nil {
		return false, err
	}

	return math.Abs(v) < tol, nil
}

// TrailingZeroRows counts the rows at the bottom of m whose entries are all
// zero under tol (|v| < tol).
//
// Complexity: Time O(k*c) where k is the number of scanned rows, Space O(1).
func TrailingZeroRows(m Matrix, tol float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrimZeroRows, err)
	}

	r, c := m.Rows(), m.Cols()
	count := 0
	for i := r - 1; i >= 0; i-- {
		for j := 0; j < c; j++ {
			zero, err := zeroAt(m, i, j, tol)
			if err != nil {
				return 0, matrixErrorf(opTrimZeroRows, err)
			}
			if !zero {
				return count, nil
			}
		}
		count++
	}

	return count, nil
}

// TrailingZeroCols counts the columns on the right of m whose entries are all
// zero under tol (|v| < tol).
//
// Complexity: Time O(k*r) where k is the number of scanned columns, Space O(1).
func TrailingZeroCols(m Matrix, tol float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrimZeroCols, err)
	}

	r, c := m.Rows(), m.Cols()
	count := 0
	for j := c - 1; j >= 0; j-- {
		for i := 0; i < r; i++ {
			zero, err := zeroAt(m, i, j, tol)
			if err != nil {
				return 0, matrixErrorf(opTrimZeroCols, err)
			}
			if !zero {
				return count, nil
			}
		}
		count++
	}

	return count, nil
}

// TrimZeroRows returns a copy of m without its trailing zero rows.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrEmpty when every row is zero (the result would have no rows).
func TrimZeroRows(m Matrix, tol float64) (*Dense, error) {
	k, err := TrailingZeroRows(m, tol)
	if err != nil {
		return nil, err
	}
	keep := m.Rows() - k
	if keep == 0 {
		return nil, matrixErrorf(opTrimZeroRows, ErrEmpty)
	}

	res, err := induce(m, keep, m.Cols())
	if err != nil {
		return nil, matrixErrorf(opTrimZeroRows, err)
	}

	return res, nil
}

// TrimZeroCols returns a copy of m without its trailing zero columns.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrEmpty when every column is zero (the result would have no columns).
func TrimZeroCols(m Matrix, tol float64) (*Dense, error) {
	k, err := TrailingZeroCols(m, tol)
	if err != nil {
		return nil, err
	}
	keep := m.Cols() - k
	if keep == 0 {
		return nil, matrixErrorf(opTrimZeroCols, ErrEmpty)
	}

	res, err := induce(m, m.Rows(), keep)
	if err != nil {
		return nil, matrixErrorf(opTrimZeroCols, err)
	}

	return res, nil
}

// induce copies the leading rows×cols block of m.
func induce(m Matrix, rows, cols int) (*Dense, error) {
	d, ok := m.(*Dense)
	if !ok {
		var err error
		if d, err = FromMatrix(m); err != nil {
			return nil, err
		}
	}

	return d.Induced(seq(rows), seq(cols))
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
