// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-wise statistics used to translate a point matrix to its centroid.
//
// Exposed API (api.go):
//   - ColumnMeans(X)   -> means        // per-column arithmetic mean
//   - CenterColumns(X) -> (Xc, means)  // subtract per-column mean
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
)

// columnMeans returns Σ_i X[i,j] / r for every column j.
//
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate sums in one deterministic pass (Dense fast-path; At fallback).
//   - Stage 3: Multiply by 1/r.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // sums first, then averages in place

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
//
// Implementation:
//   - Stage 1: columnMeans(X).
//   - Stage 2: ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c); X is not mutated.
//   - []float64: column means (len=c), reusable to un-center later.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}
