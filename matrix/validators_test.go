// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"typed nil", typedNil, zeros(2, 2), matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateSameRowsAndSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameRows(MustDense(t, 3, 1), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateSameRows(MustDense(t, 3, 1), MustDense(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

// TestValidateFinite checks both paths report the first offending cell.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	ok := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, matrix.ValidateFinite(ok))
	require.NoError(t, matrix.ValidateFinite(hide{ok}))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := NewFilledDense(t, 2, 2, []float64{1, 2, bad, 4})
		err := matrix.ValidateFinite(m)
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		require.Contains(t, err.Error(), "(1,0)")

		err = matrix.ValidateFinite(hide{m})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		require.Contains(t, err.Error(), "(1,0)")
	}

	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{0, math.NaN()}), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFiniteVec([]float64{0, 1}))
}
