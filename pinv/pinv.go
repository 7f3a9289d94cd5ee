// SPDX-License-Identifier: MIT

package pinv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrustes/matrix"
)

// Rcond is the relative singular-value cutoff of the SVD strategy.
// Singular values σ ≤ Rcond·σ_max are treated as exact zeros.
const Rcond = 1e6 * epsilon

// epsilon is the float64 machine epsilon (2⁻⁵²).
const epsilon = 0x1p-52

// Operation tags for error wrapping.
const (
	opCompute      = "Compute"
	opLeastSquares = "LeastSquares"
	opSVD          = "SVD"
)

func pinvErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Compute returns the Moore–Penrose pseudo-inverse of m using method.
//
// Implementation:
//   - Stage 1: resolve the strategy (ErrUnknownMethod for unknown values).
//   - Stage 2: reject NaN/±Inf input before any factorization runs.
//   - Stage 3: run the strategy and verify the result is finite.
//
// The result is a fresh c×r *matrix.Dense; m is never mutated.
func Compute(m matrix.Matrix, method Method) (*matrix.Dense, error) {
	strategy, err := method.Strategy()
	if err != nil {
		return nil, pinvErrorf(opCompute, err)
	}
	if err = matrix.ValidateNotNil(m); err != nil {
		return nil, pinvErrorf(opCompute, err)
	}
	if err = matrix.ValidateFinite(m); err != nil {
		return nil, pinvErrorf(opCompute, fmt.Errorf("%w: %v", ErrNonFiniteInput, err))
	}

	out, err := strategy(m)
	if err != nil {
		return nil, pinvErrorf(opCompute, err)
	}
	if err = matrix.ValidateFinite(out); err != nil {
		return nil, pinvErrorf(opCompute, fmt.Errorf("%s: %w", method, ErrNonFiniteResult))
	}

	return out, nil
}

// cutoff returns the absolute singular-value threshold rcond·σ_max for
// values sorted in descending order.
func cutoff(values []float64, rcond float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return rcond * values[0]
}

// minNormFromSVD assembles V·Σ⁺·Uᵀ from a thin factorization of g.
// Singular values at or below rcond·σ_max contribute nothing, which yields
// the minimum-norm least-squares inverse for rank-deficient g.
func minNormFromSVD(g *mat.Dense, rcond float64) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, ErrNoConvergence
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := cutoff(values, rcond)
	c, k := v.Dims()
	scaled := mat.NewDense(c, k, nil)
	var i, j int
	for j = 0; j < k; j++ {
		if values[j] <= tol {
			continue // column stays zero
		}
		inv := 1 / values[j]
		for i = 0; i < c; i++ {
			scaled.Set(i, j, v.At(i, j)*inv)
		}
	}

	var out mat.Dense
	out.Mul(scaled, u.T())

	return &out, nil
}

// finite reports whether every entry of g is a finite number.
func finite(g mat.Matrix) bool {
	r, c := g.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := g.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
