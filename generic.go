// SPDX-License-Identifier: MIT

package procrustes

import (
	"fmt"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/katalvlaran/procrustes/pinv"
)

// Generic solves min_T ‖A·T − B‖²_F with the configuration built from opts.
//
// It is Solve(a, b, NewConfig(opts...)).
func Generic(a, b matrix.Matrix, opts ...Option) (*Result, error) {
	return Solve(a, b, NewConfig(opts...))
}

// Solve runs validation, preprocessing, the transform solve and result
// assembly for an explicit Config.
//
// Implementation:
//   - Stage 1: validate (configuration, shapes, finiteness, weights).
//   - Stage 2: preprocess into A′ (m×n) and B′ (m×n′).
//   - Stage 3: T = (A′ᵀA′)⁺·(A′ᵀB′) with cfg.Method.
//   - Stage 4: error = ‖A′T − B′‖²_F and packaging.
//
// Inputs:
//   - a, b: any Matrix implementation; neither is mutated.
//   - cfg: used as given. Prefer NewConfig or DefaultConfig over a zero
//     Config, whose zero values turn Pad and CheckFinite off.
//
// Returns:
//   - *Result on success, nil and a Kind-classified error otherwise.
//
// Complexity:
//   - Time O(m·n² + n³ + m·n·n′), Space O(m·(n+n′) + n²).
func Solve(a, b matrix.Matrix, cfg Config) (*Result, error) {
	if err := validate(a, b, cfg); err != nil {
		return nil, err
	}

	newA, newB, dataRows, err := preprocess(a, b, cfg)
	if err != nil {
		return nil, err
	}

	t, err := solveTransform(newA, newB, cfg.Method)
	if err != nil {
		return nil, err
	}

	return assemble(newA, newB, t, dataRows, cfg.Method)
}

// solveTransform computes (AᵀA)⁺·(AᵀB). The normal matrix is n×n, so the
// pseudo-inverse cost depends on the column count only.
func solveTransform(a, b *matrix.Dense, method pinv.Method) (matrix.Matrix, error) {
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, procrustesErrorf(opSolve, ErrShapeMismatch, err)
	}
	gram, err := matrix.Mul(at, a)
	if err != nil {
		return nil, procrustesErrorf(opSolve, ErrShapeMismatch, err)
	}

	inv, err := pinv.Compute(gram, method)
	if err != nil {
		return nil, procrustesErrorf(opSolve, ErrLinearAlgebra, fmt.Errorf("%s: %w", method, err))
	}

	atb, err := matrix.Mul(at, b)
	if err != nil {
		return nil, procrustesErrorf(opSolve, ErrShapeMismatch, err)
	}
	t, err := matrix.Mul(inv, atb)
	if err != nil {
		return nil, procrustesErrorf(opSolve, ErrShapeMismatch, err)
	}

	return t, nil
}
