// SPDX-License-Identifier: MIT

package procrustes

import (
	"fmt"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/katalvlaran/procrustes/pinv"
)

// validate runs every eager check before any numeric work.
//
// Order (first failure wins):
//  1. cfg.Method is a known strategy              → ErrType
//  2. a, b non-nil with positive dimensions       → ErrShapeMismatch
//  3. CheckFinite: a, then b, then weights finite → ErrNonFinite
//  4. len(weight) == rows(a)                      → ErrShapeMismatch
//
// Complexity: O(m·(n+n′)) with CheckFinite, O(1) otherwise.
func validate(a, b matrix.Matrix, cfg Config) error {
	if !cfg.Method.Valid() {
		return procrustesErrorf(opValidate, ErrType, fmt.Errorf("method %s: %w", cfg.Method, pinv.ErrUnknownMethod))
	}

	if err := validateOperand("a", a); err != nil {
		return err
	}
	if err := validateOperand("b", b); err != nil {
		return err
	}

	if cfg.CheckFinite {
		if err := matrix.ValidateFinite(a); err != nil {
			return procrustesErrorf(opValidate, ErrNonFinite, fmt.Errorf("a: %w", err))
		}
		if err := matrix.ValidateFinite(b); err != nil {
			return procrustesErrorf(opValidate, ErrNonFinite, fmt.Errorf("b: %w", err))
		}
		if err := matrix.ValidateFiniteVec(cfg.Weight); err != nil {
			return procrustesErrorf(opValidate, ErrNonFinite, fmt.Errorf("weight: %w", err))
		}
	}

	if cfg.Weight != nil {
		if err := matrix.ValidateVecLen(cfg.Weight, a.Rows()); err != nil {
			return procrustesErrorf(opValidate, ErrShapeMismatch,
				fmt.Errorf("weight has %d entries, a has %d rows: %w", len(cfg.Weight), a.Rows(), err))
		}
	}

	return nil
}

func validateOperand(name string, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return procrustesErrorf(opValidate, ErrShapeMismatch, fmt.Errorf("%s: %w", name, err))
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return procrustesErrorf(opValidate, ErrShapeMismatch,
			fmt.Errorf("%s is %dx%d: %w", name, m.Rows(), m.Cols(), matrix.ErrInvalidDimensions))
	}

	return nil
}
