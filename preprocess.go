// SPDX-License-Identifier: MIT

package procrustes

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/procrustes/matrix"
)

const (
	// UnpadTolerance is the magnitude below which an entry counts as padding.
	UnpadTolerance = 1.0e-8

	// DegenerateNormTolerance is the smallest Frobenius norm Scale accepts.
	DegenerateNormTolerance = 1e-12
)

// preprocess conditions a and b for the solver.
//
// Implementation:
//   - Stage 1 (Unpad): columns, then rows, each matrix on its own. When rows
//     of a are removed the weight vector is cut to the surviving rows.
//   - Stage 2 (Translate): CenterColumns on each matrix.
//   - Stage 3 (Weight): a ← diag(w)·a.
//   - Stage 4 (Scale): each matrix divided by its own Frobenius norm.
//   - Stage 5 (Pad): both grown to (max rows, max cols) with zeros.
//
// Behavior highlights:
//   - Disabled stages are skipped entirely.
//   - Every stage allocates; a and b are never written.
//   - Without Pad, mismatched row counts after Stage 1 are ErrShapeMismatch.
//   - dataRows is the row count of A before Stage 5; zero rows added by
//     padding carry no equations.
//
// Complexity: O(m·(n+n′)) time and memory.
func preprocess(a, b matrix.Matrix, cfg Config) (newA, newB *matrix.Dense, dataRows int, err error) {
	weight := cfg.Weight

	if cfg.UnpadCol {
		if a, err = unpad("a", a, matrix.TrimZeroCols); err != nil {
			return nil, nil, 0, err
		}
		if b, err = unpad("b", b, matrix.TrimZeroCols); err != nil {
			return nil, nil, 0, err
		}
	}
	if cfg.UnpadRow {
		if a, err = unpad("a", a, matrix.TrimZeroRows); err != nil {
			return nil, nil, 0, err
		}
		if b, err = unpad("b", b, matrix.TrimZeroRows); err != nil {
			return nil, nil, 0, err
		}
		if weight != nil {
			weight = weight[:a.Rows()]
		}
	}

	if cfg.Translate {
		if a, _, err = matrix.CenterColumns(a); err != nil {
			return nil, nil, 0, procrustesErrorf(opTranslate, ErrShapeMismatch, fmt.Errorf("a: %w", err))
		}
		if b, _, err = matrix.CenterColumns(b); err != nil {
			return nil, nil, 0, procrustesErrorf(opTranslate, ErrShapeMismatch, fmt.Errorf("b: %w", err))
		}
	}

	if weight != nil {
		if a, err = matrix.ScaleRows(a, weight); err != nil {
			return nil, nil, 0, procrustesErrorf(opWeight, ErrShapeMismatch, err)
		}
	}

	if cfg.Scale {
		if a, err = normalize("a", a); err != nil {
			return nil, nil, 0, err
		}
		if b, err = normalize("b", b); err != nil {
			return nil, nil, 0, err
		}
	}

	dataRows = a.Rows()
	if cfg.Pad {
		if newA, newB, err = matrix.PadPair(a, b); err != nil {
			return nil, nil, 0, procrustesErrorf(opPad, ErrShapeMismatch, err)
		}
		return newA, newB, dataRows, nil
	}

	if a.Rows() != b.Rows() {
		return nil, nil, 0, procrustesErrorf(opPad, ErrShapeMismatch,
			fmt.Errorf("a has %d rows, b has %d, and padding is off: %w", a.Rows(), b.Rows(), matrix.ErrDimensionMismatch))
	}
	if newA, err = matrix.FromMatrix(a); err != nil {
		return nil, nil, 0, procrustesErrorf(opPad, ErrShapeMismatch, err)
	}
	if newB, err = matrix.FromMatrix(b); err != nil {
		return nil, nil, 0, procrustesErrorf(opPad, ErrShapeMismatch, err)
	}

	return newA, newB, dataRows, nil
}

// unpad applies one trimming kernel; trimming everything is ErrDegenerate.
func unpad(name string, m matrix.Matrix, trim func(matrix.Matrix, float64) (*matrix.Dense, error)) (matrix.Matrix, error) {
	out, err := trim(m, UnpadTolerance)
	switch {
	case errors.Is(err, matrix.ErrEmpty):
		return nil, procrustesErrorf(opUnpad, ErrDegenerate, fmt.Errorf("%s: %w", name, err))
	case err != nil:
		return nil, procrustesErrorf(opUnpad, ErrShapeMismatch, fmt.Errorf("%s: %w", name, err))
	}

	return out, nil
}

// normalize returns m/‖m‖_F.
func normalize(name string, m matrix.Matrix) (matrix.Matrix, error) {
	norm, err := matrix.FrobeniusNorm(m)
	if err != nil {
		return nil, procrustesErrorf(opScale, ErrShapeMismatch, fmt.Errorf("%s: %w", name, err))
	}
	if !(norm >= DegenerateNormTolerance) {
		return nil, procrustesErrorf(opScale, ErrDegenerate, fmt.Errorf("%s has Frobenius norm %g", name, norm))
	}

	out, err := matrix.Scale(m, 1/norm)
	if err != nil {
		return nil, procrustesErrorf(opScale, ErrShapeMismatch, fmt.Errorf("%s: %w", name, err))
	}

	return out, nil
}
