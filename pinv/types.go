// SPDX-License-Identifier: MIT

package pinv

import (
	"fmt"

	"github.com/katalvlaran/procrustes/matrix"
)

// Method selects the pseudo-inverse algorithm.
//
//   - LeastSquares: QR least-squares solve of M·X = I with SVD fallback at
//     a machine-precision cutoff. More robust on ill-conditioned input, at
//     the cost of up to two factorizations.
//
//   - SVD         : one thin SVD with rank cutoff Rcond·σ_max.
//     Cheaper; near-singular directions below the cutoff are dropped outright.
type Method int

const (
	// LeastSquares is the default strategy.
	LeastSquares Method = iota

	// SVD computes the inverse from a singular value decomposition.
	SVD
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case LeastSquares:
		return "least-squares"
	case SVD:
		return "svd"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared strategies.
func (m Method) Valid() bool { return m == LeastSquares || m == SVD }

// FromUseSVD maps the boolean file/flag form onto a Method.
func FromUseSVD(useSVD bool) Method {
	if useSVD {
		return SVD
	}

	return LeastSquares
}

// Func is a pseudo-inverse strategy: it returns M⁺ (c×r) for an r×c input.
type Func func(m matrix.Matrix) (*matrix.Dense, error)

// Strategy returns the implementation selected by m.
func (m Method) Strategy() (Func, error) {
	switch m {
	case LeastSquares:
		return leastSquares, nil
	case SVD:
		return singularValues, nil
	default:
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMethod)
	}
}
