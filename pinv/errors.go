// SPDX-License-Identifier: MIT

package pinv

import "errors"

var (
	// ErrUnknownMethod indicates a Method value outside the enumeration.
	ErrUnknownMethod = errors.New("pinv: unknown method")

	// ErrNonFiniteInput indicates the input matrix contains NaN or ±Inf.
	ErrNonFiniteInput = errors.New("pinv: input contains NaN or Inf")

	// ErrNoConvergence indicates the singular value decomposition failed to converge.
	ErrNoConvergence = errors.New("pinv: factorization did not converge")

	// ErrNonFiniteResult indicates the computed pseudo-inverse contains NaN or ±Inf.
	ErrNonFiniteResult = errors.New("pinv: result contains NaN or Inf")
)
