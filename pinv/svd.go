// SPDX-License-Identifier: MIT

package pinv

import (
	"github.com/katalvlaran/procrustes/matrix"
)

// singularValues is the SVD strategy: one thin decomposition M = U·Σ·Vᵀ,
// returning V·Σ⁺·Uᵀ with σ ≤ Rcond·σ_max zeroed.
func singularValues(m matrix.Matrix) (*matrix.Dense, error) {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return nil, pinvErrorf(opSVD, err)
	}

	out, err := minNormFromSVD(g, Rcond)
	if err != nil {
		return nil, pinvErrorf(opSVD, err)
	}

	return matrix.FromGonum(out)
}
