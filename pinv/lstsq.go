// SPDX-License-Identifier: MIT

package pinv

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrustes/matrix"
)

// maxQRCond is the largest condition estimate (1/√ε) for which the QR
// solve is trusted. Anything worse goes through the SVD with LstsqRcond.
const maxQRCond = 0x1p26

// LstsqRcond returns the relative singular-value cutoff of the LeastSquares
// strategy for an r×c input: max(r,c)·ε, the machine-precision rank
// threshold of a least-squares solver.
func LstsqRcond(r, c int) float64 {
	return float64(max(r, c)) * epsilon
}

// leastSquares is the LeastSquares strategy. It solves M·X = I.
//
// Implementation:
//   - Stage 1 (square, well-conditioned M): Householder QR, X₀ = R⁻¹Qᵀ·I,
//     then one refinement step X = X₀ + solve(M, I − M·X₀).
//   - Stage 2 (otherwise): minimum-norm least-squares solution V·Σ⁺·Uᵀ
//     with σ ≤ LstsqRcond(r,c)·σ_max zeroed.
//
// Behavior highlights:
//   - The refinement step recovers most of the accuracy lost to forming
//     the normal matrix AᵀA upstream.
//   - Rank-deficient input never reaches the triangular solve.
//   - Ill-conditioned but full-rank input keeps every direction the SVD
//     strategy would drop between LstsqRcond and Rcond.
func leastSquares(m matrix.Matrix) (*matrix.Dense, error) {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return nil, pinvErrorf(opLeastSquares, err)
	}

	if x, ok := solveQR(g); ok {
		return matrix.FromGonum(x)
	}

	r, c := g.Dims()
	out, err := minNormFromSVD(g, LstsqRcond(r, c))
	if err != nil {
		return nil, pinvErrorf(opLeastSquares, err)
	}

	return matrix.FromGonum(out)
}

// solveQR returns (M⁻¹, true) when g is square and its QR factorization is
// well conditioned; (nil, false) signals the caller to fall back.
func solveQR(g *mat.Dense) (*mat.Dense, bool) {
	r, c := g.Dims()
	if r != c {
		return nil, false
	}

	var qr mat.QR
	qr.Factorize(g)
	if cond := qr.Cond(); cond > maxQRCond || math.IsNaN(cond) {
		return nil, false
	}

	id, err := identity(r)
	if err != nil {
		return nil, false
	}
	var x mat.Dense
	if err = qr.SolveTo(&x, false, id); err != nil {
		return nil, false
	}

	// Residual correction: X ← X + M⁻¹(I − M·X).
	var resid, dx mat.Dense
	resid.Mul(g, &x)
	resid.Sub(id, &resid)
	if err = qr.SolveTo(&dx, false, &resid); err == nil {
		x.Add(&x, &dx)
	}
	if !finite(&x) {
		return nil, false
	}

	return &x, true
}

func identity(n int) (*mat.Dense, error) {
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}

	return matrix.ToGonum(id)
}
