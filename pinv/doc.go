// SPDX-License-Identifier: MIT

// Package pinv computes Moore–Penrose pseudo-inverses of dense matrices.
//
// 🚀 What is pinv?
//
//	Two interchangeable strategies behind one entry point, Compute:
//		• LeastSquares: solves M·X = I in the least-squares sense. A Householder
//		  QR solve plus one step of iterative refinement when M is numerically
//		  non-singular; the minimum-norm SVD solution otherwise.
//		• SVD         : a single thin singular value decomposition, inverting
//		  every singular value above the cutoff and zeroing the rest.
//
// Rank policy:
//
//	SVD treats singular values σ ≤ Rcond·σ_max as zero, with Rcond = 1e6·ε
//	(ε = 2⁻⁵², so Rcond ≈ 2.2e-10). This absorbs the rounding noise of an
//	explicitly formed normal matrix.
//
//	LeastSquares accepts its QR solution when the factorization's condition
//	estimate is ≤ 1/√ε. Otherwise it takes the SVD route with the
//	machine-precision cutoff LstsqRcond(r,c) = max(r,c)·ε, so ill-conditioned
//	full-rank input keeps directions that SVD drops.
//
// Both strategies return the minimum-norm least-squares inverse for
// rank-deficient input. Factorizations are delegated to gonum.org/v1/gonum/mat.
//
// Complexity:
//
//	O(r·c·min(r,c)) time and O(r·c) memory for an r×c input.
//
// Errors:
//   - ErrUnknownMethod    : Method value outside the enumeration.
//   - ErrNonFiniteInput   : input contains NaN/±Inf.
//   - ErrNoConvergence    : the SVD iteration did not converge.
//   - ErrNonFiniteResult  : the computed inverse contains NaN/±Inf.
package pinv
