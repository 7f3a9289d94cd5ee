// SPDX-License-Identifier: MIT

// Package procrustes solves the generic one-sided Procrustes problem.
//
// Given A (m×n) and B (m×n′), Generic finds the linear map T (n×n′) that
// minimizes the squared Frobenius misfit
//
//	‖A·T − B‖²_F
//
// through the closed form T = (AᵀA)⁺·Aᵀ·B, where ⁺ is the Moore–Penrose
// pseudo-inverse computed by package pinv.
//
// Pipeline (fixed order, every step optional):
//
//  1. Unpad     : drop trailing near-zero columns, then rows (|v| < 1e-8),
//     from A and B independently.
//  2. Translate : subtract each matrix's own column means.
//  3. Weight    : A ← diag(w)·A. B is never weighted.
//  4. Scale     : divide each matrix by its own Frobenius norm.
//  5. Pad       : append zero rows/columns so A and B share one shape.
//
// Defaults: Pad and CheckFinite on, everything else off, LeastSquares
// pseudo-inverse. Configure with functional options:
//
//	res, err := procrustes.Generic(a, b,
//		procrustes.WithTranslate(),
//		procrustes.WithScale(),
//		procrustes.WithSVD(),
//	)
//
// or decode a Config from YAML (gopkg.in/yaml.v3) and call Solve.
//
// Non-uniqueness:
//
//	When the conditioned A has fewer rows than columns the system is
//	underdetermined. The returned T is then the minimum-norm member of the
//	family of optimal maps and Result.Underdetermined is set.
//
// Errors carry a Kind (see KindOf): invalid configuration, shape mismatch,
// non-finite input, degenerate input, or a linear-algebra failure. No partial
// Result is ever returned together with an error.
//
// Every call is a pure function of its inputs: caller matrices are never
// mutated, and the package holds no shared state.
package procrustes
