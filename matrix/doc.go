// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric container and the small set of
// deterministic kernels the Procrustes pipeline is built on.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 arrays, and
//     Dense, its row-major implementation with bounds-checked accessors.
//   - Centralized validators (nil, shape, finiteness) returning sentinel errors.
//   - Linear-algebra kernels: Mul, Transpose, Scale, Sub, Trace, FrobeniusNorm.
//   - Statistics and element-wise kernels: CenterColumns, ScaleRows, AllClose.
//   - Shape kernels: PadTo and the trailing near-zero row/column trimmers.
//   - A bridge to gonum.org/v1/gonum/mat (ToGonum/FromGonum) for factorizations.
//
// Every kernel allocates a fresh result and never mutates its operands.
// Kernels take a fast path on *Dense (flat row-major slice walks) and fall
// back to At/Set for any other Matrix implementation, with identical loop
// orders in both paths so results are bitwise reproducible.
//
// Errors are package sentinels (see errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix
