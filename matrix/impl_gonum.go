// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge between this package's Matrix and gonum.org/v1/gonum/mat, which
//     owns the LAPACK-grade factorizations (QR, SVD) used by package pinv.
//
// Ownership:
//   - Both directions copy. A *mat.Dense returned by ToGonum never aliases the
//     source buffer, and FromGonum never retains the gonum matrix.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new row-major *mat.Dense.
//
// Errors: ErrNilMatrix; wrapped At errors from the fallback path.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	// d is a private copy, so gonum may adopt its buffer.
	return mat.NewDense(d.r, d.c, d.data), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix when g is nil.
//   - ErrInvalidDimensions when g has a zero dimension.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, err))
	}

	// Raw fast-path for the common concrete type.
	if gd, ok := g.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}
