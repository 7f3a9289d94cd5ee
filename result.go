// SPDX-License-Identifier: MIT

package procrustes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/katalvlaran/procrustes/pinv"
)

// Result is the immutable outcome of one solve.
// Matrix accessors return deep copies.
type Result struct {
	// Error is the squared Frobenius misfit ‖A′T − B′‖²_F (not its root).
	Error float64

	// Underdetermined is set when A, after unpadding but before padding, has
	// fewer rows than A′ has columns. Zero rows appended by Pad do not count.
	// T is then the minimum-norm member of a family of equally good maps.
	Underdetermined bool

	// Method is the pseudo-inverse strategy that produced T.
	Method pinv.Method

	newA, newB, transform matrix.Matrix
}

// NewA returns the conditioned A′ (m×n).
func (r *Result) NewA() matrix.Matrix { return r.newA.Clone() }

// NewB returns the conditioned B′ (m×n′).
func (r *Result) NewB() matrix.Matrix { return r.newB.Clone() }

// Transform returns T (n×n′).
func (r *Result) Transform() matrix.Matrix { return r.transform.Clone() }

// ScaleFactor is always nil for the generic problem; variants that also
// fit a global scale report it here.
func (r *Result) ScaleFactor() *float64 { return nil }

// Aligned returns A′·T, the conditioned A mapped onto B′.
func (r *Result) Aligned() (matrix.Matrix, error) {
	return matrix.Mul(r.newA, r.transform)
}

// assemble computes the misfit and packages the result.
func assemble(newA, newB *matrix.Dense, t matrix.Matrix, dataRows int, method pinv.Method) (*Result, error) {
	e, err := squaredError(newA, newB, t)
	if err != nil {
		return nil, procrustesErrorf(opAssemble, ErrShapeMismatch, err)
	}
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return nil, procrustesErrorf(opAssemble, ErrLinearAlgebra, fmt.Errorf("misfit is %g", e))
	}

	return &Result{
		Error:           e,
		Underdetermined: dataRows < newA.Cols(),
		Method:          method,
		newA:            newA,
		newB:            newB,
		transform:       t,
	}, nil
}

// squaredError returns ‖a·t − b‖²_F.
func squaredError(a, b, t matrix.Matrix) (float64, error) {
	at, err := matrix.Mul(a, t)
	if err != nil {
		return 0, err
	}
	diff, err := matrix.Sub(at, b)
	if err != nil {
		return 0, err
	}

	return matrix.FrobeniusNormSq(diff)
}
