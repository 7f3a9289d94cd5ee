// SPDX-License-Identifier: MIT

package procrustes

import (
	"errors"
	"fmt"
)

// Sentinel errors. Each one defines a Kind; match with errors.Is or KindOf.
var (
	// ErrType reports a configuration-contract violation (unknown pseudo-inverse
	// method, non-boolean flag in a config file). Raised before any numeric work.
	ErrType = errors.New("procrustes: invalid configuration")

	// ErrShapeMismatch reports nil/empty inputs, a weight vector whose length
	// differs from A's row count, or row counts that cannot be reconciled.
	ErrShapeMismatch = errors.New("procrustes: shape mismatch")

	// ErrNonFinite reports NaN or ±Inf in A, B or the weights while CheckFinite is set.
	ErrNonFinite = errors.New("procrustes: non-finite input")

	// ErrDegenerate reports a (near-)zero Frobenius norm under Scale, or
	// unpadding that would remove every row or column.
	ErrDegenerate = errors.New("procrustes: degenerate input")

	// ErrLinearAlgebra reports a pseudo-inverse computation that failed or
	// produced non-finite values.
	ErrLinearAlgebra = errors.New("procrustes: linear algebra failure")
)

// Kind classifies errors returned by this package.
type Kind int

const (
	KindUnknown Kind = iota
	KindType
	KindShapeMismatch
	KindNonFiniteInput
	KindDegenerateInput
	KindLinearAlgebraFailure
)

var kindNames = [...]string{
	KindUnknown:              "unknown",
	KindType:                 "type",
	KindShapeMismatch:        "shape mismatch",
	KindNonFiniteInput:       "non-finite input",
	KindDegenerateInput:      "degenerate input",
	KindLinearAlgebraFailure: "linear algebra failure",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// KindOf returns the Kind of err, or KindUnknown for nil and foreign errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrType):
		return KindType
	case errors.Is(err, ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, ErrNonFinite):
		return KindNonFiniteInput
	case errors.Is(err, ErrDegenerate):
		return KindDegenerateInput
	case errors.Is(err, ErrLinearAlgebra):
		return KindLinearAlgebraFailure
	default:
		return KindUnknown
	}
}

// Operation tags.
const (
	opValidate   = "Validate"
	opUnpad      = "Unpad"
	opTranslate  = "Translate"
	opWeight     = "Weight"
	opScale      = "Scale"
	opPad        = "Pad"
	opSolve      = "Solve"
	opAssemble   = "Assemble"
	opConfigYAML = "Config.UnmarshalYAML"
)

// procrustesErrorf tags kind with op and, when cause is non-nil, chains it.
// Both kind and cause stay reachable through errors.Is.
func procrustesErrorf(op string, kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, kind)
	}

	return fmt.Errorf("%s: %w: %w", op, kind, cause)
}
