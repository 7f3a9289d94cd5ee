// SPDX-License-Identifier: MIT

package procrustes_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/procrustes"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want procrustes.Kind
	}{
		{nil, procrustes.KindUnknown},
		{errors.New("other"), procrustes.KindUnknown},
		{procrustes.ErrType, procrustes.KindType},
		{fmt.Errorf("wrapped: %w", procrustes.ErrShapeMismatch), procrustes.KindShapeMismatch},
		{procrustes.ErrNonFinite, procrustes.KindNonFiniteInput},
		{procrustes.ErrDegenerate, procrustes.KindDegenerateInput},
		{procrustes.ErrLinearAlgebra, procrustes.KindLinearAlgebraFailure},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, procrustes.KindOf(tc.err), fmt.Sprint(tc.err))
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "type", procrustes.KindType.String())
	assert.Equal(t, "linear algebra failure", procrustes.KindLinearAlgebraFailure.String())
	assert.Equal(t, "Kind(42)", procrustes.Kind(42).String())
}
