// SPDX-License-Identifier: MIT

package pointset

import "errors"

var (
	// ErrEmptyGeometry indicates a geometry or collection without any vertex.
	ErrEmptyGeometry = errors.New("pointset: empty geometry")

	// ErrUnsupportedGeometry indicates a geometry type with no point-set reading.
	ErrUnsupportedGeometry = errors.New("pointset: unsupported geometry")

	// ErrTooFewColumns indicates a matrix with fewer than two coordinate columns.
	ErrTooFewColumns = errors.New("pointset: need at least two columns")
)
