// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Operations return these sentinels (possibly wrapped with method
// context via %w); callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrRaggedRows indicates that literal rows passed to NewFromRows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
