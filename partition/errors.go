// SPDX-License-Identifier: MIT
// Package partition: sentinel error set.

package partition

import "errors"

var (
	// ErrNegativeSize indicates a negative row count.
	ErrNegativeSize = errors.New("partition: row count must be >= 0")

	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("partition: worker count must be >= 1")

	// ErrGap indicates that some row index is not covered by any range.
	ErrGap = errors.New("partition: gap between ranges")

	// ErrOverlap indicates that some row index is covered by more than one range.
	ErrOverlap = errors.New("partition: ranges overlap")

	// ErrOutOfBounds indicates a range reaching outside [0,n) or with End < Start.
	ErrOutOfBounds = errors.New("partition: range out of bounds")
)
