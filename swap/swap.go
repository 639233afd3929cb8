// SPDX-License-Identifier: MIT

package swap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/labworks/matrix"
	"github.com/katalvlaran/labworks/partition"
)

// Sequential swaps every adjacent row pair of m on the calling goroutine.
// For each even i in [0, rows-2]: row i ↔ row i+1.
// Complexity: O(rows*cols) time, O(1) extra space.
func Sequential(m *matrix.Dense) error {
	if m == nil {
		return swapErrorf("Sequential", ErrNilMatrix)
	}
	if err := Pairs(m, partition.Range{Start: 0, End: m.Rows()}); err != nil {
		return swapErrorf("Sequential", err)
	}

	return nil
}

// Pairs swaps adjacent row pairs inside r only, pairing rows from r.Start.
// If r holds an odd number of rows, its last row is left untouched.
// An empty range is a no-op.
// Complexity: O(r.Len()*cols).
func Pairs(m *matrix.Dense, r partition.Range) error {
	if m == nil {
		return ErrNilMatrix
	}

	var i int
	for i = r.Start; i+1 < r.End; i += 2 {
		if err := m.SwapRows(i, i+1); err != nil {
			return err
		}
	}

	return nil
}

// Parallel swaps every adjacent row pair of m using exactly `workers`
// goroutines, each owning one range from partition.RowPairs.
// Stage 1 (Validate): nil matrix, worker count (via RowPairs).
// Stage 2 (Fork): one goroutine per range, idle ones included.
// Stage 3 (Join): wait for all workers, join their errors.
//
// The result is identical to Sequential on the same input.
// Goroutines never outlive the call.
// Complexity: O(rows*cols / workers) wall time on enough cores.
func Parallel(m *matrix.Dense, workers int) error {
	if m == nil {
		return swapErrorf("Parallel", ErrNilMatrix)
	}
	ranges, err := partition.RowPairs(m.Rows(), workers)
	if err != nil {
		return swapErrorf("Parallel", err)
	}

	errs := make([]error, len(ranges)) // one slot per worker, no locking
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for t, r := range ranges {
		go func(t int, r partition.Range) {
			defer wg.Done()
			if err := Pairs(m, r); err != nil {
				errs[t] = fmt.Errorf("worker %d %v: %w", t, r, err)
			}
		}(t, r)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return swapErrorf("Parallel", err)
	}

	return nil
}
