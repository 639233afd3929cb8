// SPDX-License-Identifier: MIT

package partition

import "fmt"

// Range is a half-open interval [Start, End) of row indices owned by one worker.
type Range struct {
	Start int // first row (inclusive), always even for ranges built by RowPairs
	End   int // last row (exclusive)
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range holds no rows.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// String renders the range as "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// PairCount returns the number of complete adjacent row pairs in n rows.
func PairCount(n int) int {
	return n / 2
}

// ChunkSize returns ceil(PairCount(n) / workers), the number of row pairs
// handed to every worker except possibly the last.
// Caller guarantees workers >= 1 and n >= 0.
func ChunkSize(n, workers int) int {
	return (PairCount(n) + workers - 1) / workers
}

// RowPairs partitions n rows into exactly `workers` contiguous ranges.
// Stage 1 (Validate): n >= 0, workers >= 1.
// Stage 2 (Execute): compute chunk bounds, clamp to n.
// Stage 3 (Finalize): stretch the last range to n so odd n stays covered.
//
// Returns:
//   - []Range of length workers, ordered by worker index.
//
// Errors:
//   - ErrNegativeSize, ErrInvalidWorkers.
//
// Complexity: O(workers).
func RowPairs(n, workers int) ([]Range, error) {
	if n < 0 {
		return nil, fmt.Errorf("RowPairs(n=%d): %w", n, ErrNegativeSize)
	}
	if workers < 1 {
		return nil, fmt.Errorf("RowPairs(workers=%d): %w", workers, ErrInvalidWorkers)
	}

	step := ChunkSize(n, workers) * 2 // rows per full chunk
	out := make([]Range, workers)

	var t int
	for t = 0; t < workers; t++ {
		out[t] = Range{
			Start: min(t*step, n),
			End:   min((t+1)*step, n),
		}
	}
	out[workers-1].End = n

	return out, nil
}

// Validate checks that ranges are ordered, contiguous and cover [0,n)
// exactly once. Empty ranges are allowed anywhere as long as they do not
// break contiguity.
//
// Errors:
//   - ErrOutOfBounds when a range leaves [0,n) or has End < Start.
//   - ErrOverlap when a range starts before the previous one ended.
//   - ErrGap when a range starts after the previous one ended, or the
//     ranges stop short of n.
//
// Complexity: O(len(ranges)).
func Validate(ranges []Range, n int) error {
	next := 0 // first row not yet covered
	for i, r := range ranges {
		if r.Start < 0 || r.End > n || r.End < r.Start {
			return fmt.Errorf("range %d %v with n=%d: %w", i, r, n, ErrOutOfBounds)
		}
		if r.Empty() {
			if r.Start != next && r.Start != n {
				return fmt.Errorf("empty range %d %v, expected start %d: %w", i, r, next, ErrGap)
			}
			continue
		}
		switch {
		case r.Start < next:
			return fmt.Errorf("range %d %v, expected start %d: %w", i, r, next, ErrOverlap)
		case r.Start > next:
			return fmt.Errorf("range %d %v, expected start %d: %w", i, r, next, ErrGap)
		}
		next = r.End
	}
	if next != n {
		return fmt.Errorf("rows [%d,%d) uncovered: %w", next, n, ErrGap)
	}

	return nil
}
