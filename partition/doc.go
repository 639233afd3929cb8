// Package partition splits the rows of a matrix into contiguous,
// non-overlapping ranges, one per worker, aligned on row pairs.
//
// Algorithm:
//
//	pairs     = n / 2
//	chunkSize = ceil(pairs / workers)
//	worker t  → [min(t·chunkSize·2, n), min((t+1)·chunkSize·2, n))
//
// The last worker's range is stretched to end at n, so the final unpaired
// row of an odd n is still owned by exactly one worker. Workers past the
// end of the matrix receive empty ranges.
//
// Example (n=10, workers=3 ⇒ pairs=5, chunkSize=2):
//
//	t=0: [0,4)   rows 0↔1, 2↔3
//	t=1: [4,8)   rows 4↔5, 6↔7
//	t=2: [8,10)  rows 8↔9
//
// Complexity: O(workers) time and memory.
package partition
