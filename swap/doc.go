// Package swap exchanges adjacent row pairs of a matrix in place:
// row 0↔1, row 2↔3, and so on. With an odd row count the last row is
// left untouched.
//
// Sequential walks all pairs on the calling goroutine. Parallel splits the
// pairs with partition.RowPairs, runs one goroutine per range, and waits
// for all of them before returning. Ranges are disjoint, so the only
// synchronization is the final join.
//
// Both strategies produce identical results for the same input.
package swap
