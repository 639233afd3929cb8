// Package matrix provides a small integer matrix used by the row-swap
// benchmark.
//
// What & Why:
//
//	Dense stores r×c int values in a single row-major slice, which keeps
//	each row contiguous in memory. Row swaps then touch two contiguous
//	windows of the backing slice, and workers that own disjoint row ranges
//	never write to the same memory.
//
// The package provides:
//
//   - NewDense / NewFromRows for zeroed or literal matrices.
//   - Random for matrices filled with uniform integers in [min,max]
//     (default [1,100]), with an injectable, seedable RNG.
//   - Bounds-checked At / Set / Row / SwapRows, plus Clone and Equal.
//
// Complexity:
//
//	Rows, Cols, At and Set run in O(1).
//	SwapRows runs in O(c). Clone, Equal and Random run in O(r*c).
//
// Concurrency:
//
//	Dense carries no lock. Concurrent SwapRows calls are safe only when the
//	row indices they touch are disjoint.
package matrix
