// Package labworks collects two small timing exercises and the packages
// they are built from.
//
// What's inside?
//
//	cmd/timerdemo   sleeps for a fixed duration and prints the elapsed time
//	cmd/rowswap     fills an N×N matrix with random integers and swaps
//	                adjacent row pairs, sequentially and with a worker pool
//
// Library packages:
//
//	matrix/      integer row-major Dense matrix + seeded random generator
//	partition/   splits row pairs into contiguous per-worker row ranges
//	swap/        sequential and fork/join parallel row-pair swappers
//	clock/       injectable clock, manual clock for tests, stopwatch
//	timer/       the sleep-and-measure demo
//	bench/       benchmark driver, report rendering (text, YAML)
//
// Quick ASCII example of a row-pair swap on four rows:
//
//	row0 ─┐   ┌─ row1
//	row1 ─┘ → └─ row0
//	row2 ─┐   ┌─ row3
//	row3 ─┘   └─ row2
//
// Workers in the parallel swapper own disjoint row ranges, so the only
// synchronization is the final join.
package labworks
