// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests and benchmarks.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/labworks/matrix"
)

// mustDense allocates an r×c *Dense or fails the test (fatal on error).
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// mustRandom builds a seeded random n×n matrix or fails the test.
func mustRandom(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Random(n, n, matrix.WithSeed(seed))
	if err != nil {
		tb.Fatalf("Random(%d): %v", n, err)
	}

	return m
}
