// Package matrix - RNG utilities for the random generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every call to Random without an
//     explicit source gets its own *rand.Rand.
package matrix

import (
	"math/rand"
	"time"
)

// timeSeededRNG returns a *rand.Rand seeded from the wall clock, so
// successive runs of a program produce different matrices.
//
// Complexity: O(1).
func timeSeededRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// uniformInt draws an integer uniformly from the closed interval [lo, hi].
// Caller guarantees 0 <= hi-lo < math.MaxInt (enforced by WithValueRange).
//
// Complexity: O(1).
func uniformInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
