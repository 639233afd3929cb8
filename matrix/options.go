// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the random generator.
// This file defines:
//   - Option (functional options over an internal config),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - newConfig helper that applies defaults, then options in order.
//
// Notes:
//   - The default RNG is nil, which Random resolves to a fresh wall-clock
//     seeded source on each call. Use WithSeed or WithRand for reproducible
//     matrices in tests.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinValue is the smallest value Random draws (inclusive).
	DefaultMinValue = 1

	// DefaultMaxValue is the largest value Random draws (inclusive).
	DefaultMaxValue = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicValueRangeInvalid = "matrix: WithValueRange: min must be <= max"
	panicValueRangeSpan    = "matrix: WithValueRange: max-min+1 overflows int"
	panicRandNil           = "matrix: WithRand(nil)"
)

// Option mutates the generator configuration. Later options override earlier ones.
type Option func(*config)

// config stores the effective configuration after applying Option setters.
type config struct {
	rng      *rand.Rand // nil ⇒ fresh time-seeded source per call
	min, max int        // inclusive value bounds
}

// newConfig constructs a config with documented defaults and applies all
// options in order (last wins).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng: nil,
		min: DefaultMinValue,
		max: DefaultMaxValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new deterministic *rand.Rand from seed.
// Seed 0 is accepted verbatim; it is not a sentinel for "random".
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The caller keeps ownership;
// *rand.Rand is NOT goroutine-safe, so do not share it across goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithValueRange sets the inclusive bounds of generated values.
// Panics when min > max, or when the range holds more than math.MaxInt values.
func WithValueRange(lo, hi int) Option {
	if lo > hi {
		panic(panicValueRangeInvalid)
	}
	// hi-lo wraps negative on overflow; the draw needs hi-lo+1 to fit too.
	if span := hi - lo; span < 0 || span == math.MaxInt {
		panic(panicValueRangeSpan)
	}

	return func(c *config) {
		c.min, c.max = lo, hi
	}
}
