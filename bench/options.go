// SPDX-License-Identifier: MIT

// Package bench: functional configuration for Run.
//
// Deterministic defaults:
//   • size    = DefaultSize    (1000)
//   • workers = DefaultWorkers (8)
//   • seed    = none           (fresh time-seeded matrix per pass)
//   • clock   = clock.System
//   • verify  = false
package bench

import "github.com/katalvlaran/labworks/clock"

const (
	// DefaultSize is the matrix dimension N (N×N).
	DefaultSize = 1000

	// DefaultWorkers is the worker count T of the parallel pass.
	DefaultWorkers = 8
)

const (
	panicSizeInvalid    = "bench: WithSize: n must be >= 1"
	panicWorkersInvalid = "bench: WithWorkers: t must be >= 1"
	panicClockNil       = "bench: WithClock(nil)"
)

// Option customizes Run.
type Option func(*config)

type config struct {
	size    int
	workers int
	seeded  bool  // true once WithSeed was applied
	seed    int64 // used only when seeded
	clk     clock.Clock
	verify  bool
}

// newConfig applies defaults, then opts in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		size:    DefaultSize,
		workers: DefaultWorkers,
		clk:     clock.System,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSize sets the matrix dimension. Panics when n < 1.
func WithSize(n int) Option {
	if n < 1 {
		panic(panicSizeInvalid)
	}

	return func(c *config) { c.size = n }
}

// WithWorkers sets the worker count of the parallel pass. Panics when t < 1.
func WithWorkers(t int) Option {
	if t < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = t }
}

// WithSeed makes every pass start from the same reproducible matrix.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seeded = true
		c.seed = seed
	}
}

// WithClock sets the clock used to time each pass. Panics on nil.
func WithClock(clk clock.Clock) Option {
	if clk == nil {
		panic(panicClockNil)
	}

	return func(c *config) { c.clk = clk }
}

// WithVerify compares every pass against a sequential reference computed
// (untimed) on a copy of the same input.
func WithVerify() Option {
	return func(c *config) { c.verify = true }
}
