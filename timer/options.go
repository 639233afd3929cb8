// SPDX-License-Identifier: MIT

package timer

import (
	"time"

	"github.com/katalvlaran/labworks/clock"
)

// DefaultDuration is how long the demo sleeps.
const DefaultDuration = 2 * time.Second

const (
	panicClockNil         = "timer: WithClock(nil)"
	panicDurationNegative = "timer: WithDuration: d must be >= 0"
)

// Option customizes Run and Measure.
type Option func(*config)

type config struct {
	clk      clock.Clock
	lang     Language
	duration time.Duration
}

// newConfig applies documented defaults, then opts in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		clk:      clock.System,
		lang:     English,
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithClock sets the time source. Panics on nil.
func WithClock(c clock.Clock) Option {
	if c == nil {
		panic(panicClockNil)
	}

	return func(cfg *config) { cfg.clk = c }
}

// WithLanguage selects the report language used by Run.
func WithLanguage(l Language) Option {
	return func(cfg *config) { cfg.lang = l }
}

// WithDuration overrides the sleep duration used by Run. Panics on negative d.
func WithDuration(d time.Duration) Option {
	if d < 0 {
		panic(panicDurationNegative)
	}

	return func(cfg *config) { cfg.duration = d }
}
