// SPDX-License-Identifier: MIT

package timer

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/labworks/clock"
)

// Language selects the report wording.
type Language int

const (
	// English renders "Execution time: <s> seconds".
	English Language = iota
	// Ukrainian renders "Час виконання: <s> секунд".
	Ukrainian
)

// reportFormats maps a Language to its one-line template. Seconds are
// printed with six significant digits.
var reportFormats = map[Language]string{
	English:   "Execution time: %.6g seconds\n",
	Ukrainian: "Час виконання: %.6g секунд\n",
}

// Measure blocks for d on the configured clock and returns the elapsed
// time between two clock readings taken around the sleep.
// Only WithClock is consulted; the d argument wins over WithDuration.
//
// Errors:
//   - ErrNegativeDuration when d < 0.
func Measure(d time.Duration, opts ...Option) (time.Duration, error) {
	if d < 0 {
		return 0, fmt.Errorf("Measure(%v): %w", d, ErrNegativeDuration)
	}
	cfg := newConfig(opts...)

	sw := clock.Start(cfg.clk)
	cfg.clk.Sleep(d)

	return sw.Elapsed(), nil
}

// Report writes one line with elapsed rendered in seconds.
//
// Errors:
//   - ErrUnknownLanguage for an unsupported lang.
//   - any error from w.
func Report(w io.Writer, elapsed time.Duration, lang Language) error {
	format, ok := reportFormats[lang]
	if !ok {
		return fmt.Errorf("Report(lang=%d): %w", lang, ErrUnknownLanguage)
	}
	_, err := fmt.Fprintf(w, format, elapsed.Seconds())

	return err
}

// Run performs the full demo: Measure for the configured duration
// (DefaultDuration unless overridden), then Report in the configured language.
func Run(w io.Writer, opts ...Option) error {
	cfg := newConfig(opts...)
	elapsed, err := Measure(cfg.duration, WithClock(cfg.clk))
	if err != nil {
		return err
	}

	return Report(w, elapsed, cfg.lang)
}
