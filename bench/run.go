// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/katalvlaran/labworks/clock"
	"github.com/katalvlaran/labworks/matrix"
	"github.com/katalvlaran/labworks/swap"
)

// Run executes the sequential pass, then the parallel pass.
// Stage 1 (Prepare): resolve options.
// Stage 2 (Execute): for each strategy, regenerate the matrix and time Swap.
// Stage 3 (Finalize): collect results in execution order.
//
// Errors:
//   - any matrix or swap error, wrapped with the strategy label.
//   - ErrMismatch under WithVerify when a pass disagrees with the reference.
//
// Complexity: O(size²) per strategy.
func Run(opts ...Option) (*Report, error) {
	cfg := newConfig(opts...)
	rep := &Report{Size: cfg.size, Workers: cfg.workers}

	for _, s := range []Strategy{Sequential(), Parallel(cfg.workers)} {
		elapsed, err := runOne(cfg, s)
		if err != nil {
			return nil, err
		}
		rep.Results = append(rep.Results, Result{
			Label:   s.Label,
			Workers: s.Workers,
			Elapsed: elapsed,
		})
	}

	return rep, nil
}

// runOne builds a fresh matrix and times a single strategy on it.
func runOne(cfg config, s Strategy) (time.Duration, error) {
	var genOpts []matrix.Option
	if cfg.seeded {
		genOpts = append(genOpts, matrix.WithSeed(cfg.seed))
	}
	m, err := matrix.Random(cfg.size, cfg.size, genOpts...)
	if err != nil {
		return 0, benchErrorf(s.Label, err)
	}

	var ref *matrix.Dense
	if cfg.verify {
		ref = m.Clone()
		if err = swap.Sequential(ref); err != nil {
			return 0, benchErrorf(s.Label, err)
		}
	}

	sw := clock.Start(cfg.clk)
	err = s.Swap(m)
	elapsed := sw.Elapsed()
	if err != nil {
		return 0, benchErrorf(s.Label, err)
	}

	if ref != nil && !m.Equal(ref) {
		return 0, benchErrorf(s.Label, ErrMismatch)
	}

	return elapsed, nil
}
