// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/labworks/matrix"
	"github.com/katalvlaran/labworks/swap"
)

// Strategy is one timed way of swapping the row pairs of a matrix.
type Strategy struct {
	Label   string                    // report heading, without trailing colon
	Workers int                       // goroutines used; 1 for sequential
	Swap    func(*matrix.Dense) error // mutates the matrix in place
}

// Sequential returns the single-goroutine strategy.
func Sequential() Strategy {
	return Strategy{
		Label:   "Without parallelization",
		Workers: 1,
		Swap:    swap.Sequential,
	}
}

// Parallel returns the fork/join strategy with the given worker count.
func Parallel(workers int) Strategy {
	return Strategy{
		Label:   fmt.Sprintf("With parallelization (%d threads)", workers),
		Workers: workers,
		Swap: func(m *matrix.Dense) error {
			return swap.Parallel(m, workers)
		},
	}
}
