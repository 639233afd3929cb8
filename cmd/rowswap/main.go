// Command rowswap fills a 1000×1000 matrix with random integers in [1,100]
// and swaps adjacent row pairs, first on one goroutine and then with eight
// workers, printing the time of each pass.
//
// Usage:
//
//	rowswap
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/labworks/bench"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rowswap: ")

	rep, err := bench.Run(
		bench.WithSize(bench.DefaultSize),
		bench.WithWorkers(bench.DefaultWorkers),
	)
	if err != nil {
		log.Fatalf("benchmark: %v", err)
	}
	if err = rep.WriteText(os.Stdout); err != nil {
		log.Fatalf("write report: %v", err)
	}
}
