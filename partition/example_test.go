package partition_test

import (
	"fmt"

	"github.com/katalvlaran/labworks/partition"
)

// ExampleRowPairs splits ten rows across three workers.
func ExampleRowPairs() {
	ranges, _ := partition.RowPairs(10, 3)
	for t, r := range ranges {
		fmt.Printf("worker %d: %v\n", t, r)
	}

	// Output:
	// worker 0: [0,4)
	// worker 1: [4,8)
	// worker 2: [8,10)
}
