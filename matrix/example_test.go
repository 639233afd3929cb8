package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/labworks/matrix"
)

// ExampleDense_SwapRows swaps the first and last rows of a 3×2 matrix.
func ExampleDense_SwapRows() {
	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	_ = m.SwapRows(0, 2)
	fmt.Print(m)

	// Output:
	// [5, 6]
	// [3, 4]
	// [1, 2]
}

// ExampleRandom draws a reproducible matrix restricted to a single value.
func ExampleRandom() {
	m, _ := matrix.Random(2, 3, matrix.WithSeed(42), matrix.WithValueRange(7, 7))
	fmt.Print(m)

	// Output:
	// [7, 7, 7]
	// [7, 7, 7]
}
