// SPDX-License-Identifier: MIT
// Package matrix_test validates option constructors.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/labworks/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionPanics ensures option constructors fail fast on programmer error.
func TestOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithValueRange: min must be <= max", func() {
		_ = matrix.WithValueRange(10, 1)
	})
	require.PanicsWithValue(t, "matrix: WithRand(nil)", func() {
		_ = matrix.WithRand(nil)
	})
	require.NotPanics(t, func() { _ = matrix.WithValueRange(0, 0) })

	// Ranges whose value count does not fit in an int are rejected up front.
	const spanMsg = "matrix: WithValueRange: max-min+1 overflows int"
	require.PanicsWithValue(t, spanMsg, func() {
		_ = matrix.WithValueRange(math.MinInt, math.MaxInt)
	})
	require.PanicsWithValue(t, spanMsg, func() {
		_ = matrix.WithValueRange(0, math.MaxInt)
	})
	require.PanicsWithValue(t, spanMsg, func() {
		_ = matrix.WithValueRange(-1, math.MaxInt-1)
	})
}

// TestRandomWidestRange draws from the widest accepted range without panicking.
func TestRandomWidestRange(t *testing.T) {
	var (
		m   *matrix.Dense
		err error
	)
	require.NotPanics(t, func() {
		m, err = matrix.Random(4, 4, matrix.WithSeed(1), matrix.WithValueRange(0, math.MaxInt-1))
	})
	require.NoError(t, err)

	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, math.MaxInt)
		}
	}
}

// TestOptionsLastWins applies two seeds; the later one must win.
func TestOptionsLastWins(t *testing.T) {
	a, err := matrix.Random(6, 6, matrix.WithSeed(1), matrix.WithSeed(2))
	require.NoError(t, err)
	b := mustRandom(t, 6, 2)
	require.True(t, a.Equal(b))
}
