package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/labworks/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomDefaultRange checks that all 10,000 values of a 100×100 matrix
// lie in [1,100], with the default (time-seeded) source.
func TestRandomDefaultRange(t *testing.T) {
	const n = 100
	m, err := matrix.Random(n, n)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if v < matrix.DefaultMinValue || v > matrix.DefaultMaxValue {
				t.Fatalf("value %d at (%d,%d) outside [%d,%d]",
					v, i, j, matrix.DefaultMinValue, matrix.DefaultMaxValue)
			}
		}
	}
}

// TestRandomHitsBounds asserts a statistical property: with 10,000 draws
// from 100 values both endpoints appear (miss probability ≈ 2·e^-100).
func TestRandomHitsBounds(t *testing.T) {
	m := mustRandom(t, 100, 7)
	seen := make(map[int]bool)
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			seen[v] = true
		}
	}
	assert.True(t, seen[matrix.DefaultMinValue], "min value never drawn")
	assert.True(t, seen[matrix.DefaultMaxValue], "max value never drawn")
	assert.Len(t, seen, matrix.DefaultMaxValue-matrix.DefaultMinValue+1)
}

// TestRandomSeedDeterminism checks that equal seeds give identical matrices
// and different seeds (almost surely) do not.
func TestRandomSeedDeterminism(t *testing.T) {
	a := mustRandom(t, 32, 1337)
	b := mustRandom(t, 32, 1337)
	c := mustRandom(t, 32, 4242)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

// TestRandomWithRandAndRange uses a caller-owned source and a custom range.
func TestRandomWithRandAndRange(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	m, err := matrix.Random(8, 5, matrix.WithRand(r), matrix.WithValueRange(-2, 2))
	require.NoError(t, err)
	require.Equal(t, 8, m.Rows())
	require.Equal(t, 5, m.Cols())

	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			require.GreaterOrEqual(t, v, -2)
			require.LessOrEqual(t, v, 2)
		}
	}
}

// TestRandomSingletonRange fills every cell with the only allowed value.
func TestRandomSingletonRange(t *testing.T) {
	m, err := matrix.Random(3, 3, matrix.WithSeed(1), matrix.WithValueRange(5, 5))
	require.NoError(t, err)
	want := mustRows(t, [][]int{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}})
	require.True(t, m.Equal(want))
}

// TestRandomInvalidDimensions propagates the NewDense sentinel.
func TestRandomInvalidDimensions(t *testing.T) {
	_, err := matrix.Random(0, 10)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
