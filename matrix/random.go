// SPDX-License-Identifier: MIT

package matrix

// Random creates a rows×cols Dense matrix where every cell is an
// independently drawn integer in [min,max] (default [1,100]).
// Stage 1 (Validate): dimensions via NewDense.
// Stage 2 (Prepare): resolve options; pick a time-seeded RNG unless one was given.
// Stage 3 (Execute): fill the backing slice in row-major order.
//
// Determinism: with WithSeed the result is reproducible; without it,
// every call draws from a freshly seeded source.
// Complexity: O(rows*cols) time and memory.
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	r := cfg.rng
	if r == nil {
		r = timeSeededRNG()
	}

	var k int
	for k = 0; k < len(m.data); k++ {
		m.data[k] = uniformInt(r, cfg.min, cfg.max)
	}

	return m, nil
}
