// Package bench drives the row-swap benchmark: for every strategy it
// builds a fresh random matrix, times the swap, and collects the results
// into a Report that renders as text or YAML.
//
// Defaults mirror the original exercise: a 1000×1000 matrix and 8 workers.
// Every knob is an Option, so tests can run small, seeded, verified passes:
//
//	rep, err := bench.Run(bench.WithSize(64), bench.WithWorkers(3),
//		bench.WithSeed(1), bench.WithVerify())
package bench
