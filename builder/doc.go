// Package builder generates synthetic road networks for benchmarking the
// shortest-path engines: street grids, random planar cities, clustered
// multi-district cities and component stitching.
//
// Constructors are composed with BuildGraph:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithStreetNames()},
//	    builder.RandomUrban(200))
//
// Every road weight is the straight-line length between its endpoints times
// a WeightFn multiplier (1 by default; see WithUniformWeight and
// WithCongestion). Multipliers ≥ 1 keep straight-line heuristics admissible.
//
// Node ids are dense integers starting one past the largest id already in the
// graph, so constructors can be chained on one graph. On directed graphs every
// road is emitted in both directions.
//
// Stochastic constructors (RandomUrban, Clustered, Grid with noise) require a
// RNG and are fully reproducible for a fixed WithSeed. Option constructors
// panic on meaningless values; constructors return ErrTooFewVertices,
// ErrNeedRandSource, ErrUnknownPreset or ErrConstructFailed.
package builder
