// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. The weight
// stream is seeded from one draw of r. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
		c.weightRng = rand.New(rand.NewSource(r.Int63() ^ weightSeedSalt))
	}
}

// WithSeed creates the layout and weight RNGs from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
		c.weightRng = rand.New(rand.NewSource(seed ^ weightSeedSalt))
		c.seed = seed
	}
}

// WithLabelScheme sets the node label generator (index → label). Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithStreetNames labels nodes with fake street addresses. The generator is
// seeded from the WithSeed value, so labels are reproducible per seed.
func WithStreetNames() BuilderOption {
	return func(c *builderConfig) {
		c.labelFn = StreetLabelFn
		c.streetNames = true
	}
}

// WithWeightFn sets the per-edge weight multiplier applied on top of the
// straight-line length. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSpacing sets the grid step. Panics if s <= 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithDiagonals adds both diagonals of every grid cell.
func WithDiagonals() BuilderOption {
	return func(c *builderConfig) {
		c.diagonals = true
	}
}

// WithNoise jitters grid positions by up to ±noise·spacing/2 on each axis.
// Requires a RNG at build time. Panics unless 0 <= noise <= 1.
func WithNoise(noise float64) BuilderOption {
	if noise < 0 || noise > 1 {
		panic("builder: WithNoise(noise∉[0,1])")
	}
	return func(c *builderConfig) {
		c.noise = noise
	}
}

// WithArea sets the RandomUrban placement rectangle. Panics on non-positive sides.
func WithArea(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithArea(width<=0 || height<=0)")
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}

// WithMinDistance sets the preferred minimum spacing between RandomUrban
// nodes. Panics if d < 0.
func WithMinDistance(d float64) BuilderOption {
	if d < 0 {
		panic("builder: WithMinDistance(d<0)")
	}
	return func(c *builderConfig) {
		c.minDistance = d
	}
}

// WithAvgDegree sets the target average degree of RandomUrban. Panics if d < 1.
func WithAvgDegree(d float64) BuilderOption {
	if d < 1 {
		panic("builder: WithAvgDegree(d<1)")
	}
	return func(c *builderConfig) {
		c.avgDegree = d
	}
}

// WithRandomLinks makes RandomUrban join uniformly random node pairs instead
// of k-nearest neighbours.
func WithRandomLinks() BuilderOption {
	return func(c *builderConfig) {
		c.randomLinks = true
	}
}

// WithClusterRadius sets the district radius of Clustered. Panics if r <= 0.
func WithClusterRadius(r float64) BuilderOption {
	if r <= 0 {
		panic("builder: WithClusterRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.clusterRadius = r
	}
}

// WithWorldSize sets the square side in which Clustered places district
// centres. Panics if s <= 0.
func WithWorldSize(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithWorldSize(s<=0)")
	}
	return func(c *builderConfig) {
		c.worldSize = s
	}
}

// WithInterClusterLinks sets how many highway attempts per district Clustered
// makes. Panics if n < 0.
func WithInterClusterLinks(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithInterClusterLinks(n<0)")
	}
	return func(c *builderConfig) {
		c.interClusterLinks = n
	}
}
