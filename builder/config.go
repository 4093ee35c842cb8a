// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • Layout randomness flows only through cfg.rng; nil means "no randomness".
//   • Weight multipliers draw from cfg.weightRng, a separate stream derived
//     from the same seed, so weights never shift the layout.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng       *rand.Rand
	weightRng *rand.Rand // multipliers only; nil when rng is nil
	seed      int64      // last WithSeed value, reused to seed street-name labels
	labelFn   LabelFn
	weightFn  WeightFn

	// streetNames seeds gofakeit from seed once per BuildGraph.
	streetNames bool

	// Grid.
	spacing   float64
	diagonals bool
	noise     float64 // fraction of spacing, in [0,1]

	// RandomUrban.
	width, height float64
	minDistance   float64
	avgDegree     float64
	randomLinks   bool // uniform random pairs instead of k-nearest

	// Clustered.
	clusterRadius     float64
	worldSize         float64
	interClusterLinks int
}

// newBuilderConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:          DefaultWeightFn,
		spacing:           DefaultSpacing,
		width:             DefaultWidth,
		height:            DefaultHeight,
		minDistance:       DefaultMinDistance,
		avgDegree:         DefaultAvgDegree,
		clusterRadius:     DefaultClusterRadius,
		worldSize:         DefaultWorldSize,
		interClusterLinks: DefaultInterClusterLinks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label returns the configured label for idx, or fallback(idx) when no
// scheme was set. An empty result lets core apply its "V<id>" default.
func (c builderConfig) label(idx int, fallback LabelFn) string {
	if c.labelFn != nil {
		return c.labelFn(idx)
	}
	if fallback != nil {
		return fallback(idx)
	}

	return ""
}
