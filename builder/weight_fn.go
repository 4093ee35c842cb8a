// Package builder provides helper functions and types for shaping the edge
// weights emitted by graph constructors.
//
// Generators derive every weight from the straight-line length of the road
// and multiply it by a WeightFn draw. Multipliers are >= 1 by convention,
// which keeps straight-line A* heuristics admissible.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn returns a length multiplier for one edge, given the optional RNG.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns 1: weight equals length.
func DefaultWeightFn(_ *rand.Rand) float64 { return 1 }

// ConstantWeightFn always returns k. Panics if k < 0.
func ConstantWeightFn(k float64) WeightFn {
	if k < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: k must be ≥ 0, got %g", k))
	}

	return func(_ *rand.Rand) float64 { return k }
}

// UniformWeightFn samples uniformly in [min, max). With a nil RNG it returns min.
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// CongestionWeightFn slows a random share of roads: with probability ratio
// the multiplier is factor, otherwise 1. With a nil RNG nothing is congested.
// Panics if factor < 1 or ratio ∉ [0,1].
func CongestionWeightFn(factor, ratio float64) WeightFn {
	if factor < 1 {
		panic(fmt.Sprintf("CongestionWeightFn: factor must be ≥ 1, got %g", factor))
	}
	if ratio < 0 || ratio > 1 {
		panic(fmt.Sprintf("CongestionWeightFn: ratio must be in [0,1], got %g", ratio))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || rng.Float64() >= ratio {
			return 1
		}

		return factor
	}
}

// WithUniformWeight sets multipliers ∼ U[min,max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithCongestion congests a ratio of roads by factor.
func WithCongestion(factor, ratio float64) BuilderOption {
	return WithWeightFn(CongestionWeightFn(factor, ratio))
}
