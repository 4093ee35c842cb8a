// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Grid: rows=0 ...: <sentinel>").
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (rows, cols, n, clusters,
// nodes per cluster) below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without a RNG.
// Supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownPreset indicates a City size outside PresetNames.
var ErrUnknownPreset = errors.New("builder: unknown city preset")

// ErrConstructFailed indicates a core insertion failed or a nil constructor
// was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
