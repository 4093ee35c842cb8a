// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state besides
//     the gofakeit generator behind WithStreetNames).
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/brianvoe/gofakeit"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they respect the graph's directed and geographic flags.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	if cfg.streetNames {
		gofakeit.Seed(cfg.seed)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Preset is a named city size for City.
type Preset struct {
	Clusters      int
	PerCluster    int
	ClusterRadius float64
	WorldSize     float64
}

// Presets maps the City size names to their parameters.
var Presets = map[string]Preset{
	"small":  {Clusters: 3, PerCluster: 20, ClusterRadius: 150, WorldSize: 1000},
	"medium": {Clusters: 5, PerCluster: 40, ClusterRadius: 200, WorldSize: 2000},
	"large":  {Clusters: 10, PerCluster: 100, ClusterRadius: 250, WorldSize: 5000},
}

// PresetNames returns the City size names in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// City builds an undirected clustered city of the named size ("small",
// "medium", "large"). opts are applied after the preset, so they may override
// it; a RNG is required (WithSeed or WithRand).
func City(size string, opts ...BuilderOption) (*core.Graph, error) {
	p, ok := Presets[size]
	if !ok {
		return nil, fmt.Errorf("%s: %q (want one of %v): %w", MethodCity, size, PresetNames(), ErrUnknownPreset)
	}
	bopts := append([]BuilderOption{
		WithClusterRadius(p.ClusterRadius),
		WithWorldSize(p.WorldSize),
	}, opts...)

	return BuildGraph(nil, bopts, Clustered(p.Clusters, p.PerCluster))
}
