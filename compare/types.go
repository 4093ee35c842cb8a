// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Engine registry, options and sentinel errors for the comparison façade.

package compare

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/astar"
	"github.com/abdoulaye05/Smart-GPS/bellmanford"
	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/dijkstra"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// Sentinel errors for the comparison layer.
var (
	// ErrUnknownEngine indicates an engine name outside DefaultEngines.
	ErrUnknownEngine = errors.New("compare: unknown engine")

	// ErrBadRuns indicates a non-positive repetition count for Measure.
	ErrBadRuns = errors.New("compare: runs must be positive")

	// ErrBadSizes indicates an empty or non-positive size list for Scale.
	ErrBadSizes = errors.New("compare: sizes must be positive")
)

// DefaultEngines lists every engine in run order. Dijkstra comes first and is
// the reference for Verify.
var DefaultEngines = []string{dijkstra.Algorithm, astar.Algorithm, bellmanford.Algorithm}

// Engine runs one shortest-path search from source to target.
type Engine func(g *core.Graph, source, target int) (*search.Result, error)

// Options configures Run and Lookup.
//
// Heuristic – A* heuristic; nil keeps the A* default.
// Engines   – engine names to run, in order. Empty means DefaultEngines.
// Logger    – passed to every engine and used for the comparison summary.
type Options struct {
	Heuristic astar.Heuristic
	Engines   []string
	Logger    *zap.Logger
}

// Option represents a functional option for configuring a comparison.
type Option func(*Options)

// WithHeuristic sets the heuristic handed to A*. Panics on nil.
func WithHeuristic(h astar.Heuristic) Option {
	if h == nil {
		panic("compare: WithHeuristic(nil)")
	}

	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithEngines restricts the comparison to the named engines, in the given order.
func WithEngines(names ...string) Option {
	return func(o *Options) {
		o.Engines = append([]string(nil), names...)
	}
}

// WithLogger routes engine and comparison diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("compare: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options running all engines with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Engines: DefaultEngines,
		Logger:  zap.NewNop(),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Engines) == 0 {
		cfg.Engines = DefaultEngines
	}

	return cfg
}

// Lookup returns the named engine bound to the given options.
func Lookup(name string, opts ...Option) (Engine, error) {
	return lookup(name, buildOptions(opts))
}

func lookup(name string, cfg Options) (Engine, error) {
	switch name {
	case dijkstra.Algorithm:
		return func(g *core.Graph, s, t int) (*search.Result, error) {
			return dijkstra.Dijkstra(g, s, dijkstra.WithTarget(t), dijkstra.WithLogger(cfg.Logger))
		}, nil
	case astar.Algorithm:
		return func(g *core.Graph, s, t int) (*search.Result, error) {
			aopts := []astar.Option{astar.WithTarget(t), astar.WithLogger(cfg.Logger)}
			if cfg.Heuristic != nil {
				aopts = append(aopts, astar.WithHeuristic(cfg.Heuristic))
			}

			return astar.AStar(g, s, aopts...)
		}, nil
	case bellmanford.Algorithm:
		return func(g *core.Graph, s, t int) (*search.Result, error) {
			return bellmanford.BellmanFord(g, s, bellmanford.WithTarget(t), bellmanford.WithLogger(cfg.Logger))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}
