// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options and functional options for the heuristic-guided engine.

package astar

import (
	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// Algorithm is the name recorded in search.Result.Algorithm.
const Algorithm = "astar"

// Options configures an A* run.
//
// Target    – node id to stop at; meaningful only when HasTarget is true.
// HasTarget – false runs the search to frontier exhaustion with h ≡ 0.
// Heuristic – remaining-cost estimate; nil selects StraightLine(metric).
// Metric    – metric of the default heuristic when HasMetric is true;
// otherwise the graph's own metric (core.Graph.Metric) is used.
// Logger    – receives one Debug entry per run. Never nil after DefaultOptions.
type Options struct {
	Target    int
	HasTarget bool
	Heuristic Heuristic
	Metric    core.Metric
	HasMetric bool
	Logger    *zap.Logger
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// WithTarget sets the target node and enables early exit when it is closed.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithHeuristic installs a custom heuristic. It must be admissible for the
// returned cost to be optimal; this is not checked. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}

	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMetric selects the metric of the default straight-line heuristic
// instead of deriving it from the graph's geographic flag.
func WithMetric(m core.Metric) Option {
	return func(o *Options) {
		o.Metric = m
		o.HasMetric = true
	}
}

// WithLogger routes run diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("astar: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with no target, the default heuristic and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}

// heuristic resolves the effective heuristic for g.
func (o Options) heuristic(g *core.Graph) Heuristic {
	switch {
	case !o.HasTarget:
		return Zero
	case o.Heuristic != nil:
		return o.Heuristic
	case o.HasMetric:
		return StraightLine(o.Metric)
	default:
		return StraightLine(g.Metric())
	}
}
