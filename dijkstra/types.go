// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options and functional options for the uniform-cost engine.

package dijkstra

import "go.uber.org/zap"

// Algorithm is the name recorded in search.Result.Algorithm.
const Algorithm = "dijkstra"

// Options configures a Dijkstra run.
//
// Target    – node id to stop at; meaningful only when HasTarget is true.
// HasTarget – false runs the search to frontier exhaustion and reports counters only.
// Logger    – receives one Debug entry per run. Never nil after DefaultOptions.
type Options struct {
	Target    int
	HasTarget bool
	Logger    *zap.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget sets the target node and enables early exit when it is finalized.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithLogger routes run diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with no target and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}
