// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options and functional options for the exhaustive-relaxation engine.

package bellmanford

import "go.uber.org/zap"

// Algorithm is the name recorded in search.Result.Algorithm.
const Algorithm = "bellman_ford"

// Options configures a Bellman-Ford run.
//
// Target    – node id whose path is reconstructed; meaningful only when HasTarget is true.
// HasTarget – false reports counters only.
// Logger    – receives one Debug entry per run and a Warn entry on negative cycles.
type Options struct {
	Target    int
	HasTarget bool
	Logger    *zap.Logger
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithTarget sets the node whose path is reconstructed. It does not shorten
// the run: all passes are always performed.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithLogger routes run diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("bellmanford: WithLogger(nil)")
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
