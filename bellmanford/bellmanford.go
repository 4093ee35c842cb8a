// SPDX-License-Identifier: MIT
//
// File: bellmanford.go
// Role: Full-relaxation shortest paths with negative-cycle detection.

package bellmanford

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// BellmanFord computes shortest paths from source by relaxing every arc of g
// exactly NodeCount()-1 times, then checks once more for a negative cycle.
//
// Negative weights are allowed. In an undirected graph every negative edge
// forms a negative cycle with its mirror and is reported as such.
//
// Returns:
//
//   - *search.Result: with a target, the reconstructed path or a failure
//     result when the target stays unreachable; without one, counters only.
//     RelaxedEdges is always (V-1)·EdgeCount().
//   - error: search.ErrNilGraph, search.ErrNodeNotFound, or
//     search.ErrNegativeCycle wrapped with the arc that still improved.
//     No Result is returned alongside an error.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
func BellmanFord(g *core.Graph, source int, opts ...Option) (*search.Result, error) {
	start := time.Now()

	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph, source and target.
	src, dst, err := search.Endpoints(g, source, cfg.Target, cfg.HasTarget)
	if err != nil {
		return nil, err
	}

	// 3) (V-1) relaxation passes.
	r := newRunner(g, src)
	for pass := 1; pass < g.NodeCount(); pass++ {
		r.pass()
	}

	// 4) Detection pass.
	if u, a, ok := r.improvable(); ok {
		from, to := g.NodeAt(u).ID, g.NodeAt(a.To).ID
		cfg.Logger.Warn("negative cycle detected",
			zap.String("algorithm", Algorithm),
			zap.Int("source", source),
			zap.Int("from", from),
			zap.Int("to", to),
			zap.Float64("weight", a.Weight),
		)

		return nil, fmt.Errorf("%w: edge %d->%d (weight %g) still relaxes after %d passes",
			search.ErrNegativeCycle, from, to, a.Weight, g.NodeCount()-1)
	}

	// 5) Package the outcome.
	res := r.result(dst, start)
	cfg.Logger.Debug("search finished",
		zap.String("algorithm", Algorithm),
		zap.Int("source", source),
		zap.Int("target", cfg.Target),
		zap.Bool("has_target", cfg.HasTarget),
		zap.Bool("success", res.Success),
		zap.Float64("cost", res.Cost),
		zap.Int("visited", res.VisitedNodes),
		zap.Int("relaxed", res.RelaxedEdges),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// runner holds the slot-indexed Bellman-Ford state.
type runner struct {
	g        *core.Graph
	src      int
	dist     []float64
	prev     []int
	seen     []bool // distance improved at least once (source included)
	explored []int  // slots in order of first improvement
	relaxed  int
}

func newRunner(g *core.Graph, src int) *runner {
	n := g.NodeCount()
	r := &runner{
		g:    g,
		src:  src,
		dist: make([]float64, n),
		prev: make([]int, n),
		seen: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = search.NoPredecessor
	}
	r.dist[src] = 0
	r.mark(src)

	return r
}

func (r *runner) mark(slot int) {
	if !r.seen[slot] {
		r.seen[slot] = true
		r.explored = append(r.explored, slot)
	}
}

// pass relaxes every arc once, in adjacency order. Each arc counts as one
// relaxation whether or not it improves anything.
func (r *runner) pass() {
	for u := 0; u < r.g.NodeCount(); u++ {
		for _, a := range r.g.ArcsAt(u) {
			r.relaxed++
			if math.IsInf(r.dist[u], 1) {
				continue
			}
			if nd := r.dist[u] + a.Weight; nd < r.dist[a.To] {
				r.dist[a.To] = nd
				r.prev[a.To] = u
				r.mark(a.To)
			}
		}
	}
}

// improvable returns the first arc that could still shorten a finite distance.
func (r *runner) improvable() (int, core.Arc, bool) {
	for u := 0; u < r.g.NodeCount(); u++ {
		if math.IsInf(r.dist[u], 1) {
			continue
		}
		for _, a := range r.g.ArcsAt(u) {
			if r.dist[u]+a.Weight < r.dist[a.To] {
				return u, a, true
			}
		}
	}

	return 0, core.Arc{}, false
}

func (r *runner) result(dst int, start time.Time) *search.Result {
	explored := search.IDs(r.g, r.explored)
	visited := len(r.explored)

	if dst == search.NoPredecessor || math.IsInf(r.dist[dst], 1) {
		return search.Unreachable(Algorithm, visited, explored, r.relaxed, time.Since(start))
	}

	path := search.Reconstruct(r.g, r.prev, r.src, dst)

	return search.Found(Algorithm, path, r.dist[dst], visited, explored, r.relaxed, time.Since(start))
}
