// SPDX-License-Identifier: MIT
//
// File: astar.go
// Role: Heuristic-guided best-first search (A*) between two nodes of a core.Graph.

package astar

import (
	"container/heap"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// AStar computes a least-cost path from source to the target set with
// WithTarget, ordering the frontier by f = g + h.
//
// Returns:
//
//   - *search.Result: exactly one per call, with the same success, failure
//     and trivial-case semantics as dijkstra.Dijkstra.
//   - error: search.ErrNilGraph or search.ErrNodeNotFound.
//
// Preconditions:
//
//   - Edge weights are non-negative.
//   - The heuristic is admissible. This is not verified; an overestimating
//     heuristic may yield a suboptimal Cost.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case, typically far fewer expansions.
//   - Space: O(V + E).
func AStar(g *core.Graph, source int, opts ...Option) (*search.Result, error) {
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

	// 3) Trivial case.
	if cfg.HasTarget && src == dst {
		res := search.Trivial(Algorithm, source, time.Since(start))
		logResult(cfg, source, res)

		return res, nil
	}

	// 4) Best-first loop.
	r := newRunner(g, src, dst, cfg.heuristic(g))
	r.process()

	// 5) Package the outcome.
	res := r.result(start)
	logResult(cfg, source, res)

	return res, nil
}

// runner holds the per-call A* state, indexed by arena slot.
type runner struct {
	g        *core.Graph
	h        Heuristic
	target   *core.Node // nil without a target
	src, dst int
	gScore   []float64 // cost from source, +Inf until reached
	prev     []int
	closed   []bool
	explored []int
	relaxed  int
	open     openSet
	seq      uint64
}

func newRunner(g *core.Graph, src, dst int, h Heuristic) *runner {
	n := g.NodeCount()
	r := &runner{
		g:      g,
		h:      h,
		src:    src,
		dst:    dst,
		gScore: make([]float64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		open:   make(openSet, 0, n),
	}
	if dst != search.NoPredecessor {
		r.target = g.NodeAt(dst)
	}
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.prev[i] = search.NoPredecessor
	}
	r.gScore[src] = 0
	r.push(src, 0)

	return r
}

// estimate returns h(slot, target), or 0 when running without a target.
func (r *runner) estimate(slot int) float64 {
	if r.target == nil {
		return 0
	}

	return r.h(r.g.NodeAt(slot), r.target, r.g)
}

// push adds slot with its current g and a freshly computed f.
func (r *runner) push(slot int, gs float64) {
	r.seq++
	heap.Push(&r.open, &openItem{slot: slot, f: gs + r.estimate(slot), g: gs, seq: r.seq})
}

// process expands nodes in f order until the target is closed or the open set is empty.
func (r *runner) process() {
	for r.open.Len() > 0 {
		// 1) Extract the minimum-f entry.
		u := heap.Pop(&r.open).(*openItem).slot

		// 2) Stale entry.
		if r.closed[u] {
			continue
		}

		// 3) Close.
		r.closed[u] = true
		r.explored = append(r.explored, u)

		// 4) Goal test.
		if u == r.dst {
			return
		}

		// 5) Relax arcs to open or undiscovered neighbors.
		for _, a := range r.g.ArcsAt(u) {
			if r.closed[a.To] {
				continue
			}
			r.relaxed++
			if tg := r.gScore[u] + a.Weight; tg < r.gScore[a.To] {
				r.gScore[a.To] = tg
				r.prev[a.To] = u
				r.push(a.To, tg)
			}
		}
	}
}

func (r *runner) result(start time.Time) *search.Result {
	explored := search.IDs(r.g, r.explored)
	visited := len(r.explored)

	if r.dst == search.NoPredecessor || math.IsInf(r.gScore[r.dst], 1) {
		return search.Unreachable(Algorithm, visited, explored, r.relaxed, time.Since(start))
	}

	path := search.Reconstruct(r.g, r.prev, r.src, r.dst)

	return search.Found(Algorithm, path, r.gScore[r.dst], visited, explored, r.relaxed, time.Since(start))
}

func logResult(cfg Options, source int, res *search.Result) {
	cfg.Logger.Debug("search finished",
		zap.String("algorithm", Algorithm),
		zap.Int("source", source),
		zap.Int("target", cfg.Target),
		zap.Bool("has_target", cfg.HasTarget),
		zap.Bool("custom_heuristic", cfg.Heuristic != nil),
		zap.Bool("success", res.Success),
		zap.Float64("cost", res.Cost),
		zap.Int("visited", res.VisitedNodes),
		zap.Int("relaxed", res.RelaxedEdges),
		zap.Duration("elapsed", res.Elapsed),
	)
}

// openItem is an open-set entry carrying the scores it was pushed with.
type openItem struct {
	slot int
	f    float64
	g    float64
	seq  uint64
}

// openSet is a min-heap ordered by f. On equal f the deeper entry (larger g)
// pops first, then push order; this expands along the goal direction before
// widening the contour.
type openSet []*openItem

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	if s[i].g != s[j].g {
		return s[i].g > s[j].g
	}

	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x interface{}) { *s = append(*s, x.(*openItem)) }

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]

	return item
}
