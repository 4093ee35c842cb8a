// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Uniform-cost (label-setting) search between two nodes of a core.Graph.

package dijkstra

import (
	"container/heap"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// Dijkstra computes the least-cost path from source to the target set with
// WithTarget, instrumenting the search.
//
// Returns:
//
//   - *search.Result: exactly one per call. With a target, Success reports
//     whether a finite-cost path was found. Without a target the search runs
//     until the frontier is exhausted and only the counters are filled.
//   - error: search.ErrNilGraph or search.ErrNodeNotFound, checked before any
//     search state is built.
//
// Preconditions:
//
//   - Edge weights are non-negative. Negative weights are not detected; the
//     result is then unspecified (use bellmanford).
//   - The graph is not mutated during the call.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding stale entries under lazy deletion.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*search.Result, error) {
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

	// 3) Trivial case: the source is the target.
	if cfg.HasTarget && src == dst {
		res := search.Trivial(Algorithm, source, time.Since(start))
		logResult(cfg, source, res)

		return res, nil
	}

	// 4) Run the label-setting loop.
	r := newRunner(g, src, dst)
	r.process()

	// 5) Package the outcome.
	res := r.result(start)
	logResult(cfg, source, res)

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// All per-node state is indexed by arena slot.
type runner struct {
	g        *core.Graph
	src, dst int       // dst == search.NoPredecessor when no target was given
	dist     []float64 // best-known tentative distance, +Inf until reached
	prev     []int     // predecessor slot on the best-known path
	done     []bool    // finalized flags
	explored []int     // finalized slots in finalization order
	relaxed  int       // relaxation attempts
	pq       nodePQ
	seq      uint64 // push counter, breaks distance ties by insertion order
}

// newRunner initializes dist to +Inf (source 0), prev to none and seeds the heap.
func newRunner(g *core.Graph, src, dst int) *runner {
	n := g.NodeCount()
	r := &runner{
		g:    g,
		src:  src,
		dst:  dst,
		dist: make([]float64, n),
		prev: make([]int, n),
		done: make([]bool, n),
		pq:   make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = search.NoPredecessor
	}
	r.dist[src] = 0
	r.push(src, 0)

	return r
}

// push inserts a frontier entry; older entries for the same slot become stale.
func (r *runner) push(slot int, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{slot: slot, dist: d, seq: r.seq})
}

// process repeatedly extracts the closest unfinalized node, finalizes it and
// relaxes its outgoing arcs. It stops when the target is finalized or the
// frontier is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest tentative distance.
		u := heap.Pop(&r.pq).(*nodeItem).slot

		// 2) Stale duplicate of an already-finalized node: skip, not counted.
		if r.done[u] {
			continue
		}

		// 3) Finalize.
		r.done[u] = true
		r.explored = append(r.explored, u)

		// 4) Early exit on the target.
		if u == r.dst {
			return
		}

		// 5) Relax every arc to a node that is not finalized yet.
		for _, a := range r.g.ArcsAt(u) {
			if r.done[a.To] {
				continue
			}
			r.relaxed++
			if nd := r.dist[u] + a.Weight; nd < r.dist[a.To] {
				r.dist[a.To] = nd
				r.prev[a.To] = u
				r.push(a.To, nd)
			}
		}
	}
}

// result converts the runner state into a search.Result.
func (r *runner) result(start time.Time) *search.Result {
	explored := search.IDs(r.g, r.explored)
	visited := len(r.explored)

	// No target: counters only.
	if r.dst == search.NoPredecessor {
		return search.Unreachable(Algorithm, visited, explored, r.relaxed, time.Since(start))
	}
	// Target never reached.
	if math.IsInf(r.dist[r.dst], 1) {
		return search.Unreachable(Algorithm, visited, explored, r.relaxed, time.Since(start))
	}

	path := search.Reconstruct(r.g, r.prev, r.src, r.dst)

	return search.Found(Algorithm, path, r.dist[r.dst], visited, explored, r.relaxed, time.Since(start))
}

// logResult emits the per-run Debug entry.
func logResult(cfg Options, source int, res *search.Result) {
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
}

// nodeItem is a frontier entry: a slot and the tentative distance it was pushed with.
type nodeItem struct {
	slot int
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
// Lazy deletion: improved distances push a new entry; the outdated one is
// skipped when popped because its slot is already finalized.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances pop in push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
