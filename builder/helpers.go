// Package builder provides internal helpers used by constructors to place
// intersections and lay roads.
package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// road describes the metadata attached to every edge one constructor emits.
type road struct {
	class string
	speed float64
}

var (
	mainRoad        = road{class: RoadMain, speed: SpeedMain}
	residentialRoad = road{class: RoadResidential, speed: SpeedResidential}
	highwayRoad     = road{class: RoadHighway, speed: SpeedHighway}
)

// nextID returns one past the largest node id in g, or 0 for an empty graph.
// Constructors allocate ids from there, so several can be composed on one graph.
// Complexity: O(V).
func nextID(g *core.Graph) int {
	next := 0
	for _, n := range g.Nodes() {
		if n.ID >= next {
			next = n.ID + 1
		}
	}

	return next
}

// addNode inserts id at (x, y) with its configured label.
func addNode(g *core.Graph, cfg builderConfig, id, idx int, x, y float64, fallback LabelFn) {
	if label := cfg.label(idx, fallback); label != "" {
		g.AddNode(id, x, y, core.WithLabel(label))
		return
	}
	g.AddNode(id, x, y)
}

// layRoad adds u–v with weight = straight-line length × cfg.weightFn draw.
// On directed graphs it also adds v→u with the same weight.
func layRoad(g *core.Graph, cfg builderConfig, method string, u, v int, r road) error {
	nu, _ := g.Node(u)
	nv, _ := g.Node(v)
	w := core.Distance(nu, nv, g.Metric()) * cfg.weightFn(cfg.weightRng)
	opts := []core.EdgeOption{core.WithWeight(w), core.WithRoadClass(r.class), core.WithSpeedLimit(r.speed)}

	if _, err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, opts...); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d): %v: %w", method, v, u, err, ErrConstructFailed)
		}
	}

	return nil
}

// linked reports whether u and v are already joined in either direction.
func linked(g *core.Graph, u, v int) bool {
	return g.HasEdge(u, v) || g.HasEdge(v, u)
}

// candidate is a neighbour at a given planar distance.
type candidate struct {
	id   int
	dist float64
}

// nearest returns up to k ids of pool closest to from (excluding from),
// ordered by distance then id.
// Complexity: O(|pool| log |pool|).
func nearest(g *core.Graph, from int, pool []int, k int) []int {
	src, _ := g.Node(from)
	cands := make([]candidate, 0, len(pool))
	for _, id := range pool {
		if id == from {
			continue
		}
		n, _ := g.Node(id)
		cands = append(cands, candidate{id: id, dist: core.Distance(src, n, g.Metric())})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].id < cands[j].id
	})
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].id
	}

	return out
}

// closestPair returns the closest (a, b) with a ∈ as, b ∈ bs.
// Complexity: O(|as|·|bs|).
func closestPair(g *core.Graph, as, bs []int) (int, int) {
	best := math.Inf(1)
	var ba, bb int
	for _, a := range as {
		na, _ := g.Node(a)
		for _, b := range bs {
			nb, _ := g.Node(b)
			if d := core.Distance(na, nb, g.Metric()); d < best {
				best, ba, bb = d, a, b
			}
		}
	}

	return ba, bb
}
