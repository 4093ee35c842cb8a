// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and structural queries: Neighbors, Degree, AverageDegree,
// Density, IsConnected.
// Determinism:
//   - Neighbors() preserves insertion order and duplicates.
//   - IsConnected() starts from the first inserted node.

package core

import "fmt"

// Neighbors returns the (neighbor id, weight) pairs of id in insertion order.
// Parallel edges appear once per edge; nothing is deduplicated.
//
// Errors:
//   - ErrNodeNotFound if id is unknown.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Neighbor, error) {
	slot, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	arcs := g.adj[slot]
	out := make([]Neighbor, len(arcs))
	for i, a := range arcs {
		out[i] = Neighbor{ID: g.nodes[a.To].ID, Weight: a.Weight}
	}

	return out, nil
}

// Degree returns the number of outgoing adjacency entries of id, 0 if unknown.
func (g *Graph) Degree(id int) int {
	slot, ok := g.index[id]
	if !ok {
		return 0
	}

	return len(g.adj[slot])
}

// AverageDegree returns EdgeCount / NodeCount, or 0 for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if len(g.nodes) == 0 {
		return 0
	}

	return float64(g.arcCount) / float64(len(g.nodes))
}

// Density returns the fraction of possible ordered pairs that carry an
// adjacency entry: E / (V·(V−1)). Graphs with fewer than two nodes have density 0.
func (g *Graph) Density() float64 {
	n := len(g.nodes)
	if n < 2 {
		return 0
	}

	return float64(g.arcCount) / float64(n*(n-1))
}

// IsConnected reports whether every node is reachable from the first inserted
// node by a breadth-first traversal over outgoing arcs. An empty graph is
// connected. On directed graphs this is reachability from one root, not strong
// connectivity. Generators use it; search engines never call it.
//
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	if len(g.nodes) == 0 {
		return true
	}

	return len(g.Reachable(g.nodes[0].ID)) == len(g.nodes)
}

// Reachable returns the ids reachable from id (id included) in BFS order,
// or nil if id is unknown.
// Complexity: O(V + E).
func (g *Graph) Reachable(id int) []int {
	start, ok := g.index[id]
	if !ok {
		return nil
	}

	// 1) Seed the queue with the start slot.
	seen := make([]bool, len(g.nodes))
	seen[start] = true
	queue := make([]int, 1, len(g.nodes))
	queue[0] = start

	// 2) Standard FIFO sweep; queue doubles as the visit order.
	for head := 0; head < len(queue); head++ {
		for _, a := range g.adj[queue[head]] {
			if !seen[a.To] {
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	// 3) Translate slots back to ids.
	out := make([]int, len(queue))
	for i, slot := range queue {
		out[i] = g.nodes[slot].ID
	}

	return out
}

// Components partitions the nodes into weakly connected groups, each listed in
// BFS order from its lowest-slot member. Generators use it to stitch a network
// together. Arcs are followed in both directions.
// Complexity: O(V + E).
func (g *Graph) Components() [][]int {
	n := len(g.nodes)

	// Build an undirected view once so directed graphs split correctly.
	undirected := make([][]int, n)
	for s, arcs := range g.adj {
		for _, a := range arcs {
			undirected[s] = append(undirected[s], a.To)
			undirected[a.To] = append(undirected[a.To], s)
		}
	}

	comp := make([]bool, n)
	var out [][]int
	for root := 0; root < n; root++ {
		if comp[root] {
			continue
		}
		comp[root] = true
		queue := []int{root}
		for head := 0; head < len(queue); head++ {
			for _, t := range undirected[queue[head]] {
				if !comp[t] {
					comp[t] = true
					queue = append(queue, t)
				}
			}
		}
		ids := make([]int, len(queue))
		for i, slot := range queue {
			ids[i] = g.nodes[slot].ID
		}
		out = append(out, ids)
	}

	return out
}
