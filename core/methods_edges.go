// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge, Edge, Weight, HasEdge, Edges, EdgeCount.
// Determinism:
//   - Edges() walks nodes in insertion order and each adjacency list in insertion order.
//   - Edge/Weight return the first matching adjacency entry (parallel edges are kept).

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the road segment u→v and returns the forward Edge record.
//
// Steps:
//  1. Resolve options (road class and speed limit defaults).
//  2. Create missing endpoints as bare nodes at the origin.
//  3. Derive the weight from the endpoint coordinates when none was given.
//     The weight is fixed at insertion and never recomputed.
//  4. Reject NaN/±Inf weights with ErrBadWeight.
//  5. Append u→v; on undirected graphs append an independent v→u record with
//     identical weight and metadata.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) (*Edge, error) {
	// 1) Options.
	spec := edgeSpec{roadClass: DefaultRoadClass, speedLimit: DefaultSpeedLimit}
	for _, opt := range opts {
		opt(&spec)
	}

	// 2) Endpoints.
	from := g.AddNode(u, 0, 0)
	to := g.AddNode(v, 0, 0)

	// 3) Weight.
	w := spec.weight
	if !spec.hasWeight {
		w = Distance(from, to, g.Metric())
	}

	// 4) Validation.
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, u, v, w)
	}

	// 5) Forward record, plus the mirror for undirected graphs.
	fwd := &Edge{From: u, To: v, Weight: w, RoadClass: spec.roadClass, SpeedLimit: spec.speedLimit}
	g.link(fwd)
	if !g.directed {
		g.link(&Edge{From: v, To: u, Weight: w, RoadClass: spec.roadClass, SpeedLimit: spec.speedLimit})
	}

	return fwd, nil
}

// link appends e to the adjacency list of its From node. Both endpoints must exist.
func (g *Graph) link(e *Edge) {
	fs := g.index[e.From]
	g.adj[fs] = append(g.adj[fs], Arc{To: g.index[e.To], Weight: e.Weight, Edge: e})
	g.arcCount++
}

// Edge returns the first edge u→v in insertion order.
// Complexity: O(deg(u)).
func (g *Graph) Edge(u, v int) (*Edge, bool) {
	us, ok := g.index[u]
	if !ok {
		return nil, false
	}
	vs, ok := g.index[v]
	if !ok {
		return nil, false
	}
	for _, a := range g.adj[us] {
		if a.To == vs {
			return a.Edge, true
		}
	}

	return nil, false
}

// Weight returns the weight of the first edge u→v in insertion order.
func (g *Graph) Weight(u, v int) (float64, bool) {
	e, ok := g.Edge(u, v)
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// HasEdge reports whether at least one edge u→v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Edge(u, v)

	return ok
}

// Edges returns every edge record: nodes in insertion order, then each
// adjacency list in insertion order. Undirected graphs yield both directions.
// Complexity: O(V + E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.arcCount)
	for _, arcs := range g.adj {
		for _, a := range arcs {
			out = append(out, a.Edge)
		}
	}

	return out
}

// EdgeCount returns the number of adjacency entries. Undirected edges count twice.
func (g *Graph) EdgeCount() int { return g.arcCount }
