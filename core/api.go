// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, the Stats snapshot and Clone.

package core

import "fmt"

// Directed reports whether AddEdge stores only the forward direction.
func (g *Graph) Directed() bool { return g.directed }

// Geographic reports whether coordinates are (longitude, latitude) degrees.
func (g *Graph) Geographic() bool { return g.geographic }

// GraphStats is a value snapshot of a graph's configuration and size.
type GraphStats struct {
	Directed      bool
	Geographic    bool
	NodeCount     int
	EdgeCount     int
	AverageDegree float64
	Density       float64
	Connected     bool
}

// String renders the snapshot on one line, e.g. for log messages.
func (s GraphStats) String() string {
	return fmt.Sprintf("nodes=%d edges=%d avg_degree=%.2f density=%.4f connected=%t directed=%t",
		s.NodeCount, s.EdgeCount, s.AverageDegree, s.Density, s.Connected, s.Directed)
}

// Stats produces a snapshot of flags and structural measures.
// Complexity: O(V + E) because of the connectivity check.
func (g *Graph) Stats() GraphStats {
	return GraphStats{
		Directed:      g.directed,
		Geographic:    g.geographic,
		NodeCount:     len(g.nodes),
		EdgeCount:     g.arcCount,
		AverageDegree: g.AverageDegree(),
		Density:       g.Density(),
		Connected:     g.IsConnected(),
	}
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(nodes=%d, edges=%d, directed=%t)", len(g.nodes), g.arcCount, g.directed)
}

// Clone returns a deep copy: flags, nodes (same slots), edge records and adjacency.
// Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	// 1) Flags.
	c := &Graph{
		directed:   g.directed,
		geographic: g.geographic,
		nodes:      make([]*Node, len(g.nodes)),
		index:      make(map[int]int, len(g.index)),
		adj:        make([][]Arc, len(g.adj)),
		arcCount:   g.arcCount,
	}

	// 2) Nodes keep their slots so arcs can be copied verbatim.
	for slot, n := range g.nodes {
		cp := *n
		c.nodes[slot] = &cp
		c.index[n.ID] = slot
	}

	// 3) Arcs get fresh Edge records.
	for slot, arcs := range g.adj {
		if len(arcs) == 0 {
			continue
		}
		out := make([]Arc, len(arcs))
		for i, a := range arcs {
			e := *a.Edge
			out[i] = Arc{To: a.To, Weight: a.Weight, Edge: &e}
		}
		c.adj[slot] = out
	}

	return c
}
