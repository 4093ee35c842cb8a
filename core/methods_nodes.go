// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and queries: AddNode, HasNode, Node, Nodes, NodeCount,
// plus the slot-level arena accessors used by the search engines.
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Slots are assigned densely in insertion order and never reused.

package core

// AddNode inserts a node with the given id and coordinates and returns it.
//
// AddNode is idempotent: if id is already present the existing node is
// returned unchanged; coordinates and label are never overwritten.
//
// Steps:
//  1. Return the existing node if id is known.
//  2. Build the Node, apply options, resolve the default label.
//  3. Append to the arena and open an empty adjacency list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int, x, y float64, opts ...NodeOption) *Node {
	// 1) Idempotent path.
	if slot, ok := g.index[id]; ok {
		return g.nodes[slot]
	}

	// 2) Build the node.
	n := &Node{ID: id, X: x, Y: y}
	for _, opt := range opts {
		opt(n)
	}
	if n.Label == "" {
		n.Label = defaultLabel(id)
	}

	// 3) Register in the arena.
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)

	return n
}

// HasNode reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	_, ok := g.index[id]

	return ok
}

// Node returns the node with the given id.
// Complexity: O(1).
func (g *Graph) Node(id int) (*Node, bool) {
	slot, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return g.nodes[slot], true
}

// Nodes returns all nodes in insertion order. The slice is a fresh copy; the
// *Node values are shared and must be treated as read-only.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Slot returns the dense arena index of id, in [0, NodeCount).
func (g *Graph) Slot(id int) (int, bool) {
	slot, ok := g.index[id]

	return slot, ok
}

// NodeAt returns the node stored at slot. It panics if slot is out of range.
func (g *Graph) NodeAt(slot int) *Node { return g.nodes[slot] }

// ArcsAt returns the outgoing arcs of the node at slot, in insertion order.
// The returned slice aliases internal storage and must not be modified.
func (g *Graph) ArcsAt(slot int) []Arc { return g.adj[slot] }
