// Package core provides the in-memory road network used by every search engine:
// nodes with planar or geographic coordinates, weighted road segments and an
// insertion-ordered adjacency list.
//
// The Graph G = (V, E, w) supports:
//
//   - Directed vs. undirected insertion (WithDirected). Undirected AddEdge(u,v)
//     stores two independent Edge records u→v and v→u with identical weight
//     and metadata.
//   - Implicit weights: AddEdge without WithWeight uses the straight-line
//     distance between the endpoints at insertion time (Euclidean, or
//     great-circle metres when the graph is WithGeographic).
//   - Parallel edges and self-loops, kept exactly as inserted.
//   - Arena storage: nodes occupy dense slots [0, NodeCount) in insertion
//     order, so engines can keep per-node state in plain slices.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(id int, x, y float64, opts ...NodeOption) *Node   // O(1), idempotent
//	HasNode(id int) bool                                      // O(1)
//	Node(id int) (*Node, bool)                                // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int, opts ...EdgeOption) (*Edge, error)      // O(1)
//	Edge(u, v int) (*Edge, bool)                              // O(deg u), first match
//	Weight(u, v int) (float64, bool)                          // O(deg u), first match
//
//	// Structure
//	Neighbors(id int) ([]Neighbor, error)                     // insertion order, duplicates kept
//	Degree, AverageDegree, Density, IsConnected, Components, Stats
//
//	// Arena accessors for engines
//	Slot(id int) (int, bool); NodeAt(slot int) *Node; ArcsAt(slot int) []Arc
//
// Concurrency:
//
// Graph carries no locks. Build it first, then run any number of searches
// concurrently; none of them mutates the graph. A caller that needs to keep
// editing while searches run must Clone the graph.
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddNode(0, 0, 0, core.WithLabel("A"))
//	g.AddNode(1, 10, 0, core.WithLabel("B"))
//	_, _ = g.AddEdge(0, 1)                      // weight 10 (Euclidean)
//	_, _ = g.AddEdge(0, 1, core.WithWeight(15)) // parallel edge, kept
package core
