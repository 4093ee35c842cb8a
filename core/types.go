// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Arc and Graph declarations, sentinel errors, graph/node/edge
// options and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound - requested node id does not exist.
//	ErrBadWeight    - edge weight is NaN or infinite.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates an edge weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge metadata defaults applied when AddEdge receives no override.
const (
	DefaultRoadClass  = "main"
	DefaultSpeedLimit = 50.0 // km/h
)

// Node is an intersection of the road network.
//
// ID is stable and unique within its Graph. Coordinates are fixed at insertion:
// on geographic graphs X is the longitude and Y the latitude, in degrees.
type Node struct {
	ID    int
	X, Y  float64
	Label string
}

// Edge is one directed road segment From→To.
//
// Undirected graphs store two independent Edge records per AddEdge call.
// RoadClass and SpeedLimit are descriptive only; search engines read Weight.
type Edge struct {
	From       int
	To         int
	Weight     float64
	RoadClass  string
	SpeedLimit float64
}

// Arc is one adjacency entry: the dense slot of the neighbor, the weight and
// the Edge record it was created from.
type Arc struct {
	To     int // slot of the neighbor node, see Graph.Slot
	Weight float64
	Edge   *Edge
}

// Neighbor is the id-level view of an adjacency entry returned by Neighbors.
type Neighbor struct {
	ID     int
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected makes AddEdge store only the forward direction.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithGeographic marks node coordinates as (longitude, latitude) degrees.
// Default edge weights and the default A* heuristic then use great-circle
// distance in metres instead of planar Euclidean distance.
func WithGeographic() GraphOption {
	return func(g *Graph) { g.geographic = true }
}

// NodeOption configures a Node created by AddNode.
type NodeOption func(n *Node)

// WithLabel sets a display label; empty labels fall back to "V<id>".
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// edgeSpec collects the optional AddEdge arguments before the Edge exists.
type edgeSpec struct {
	weight     float64
	hasWeight  bool
	roadClass  string
	speedLimit float64
}

// EdgeOption configures an edge created by AddEdge.
type EdgeOption func(s *edgeSpec)

// WithWeight sets an explicit weight. Without it AddEdge derives the weight
// from the endpoint coordinates at insertion time.
func WithWeight(w float64) EdgeOption {
	return func(s *edgeSpec) {
		s.weight = w
		s.hasWeight = true
	}
}

// WithRoadClass sets the descriptive road class ("highway", "main", "residential", ...).
func WithRoadClass(class string) EdgeOption {
	return func(s *edgeSpec) { s.roadClass = class }
}

// WithSpeedLimit sets the descriptive speed limit in km/h.
func WithSpeedLimit(kmh float64) EdgeOption {
	return func(s *edgeSpec) { s.speedLimit = kmh }
}

// Graph is the in-memory road network.
//
// Nodes live in an arena: nodes[slot] with index[id] == slot, slots dense in
// [0, NodeCount) and assigned in insertion order. adj[slot] lists outgoing arcs
// in insertion order; parallel edges and self-loops are kept as inserted.
//
// Graph has no internal locking. Build it completely before searching; any
// number of searches may then read it concurrently. Use Clone to give a
// concurrent writer its own copy.
type Graph struct {
	directed   bool
	geographic bool

	nodes []*Node     // slot → node
	index map[int]int // node id → slot
	adj   [][]Arc     // slot → outgoing arcs, insertion order

	arcCount int // number of adjacency entries (both directions when undirected)
}

// NewGraph creates an empty Graph. By default the graph is undirected and planar.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// defaultLabel renders the fallback "V<id>" label.
func defaultLabel(id int) string {
	return "V" + strconv.Itoa(id)
}
