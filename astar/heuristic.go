// SPDX-License-Identifier: MIT
//
// File: heuristic.go
// Role: Heuristic type and the built-in remaining-cost estimates.

package astar

import (
	"math"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// Heuristic estimates the remaining cost from node to target.
// It must return a finite, non-negative value that never exceeds the true
// remaining cost (admissible) for A* to return optimal paths.
type Heuristic func(node, target *core.Node, g *core.Graph) float64

// StraightLine returns the straight-line distance heuristic under metric m.
// Admissible whenever every edge weight is at least the straight-line
// distance between its endpoints, which holds for implicit weights.
func StraightLine(m core.Metric) Heuristic {
	return func(node, target *core.Node, _ *core.Graph) float64 {
		return core.Distance(node, target, m)
	}
}

// Euclidean is planar straight-line distance.
func Euclidean(node, target *core.Node, _ *core.Graph) float64 {
	return core.Distance(node, target, core.Euclidean)
}

// Haversine is great-circle distance in metres (X longitude, Y latitude).
func Haversine(node, target *core.Node, _ *core.Graph) float64 {
	return core.Distance(node, target, core.Haversine)
}

// Manhattan is |dx| + |dy|. Admissible only on 4-connected lattices whose
// edge weights are at least the coordinate step.
func Manhattan(node, target *core.Node, _ *core.Graph) float64 {
	return math.Abs(node.X-target.X) + math.Abs(node.Y-target.Y)
}

// Zero always returns 0; A* then expands nodes exactly like Dijkstra.
func Zero(_, _ *core.Node, _ *core.Graph) float64 { return 0 }

// Scaled multiplies h by k. k in [0, 1] keeps an admissible h admissible;
// k > 1 trades optimality for fewer expansions (weighted A*).
// Panics on nil h or negative k.
func Scaled(h Heuristic, k float64) Heuristic {
	if h == nil {
		panic("astar: Scaled(nil, k)")
	}
	if k < 0 || math.IsNaN(k) {
		panic("astar: Scaled with negative factor")
	}

	return func(node, target *core.Node, g *core.Graph) float64 {
		return k * h(node, target, g)
	}
}

// ByName maps a heuristic name to a built-in heuristic. The empty name and
// "default" select nil, meaning the straight-line default.
func ByName(name string) (Heuristic, bool) {
	switch name {
	case "", "default":
		return nil, true
	case "euclidean":
		return Euclidean, true
	case "haversine":
		return Haversine, true
	case "manhattan":
		return Manhattan, true
	case "zero":
		return Zero, true
	default:
		return nil, false
	}
}
