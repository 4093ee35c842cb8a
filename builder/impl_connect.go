// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_connect.go — component stitching.
//
// Contract:
//   • Computes weakly connected components (core.Graph.Components, ordered by
//     first node) and joins component i to component i+1 through their
//     closest pair of nodes, with a "main" road.
//   • A connected or empty graph is left untouched.
//
// Complexity: O(V + E) plus O(|Ci|·|Ci+1|) per stitched pair.

package builder

import "github.com/abdoulaye05/Smart-GPS/core"

// EnsureConnected returns a Constructor that makes g weakly connected.
func EnsureConnected() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		comps := g.Components()
		for i := 0; i+1 < len(comps); i++ {
			u, v := closestPair(g, comps[i], comps[i+1])
			if err := layRoad(g, cfg, MethodEnsureConnected, u, v, mainRoad); err != nil {
				return err
			}
		}

		return nil
	}
}
