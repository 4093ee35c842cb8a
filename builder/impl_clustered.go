// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_clustered.go — city made of dense districts joined by highways.
//
// Algorithm:
//  1. Draw `clusters` district centres uniformly in
//     [radius, worldSize-radius]² (WithClusterRadius, WithWorldSize).
//  2. Around each centre place perCluster nodes at a uniform angle and a
//     radius ~ N(radius/2, radius/4) clamped to [0, radius].
//  3. Join each node to its 4 nearest district peers ("residential", 30 km/h).
//  4. Make interClusterLinks·clusters attempts to join random nodes of two
//     distinct random districts ("highway", 90 km/h).
//  5. Stitch the remaining components together (EnsureConnected).
//
// Requires a RNG (ErrNeedRandSource). Default label "C<k>_V<idx>".
// Complexity: O(clusters·perCluster² log perCluster).

package builder

import (
	"fmt"
	"math"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// Clustered returns a Constructor that builds a multi-district city.
func Clustered(clusters, perCluster int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		if clusters < MinClusters || perCluster < MinNodesPerCluster {
			return fmt.Errorf("%s: clusters=%d, perCluster=%d: %w",
				MethodClustered, clusters, perCluster, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodClustered, ErrNeedRandSource)
		}

		// 2) Districts.
		base := nextID(g)
		span := math.Max(cfg.worldSize-2*cfg.clusterRadius, 0)
		districts := make([][]int, clusters)
		for k := 0; k < clusters; k++ {
			cx := cfg.clusterRadius + cfg.rng.Float64()*span
			cy := cfg.clusterRadius + cfg.rng.Float64()*span
			for j := 0; j < perCluster; j++ {
				idx := k*perCluster + j
				angle := cfg.rng.Float64() * 2 * math.Pi
				r := cfg.rng.NormFloat64()*cfg.clusterRadius/4 + cfg.clusterRadius/2
				r = math.Max(0, math.Min(r, cfg.clusterRadius))
				addNode(g, cfg, base+idx, idx, cx+r*math.Cos(angle), cy+r*math.Sin(angle), clusterLabel(perCluster))
				districts[k] = append(districts[k], base+idx)
			}
		}

		// 3) Residential streets.
		for _, ids := range districts {
			if err := linkNearest(g, cfg, MethodClustered, ids, clusterNeighbors, residentialRoad); err != nil {
				return err
			}
		}

		// 4) Highways.
		for i := 0; i < cfg.interClusterLinks*clusters; i++ {
			c1, c2 := cfg.rng.Intn(clusters), cfg.rng.Intn(clusters)
			if c1 == c2 {
				continue
			}
			u := districts[c1][cfg.rng.Intn(perCluster)]
			v := districts[c2][cfg.rng.Intn(perCluster)]
			if linked(g, u, v) {
				continue
			}
			if err := layRoad(g, cfg, MethodClustered, u, v, highwayRoad); err != nil {
				return err
			}
		}

		// 5) Connectivity.
		return EnsureConnected()(g, cfg)
	}
}
