// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_urban.go — random planar street network.
//
// Algorithm:
//  1. Place n intersections uniformly in the WithArea rectangle, rejecting
//     points closer than WithMinDistance to an earlier one. After
//     n·placementAttemptsPerNode draws the constraint is dropped.
//  2. Join each node to its k = max(2, ⌊avgDegree⌋) nearest neighbours, or
//     (WithRandomLinks) add ⌊n·avgDegree/2⌋ uniformly random distinct pairs.
//  3. Stitch the components together (EnsureConnected).
//
// Requires a RNG (ErrNeedRandSource). Default label "V<idx>".
// Complexity: O(n² log n) for k-nearest linking.

package builder

import (
	"fmt"
	"math"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// RandomUrban returns a Constructor that builds an n-node random urban network.
func RandomUrban(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		if n < MinUrbanNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", MethodRandomUrban, n, MinUrbanNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomUrban, ErrNeedRandSource)
		}

		// 2) Placement.
		base := nextID(g)
		ids := make([]int, 0, n)
		for i, p := range placePoints(cfg, n) {
			addNode(g, cfg, base+i, i, p[0], p[1], DefaultLabelFn)
			ids = append(ids, base+i)
		}

		// 3) Streets.
		var err error
		if cfg.randomLinks {
			err = linkRandomPairs(g, cfg, ids)
		} else {
			k := int(cfg.avgDegree)
			if k < minUrbanNeighbors {
				k = minUrbanNeighbors
			}
			err = linkNearest(g, cfg, MethodRandomUrban, ids, k, mainRoad)
		}
		if err != nil {
			return err
		}

		// 4) Connectivity.
		return EnsureConnected()(g, cfg)
	}
}

// placePoints draws n points with best-effort minimum spacing.
func placePoints(cfg builderConfig, n int) [][2]float64 {
	pts := make([][2]float64, 0, n)
	for attempts := 0; len(pts) < n && attempts < n*placementAttemptsPerNode; attempts++ {
		x, y := cfg.rng.Float64()*cfg.width, cfg.rng.Float64()*cfg.height
		ok := true
		for _, p := range pts {
			if math.Hypot(x-p[0], y-p[1]) < cfg.minDistance {
				ok = false
				break
			}
		}
		if ok {
			pts = append(pts, [2]float64{x, y})
		}
	}
	for len(pts) < n {
		pts = append(pts, [2]float64{cfg.rng.Float64() * cfg.width, cfg.rng.Float64() * cfg.height})
	}

	return pts
}

// linkNearest joins every id to its k nearest peers in ids, skipping pairs
// that are already linked.
func linkNearest(g *core.Graph, cfg builderConfig, method string, ids []int, k int, r road) error {
	for _, u := range ids {
		for _, v := range nearest(g, u, ids, k) {
			if linked(g, u, v) {
				continue
			}
			if err := layRoad(g, cfg, method, u, v, r); err != nil {
				return err
			}
		}
	}

	return nil
}

// linkRandomPairs adds ⌊n·avgDegree/2⌋ distinct random pairs, bounded by the
// number of available pairs and by a draw budget.
func linkRandomPairs(g *core.Graph, cfg builderConfig, ids []int) error {
	n := len(ids)
	target := int(float64(n) * cfg.avgDegree / 2)
	if maxPairs := n * (n - 1) / 2; target > maxPairs {
		target = maxPairs
	}
	for added, draws := 0, 0; added < target && draws < target*placementAttemptsPerNode; draws++ {
		u, v := ids[cfg.rng.Intn(n)], ids[cfg.rng.Intn(n)]
		if u == v || linked(g, u, v) {
			continue
		}
		if err := layRoad(g, cfg, MethodRandomUrban, u, v, mainRoad); err != nil {
			return err
		}
		added++
	}

	return nil
}
