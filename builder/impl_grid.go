// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go — Manhattan-style street grid.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node id = base + r*cols + c, where base = one past the largest existing id.
//     Position (c·spacing, r·spacing), optionally jittered by WithNoise.
//   • Default label "(r,c)".
//   • Edges per cell, in order: right, down, then (WithDiagonals) down-right
//     and down-left. Class "main".
//   • WithNoise > 0 requires a RNG (ErrNeedRandSource).
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if cfg.noise > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: noise=%g: %w", MethodGrid, cfg.noise, ErrNeedRandSource)
		}

		base := nextID(g)
		id := func(r, c int) int { return base + r*cols + c }

		// 2) Intersections in row-major order.
		jitter := cfg.noise * cfg.spacing / 2
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x, y := float64(c)*cfg.spacing, float64(r)*cfg.spacing
				if jitter > 0 {
					x += (2*cfg.rng.Float64() - 1) * jitter
					y += (2*cfg.rng.Float64() - 1) * jitter
				}
				addNode(g, cfg, id(r, c), r*cols+c, x, y, gridLabel(cols))
			}
		}

		// 3) Streets.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				if c+1 < cols {
					if err := layRoad(g, cfg, MethodGrid, u, id(r, c+1), mainRoad); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := layRoad(g, cfg, MethodGrid, u, id(r+1, c), mainRoad); err != nil {
						return err
					}
				}
				if !cfg.diagonals || r+1 >= rows {
					continue
				}
				if c+1 < cols {
					if err := layRoad(g, cfg, MethodGrid, u, id(r+1, c+1), mainRoad); err != nil {
						return err
					}
				}
				if c > 0 {
					if err := layRoad(g, cfg, MethodGrid, u, id(r+1, c-1), mainRoad); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
