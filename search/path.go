// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Input validation and predecessor-walk path reconstruction shared by engines.

package search

import (
	"fmt"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// NoPredecessor marks a slot without a predecessor in a prev slice.
const NoPredecessor = -1

// Endpoints resolves source and, when hasTarget, target to arena slots.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNodeNotFound (wrapped with the offending id) if an id is unknown.
func Endpoints(g *core.Graph, source, target int, hasTarget bool) (srcSlot, dstSlot int, err error) {
	if g == nil {
		return 0, 0, ErrNilGraph
	}
	srcSlot, ok := g.Slot(source)
	if !ok {
		return 0, 0, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	dstSlot = NoPredecessor
	if hasTarget {
		if dstSlot, ok = g.Slot(target); !ok {
			return 0, 0, fmt.Errorf("%w: target %d", ErrNodeNotFound, target)
		}
	}

	return srcSlot, dstSlot, nil
}

// Reconstruct walks prev from dst back to src and returns the node ids in
// source→target order. prev[s] is the predecessor slot of s or NoPredecessor.
//
// The walk is bounded by len(prev) steps; a chain that does not reach src
// within that bound yields nil.
func Reconstruct(g *core.Graph, prev []int, src, dst int) []int {
	// 1) Walk backwards collecting slots.
	slots := make([]int, 0, 8)
	for cur, steps := dst, 0; cur != NoPredecessor; cur, steps = prev[cur], steps+1 {
		if steps > len(prev) {
			return nil
		}
		slots = append(slots, cur)
		if cur == src {
			break
		}
	}
	if len(slots) == 0 || slots[len(slots)-1] != src {
		return nil
	}

	// 2) Reverse while translating slots to ids.
	path := make([]int, len(slots))
	for i, slot := range slots {
		path[len(slots)-1-i] = g.NodeAt(slot).ID
	}

	return path
}

// IDs translates a list of slots into node ids.
func IDs(g *core.Graph, slots []int) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = g.NodeAt(s).ID
	}

	return out
}
