// SPDX-License-Identifier: MIT
//
// File: result.go
// Role: The Result value returned once per engine invocation, plus the shared
// sentinel errors and the constructors engines use to emit results.

package search

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Sentinel errors shared by every engine. "No path found" is not an error:
// it is reported as Result.Success == false.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to an engine.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound indicates the source or target id is not in the graph.
	ErrNodeNotFound = errors.New("search: node not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// source; every distance on it is unbounded below.
	ErrNegativeCycle = errors.New("search: negative-weight cycle detected")
)

// Result is the outcome of one engine invocation.
//
// Path runs from source to target inclusive and is empty unless Success.
// Cost is +Inf unless Success. Explored lists finalized node ids in the order
// they were finalized, each at most once. Success is true iff a finite-cost
// path was reconstructed.
type Result struct {
	Algorithm    string
	Path         []int
	Cost         float64
	VisitedNodes int
	Explored     []int
	RelaxedEdges int
	Elapsed      time.Duration
	Success      bool
}

// Trivial builds the one-node, zero-cost result for source == target.
func Trivial(algorithm string, source int, elapsed time.Duration) *Result {
	return &Result{
		Algorithm:    algorithm,
		Path:         []int{source},
		Cost:         0,
		VisitedNodes: 1,
		Explored:     []int{source},
		Elapsed:      elapsed,
		Success:      true,
	}
}

// Unreachable builds a failed result that keeps the accumulated counters.
func Unreachable(algorithm string, visited int, explored []int, relaxed int, elapsed time.Duration) *Result {
	return &Result{
		Algorithm:    algorithm,
		Cost:         math.Inf(1),
		VisitedNodes: visited,
		Explored:     explored,
		RelaxedEdges: relaxed,
		Elapsed:      elapsed,
	}
}

// Found builds a successful result around a reconstructed path.
func Found(algorithm string, path []int, cost float64, visited int, explored []int, relaxed int, elapsed time.Duration) *Result {
	return &Result{
		Algorithm:    algorithm,
		Path:         path,
		Cost:         cost,
		VisitedNodes: visited,
		Explored:     explored,
		RelaxedEdges: relaxed,
		Elapsed:      elapsed,
		Success:      true,
	}
}

// Hops returns the number of edges on the path, or 0 on failure.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// String renders a one-line summary.
func (r *Result) String() string {
	if !r.Success {
		return fmt.Sprintf("%s: no path (visited=%d relaxed=%d time=%s)",
			r.Algorithm, r.VisitedNodes, r.RelaxedEdges, r.Elapsed)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: cost=%.2f hops=%d visited=%d relaxed=%d time=%s",
		r.Algorithm, r.Cost, r.Hops(), r.VisitedNodes, r.RelaxedEdges, r.Elapsed)

	return b.String()
}
