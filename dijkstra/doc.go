// Package dijkstra implements uniform-cost search (Dijkstra's algorithm) on a
// core.Graph with non-negative edge weights, instrumented for comparison with
// the other engines.
//
// Overview:
//
//   - Dijkstra finalizes nodes in order of increasing distance from the source
//     using a binary min-heap keyed by tentative distance.
//   - Stops as soon as the target is finalized (early exit).
//   - Without WithTarget it runs to frontier exhaustion and reports counters only.
//
// Instrumentation (search.Result):
//
//   - VisitedNodes: nodes finalized. Stale heap entries are skipped and not counted.
//   - RelaxedEdges: relaxation attempts towards non-finalized neighbors,
//     successful or not.
//   - Explored: finalized node ids, in finalization order.
//   - Elapsed: wall-clock time of the call.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improved distance pushes a duplicate entry; the
//     old entry is skipped when popped.
//   - Equal distances pop in push order, so runs are deterministic. Which of
//     several equal-cost paths is returned is not part of the contract.
//   - source == target returns the one-node, zero-cost path with one visited node.
//
// Errors (sentinel, from package search):
//
//   - ErrNilGraph:     g is nil.
//   - ErrNodeNotFound: source or target is not in g.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Success {
//	    fmt.Println(res.Path, res.Cost)
//	}
package dijkstra
