// Package bellmanford implements the Bellman-Ford algorithm on a core.Graph:
// exhaustive relaxation that tolerates negative edge weights and reports
// negative-weight cycles reachable from the source.
//
// Behaviour:
//
//   - Exactly V-1 passes over every arc, in adjacency order. There is no early
//     stop, so RelaxedEdges is always (V-1)·EdgeCount().
//   - One extra pass detects negative cycles; the error wraps
//     search.ErrNegativeCycle and names the offending arc.
//   - The visited set starts with the source and grows whenever a distance
//     first improves; Explored lists it in that order.
//   - source == target needs no special case: the cost is 0 and the path is
//     the source alone.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford
