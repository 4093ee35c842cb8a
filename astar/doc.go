// Package astar implements A* search on a core.Graph: Dijkstra's label-setting
// loop with the frontier ordered by f = g + h, where h is a caller-supplied or
// default straight-line estimate of the remaining cost.
//
// Heuristics:
//
//   - Default: straight-line distance between node coordinates. The metric is
//     core.Haversine for graphs built with core.WithGeographic and
//     core.Euclidean otherwise; WithMetric overrides that choice explicitly.
//   - Built-ins: Euclidean, Haversine, Manhattan, Zero, and Scaled(h, k).
//   - The heuristic must be admissible for Cost to be optimal. AStar does not
//     check this.
//
// Ordering: equal f values pop the entry with the larger g first, then in push
// order. Stale open-set entries are skipped, as in package dijkstra.
//
// Without WithTarget the heuristic is identically zero and the search runs to
// exhaustion, reporting counters only.
//
// Errors are the sentinels of package search: ErrNilGraph and ErrNodeNotFound.
package astar
