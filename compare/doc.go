// Package compare runs the shortest-path engines side by side on one query
// and cross-checks what they report.
//
// Run returns one search.Result per engine keyed by engine name
// ("dijkstra", "astar", "bellman_ford"). Verify compares every result with
// Dijkstra's: differing success or cost is a real mismatch, while an
// equal-cost but different node sequence is reported as PathOnly.
//
// Measure repeats one engine and summarizes timing and work counters;
// Speedup, VisitedReduction and EffectiveBranchingFactor are the usual
// derived figures. NewReport packages a comparison under a fresh run id for
// the exporters.
package compare
