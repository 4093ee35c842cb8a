// Package search holds what the shortest-path engines share: the Result value,
// the sentinel errors and the predecessor-walk path reconstruction.
//
// Every engine (dijkstra, astar, bellmanford) returns exactly one *Result per
// call, or an error for malformed input (ErrNilGraph, ErrNodeNotFound) and,
// for Bellman-Ford only, ErrNegativeCycle. An unreachable target is a normal
// outcome: Success is false, Path is empty, Cost is +Inf and the counters keep
// whatever work was done.
//
// Engines keep their working state in slices indexed by the graph's dense node
// slots (core.Graph.Slot); Reconstruct turns a slot-level predecessor slice
// back into node ids.
//
// Mode turns a found path into a trip time with the model t = t0 + d/v, for
// the built-in Car, Bike and Walk modes or a custom one.
package search
