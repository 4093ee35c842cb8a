// Package smartgps finds least-cost routes through road networks and
// measures how three classic engines get there.
//
// What is inside?
//
//	core/        road network: intersections, weighted roads, adjacency, structure queries
//	search/      the Result every engine returns, shared errors, travel-time model
//	dijkstra/    uniform-cost search with early exit on the target
//	astar/       heuristic search + heuristic catalogue (Euclidean, Haversine, Manhattan, Zero)
//	bellmanford/ exhaustive relaxation, negative-cycle detection
//	compare/     run the engines side by side, cross-check, repeated-run statistics
//	builder/     seeded generators: grids, random urban networks, clustered cities
//	export/      Graphviz DOT with a search overlay, CSV, JSON and console tables
//	cmd/smartgps command-line front end
//
// Every engine is synchronous and never mutates the graph, so one network can
// serve any number of concurrent searches.
//
// Quick example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	g := core.NewGraph()
//	g.AddEdge(0, 1, core.WithWeight(1))
//	g.AddEdge(1, 3, core.WithWeight(1))
//	g.AddEdge(0, 2, core.WithWeight(2))
//	g.AddEdge(2, 3, core.WithWeight(3))
//	res, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(3)) // path [0 1 3], cost 2
//
//	go install github.com/abdoulaye05/Smart-GPS/cmd/smartgps@latest
package smartgps
