package core_test

import (
	"fmt"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// ExampleGraph_AddEdge shows implicit Euclidean weights and undirected mirroring.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	g.AddNode(0, 0, 0, core.WithLabel("A"))
	g.AddNode(1, 3, 4, core.WithLabel("B"))

	e, _ := g.AddEdge(0, 1)
	back, _ := g.Weight(1, 0)
	fmt.Printf("w(A,B)=%.1f w(B,A)=%.1f edges=%d\n", e.Weight, back, g.EdgeCount())
	// Output: w(A,B)=5.0 w(B,A)=5.0 edges=2
}

// ExampleGraph_Neighbors shows that parallel edges are preserved in insertion order.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithDirected())
	_, _ = g.AddEdge(0, 1, core.WithWeight(7))
	_, _ = g.AddEdge(0, 1, core.WithWeight(2))

	nb, _ := g.Neighbors(0)
	fmt.Println(nb)
	// Output: [{1 7} {1 2}]
}
