package dijkstra_test

import (
	"testing"

	"github.com/abdoulaye05/Smart-GPS/dijkstra"
)

// BenchmarkDijkstraGrid measures corner-to-corner search on a 50×50 lattice.
func BenchmarkDijkstraGrid(b *testing.B) {
	g := grid(b, 50, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(50*50-1))
	}
}
