package astar_test

import (
	"testing"

	"github.com/abdoulaye05/Smart-GPS/astar"
)

// BenchmarkAStarGrid measures corner-to-corner search on a 50×50 lattice.
func BenchmarkAStarGrid(b *testing.B) {
	g := grid(b, 50, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.AStar(g, 0, astar.WithTarget(50*50-1))
	}
}
