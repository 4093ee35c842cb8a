package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/dijkstra"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// grid builds an undirected rows×cols lattice, id r*cols+c at (c, r), unit weights.
func grid(t testing.TB, rows, cols int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNode(r*cols+c, float64(c), float64(r))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				_, err := g.AddEdge(id, id+1)
				require.NoError(t, err)
			}
			if r+1 < rows {
				_, err := g.AddEdge(id, id+cols)
				require.NoError(t, err)
			}
		}
	}

	return g
}

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v int
		w    float64
	}{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}} {
		_, err := g.AddEdge(e.u, e.v, core.WithWeight(e.w))
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Triangle(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), 0, dijkstra.WithTarget(2))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, dijkstra.Algorithm, res.Algorithm)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.InDelta(t, 3.0, res.Cost, 1e-9)
	assert.Equal(t, 3, res.VisitedNodes)
	assert.Equal(t, []int{0, 1, 2}, res.Explored)
}

func TestDijkstra_LineCounters(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(i, i+1, core.WithWeight(1))
		require.NoError(t, err)
	}

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(3))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, 4, res.VisitedNodes)
	// One attempt per step: back-edges point at finalized nodes.
	assert.Equal(t, 3, res.RelaxedEdges)
	assert.Equal(t, 3, res.Hops())
}

func TestDijkstra_GridCorners(t *testing.T) {
	g := grid(t, 10, 10)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(99))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, 18.0, res.Cost, 1e-9)
	assert.Len(t, res.Path, 19)
	assert.Equal(t, 0, res.Path[0])
	assert.Equal(t, 99, res.Path[len(res.Path)-1])
	assert.LessOrEqual(t, res.VisitedNodes, 100)
}

func TestDijkstra_SourceIsTarget(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), 1, dijkstra.WithTarget(1))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []int{1}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.VisitedNodes)
	assert.Zero(t, res.RelaxedEdges)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(0, 1, core.WithWeight(1))
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, core.WithWeight(1))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(3))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.Equal(t, 2, res.VisitedNodes)
	assert.ElementsMatch(t, []int{0, 1}, res.Explored)
}

func TestDijkstra_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	_, err := g.AddEdge(0, 1, core.WithWeight(1))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithTarget(0))
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestDijkstra_InvalidNodes(t *testing.T) {
	g := triangle(t)

	_, err := dijkstra.Dijkstra(g, 42, dijkstra.WithTarget(0))
	assert.ErrorIs(t, err, search.ErrNodeNotFound)

	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(42))
	assert.ErrorIs(t, err, search.ErrNodeNotFound)

	_, err = dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

func TestDijkstra_ParallelEdgesUseCheapest(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(0, 1, core.WithWeight(7))
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, core.WithWeight(2))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, 2, res.RelaxedEdges)
}

func TestDijkstra_ZeroWeights(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(0, 1, core.WithWeight(0))
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, core.WithWeight(0))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(2))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.Cost)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
}

func TestDijkstra_NoTargetExhaustsComponent(t *testing.T) {
	g := grid(t, 3, 3)
	_, err := g.AddEdge(100, 101, core.WithWeight(1))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 4)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, res.Path)
	assert.Equal(t, 9, res.VisitedNodes)
	assert.Len(t, res.Explored, 9)
	assert.Equal(t, 4, res.Explored[0])
}

func TestDijkstra_ExploredHasNoDuplicates(t *testing.T) {
	res, err := dijkstra.Dijkstra(grid(t, 6, 6), 0, dijkstra.WithTarget(35))
	require.NoError(t, err)

	seen := make(map[int]bool, len(res.Explored))
	for _, id := range res.Explored {
		require.False(t, seen[id], "node %d finalized twice", id)
		seen[id] = true
	}
	assert.Equal(t, res.VisitedNodes, len(res.Explored))
}

func TestDijkstra_LogsOneEntryPerRun(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)

	_, err := dijkstra.Dijkstra(triangle(t), 0,
		dijkstra.WithTarget(2), dijkstra.WithLogger(zap.New(zc)))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, dijkstra.Algorithm, fields["algorithm"])
	assert.Equal(t, true, fields["success"])
}

func TestWithLoggerPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithLogger(nil) })
}

// bruteForce enumerates every simple path from s to t and returns the cheapest cost.
func bruteForce(g *core.Graph, s, t int) float64 {
	best := math.Inf(1)
	onPath := map[int]bool{s: true}
	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		if u == t {
			best = math.Min(best, cost)

			return
		}
		nbs, _ := g.Neighbors(u)
		for _, nb := range nbs {
			if onPath[nb.ID] {
				continue
			}
			onPath[nb.ID] = true
			walk(nb.ID, cost+nb.Weight)
			onPath[nb.ID] = false
		}
	}
	walk(s, 0)

	return best
}

// cheapestArc returns the smallest weight among the parallel arcs u→v.
func cheapestArc(t *testing.T, g *core.Graph, u, v int) float64 {
	t.Helper()
	nbs, err := g.Neighbors(u)
	require.NoError(t, err)
	w := math.Inf(1)
	for _, nb := range nbs {
		if nb.ID == v {
			w = math.Min(w, nb.Weight)
		}
	}
	require.False(t, math.IsInf(w, 1), "no arc %d->%d", u, v)

	return w
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		g := core.NewGraph()
		n := 7
		for i := 0; i < n; i++ {
			g.AddNode(i, 0, 0)
		}
		for i := 0; i < 12; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			_, err := g.AddEdge(u, v, core.WithWeight(float64(1+rng.Intn(9))))
			require.NoError(t, err)
		}

		want := bruteForce(g, 0, n-1)
		res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(n-1))
		require.NoError(t, err)
		if math.IsInf(want, 1) {
			assert.False(t, res.Success, "trial %d", trial)
			continue
		}
		require.True(t, res.Success, "trial %d", trial)
		assert.InDelta(t, want, res.Cost, 1e-9, "trial %d", trial)

		// The reported cost equals the sum of the path's edge weights.
		var sum float64
		for i := 0; i+1 < len(res.Path); i++ {
			sum += cheapestArc(t, g, res.Path[i], res.Path[i+1])
		}
		assert.InDelta(t, res.Cost, sum, 1e-9, "trial %d", trial)
	}
}
