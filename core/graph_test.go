package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/abdoulaye05/Smart-GPS/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected planar graph by default; individual tests may override.
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddNodeIsIdempotent() {
	require := require.New(s.T())

	n := s.g.AddNode(1, 2.5, -1, core.WithLabel("depot"))
	require.Equal("depot", n.Label)

	// A second insert returns the same node and keeps the coordinates.
	again := s.g.AddNode(1, 99, 99, core.WithLabel("other"))
	require.Same(n, again)
	require.Equal(2.5, again.X)
	require.Equal(-1.0, again.Y)
	require.Equal("depot", again.Label)
	require.Equal(1, s.g.NodeCount())
}

func (s *GraphSuite) TestDefaultLabel() {
	n := s.g.AddNode(42, 0, 0)
	s.Require().Equal("V42", n.Label)
}

func (s *GraphSuite) TestAddEdgeCreatesEndpointsAtOrigin() {
	require := require.New(s.T())

	_, err := s.g.AddEdge(7, 8, core.WithWeight(3))
	require.NoError(err)

	for _, id := range []int{7, 8} {
		n, ok := s.g.Node(id)
		require.True(ok, "AddEdge should create node %d", id)
		require.Zero(n.X)
		require.Zero(n.Y)
	}
}

func (s *GraphSuite) TestImplicitWeightIsEuclidean() {
	require := require.New(s.T())

	s.g.AddNode(0, 0, 0)
	s.g.AddNode(1, 3, 4)
	e, err := s.g.AddEdge(0, 1)
	require.NoError(err)
	require.InDelta(5.0, e.Weight, 1e-12)
	require.Equal(core.DefaultRoadClass, e.RoadClass)
	require.Equal(core.DefaultSpeedLimit, e.SpeedLimit)
}

func (s *GraphSuite) TestImplicitWeightIsGreatCircleOnGeographicGraph() {
	require := require.New(s.T())

	g := core.NewGraph(core.WithGeographic())
	// One degree of latitude is ~111.195 km on a 6371 km sphere.
	g.AddNode(0, 2.35, 48.0)
	g.AddNode(1, 2.35, 49.0)
	e, err := g.AddEdge(0, 1)
	require.NoError(err)
	require.InDelta(111195.0, e.Weight, 5.0)
	require.Equal(core.Haversine, g.Metric())
}

func (s *GraphSuite) TestUndirectedMirrorsIndependentRecords() {
	require := require.New(s.T())

	fwd, err := s.g.AddEdge(1, 2, core.WithWeight(4), core.WithRoadClass("highway"), core.WithSpeedLimit(110))
	require.NoError(err)

	require.True(s.g.HasEdge(1, 2))
	require.True(s.g.HasEdge(2, 1))

	w12, _ := s.g.Weight(1, 2)
	w21, _ := s.g.Weight(2, 1)
	require.Equal(w12, w21)

	back, ok := s.g.Edge(2, 1)
	require.True(ok)
	require.NotSame(fwd, back, "mirror must be a separate record")
	require.Equal("highway", back.RoadClass)
	require.Equal(110.0, back.SpeedLimit)
	require.Equal(2, s.g.EdgeCount(), "both directions are counted")
}

func (s *GraphSuite) TestDirectedStoresForwardOnly() {
	require := require.New(s.T())

	g := core.NewGraph(core.WithDirected())
	_, err := g.AddEdge(1, 2, core.WithWeight(4))
	require.NoError(err)
	require.True(g.HasEdge(1, 2))
	require.False(g.HasEdge(2, 1))
	require.Equal(1, g.EdgeCount())
	require.True(g.Directed())
}

func (s *GraphSuite) TestParallelEdgesKeepInsertionOrder() {
	require := require.New(s.T())

	g := core.NewGraph(core.WithDirected())
	_, _ = g.AddEdge(0, 1, core.WithWeight(9))
	_, _ = g.AddEdge(0, 2, core.WithWeight(1))
	_, _ = g.AddEdge(0, 1, core.WithWeight(2))

	nb, err := g.Neighbors(0)
	require.NoError(err)
	require.Equal([]core.Neighbor{{ID: 1, Weight: 9}, {ID: 2, Weight: 1}, {ID: 1, Weight: 2}}, nb)

	// First match wins for Edge/Weight.
	w, ok := g.Weight(0, 1)
	require.True(ok)
	require.Equal(9.0, w)
	require.Equal(3, g.Degree(0))
}

func (s *GraphSuite) TestNeighborsUnknownNode() {
	_, err := s.g.Neighbors(404)
	s.Require().True(errors.Is(err, core.ErrNodeNotFound))
}

func (s *GraphSuite) TestLookupMisses() {
	require := require.New(s.T())

	s.g.AddNode(1, 0, 0)
	_, ok := s.g.Edge(1, 2)
	require.False(ok)
	_, ok = s.g.Weight(3, 1)
	require.False(ok)
	require.Zero(s.g.Degree(99))
	_, ok = s.g.Node(99)
	require.False(ok)
}

func (s *GraphSuite) TestRejectsNonFiniteWeights() {
	require := require.New(s.T())

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := s.g.AddEdge(0, 1, core.WithWeight(w))
		require.ErrorIs(err, core.ErrBadWeight)
	}
	require.Zero(s.g.EdgeCount())
}

func (s *GraphSuite) TestSelfLoopAllowed() {
	require := require.New(s.T())

	_, err := s.g.AddEdge(5, 5, core.WithWeight(1))
	require.NoError(err)
	require.True(s.g.HasEdge(5, 5))
	// Undirected self-loop still produces two records.
	require.Equal(2, s.g.Degree(5))
}

func (s *GraphSuite) TestDegreesAndDensity() {
	require := require.New(s.T())

	require.Zero(s.g.AverageDegree())
	require.Zero(s.g.Density())

	_, _ = s.g.AddEdge(0, 1, core.WithWeight(1))
	_, _ = s.g.AddEdge(1, 2, core.WithWeight(1))
	require.InDelta(4.0/3.0, s.g.AverageDegree(), 1e-12)
	require.InDelta(4.0/6.0, s.g.Density(), 1e-12)
}

func (s *GraphSuite) TestConnectivity() {
	require := require.New(s.T())

	require.True(s.g.IsConnected(), "empty graph is connected")

	_, _ = s.g.AddEdge(0, 1, core.WithWeight(1))
	s.g.AddNode(2, 5, 5)
	require.False(s.g.IsConnected())
	require.Len(s.g.Components(), 2)

	_, _ = s.g.AddEdge(1, 2, core.WithWeight(1))
	require.True(s.g.IsConnected())
	require.Equal([]int{0, 1, 2}, s.g.Reachable(0))
	require.Nil(s.g.Reachable(77))
}

func (s *GraphSuite) TestDirectedComponentsAreWeak() {
	g := core.NewGraph(core.WithDirected())
	_, _ = g.AddEdge(1, 0, core.WithWeight(1))
	_, _ = g.AddEdge(2, 3, core.WithWeight(1))

	s.Require().Len(g.Components(), 2)
	s.Require().False(g.IsConnected())
}

func (s *GraphSuite) TestNodesAndEdgesOrder() {
	require := require.New(s.T())

	s.g.AddNode(3, 0, 0)
	s.g.AddNode(1, 0, 0)
	_, _ = s.g.AddEdge(1, 3, core.WithWeight(2))

	ids := make([]int, 0)
	for _, n := range s.g.Nodes() {
		ids = append(ids, n.ID)
	}
	require.Equal([]int{3, 1}, ids)

	edges := s.g.Edges()
	require.Len(edges, 2)
	// Node 3 was inserted first, so its mirror arc comes first.
	require.Equal(3, edges[0].From)
	require.Equal(1, edges[1].From)
}

func (s *GraphSuite) TestSlotsAreDense() {
	require := require.New(s.T())

	s.g.AddNode(100, 1, 1)
	s.g.AddNode(-5, 2, 2)
	slot, ok := s.g.Slot(-5)
	require.True(ok)
	require.Equal(1, slot)
	require.Equal(-5, s.g.NodeAt(slot).ID)
	require.Empty(s.g.ArcsAt(slot))
}

func (s *GraphSuite) TestCloneIsDeep() {
	require := require.New(s.T())

	_, _ = s.g.AddEdge(0, 1, core.WithWeight(2))
	c := s.g.Clone()

	_, _ = c.AddEdge(1, 2, core.WithWeight(3))
	require.Equal(2, s.g.EdgeCount())
	require.Equal(4, c.EdgeCount())
	require.False(s.g.HasNode(2))

	orig, _ := s.g.Edge(0, 1)
	cp, _ := c.Edge(0, 1)
	require.NotSame(orig, cp)
	require.Equal(orig.Weight, cp.Weight)
}

func (s *GraphSuite) TestStats() {
	_, _ = s.g.AddEdge(0, 1, core.WithWeight(1))
	st := s.g.Stats()

	s.Require().Equal(core.GraphStats{
		NodeCount:     2,
		EdgeCount:     2,
		AverageDegree: 1,
		Density:       1,
		Connected:     true,
	}, st)
	s.Require().Contains(st.String(), "nodes=2")
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestDistanceMetrics(t *testing.T) {
	a := &core.Node{X: 0, Y: 0}
	b := &core.Node{X: 3, Y: 4}
	require.InDelta(t, 5.0, core.Distance(a, b, core.Euclidean), 1e-12)
	require.Zero(t, core.Distance(a, a, core.Haversine))
	require.Equal(t, "haversine", core.Haversine.String())
	require.Equal(t, "euclidean", core.Euclidean.String())
}
