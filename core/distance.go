// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: Straight-line distance metrics between nodes. Used for default edge
// weights in AddEdge and for the default A* heuristic.

package core

import "math"

// EarthRadiusMeters is the mean Earth radius used by the Haversine metric.
const EarthRadiusMeters = 6371000.0

// Metric selects how the straight-line distance between two nodes is measured.
type Metric int

const (
	// Euclidean is planar distance in coordinate units.
	Euclidean Metric = iota

	// Haversine is great-circle distance in metres; X is longitude, Y latitude (degrees).
	Haversine
)

// String returns the lowercase metric name.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Haversine:
		return "haversine"
	default:
		return "unknown"
	}
}

// Distance returns the straight-line distance between a and b under metric m.
// Unknown metrics fall back to Euclidean.
func Distance(a, b *Node, m Metric) float64 {
	if m == Haversine {
		return haversine(a.Y, a.X, b.Y, b.X)
	}

	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// haversine computes the great-circle distance between two (lat, lon) pairs in metres.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Metric reports the metric implied by the graph's geographic flag.
func (g *Graph) Metric() Metric {
	if g.geographic {
		return Haversine
	}

	return Euclidean
}
