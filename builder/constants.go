// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go — method tags, minima, road metadata and deterministic defaults.

package builder

// Method tags prefix constructor errors.
const (
	MethodGrid            = "Grid"
	MethodRandomUrban     = "RandomUrban"
	MethodClustered       = "Clustered"
	MethodEnsureConnected = "EnsureConnected"
	MethodCity            = "City"
)

// Minimum sizes.
const (
	MinGridDim         = 1
	MinUrbanNodes      = 1
	MinClusters        = 1
	MinNodesPerCluster = 1
)

// Road classes and speed limits (km/h) emitted by the generators.
const (
	RoadMain        = "main"
	RoadResidential = "residential"
	RoadHighway     = "highway"

	SpeedMain        = 50.0
	SpeedResidential = 30.0
	SpeedHighway     = 90.0
)

// Defaults resolved by newBuilderConfig.
const (
	DefaultSpacing           = 1.0
	DefaultWidth             = 1000.0
	DefaultHeight            = 1000.0
	DefaultMinDistance       = 50.0
	DefaultAvgDegree         = 4.0
	DefaultClusterRadius     = 200.0
	DefaultWorldSize         = 2000.0
	DefaultInterClusterLinks = 3

	// placementAttemptsPerNode bounds rejection sampling under the minimum
	// spacing; afterwards the remaining nodes are placed unconstrained.
	placementAttemptsPerNode = 100

	// clusterNeighbors is the k of the intra-cluster k-nearest linking.
	clusterNeighbors = 4

	// minUrbanNeighbors is the lower bound of k for RandomUrban.
	minUrbanNeighbors = 2

	// weightSeedSalt separates the weight RNG stream from the layout stream.
	weightSeedSalt int64 = 0x5eed_ca75
)
