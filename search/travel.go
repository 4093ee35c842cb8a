// SPDX-License-Identifier: MIT
//
// File: travel.go
// Role: Travel-time model t = t0 + d/v over a found path.

package search

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// ErrBrokenPath indicates two consecutive path nodes without an edge between them.
var ErrBrokenPath = errors.New("search: consecutive path nodes are not linked")

// Mode is a way of travelling. Weights are read as metres.
//
// SpeedKmh     – cruising speed.
// Overhead     – fixed time per trip (parking, unlocking, crossing), the t0 term.
// SpeedLimited – drive at each edge's SpeedLimit instead of SpeedKmh when it is positive.
type Mode struct {
	Name         string
	SpeedKmh     float64
	Overhead     time.Duration
	SpeedLimited bool
}

// Built-in travel modes.
var (
	Car  = Mode{Name: "car", SpeedKmh: 50, Overhead: 15 * time.Second, SpeedLimited: true}
	Bike = Mode{Name: "bike", SpeedKmh: 15, Overhead: 8 * time.Second}
	Walk = Mode{Name: "walk", SpeedKmh: 5, Overhead: 5 * time.Second}
)

// Modes lists the built-in modes by cruising speed, fastest first. On very
// short trips the overheads dominate and the bike beats the car.
var Modes = []Mode{Car, Bike, Walk}

// Duration returns t0 + d/v for a distance of meters at SpeedKmh.
func (m Mode) Duration(meters float64) time.Duration {
	return m.Overhead + leg(meters, m.SpeedKmh)
}

// PathDuration returns the trip time along path: Overhead plus, for each
// leg, the weight of its first edge divided by the leg speed. An empty path
// takes no time; a single node costs only the overhead.
func (m Mode) PathDuration(g *core.Graph, path []int) (time.Duration, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, nil
	}
	if _, ok := g.Slot(path[0]); !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, path[0])
	}

	total := m.Overhead
	for i := 1; i < len(path); i++ {
		e, ok := g.Edge(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrBrokenPath, path[i-1], path[i])
		}
		speed := m.SpeedKmh
		if m.SpeedLimited && e.SpeedLimit > 0 {
			speed = e.SpeedLimit
		}
		total += leg(e.Weight, speed)
	}

	return total, nil
}

func leg(meters, kmh float64) time.Duration {
	if kmh <= 0 {
		return 0
	}

	return time.Duration(math.Round(meters * float64(time.Hour) / (kmh * 1000)))
}
