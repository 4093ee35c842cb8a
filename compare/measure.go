// SPDX-License-Identifier: MIT
//
// File: measure.go
// Role: Repeated-run performance statistics for one engine.

package compare

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/slices"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// Summary holds descriptive statistics over a sample.
type Summary struct {
	Mean   float64
	Median float64
	Stdev  float64 // sample standard deviation, 0 for fewer than two values
	Min    float64
	Max    float64
}

// Summarize computes a Summary of xs. The zero Summary is returned for an empty sample.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	var sum float64
	for _, x := range sorted {
		sum += x
	}
	n := len(sorted)
	s := Summary{
		Mean: sum / float64(n),
		Min:  sorted[0],
		Max:  sorted[n-1],
	}
	if n%2 == 1 {
		s.Median = sorted[n/2]
	} else {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	if n > 1 {
		var sq float64
		for _, x := range sorted {
			sq += (x - s.Mean) * (x - s.Mean)
		}
		s.Stdev = math.Sqrt(sq / float64(n-1))
	}

	return s
}

// Stats aggregates repeated runs of one engine. Only successful runs
// contribute to the summaries; Success is false when none succeeded.
type Stats struct {
	Engine    string
	Runs      int
	Successes int
	Success   bool
	TimeMs    Summary
	Visited   Summary
	Relaxed   Summary
	Cost      Summary
}

// Measure runs eng runs times on (g, source, target) and summarizes timing,
// visited nodes, relaxed edges and cost. name labels the Stats.
func Measure(name string, eng Engine, g *core.Graph, source, target, runs int) (Stats, error) {
	if runs <= 0 {
		return Stats{}, fmt.Errorf("%w: %d", ErrBadRuns, runs)
	}

	st := Stats{Engine: name, Runs: runs}
	var times, visited, relaxed, costs []float64
	for i := 0; i < runs; i++ {
		res, err := eng(g, source, target)
		if err != nil {
			return Stats{}, fmt.Errorf("compare: measure %s run %d: %w", name, i, err)
		}
		if !res.Success {
			continue
		}
		st.Successes++
		times = append(times, float64(res.Elapsed)/float64(time.Millisecond))
		visited = append(visited, float64(res.VisitedNodes))
		relaxed = append(relaxed, float64(res.RelaxedEdges))
		costs = append(costs, res.Cost)
	}

	st.Success = st.Successes > 0
	st.TimeMs = Summarize(times)
	st.Visited = Summarize(visited)
	st.Relaxed = Summarize(relaxed)
	st.Cost = Summarize(costs)

	return st, nil
}
