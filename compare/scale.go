// SPDX-License-Identifier: MIT
//
// File: scale.go
// Role: Scaling sweeps: repeated-run statistics over growing networks and the
// empirical complexity exponent they imply.

package compare

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// Network builds the graph for one sweep size and picks the query on it.
type Network func(size int) (g *core.Graph, source, target int, err error)

// ScalePoint is one size of a sweep. Stats follow Sweep.Engines order.
type ScalePoint struct {
	Size   int
	Nodes  int
	Edges  int
	Source int
	Target int
	Stats  []Stats
}

// Sweep is the outcome of Scale.
type Sweep struct {
	Engines []string
	Runs    int
	Points  []ScalePoint
}

// Scale measures every configured engine runs times on the network built for
// each size, in the order given.
//
// Errors: ErrBadSizes for an empty list or a size < 1, ErrBadRuns from
// Measure, ErrUnknownEngine, and any error of build or of an engine, wrapped
// with the size.
func Scale(sizes []int, runs int, build Network, opts ...Option) (Sweep, error) {
	// 1) Validate.
	if len(sizes) == 0 {
		return Sweep{}, fmt.Errorf("%w: no sizes", ErrBadSizes)
	}
	for _, n := range sizes {
		if n < 1 {
			return Sweep{}, fmt.Errorf("%w: %d", ErrBadSizes, n)
		}
	}
	if runs <= 0 {
		return Sweep{}, fmt.Errorf("%w: %d", ErrBadRuns, runs)
	}
	cfg := buildOptions(opts)
	engines := make([]Engine, len(cfg.Engines))
	for i, name := range cfg.Engines {
		eng, err := lookup(name, cfg)
		if err != nil {
			return Sweep{}, err
		}
		engines[i] = eng
	}

	// 2) One point per size.
	sw := Sweep{Engines: append([]string(nil), cfg.Engines...), Runs: runs}
	for _, size := range sizes {
		g, source, target, err := build(size)
		if err != nil {
			return Sweep{}, fmt.Errorf("compare: scale size %d: %w", size, err)
		}
		pt := ScalePoint{
			Size:   size,
			Nodes:  g.NodeCount(),
			Edges:  g.EdgeCount(),
			Source: source,
			Target: target,
		}
		for i, eng := range engines {
			st, err := Measure(cfg.Engines[i], eng, g, source, target, runs)
			if err != nil {
				return Sweep{}, fmt.Errorf("compare: scale size %d: %w", size, err)
			}
			pt.Stats = append(pt.Stats, st)
		}
		cfg.Logger.Debug("scale point measured",
			zap.Int("size", size),
			zap.Int("nodes", pt.Nodes),
			zap.Int("edges", pt.Edges),
			zap.Int("runs", runs),
		)
		sw.Points = append(sw.Points, pt)
	}

	return sw, nil
}

// Stat returns the statistics of engine at point i.
func (s Sweep) Stat(i int, engine string) (Stats, bool) {
	for j, name := range s.Engines {
		if name == engine {
			return s.Points[i].Stats[j], true
		}
	}

	return Stats{}, false
}

// Exponent estimates k in time ∝ nodes^k for engine: the least-squares slope
// of log(mean time) against log(nodes) over the points where the engine
// succeeded with a positive time. Two usable points give log(t2/t1)/log(n2/n1).
// Returns 0 with fewer than two usable points or without spread in nodes.
func (s Sweep) Exponent(engine string) float64 {
	var xs, ys []float64
	for i, pt := range s.Points {
		st, ok := s.Stat(i, engine)
		if !ok || !st.Success || st.TimeMs.Mean <= 0 || pt.Nodes < 1 {
			continue
		}
		xs = append(xs, math.Log(float64(pt.Nodes)))
		ys = append(ys, math.Log(st.TimeMs.Mean))
	}
	if len(xs) < 2 {
		return 0
	}

	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))
	var sxy, sxx float64
	for i := range xs {
		sxy += (xs[i] - mx) * (ys[i] - my)
		sxx += (xs[i] - mx) * (xs[i] - mx)
	}
	if sxx == 0 {
		return 0
	}

	return sxy / sxx
}

// Speedups returns, per point, the mean time of base divided by that of
// other. Points where either engine has no successful run yield 0.
func (s Sweep) Speedups(base, other string) []float64 {
	out := make([]float64, len(s.Points))
	for i := range s.Points {
		b, ok1 := s.Stat(i, base)
		o, ok2 := s.Stat(i, other)
		if !ok1 || !ok2 || !b.Success || !o.Success || o.TimeMs.Mean == 0 {
			continue
		}
		out[i] = Speedup(b.TimeMs.Mean, o.TimeMs.Mean)
	}

	return out
}
