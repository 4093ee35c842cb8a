// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: Run every engine on the same query and cross-check the results.

package compare

import (
	"fmt"
	"math"

	"github.com/r3labs/diff/v3"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/dijkstra"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// Results maps an engine name to its result.
type Results map[string]*search.Result

// Run executes the configured engines against (g, source, target) and returns
// their results keyed by engine name. The first engine error aborts the run
// and is returned wrapped with the engine name.
func Run(g *core.Graph, source, target int, opts ...Option) (Results, error) {
	cfg := buildOptions(opts)

	out := make(Results, len(cfg.Engines))
	for _, name := range cfg.Engines {
		eng, err := lookup(name, cfg)
		if err != nil {
			return nil, err
		}
		res, err := eng(g, source, target)
		if err != nil {
			return nil, fmt.Errorf("compare: %s: %w", name, err)
		}
		out[name] = res
	}

	cfg.Logger.Debug("comparison finished",
		zap.Int("source", source),
		zap.Int("target", target),
		zap.Strings("engines", out.Names()),
	)

	return out, nil
}

// Names returns the engine names in lexical order.
func (rs Results) Names() []string {
	names := maps.Keys(rs)
	slices.Sort(names)

	return names
}

// MismatchKind classifies a disagreement between two engines.
type MismatchKind string

const (
	// MismatchSuccess: one engine found a path, the other did not.
	MismatchSuccess MismatchKind = "success"

	// MismatchCost: both found a path but costs differ beyond tolerance.
	MismatchCost MismatchKind = "cost"

	// MismatchPath: equal cost, different node sequence. Informational only,
	// ties between equal-cost paths may be broken differently.
	MismatchPath MismatchKind = "path"
)

// Mismatch describes how one engine's result differs from the reference.
type Mismatch struct {
	Engine    string
	Reference string
	Kind      MismatchKind
	Want      float64
	Got       float64
	Changes   diff.Changelog
}

// PathOnly reports whether the mismatch is a tie-break difference rather than
// a correctness problem.
func (m Mismatch) PathOnly() bool { return m.Kind == MismatchPath }

// String renders a one-line description.
func (m Mismatch) String() string {
	switch m.Kind {
	case MismatchPath:
		return fmt.Sprintf("%s vs %s: equal cost, %d path change(s)", m.Engine, m.Reference, len(m.Changes))
	case MismatchSuccess:
		return fmt.Sprintf("%s vs %s: success differs", m.Engine, m.Reference)
	default:
		return fmt.Sprintf("%s vs %s: cost %.4f, want %.4f", m.Engine, m.Reference, m.Got, m.Want)
	}
}

// Verify compares every result against the reference (Dijkstra when present,
// otherwise the lexically first engine). Costs within tolerance are equal.
// Mismatches are returned in engine-name order; nil means full agreement.
func (rs Results) Verify(tolerance float64) []Mismatch {
	names := rs.Names()
	if len(names) < 2 {
		return nil
	}
	ref := names[0]
	if _, ok := rs[dijkstra.Algorithm]; ok {
		ref = dijkstra.Algorithm
	}
	want := rs[ref]

	var out []Mismatch
	for _, name := range names {
		if name == ref {
			continue
		}
		got := rs[name]
		m := Mismatch{Engine: name, Reference: ref, Want: want.Cost, Got: got.Cost}
		switch {
		case got.Success != want.Success:
			m.Kind = MismatchSuccess
		case !got.Success:
			continue
		case math.Abs(got.Cost-want.Cost) > tolerance:
			m.Kind = MismatchCost
		default:
			changes, err := diff.Diff(want.Path, got.Path, diff.SliceOrdering(true))
			if err != nil || len(changes) == 0 {
				continue
			}
			m.Kind = MismatchPath
			m.Changes = changes
		}
		out = append(out, m)
	}

	return out
}

// Consistent reports whether Verify finds nothing beyond path-only differences.
func (rs Results) Consistent(tolerance float64) bool {
	for _, m := range rs.Verify(tolerance) {
		if !m.PathOnly() {
			return false
		}
	}

	return true
}

// Speedup returns base/optimized, the factor by which optimized is faster.
// A zero optimized time yields +Inf.
func Speedup(base, optimized float64) float64 {
	if optimized == 0 {
		return math.Inf(1)
	}

	return base / optimized
}

// VisitedReduction returns the percentage of nodes the other engine avoided
// visiting relative to base. Zero when base visited nothing.
func VisitedReduction(base, other *search.Result) float64 {
	if base.VisitedNodes == 0 {
		return 0
	}

	return (1 - float64(other.VisitedNodes)/float64(base.VisitedNodes)) * 100
}

// EffectiveBranchingFactor solves N = 1 + b + b² + … + b^d for b, where N is
// the number of expanded nodes and d the solution depth in hops. It returns
// 1 for d == 0 or N <= d+1.
func EffectiveBranchingFactor(expanded, depth int) float64 {
	if depth <= 0 || expanded <= depth+1 {
		return 1
	}

	n := float64(expanded)
	total := func(b float64) float64 {
		sum, term := 1.0, 1.0
		for i := 0; i < depth; i++ {
			term *= b
			sum += term
		}

		return sum
	}

	// total is increasing in b on [1, n]; bisect.
	lo, hi := 1.0, n
	for i := 0; i < 100 && hi-lo > 1e-9; i++ {
		mid := (lo + hi) / 2
		if total(mid) < n {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}
