// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: A self-describing record of one comparison, consumed by the exporters.

package compare

import (
	"time"

	"github.com/google/uuid"

	"github.com/abdoulaye05/Smart-GPS/core"
)

// DefaultTolerance is the cost tolerance used by NewReport.
const DefaultTolerance = 1e-6

// Report bundles a comparison with the graph it ran on.
type Report struct {
	ID         string
	CreatedAt  time.Time
	Source     int
	Target     int
	Graph      core.GraphStats
	Results    Results
	Mismatches []Mismatch
	Stats      []Stats // optional, filled by callers that ran Measure
}

// NewReport stamps a fresh run id and cross-checks rs with DefaultTolerance.
func NewReport(g *core.Graph, source, target int, rs Results) *Report {
	return &Report{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Source:     source,
		Target:     target,
		Graph:      g.Stats(),
		Results:    rs,
		Mismatches: rs.Verify(DefaultTolerance),
	}
}
