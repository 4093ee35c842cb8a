// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: CSV, JSON and plain-text renderings of a comparison report.

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/abdoulaye05/Smart-GPS/compare"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// CSVHeader is the column layout written by WriteCSV.
var CSVHeader = []string{
	"run_id", "algorithm", "source", "target", "success", "cost",
	"hops", "visited_nodes", "exploration_pct", "relaxed_edges", "elapsed_ms",
}

// WriteCSV writes one row per engine, in engine-name order. Cost is empty
// when no path was found.
func WriteCSV(w io.Writer, rep *compare.Report) error {
	if rep == nil {
		return ErrNilReport
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}
	for _, name := range rep.Results.Names() {
		r := rep.Results[name]
		row := []string{
			rep.ID,
			name,
			strconv.Itoa(rep.Source),
			strconv.Itoa(rep.Target),
			strconv.FormatBool(r.Success),
			formatCost(r),
			strconv.Itoa(r.Hops()),
			strconv.Itoa(r.VisitedNodes),
			strconv.FormatFloat(exploration(r, rep.Graph.NodeCount), 'f', 2, 64),
			strconv.Itoa(r.RelaxedEdges),
			strconv.FormatFloat(ms(r.Elapsed), 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: csv row %s: %w", name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// jsonResult is the wire form of a search.Result. Cost is null without a path.
type jsonResult struct {
	Algorithm    string   `json:"algorithm"`
	Success      bool     `json:"success"`
	Path         []int    `json:"path"`
	Cost         *float64 `json:"cost"`
	VisitedNodes int      `json:"visited_nodes"`
	Explored     []int    `json:"explored,omitempty"`
	RelaxedEdges int      `json:"relaxed_edges"`
	ElapsedMs    float64  `json:"elapsed_ms"`
}

type jsonMismatch struct {
	Engine    string   `json:"engine"`
	Reference string   `json:"reference"`
	Kind      string   `json:"kind"`
	Want      *float64 `json:"want"`
	Got       *float64 `json:"got"`
	Changes   int      `json:"changes,omitempty"`
}

type jsonGraph struct {
	Directed      bool    `json:"directed"`
	Geographic    bool    `json:"geographic"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	AverageDegree float64 `json:"average_degree"`
	Density       float64 `json:"density"`
	Connected     bool    `json:"connected"`
}

type jsonReport struct {
	ID         string                `json:"id"`
	CreatedAt  time.Time             `json:"created_at"`
	Source     int                   `json:"source"`
	Target     int                   `json:"target"`
	Graph      jsonGraph             `json:"graph"`
	Results    map[string]jsonResult `json:"results"`
	Mismatches []jsonMismatch        `json:"mismatches"`
	Stats      []compare.Stats       `json:"stats,omitempty"`
}

// JSONOption configures WriteJSON.
type JSONOption func(*jsonOptions)

type jsonOptions struct {
	explored bool
	indent   string
}

// WithExplored includes each engine's explored-node list.
func WithExplored() JSONOption {
	return func(o *jsonOptions) { o.explored = true }
}

// WithIndent pretty-prints with the given indent.
func WithIndent(indent string) JSONOption {
	return func(o *jsonOptions) { o.indent = indent }
}

// WriteJSON encodes rep as a single JSON document.
func WriteJSON(w io.Writer, rep *compare.Report, opts ...JSONOption) error {
	if rep == nil {
		return ErrNilReport
	}
	var cfg jsonOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := jsonReport{
		ID:        rep.ID,
		CreatedAt: rep.CreatedAt,
		Source:    rep.Source,
		Target:    rep.Target,
		Graph: jsonGraph{
			Directed:      rep.Graph.Directed,
			Geographic:    rep.Graph.Geographic,
			Nodes:         rep.Graph.NodeCount,
			Edges:         rep.Graph.EdgeCount,
			AverageDegree: rep.Graph.AverageDegree,
			Density:       rep.Graph.Density,
			Connected:     rep.Graph.Connected,
		},
		Results:    make(map[string]jsonResult, len(rep.Results)),
		Mismatches: make([]jsonMismatch, 0, len(rep.Mismatches)),
		Stats:      rep.Stats,
	}
	for name, r := range rep.Results {
		jr := jsonResult{
			Algorithm:    r.Algorithm,
			Success:      r.Success,
			Path:         append([]int{}, r.Path...),
			Cost:         finite(r.Cost),
			VisitedNodes: r.VisitedNodes,
			RelaxedEdges: r.RelaxedEdges,
			ElapsedMs:    ms(r.Elapsed),
		}
		if cfg.explored {
			jr.Explored = r.Explored
		}
		doc.Results[name] = jr
	}
	for _, m := range rep.Mismatches {
		doc.Mismatches = append(doc.Mismatches, jsonMismatch{
			Engine:    m.Engine,
			Reference: m.Reference,
			Kind:      string(m.Kind),
			Want:      finite(m.Want),
			Got:       finite(m.Got),
			Changes:   len(m.Changes),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", cfg.indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: json: %w", err)
	}

	return nil
}

// WriteTable prints an aligned comparison table: cost, visited nodes and
// share of the graph explored, relaxed edges, time and speedup against
// Dijkstra, followed by any mismatches. Equal-cost path differences are
// printed as notes.
func WriteTable(w io.Writer, rep *compare.Report) error {
	if rep == nil {
		return ErrNilReport
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s: %d -> %d on %s\n", rep.ID, rep.Source, rep.Target, rep.Graph)
	fmt.Fprintln(tw, "ALGORITHM\tCOST\tHOPS\tVISITED\tEXPL.%\tRELAXED\tTIME(ms)\tSPEEDUP")

	base, hasBase := rep.Results["dijkstra"]
	for _, name := range rep.Results.Names() {
		r := rep.Results[name]
		cost := "n/a"
		if r.Success {
			cost = strconv.FormatFloat(r.Cost, 'f', 2, 64)
		}
		speedup := "n/a"
		if hasBase && r.Elapsed > 0 {
			speedup = fmt.Sprintf("%.2fx", compare.Speedup(ms(base.Elapsed), ms(r.Elapsed)))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.1f\t%d\t%.3f\t%s\n",
			name, cost, r.Hops(), r.VisitedNodes, exploration(r, rep.Graph.NodeCount),
			r.RelaxedEdges, ms(r.Elapsed), speedup)
	}
	for _, m := range rep.Mismatches {
		kind := "mismatch"
		if m.PathOnly() {
			kind = "note"
		}
		fmt.Fprintf(tw, "%s: %s\n", kind, m)
	}

	return tw.Flush()
}

func formatCost(r *search.Result) string {
	if !r.Success {
		return ""
	}

	return strconv.FormatFloat(r.Cost, 'f', -1, 64)
}

func finite(x float64) *float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return nil
	}

	return &x
}

func exploration(r *search.Result, nodes int) float64 {
	if nodes == 0 {
		return 0
	}

	return float64(r.VisitedNodes) / float64(nodes) * 100
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
