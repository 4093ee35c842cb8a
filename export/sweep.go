// SPDX-License-Identifier: MIT
//
// File: sweep.go
// Role: CSV and plain-text renderings of a scaling sweep.

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/abdoulaye05/Smart-GPS/compare"
)

// ErrEmptySweep indicates a sweep without points was passed to an exporter.
var ErrEmptySweep = errors.New("export: sweep has no points")

// SweepCSVHeader is the column layout written by WriteSweepCSV.
var SweepCSVHeader = []string{
	"size", "nodes", "edges", "algorithm", "runs", "successes",
	"mean_ms", "median_ms", "stdev_ms", "mean_visited", "mean_relaxed",
}

// WriteSweepCSV writes one row per size and engine, in sweep order.
func WriteSweepCSV(w io.Writer, sw compare.Sweep) error {
	if len(sw.Points) == 0 {
		return ErrEmptySweep
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(SweepCSVHeader); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}
	for _, pt := range sw.Points {
		for _, st := range pt.Stats {
			row := []string{
				strconv.Itoa(pt.Size),
				strconv.Itoa(pt.Nodes),
				strconv.Itoa(pt.Edges),
				st.Engine,
				strconv.Itoa(st.Runs),
				strconv.Itoa(st.Successes),
				strconv.FormatFloat(st.TimeMs.Mean, 'f', 4, 64),
				strconv.FormatFloat(st.TimeMs.Median, 'f', 4, 64),
				strconv.FormatFloat(st.TimeMs.Stdev, 'f', 4, 64),
				strconv.FormatFloat(st.Visited.Mean, 'f', 1, 64),
				strconv.FormatFloat(st.Relaxed.Mean, 'f', 1, 64),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("export: csv row %d/%s: %w", pt.Size, st.Engine, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSweepTable prints mean time and visited nodes per size and engine,
// the speedup of every engine against Dijkstra when it was measured, and a
// closing line with the estimated complexity exponent of each engine.
func WriteSweepTable(w io.Writer, sw compare.Sweep) error {
	if len(sw.Points) == 0 {
		return ErrEmptySweep
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "scaling over %d sizes, %d runs each\n", len(sw.Points), sw.Runs)
	fmt.Fprintln(tw, "NODES\tEDGES\tALGORITHM\tMEAN(ms)\tSTDEV(ms)\tVISITED\tSPEEDUP")

	for i, pt := range sw.Points {
		base, hasBase := sw.Stat(i, "dijkstra")
		for _, st := range pt.Stats {
			mean, visited, speedup := "n/a", "n/a", "n/a"
			if st.Success {
				mean = strconv.FormatFloat(st.TimeMs.Mean, 'f', 3, 64)
				visited = strconv.FormatFloat(st.Visited.Mean, 'f', 0, 64)
				if hasBase && base.Success && st.TimeMs.Mean > 0 {
					speedup = fmt.Sprintf("%.2fx", compare.Speedup(base.TimeMs.Mean, st.TimeMs.Mean))
				}
			}
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.3f\t%s\t%s\n",
				pt.Nodes, pt.Edges, st.Engine, mean, st.TimeMs.Stdev, visited, speedup)
		}
	}
	for _, name := range sw.Engines {
		fmt.Fprintf(tw, "exponent %s: %.2f\n", name, sw.Exponent(name))
	}

	return tw.Flush()
}
