// SPDX-License-Identifier: MIT
//
// File: commands.go
// Role: compare, route, generate and dot subcommands.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/compare"
	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/dijkstra"
	"github.com/abdoulaye05/Smart-GPS/export"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// ErrMismatch is returned by compare --strict when engines disagree.
var ErrMismatch = errors.New("engines disagree")

// ErrBadFormat indicates an unknown --format value.
var ErrBadFormat = errors.New("unknown output format")

// Output formats of the compare command.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

func newCompareCmd(a *app) *cobra.Command {
	var strict, explored bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every engine on one query and cross-check the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}
			source, target := a.scen.Endpoints(g)
			opts := append(a.scen.CompareOptions(), compare.WithLogger(a.log))

			// 1) One instrumented run per engine.
			rs, err := compare.Run(g, source, target, opts...)
			if err != nil {
				return err
			}
			rep := compare.NewReport(g, source, target, rs)

			// 2) Optional repeated runs for timing statistics.
			if a.scen.Runs > 0 {
				for _, name := range rs.Names() {
					eng, err := compare.Lookup(name, opts...)
					if err != nil {
						return err
					}
					st, err := compare.Measure(name, eng, g, source, target, a.scen.Runs)
					if err != nil {
						return err
					}
					rep.Stats = append(rep.Stats, st)
				}
			}

			failures := 0
			for _, m := range rep.Mismatches {
				if m.PathOnly() {
					a.log.Debug("equal-cost path differs", zap.Stringer("mismatch", m))
					continue
				}
				failures++
				a.log.Warn("engine mismatch",
					zap.String("engine", m.Engine),
					zap.String("reference", m.Reference),
					zap.String("kind", string(m.Kind)),
					zap.Float64("want", m.Want),
					zap.Float64("got", m.Got),
				)
			}
			a.log.Info("comparison done",
				zap.String("run_id", rep.ID),
				zap.Int("nodes", rep.Graph.NodeCount),
				zap.Int("source", source),
				zap.Int("target", target),
				zap.Int("mismatches", failures),
			)

			// 3) Render.
			out := cmd.OutOrStdout()
			switch a.format {
			case FormatTable:
				err = export.WriteTable(out, rep)
			case FormatCSV:
				err = export.WriteCSV(out, rep)
			case FormatJSON:
				jopts := []export.JSONOption{export.WithIndent("  ")}
				if explored {
					jopts = append(jopts, export.WithExplored())
				}
				err = export.WriteJSON(out, rep, jopts...)
			default:
				err = fmt.Errorf("%w: %q", ErrBadFormat, a.format)
			}
			if err != nil {
				return err
			}
			if strict && failures > 0 {
				return fmt.Errorf("%w: %d mismatches", ErrMismatch, failures)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&a.format, "format", "f", FormatTable, "output format: table, csv or json")
	f.IntVar(&a.flags.Runs, "runs", 0, "repeat every engine this many times for timing statistics")
	f.BoolVar(&strict, "strict", false, "fail when engines disagree on success or cost")
	f.BoolVar(&explored, "explored", false, "include explored nodes in JSON output")

	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the scenario's road network and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s components=%d\n", g.Stats(), len(g.Components()))

			return err
		},
	}
}

func newRouteCmd(a *app) *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find one route and estimate its travel time by car, bike and on foot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}
			source, target := a.scen.Endpoints(g)
			opts := append(a.scen.CompareOptions(), compare.WithLogger(a.log))
			eng, err := compare.Lookup(engine, opts...)
			if err != nil {
				return err
			}
			res, err := eng(g, source, target)
			if err != nil {
				return err
			}

			return printRoute(cmd.OutOrStdout(), g, res, source, target)
		},
	}

	cmd.Flags().StringVar(&engine, "engine", dijkstra.Algorithm, "engine to route with")

	return cmd
}

// printRoute writes the result line, the labelled path and the travel time
// of every built-in mode.
func printRoute(w io.Writer, g *core.Graph, res *search.Result, source, target int) error {
	fmt.Fprintln(w, res)
	if !res.Success {
		_, err := fmt.Fprintf(w, "no route from %d to %d\n", source, target)

		return err
	}
	fmt.Fprintf(w, "path: %s\n", joinPath(g, res.Path))
	for _, m := range search.Modes {
		d, err := m.PathDuration(g, res.Path)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-5s %s\n", m.Name, d.Round(time.Second)); err != nil {
			return err
		}
	}

	return nil
}

// joinPath renders a path with node labels, e.g. "(0,0) -> (0,1)".
func joinPath(g *core.Graph, path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
		if n, ok := g.Node(id); ok && n.Label != "" {
			parts[i] = n.Label
		}
	}

	return strings.Join(parts, " -> ")
}

func newDOTCmd(a *app) *cobra.Command {
	var (
		engine     string
		name       string
		positions  bool
		edgeLabels bool
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render the road network in Graphviz DOT, with one engine's search overlaid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}

			opts := []export.DOTOption{export.WithName(name)}
			if positions {
				opts = append(opts, export.WithPositions())
			}
			if edgeLabels {
				opts = append(opts, export.WithEdgeLabels())
			}

			var dot string
			if engine == "" {
				dot, err = export.DOT(g, nil, opts...)
			} else {
				source, target := a.scen.Endpoints(g)
				copts := append(a.scen.CompareOptions(), compare.WithLogger(a.log), compare.WithEngines(engine))
				rs, rerr := compare.Run(g, source, target, copts...)
				if rerr != nil {
					return rerr
				}
				dot, err = export.DOT(g, rs[engine], opts...)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dot)

			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&engine, "engine", "astar", "engine whose search is overlaid, empty for none")
	f.StringVar(&name, "name", "roads", "DOT graph name")
	f.BoolVar(&positions, "positions", false, "pin nodes at their coordinates")
	f.BoolVar(&edgeLabels, "edge-labels", false, "print edge weights")

	return cmd
}

// build generates the scenario network and logs its size.
func (a *app) build() (*core.Graph, error) {
	g, err := a.scen.Build()
	if err != nil {
		return nil, err
	}
	a.log.Debug("network generated", zap.Stringer("stats", g.Stats()))

	return g, nil
}
