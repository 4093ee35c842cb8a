// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Root command, shared flags and scenario resolution.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	format     string

	// Flag-side copy of the scenario; only changed flags override the file.
	flags Scenario

	scen Scenario
	log  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: DefaultScenario()}

	root := &cobra.Command{
		Use:          "smartgps",
		Short:        "Compare shortest-path engines on generated road networks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML scenario file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every search at debug level")

	pf.StringVar(&a.flags.Generator, "generator", a.flags.Generator, "network generator: grid, urban, clustered or city")
	pf.StringVar(&a.flags.Preset, "preset", a.flags.Preset, "city size: small, medium or large")
	pf.IntVar(&a.flags.Rows, "rows", a.flags.Rows, "grid rows")
	pf.IntVar(&a.flags.Cols, "cols", a.flags.Cols, "grid columns")
	pf.BoolVar(&a.flags.Diagonals, "diagonals", false, "add diagonal grid streets")
	pf.IntVar(&a.flags.Nodes, "nodes", a.flags.Nodes, "intersections of an urban network")
	pf.IntVar(&a.flags.Clusters, "clusters", a.flags.Clusters, "districts of a clustered network")
	pf.IntVar(&a.flags.PerCluster, "per-cluster", a.flags.PerCluster, "intersections per district")
	pf.BoolVar(&a.flags.Directed, "directed", false, "generate one-way roads")
	pf.BoolVar(&a.flags.StreetNames, "street-names", false, "label intersections with street names")
	pf.Float64Var(&a.flags.Congestion.Factor, "congestion-factor", 0, "slowdown factor of congested roads")
	pf.Float64Var(&a.flags.Congestion.Ratio, "congestion-ratio", 0, "share of congested roads")
	pf.Int64Var(&a.flags.Seed, "seed", a.flags.Seed, "random seed")
	pf.IntVar(&a.flags.Source, "source", a.flags.Source, "source node id")
	pf.IntVar(&a.flags.Target, "target", a.flags.Target, "target node id, -1 for the largest id")
	pf.StringSliceVar(&a.flags.Engines, "engines", a.flags.Engines, "engines to run")
	pf.StringVar(&a.flags.Heuristic, "heuristic", "", "A* heuristic: euclidean, haversine, manhattan or zero")

	root.AddCommand(newCompareCmd(a), newRouteCmd(a), newGenerateCmd(a), newDOTCmd(a), newScaleCmd(a))

	return root
}

// resolve builds the logger and the effective scenario: defaults, then the
// config file, then every flag set on the command line.
func (a *app) resolve(cmd *cobra.Command) error {
	a.log = newLogger(cmd.ErrOrStderr(), a.verbose)

	a.scen = DefaultScenario()
	if a.configPath != "" {
		s, err := LoadScenario(a.configPath)
		if err != nil {
			return err
		}
		a.scen = s
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("generator", func() { a.scen.Generator = a.flags.Generator })
	set("preset", func() { a.scen.Preset = a.flags.Preset })
	set("rows", func() { a.scen.Rows = a.flags.Rows })
	set("cols", func() { a.scen.Cols = a.flags.Cols })
	set("diagonals", func() { a.scen.Diagonals = a.flags.Diagonals })
	set("nodes", func() { a.scen.Nodes = a.flags.Nodes })
	set("clusters", func() { a.scen.Clusters = a.flags.Clusters })
	set("per-cluster", func() { a.scen.PerCluster = a.flags.PerCluster })
	set("directed", func() { a.scen.Directed = a.flags.Directed })
	set("street-names", func() { a.scen.StreetNames = a.flags.StreetNames })
	set("congestion-factor", func() { a.scen.Congestion.Factor = a.flags.Congestion.Factor })
	set("congestion-ratio", func() { a.scen.Congestion.Ratio = a.flags.Congestion.Ratio })
	set("seed", func() { a.scen.Seed = a.flags.Seed })
	set("source", func() { a.scen.Source = a.flags.Source })
	set("target", func() { a.scen.Target = a.flags.Target })
	set("engines", func() { a.scen.Engines = a.flags.Engines })
	set("heuristic", func() { a.scen.Heuristic = a.flags.Heuristic })
	set("runs", func() { a.scen.Runs = a.flags.Runs })

	if err := a.scen.Validate(); err != nil {
		return err
	}
	a.log.Debug("scenario resolved",
		zap.String("config", a.configPath),
		zap.String("generator", a.scen.Generator),
		zap.Int64("seed", a.scen.Seed),
		zap.Int("source", a.scen.Source),
		zap.Int("target", a.scen.Target),
		zap.Strings("engines", a.scen.Engines),
	)

	return nil
}
