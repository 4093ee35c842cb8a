// SPDX-License-Identifier: MIT
//
// File: scale.go
// Role: scale subcommand: engine timings over growing urban networks.

package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdoulaye05/Smart-GPS/builder"
	"github.com/abdoulaye05/Smart-GPS/compare"
	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/export"
)

// Defaults of the scale command.
var defaultScaleSizes = []int{50, 100, 200, 500, 1000}

const (
	defaultScaleRuns   = 5
	defaultScaleDegree = 5
	defaultScaleArea   = 2000
)

func newScaleCmd(a *app) *cobra.Command {
	var (
		sizes  []int
		runs   int
		degree float64
		area   float64
	)

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Time every engine over urban networks of growing size and estimate the complexity exponent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if degree < 1 {
				return fmt.Errorf("%w: degree %g < 1", ErrBadScenario, degree)
			}
			if area <= 0 {
				return fmt.Errorf("%w: area %g", ErrBadScenario, area)
			}
			network := urbanSweep(a.scen.Seed, degree, area)
			opts := append(a.scen.CompareOptions(), compare.WithLogger(a.log))
			sw, err := compare.Scale(sizes, runs, network, opts...)
			if err != nil {
				return err
			}

			fields := []zap.Field{zap.Ints("sizes", sizes), zap.Int("runs", runs)}
			for _, name := range sw.Engines {
				fields = append(fields, zap.Float64("exponent_"+name, sw.Exponent(name)))
			}
			a.log.Info("scaling done", fields...)

			out := cmd.OutOrStdout()
			switch a.format {
			case FormatTable:
				return export.WriteSweepTable(out, sw)
			case FormatCSV:
				return export.WriteSweepCSV(out, sw)
			default:
				return fmt.Errorf("%w: %q", ErrBadFormat, a.format)
			}
		},
	}

	f := cmd.Flags()
	f.StringVarP(&a.format, "format", "f", FormatTable, "output format: table or csv")
	f.IntSliceVar(&sizes, "sizes", defaultScaleSizes, "network sizes in intersections")
	f.IntVar(&runs, "runs", defaultScaleRuns, "runs per engine and size")
	f.Float64Var(&degree, "degree", defaultScaleDegree, "average street degree")
	f.Float64Var(&area, "area", defaultScaleArea, "side of the square area in metres")

	return cmd
}

// urbanSweep builds connected random urban networks on a square area and
// draws a distinct source and target from a stream seeded by seed and size.
func urbanSweep(seed int64, degree, area float64) compare.Network {
	return func(size int) (*core.Graph, int, int, error) {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{
				builder.WithSeed(seed + int64(size)),
				builder.WithAvgDegree(degree),
				builder.WithArea(area, area),
			},
			builder.RandomUrban(size), builder.EnsureConnected())
		if err != nil {
			return nil, 0, 0, err
		}

		nodes := g.Nodes()
		r := rand.New(rand.NewSource(seed ^ int64(size)))
		s := r.Intn(len(nodes))
		t := s
		for len(nodes) > 1 && t == s {
			t = r.Intn(len(nodes))
		}

		return g, nodes[s].ID, nodes[t].ID, nil
	}
}
