// SPDX-License-Identifier: MIT
//
// File: scenario.go
// Role: YAML description of a generated road network and the query to run on it.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/abdoulaye05/Smart-GPS/astar"
	"github.com/abdoulaye05/Smart-GPS/builder"
	"github.com/abdoulaye05/Smart-GPS/compare"
	"github.com/abdoulaye05/Smart-GPS/core"
)

// ErrBadScenario indicates an invalid scenario field.
var ErrBadScenario = errors.New("scenario: invalid")

// Generators understood by Scenario.Build.
const (
	GenGrid      = "grid"
	GenUrban     = "urban"
	GenClustered = "clustered"
	GenCity      = "city"
)

// LastNode as Target selects the node with the largest id.
const LastNode = -1

// Congestion slows a share of the generated roads.
type Congestion struct {
	Factor float64 `yaml:"factor"`
	Ratio  float64 `yaml:"ratio"`
}

// Scenario describes one comparison run.
type Scenario struct {
	Generator   string     `yaml:"generator"`
	Preset      string     `yaml:"preset"`
	Rows        int        `yaml:"rows"`
	Cols        int        `yaml:"cols"`
	Diagonals   bool       `yaml:"diagonals"`
	Nodes       int        `yaml:"nodes"`
	Clusters    int        `yaml:"clusters"`
	PerCluster  int        `yaml:"per_cluster"`
	Directed    bool       `yaml:"directed"`
	StreetNames bool       `yaml:"street_names"`
	Congestion  Congestion `yaml:"congestion"`
	Seed        int64      `yaml:"seed"`
	Source      int        `yaml:"source"`
	Target      int        `yaml:"target"`
	Engines     []string   `yaml:"engines"`
	Heuristic   string     `yaml:"heuristic"`
	Runs        int        `yaml:"runs"`
}

// DefaultScenario is a 10×10 grid from the first to the last intersection.
func DefaultScenario() Scenario {
	return Scenario{
		Generator:  GenGrid,
		Preset:     "medium",
		Rows:       10,
		Cols:       10,
		Nodes:      100,
		Clusters:   3,
		PerCluster: 20,
		Seed:       42,
		Source:     0,
		Target:     LastNode,
		Engines:    append([]string(nil), compare.DefaultEngines...),
	}
}

// LoadScenario reads a YAML scenario on top of DefaultScenario. Unknown
// keys are rejected.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}

	return ParseScenario(data)
}

// ParseScenario decodes YAML scenario data on top of DefaultScenario.
func ParseScenario(data []byte) (Scenario, error) {
	s := DefaultScenario()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}

	return s, s.Validate()
}

// Validate checks the fields the generators and engines cannot check themselves.
func (s Scenario) Validate() error {
	switch s.Generator {
	case GenGrid, GenUrban, GenClustered, GenCity:
	default:
		return fmt.Errorf("%w: generator %q", ErrBadScenario, s.Generator)
	}
	if s.Congestion.Factor != 0 && s.Congestion.Factor < 1 {
		return fmt.Errorf("%w: congestion factor %g < 1", ErrBadScenario, s.Congestion.Factor)
	}
	if s.Congestion.Ratio < 0 || s.Congestion.Ratio > 1 {
		return fmt.Errorf("%w: congestion ratio %g outside [0,1]", ErrBadScenario, s.Congestion.Ratio)
	}
	if _, ok := astar.ByName(s.Heuristic); !ok {
		return fmt.Errorf("%w: heuristic %q", ErrBadScenario, s.Heuristic)
	}
	for _, name := range s.Engines {
		if !slices.Contains(compare.DefaultEngines, name) {
			return fmt.Errorf("%w: engine %q", ErrBadScenario, name)
		}
	}
	if s.Runs < 0 {
		return fmt.Errorf("%w: runs %d", ErrBadScenario, s.Runs)
	}

	return nil
}

// Build generates the road network.
func (s Scenario) Build() (*core.Graph, error) {
	bopts := []builder.BuilderOption{builder.WithSeed(s.Seed)}
	if s.StreetNames {
		bopts = append(bopts, builder.WithStreetNames())
	}
	if s.Congestion.Factor > 1 && s.Congestion.Ratio > 0 {
		bopts = append(bopts, builder.WithCongestion(s.Congestion.Factor, s.Congestion.Ratio))
	}
	var gopts []core.GraphOption
	if s.Directed {
		gopts = append(gopts, core.WithDirected())
	}

	switch s.Generator {
	case GenGrid:
		if s.Diagonals {
			bopts = append(bopts, builder.WithDiagonals())
		}
		return builder.BuildGraph(gopts, bopts, builder.Grid(s.Rows, s.Cols))
	case GenUrban:
		return builder.BuildGraph(gopts, bopts, builder.RandomUrban(s.Nodes), builder.EnsureConnected())
	case GenClustered:
		return builder.BuildGraph(gopts, bopts, builder.Clustered(s.Clusters, s.PerCluster), builder.EnsureConnected())
	default:
		return builder.City(s.Preset, bopts...)
	}
}

// Endpoints resolves Source and Target against g; LastNode picks the largest id.
func (s Scenario) Endpoints(g *core.Graph) (int, int) {
	target := s.Target
	if target == LastNode {
		for _, n := range g.Nodes() {
			if target == LastNode || n.ID > target {
				target = n.ID
			}
		}
	}

	return s.Source, target
}

// CompareOptions turns the engine and heuristic fields into compare options.
func (s Scenario) CompareOptions() []compare.Option {
	opts := []compare.Option{compare.WithEngines(s.Engines...)}
	if h, ok := astar.ByName(s.Heuristic); ok && h != nil {
		opts = append(opts, compare.WithHeuristic(h))
	}

	return opts
}
