// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: Graphviz rendering of a road network with an optional search overlay.

package export

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/search"
)

// ErrNilGraph indicates a nil graph was passed to an exporter.
var ErrNilGraph = errors.New("export: graph is nil")

// ErrNilReport indicates a nil report was passed to an exporter.
var ErrNilReport = errors.New("export: report is nil")

// Colours used by DOT.
const (
	colorDefault  = "gray60"
	colorExplored = "lightblue"
	colorPath     = "red"
	colorSource   = "green3"
	colorTarget   = "orange"
)

// DOTOption configures DOT rendering.
type DOTOption func(*dotOptions)

type dotOptions struct {
	name       string
	positions  bool
	edgeLabels bool
}

// WithName sets the graph name. Default "roads".
func WithName(name string) DOTOption {
	return func(o *dotOptions) { o.name = name }
}

// WithPositions pins every node at its coordinates (neato/fdp "pos" attribute).
func WithPositions() DOTOption {
	return func(o *dotOptions) { o.positions = true }
}

// WithEdgeLabels prints the weight on every edge.
func WithEdgeLabels() DOTOption {
	return func(o *dotOptions) { o.edgeLabels = true }
}

// DOT renders g in Graphviz DOT. When res is non-nil, explored nodes are
// filled, the path nodes and edges are drawn in red and the path endpoints
// are coloured. Undirected roads are drawn once.
func DOT(g *core.Graph, res *search.Result, opts ...DOTOption) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	cfg := dotOptions{name: "roads"}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Overlay lookups.
	explored := map[int]bool{}
	onPath := map[int]bool{}
	pathEdge := map[[2]int]bool{}
	if res != nil {
		for _, id := range res.Explored {
			explored[id] = true
		}
		for i, id := range res.Path {
			onPath[id] = true
			if i > 0 {
				pathEdge[[2]int{res.Path[i-1], id}] = true
				if !g.Directed() {
					pathEdge[[2]int{id, res.Path[i-1]}] = true
				}
			}
		}
	}

	// 2) Graph header.
	out := gographviz.NewGraph()
	if err := out.SetName(cfg.name); err != nil {
		return "", fmt.Errorf("export: dot name: %w", err)
	}
	if err := out.SetDir(g.Directed()); err != nil {
		return "", fmt.Errorf("export: dot dir: %w", err)
	}
	for k, v := range map[string]string{"overlap": "false", "splines": "true"} {
		if err := out.AddAttr(cfg.name, k, v); err != nil {
			return "", fmt.Errorf("export: dot attr %s: %w", k, err)
		}
	}

	// 3) Nodes.
	for _, n := range g.Nodes() {
		attrs := map[string]string{
			"label":     strconv.Quote(n.Label),
			"shape":     "circle",
			"style":     "filled",
			"color":     colorDefault,
			"fillcolor": "white",
			"fontsize":  "10",
		}
		if cfg.positions {
			attrs["pos"] = strconv.Quote(fmt.Sprintf("%g,%g!", n.X, n.Y))
		}
		switch {
		case res != nil && len(res.Path) > 0 && n.ID == res.Path[0]:
			attrs["fillcolor"] = colorSource
		case res != nil && len(res.Path) > 0 && n.ID == res.Path[len(res.Path)-1]:
			attrs["fillcolor"] = colorTarget
		case onPath[n.ID]:
			attrs["fillcolor"] = colorPath
		case explored[n.ID]:
			attrs["fillcolor"] = colorExplored
		}
		if err := out.AddNode(cfg.name, nodeName(n.ID), attrs); err != nil {
			return "", fmt.Errorf("export: dot node %d: %w", n.ID, err)
		}
	}

	// 4) Edges, each road once.
	for _, e := range roads(g) {
		attrs := map[string]string{"color": colorDefault}
		if pathEdge[[2]int{e.From, e.To}] {
			attrs["color"] = colorPath
			attrs["penwidth"] = "3"
		}
		if cfg.edgeLabels {
			attrs["label"] = strconv.Quote(strconv.FormatFloat(e.Weight, 'f', 1, 64))
		}
		if err := out.AddEdge(nodeName(e.From), nodeName(e.To), g.Directed(), attrs); err != nil {
			return "", fmt.Errorf("export: dot edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return out.String(), nil
}

// nodeName quotes ids so negative values stay valid DOT identifiers.
func nodeName(id int) string {
	return strconv.Quote(strconv.Itoa(id))
}

// roads returns every edge record once: on undirected graphs the mirror of
// each road is dropped. A self-loop appears twice in its adjacency list and
// is kept once per pair.
func roads(g *core.Graph) []*core.Edge {
	if g.Directed() {
		return g.Edges()
	}
	out := make([]*core.Edge, 0, g.EdgeCount()/2)
	loops := map[int]int{}
	for _, e := range g.Edges() {
		if e.From > e.To {
			continue
		}
		if e.From == e.To {
			loops[e.From]++
			if loops[e.From]%2 == 0 {
				continue
			}
		}
		out = append(out, e)
	}

	return out
}
