package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulaye05/Smart-GPS/compare"
	"github.com/abdoulaye05/Smart-GPS/core"
	"github.com/abdoulaye05/Smart-GPS/dijkstra"
)

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestCompareTable(t *testing.T) {
	out, _, err := run(t, "compare", "--rows", "6", "--cols", "6", "--strict")
	require.NoError(t, err)

	assert.Contains(t, out, "ALGORITHM")
	for _, name := range []string{"astar", "bellman_ford", "dijkstra"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "mismatch")
}

func TestCompareCSV(t *testing.T) {
	out, _, err := run(t, "compare", "--rows", "3", "--cols", "3", "--engines", "dijkstra,astar", "-f", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "astar", rows[1][1])
	assert.Equal(t, "dijkstra", rows[2][1])
	assert.Equal(t, "8", rows[1][3])
	assert.Equal(t, rows[1][5], rows[2][5])
}

func TestCompareJSONWithRuns(t *testing.T) {
	out, _, err := run(t, "compare", "--rows", "4", "--cols", "4", "--runs", "3", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Target  int                        `json:"target"`
		Results map[string]json.RawMessage `json:"results"`
		Stats   []struct {
			Engine    string
			Runs      int
			Successes int
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 15, doc.Target)
	assert.Len(t, doc.Results, 3)
	require.Len(t, doc.Stats, 3)
	for _, st := range doc.Stats {
		assert.Equal(t, 3, st.Runs)
		assert.Equal(t, 3, st.Successes)
	}
}

func TestCompareErrors(t *testing.T) {
	_, _, err := run(t, "compare", "--format", "xml")
	assert.ErrorIs(t, err, ErrBadFormat)

	_, _, err = run(t, "compare", "--generator", "hexagon")
	assert.ErrorIs(t, err, ErrBadScenario)

	_, _, err = run(t, "compare", "--source", "12345")
	assert.Error(t, err)

	_, _, err = run(t, "compare", "--rows", "0")
	assert.Error(t, err)
}

func TestConfigWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 5\ncols: 5\n"), 0o600))

	out, _, err := run(t, "generate", "-c", path, "--rows", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "nodes=15 edges=44 "), out)
	assert.Contains(t, out, "components=1")
}

func TestGenerateCity(t *testing.T) {
	out, _, err := run(t, "generate", "--generator", "city", "--preset", "small")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=60 ")

	_, _, err = run(t, "generate", "--generator", "city", "--preset", "huge")
	assert.Error(t, err)
}

func TestDOT(t *testing.T) {
	out, _, err := run(t, "dot", "--rows", "3", "--cols", "3", "--positions")
	require.NoError(t, err)
	assert.Contains(t, out, "graph roads")
	assert.Contains(t, out, "penwidth")
	assert.Contains(t, out, "pos=")

	out, _, err = run(t, "dot", "--rows", "2", "--cols", "2", "--engine", "", "--name", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "graph plain")
	assert.NotContains(t, out, "penwidth")
}

func TestVerboseLogging(t *testing.T) {
	_, logs, err := run(t, "compare", "--rows", "3", "--cols", "3", "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"search finished"`)
	assert.Contains(t, logs, `"msg":"comparison done"`)

	_, logs, err = run(t, "compare", "--rows", "3", "--cols", "3")
	require.NoError(t, err)
	assert.NotContains(t, logs, "search finished")
	assert.Contains(t, logs, "comparison done")
}

func TestRoute(t *testing.T) {
	out, _, err := run(t, "route", "--rows", "3", "--cols", "3", "--engine", "astar")
	require.NoError(t, err)

	assert.Contains(t, out, "astar: cost=")
	assert.Contains(t, out, "path: (0,0) -> ")
	for _, mode := range []string{"car", "bike", "walk"} {
		assert.Contains(t, out, mode)
	}

	_, _, err = run(t, "route", "--engine", "bfs")
	assert.Error(t, err)
}

func TestPrintRoute(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(1, 2, core.WithWeight(1000))
	require.NoError(t, err)
	g.AddNode(3, 5, 5, core.WithLabel("island"))

	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithTarget(3))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, printRoute(&buf, g, res, 1, 3))
	assert.Contains(t, buf.String(), "no route from 1 to 3")

	res, err = dijkstra.Dijkstra(g, 1, dijkstra.WithTarget(2))
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, printRoute(&buf, g, res, 1, 2))
	// 1 km: car 15 s + 72 s, bike 8 s + 240 s, walk 5 s + 720 s.
	assert.Contains(t, buf.String(), "path: V1 -> V2")
	assert.Contains(t, buf.String(), "car   1m27s")
	assert.Contains(t, buf.String(), "bike  4m8s")
	assert.Contains(t, buf.String(), "walk  12m5s")
}

func TestScaleCSV(t *testing.T) {
	out, _, err := run(t, "scale", "--sizes", "20,40", "--runs", "2", "-f", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "size", rows[0][0])
	for _, row := range rows[1:4] {
		assert.Equal(t, "20", row[1])
		assert.Equal(t, "2", row[5])
	}
	assert.Equal(t, "40", rows[6][1])
}

func TestScaleTable(t *testing.T) {
	out, _, err := run(t, "scale", "--sizes", "30,60", "--runs", "1", "--engines", "dijkstra,astar")
	require.NoError(t, err)
	assert.Contains(t, out, "NODES")
	assert.Contains(t, out, "exponent dijkstra:")
	assert.Contains(t, out, "exponent astar:")
	assert.NotContains(t, out, "bellman_ford")
}

func TestScaleErrors(t *testing.T) {
	_, _, err := run(t, "scale", "--sizes", "10,0")
	assert.ErrorIs(t, err, compare.ErrBadSizes)

	_, _, err = run(t, "scale", "--runs", "0", "--sizes", "10")
	assert.ErrorIs(t, err, compare.ErrBadRuns)

	_, _, err = run(t, "scale", "--sizes", "10", "--degree", "0")
	assert.ErrorIs(t, err, ErrBadScenario)

	_, _, err = run(t, "scale", "--sizes", "10", "-f", "json")
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestUrbanSweepEndpoints(t *testing.T) {
	network := urbanSweep(7, 4, 500)
	g, s, tgt, err := network(25)
	require.NoError(t, err)
	assert.Equal(t, 25, g.NodeCount())
	assert.NotEqual(t, s, tgt)
	assert.Len(t, g.Components(), 1)

	_, s2, t2, err := network(25)
	require.NoError(t, err)
	assert.Equal(t, s, s2)
	assert.Equal(t, tgt, t2)
}
