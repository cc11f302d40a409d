package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanplan/config"
	"github.com/katalvlaran/urbanplan/dijkstra"
	"github.com/katalvlaran/urbanplan/planner"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestRoute_Text(t *testing.T) {
	out, _, err := execute(t, "route", "N1", "N10")
	require.NoError(t, err)
	assert.Contains(t, out, "Path: N1 -> N2 -> N4 -> N9 -> N10")
	assert.Contains(t, out, "Distance: 16 (4 hops)")
}

func TestRoute_DefaultsToConfiguredEndpoints(t *testing.T) {
	out, _, err := execute(t, "route", "--from", "N1", "--to", "N4")
	require.NoError(t, err)
	assert.Contains(t, out, "Path: N1 -> N2 -> N4")

	// An empty --to selects the last node.
	out, _, err = execute(t, "route")
	require.NoError(t, err)
	assert.Contains(t, out, "-> N10")
}

func TestRoute_BadArgs(t *testing.T) {
	_, _, err := execute(t, "route", "N1")
	assert.Error(t, err)

	_, _, err = execute(t, "route", "N1", "N99")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownNode)
}

func TestRoute_JSON(t *testing.T) {
	out, _, err := execute(t, "route", "N1", "N10", "-o", "json")
	require.NoError(t, err)

	var res dijkstra.PathResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(16), res.Distance)
}

func TestSubcommands_Text(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"corridor"}, "Distance: 16"},
		{[]string{"mst"}, "Total weight: 31"},
		{[]string{"budget"}, "Total benefit: 137"},
		{[]string{"budget", "--budget", "0"}, "Selected: (none)"},
		{[]string{"hull"}, "Area:"},
		{[]string{"sensors", "--sensors", "4"}, "Placement for N=4: (0,1) (1,3) (2,0) (3,2)"},
		{[]string{"sensors", "--sensors", "3"}, "No placement exists for N=3"},
		{[]string{"proximity"}, "Closest pair: Fire station Sitabuldi / Fire station Itwari"},
		{[]string{"equity"}, "Closest pair: Bhandewadi / Pardi"},
		{[]string{"maintenance"}, "total span: 40"},
		{[]string{"coverage"}, "threshold 25"},
	}
	for _, tc := range cases {
		t.Run(tc.args[0], func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestAll_JSON(t *testing.T) {
	out, _, err := execute(t, "all", "--output", "json")
	require.NoError(t, err)

	var report planner.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Empty(t, report.Failures)
	require.NotNil(t, report.Budget)
	assert.Equal(t, int64(137), report.Budget.TotalBenefit)
	require.NotNil(t, report.Maintenance)
	assert.Equal(t, int64(40), report.Maintenance.TotalSpan)
}

func TestAll_Text(t *testing.T) {
	out, stderr, err := execute(t, "all", "--threshold", "1", "--sensors", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "== route ==")
	assert.Contains(t, out, "No placement exists for N=2")
	assert.Empty(t, stderr)
}

func TestVerboseLogsTiming(t *testing.T) {
	_, stderr, err := execute(t, "mst", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "task solved")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "urbanplan.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("budget = 0\nsensors = 5\n"), 0o600))

	out, _, err := execute(t, "budget", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total benefit: 0")

	// Flags override the file.
	out, _, err = execute(t, "budget", "--config", cfgPath, "--budget", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Total benefit: 137")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "mst", "--output", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestDatasetFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	doc := "nodes:\n  - {id: A, name: Alpha}\n  - {id: B, name: Beta}\nedges:\n  - [A, B, 7]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := execute(t, "corridor", "--dataset", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Path: A -> B")
	assert.Contains(t, out, "Distance: 7")

	_, _, err = execute(t, "corridor", "--dataset", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoggerFromContext_Default(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))
}
