package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector("xo")
	c.Start()
	c.AddCanonical()
	c.AddCanonical()
	c.AddIsomorphismTest()
	c.AddExpansion()
	c.AddTerminal()
	c.AddSolved()
	c.AddSolved()
	c.AddSolved()

	summary := c.Complete()

	require.Equal(t, int64(2), summary.Canonical)
	require.Equal(t, int64(1), summary.Isomorphism)
	require.Equal(t, int64(1), summary.Expanded)
	require.Equal(t, int64(1), summary.Terminal)
	require.Equal(t, int64(3), summary.Solved)
	require.Equal(t, 2.0, testutil.ToFloat64(c.canonicalTotal))
	require.Equal(t, 3.0, testutil.ToFloat64(c.solvedTotal))

	count, err := testutil.GatherAndCount(c.Registry())
	require.NoError(t, err)
	require.Equal(t, 6, count)
}

func TestCollectorWriteTextfile(t *testing.T) {
	c := NewCollector("sim")
	c.Start()
	c.AddExpansion()
	c.Complete()
	path := filepath.Join(t.TempDir(), "run.prom")

	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `gamegraph_explorer_expansions_total{game="sim"} 1`)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start()
	c.AddCanonical()
	require.Equal(t, Summary{}, c.Complete())
}

func TestWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	w, err := NewWriter(dir)
	require.NoError(t, err)

	records := []StateRecord{
		{State: "........., player one to move", Player: "player one", Status: "in-progress", Value: 0, Optimal: 4, Successors: 9},
		{State: "111.22..., player two to move", Player: "player two", Status: "decided", Winner: "player one", Value: -1000, Optimal: -1},
	}
	require.NoError(t, w.WriteStates("xo", records))
	require.NoError(t, w.WriteSummary("xo", Summary{Canonical: 765}))

	f, err := os.Open(filepath.Join(dir, "xo_states.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "Header plus one row per record")
	require.Equal(t, []string{"state", "player", "status", "winner", "value", "optimal", "successors"}, rows[0])
	require.Equal(t, "-1000", rows[2][4])

	summary, err := os.ReadFile(filepath.Join(dir, "xo_summary.csv"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(summary), ",765,"))
}

func TestWriteRuns(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	records := []RunRecord{
		{ID: 0, Seed: 0, Summary: Summary{Canonical: 765, Terminal: 138}},
		{ID: 1, Seed: 7, Summary: Summary{Canonical: 765, Terminal: 138}},
	}
	require.NoError(t, w.WriteRuns("xo", records))

	f, err := os.Open(filepath.Join(dir, "xo_runs.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "7", rows[2][1])
	require.Equal(t, "765", rows[2][4])
}
