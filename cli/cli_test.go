package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	root.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "absent.env")))
	var out, logs bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.Execute()
	return out.String(), err
}

func TestGames(t *testing.T) {
	out, err := run(t, "games")

	require.NoError(t, err)
	for _, name := range []string{"xo", "sim", "circle"} {
		require.Contains(t, out, name)
	}
}

func TestGenerate(t *testing.T) {
	t.Run("circle artifacts", func(t *testing.T) {
		dir := t.TempDir()

		_, err := run(t, "generate", "--game", "circle", "--circle-size", "12", "--output", dir, "--name", "ring")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "ring_replies.json"))
		require.NoError(t, err)
		var replies map[string]string
		require.NoError(t, json.Unmarshal(data, &replies))
		require.Len(t, replies, 2*12+1)

		data, err = os.ReadFile(filepath.Join(dir, "ring_grammar.json"))
		require.NoError(t, err)
		require.Contains(t, string(data), `"*11"`)
	})

	t.Run("xo artifacts with report and metrics", func(t *testing.T) {
		dir := t.TempDir()
		reports := filepath.Join(dir, "reports")
		metricsFile := filepath.Join(dir, "xo.prom")

		_, err := run(t, "generate", "--game", "xo", "--output", dir,
			"--report-dir", reports, "--metrics-file", metricsFile, "--seed", "42")
		require.NoError(t, err)

		for _, name := range []string{"xo_grammar.json", "xo_replies.json", "reports/xo_states.csv", "reports/xo_summary.csv"} {
			require.FileExists(t, filepath.Join(dir, name))
		}
		data, err := os.ReadFile(metricsFile)
		require.NoError(t, err)
		require.Contains(t, string(data), `gamegraph_explorer_expansions_total{game="xo"}`)
	})

	t.Run("unknown games fail", func(t *testing.T) {
		_, err := run(t, "generate", "--game", "chess", "--output", t.TempDir())

		require.ErrorIs(t, err, ErrUnknownGame)
	})

	t.Run("invalid settings fail before any work", func(t *testing.T) {
		_, err := run(t, "generate", "--game", "xo", "--win-magnitude", "1")

		require.Error(t, err)
	})
}

func TestSolve(t *testing.T) {
	t.Run("noughts and crosses is a draw", func(t *testing.T) {
		out, err := run(t, "solve", "--game", "xo")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Contains(t, lines[0], "value 0")
		require.Len(t, lines, 1+10, "Header and ten plies of a drawn game")
		require.Contains(t, lines[len(lines)-1], "decided")
	})

	t.Run("a small magnitude is reported", func(t *testing.T) {
		_, err := run(t, "solve", "--game", "xo", "--win-magnitude", "5")

		require.Error(t, err)
	})

	t.Run("cyclic games are not solvable", func(t *testing.T) {
		_, err := run(t, "solve", "--game", "circle")

		require.ErrorIs(t, err, ErrNotSolvable)
	})
}

func TestMatch(t *testing.T) {
	out, err := run(t, "match", "--game", "circle", "3 forward")

	require.NoError(t, err)
	require.Contains(t, out, "{unlisted}[only:#*4#]#result#")
}

func TestExperiment(t *testing.T) {
	t.Run("orders agree on noughts and crosses", func(t *testing.T) {
		reports := t.TempDir()

		out, err := run(t, "experiment", "--game", "xo", "--runs", "2", "--report-dir", reports)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			require.Contains(t, line, "value 0")
		}
		require.FileExists(t, filepath.Join(reports, "xo_runs.csv"))
	})

	t.Run("cyclic games are not solvable", func(t *testing.T) {
		_, err := run(t, "experiment", "--game", "circle", "--runs", "1")

		require.ErrorIs(t, err, ErrNotSolvable)
	})

	t.Run("runs must be positive", func(t *testing.T) {
		_, err := run(t, "experiment", "--game", "xo", "--runs", "0")

		require.Error(t, err)
	})
}
