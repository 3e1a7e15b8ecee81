package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StateRecord is one row of the solution report.
type StateRecord struct {
	State      string
	Player     string
	Status     string
	Winner     string // "" if none
	Value      int
	Optimal    int // -1 if none
	Successors int
}

// RunRecord is one exploration order of an experiment.
type RunRecord struct {
	ID    int
	Seed  uint64 // 0 if the frontier was LIFO
	Value int    // Value of the start state
	Summary
}

type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteStates(name string, records []StateRecord) error {
	path := filepath.Join(w.baseDir, name+"_states.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create state records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"state", "player", "status", "winner", "value", "optimal", "successors"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write state records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.State,
			record.Player,
			record.Status,
			record.Winner,
			strconv.Itoa(record.Value),
			strconv.Itoa(record.Optimal),
			strconv.Itoa(record.Successors),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write state record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush state records: %w", err)
	}
	return nil
}

func (w *Writer) WriteSummary(name string, summary Summary) error {
	path := filepath.Join(w.baseDir, name+"_summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	rows := [][]string{
		{"start_time", "duration", "canonical", "isomorphism_tests", "expanded", "terminal", "solved"},
		{
			summary.StartTime.Format(time.RFC3339),
			summary.Duration.String(),
			strconv.FormatInt(summary.Canonical, 10),
			strconv.FormatInt(summary.Isomorphism, 10),
			strconv.FormatInt(summary.Expanded, 10),
			strconv.FormatInt(summary.Terminal, 10),
			strconv.FormatInt(summary.Solved, 10),
		},
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func (w *Writer) WriteRuns(name string, records []RunRecord) error {
	path := filepath.Join(w.baseDir, name+"_runs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "seed", "value", "duration", "canonical", "isomorphism_tests", "expanded", "terminal", "solved"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Value),
			record.Duration.String(),
			strconv.FormatInt(record.Canonical, 10),
			strconv.FormatInt(record.Isomorphism, 10),
			strconv.FormatInt(record.Expanded, 10),
			strconv.FormatInt(record.Terminal, 10),
			strconv.FormatInt(record.Solved, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush run records: %w", err)
	}
	return nil
}
