package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Paths returns the grammar and replies file paths of a run.
func Paths(dir, name string) (grammar string, replies string) {
	return filepath.Join(dir, name+"_grammar.json"), filepath.Join(dir, name+"_replies.json")
}

// Write stores both artifacts under dir. The files are written concurrently;
// the first failure is returned.
func Write(dir, name string, grammar Grammar, replies Replies) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	grammarPath, repliesPath := Paths(dir, name)

	var g errgroup.Group
	g.Go(func() error {
		return writeJSON(grammarPath, grammar)
	})
	g.Go(func() error {
		return writeJSON(repliesPath, replies)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("wrote %d rules to %s and %d replies to %s", len(grammar), grammarPath, len(replies), repliesPath)
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
