// Package cli is the gamegraph command line.
package cli

import (
	"fmt"

	"gamegraph/config"
	"gamegraph/engine"
	"gamegraph/game"
	"gamegraph/metrics"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type settings struct {
	configFile string
	envFile    string
}

func NewRootCommand() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:          "gamegraph",
		Short:        "Explore, solve and export two-player board games as text generator grammars",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.configFile, "config", "", "YAML config file")
	flags.StringVar(&s.envFile, "env-file", ".env", "file of GAMEGRAPH_* variables, skipped if missing")
	flags.StringP("game", "g", "", "game to run")
	flags.StringP("output", "o", "", "directory for the grammar and replies files")
	flags.String("name", "", "artifact file name prefix (default: the game name)")
	flags.Uint64("seed", 0, "explore in a seeded random order when nonzero")
	flags.Int("win-magnitude", 0, "terminal value of a won game")
	flags.String("log-level", "", "trace, debug, info, warn or error")
	flags.String("metrics-file", "", "write Prometheus metrics to this file")
	flags.String("report-dir", "", "write CSV solution reports to this directory")
	flags.Int("circle-size", 0, "positions of the circle game")

	root.AddCommand(
		newGenerateCommand(s),
		newSolveCommand(s),
		newMatchCommand(s),
		newExperimentCommand(s),
		newGamesCommand(),
	)
	return root
}

// load reads the configuration, applies the flags that were set and starts
// logging.
func (s *settings) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(s.configFile, s.envFile)
	if err != nil {
		return cfg, err
	}
	if err := applyFlags(cmd.Flags(), &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	runID, err := setupLogging(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return cfg, err
	}
	log.Debug().Msgf("run %s with config %+v", runID, cfg)
	return cfg, nil
}

func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	texts := map[string]*string{
		"game":         &cfg.Game,
		"output":       &cfg.OutputDir,
		"name":         &cfg.Name,
		"log-level":    &cfg.LogLevel,
		"metrics-file": &cfg.MetricsFile,
		"report-dir":   &cfg.ReportDir,
	}
	for name, field := range texts {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*field = v
	}

	ints := map[string]*int{
		"win-magnitude": &cfg.WinMagnitude,
		"circle-size":   &cfg.CircleSize,
	}
	for name, field := range ints {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return err
		}
		*field = v
	}

	if flags.Changed("seed") {
		seed, err := flags.GetUint64("seed")
		if err != nil {
			return err
		}
		cfg.ShuffleSeed = seed
	}
	return nil
}

// prepare builds the configured game, exploring and solving it when it is
// backed by the engine.
func prepare(cfg config.Config, collector metrics.Collector) (*prepared, error) {
	e, err := lookup(cfg.Game)
	if err != nil {
		return nil, err
	}

	options := []engine.Option{
		engine.WithCollector(collector),
		engine.WithWinMagnitude(game.Value(cfg.WinMagnitude)),
	}
	if cfg.ShuffleSeed != 0 {
		options = append(options, engine.WithShuffle(cfg.ShuffleSeed))
	}

	collector.Start()
	p, err := e.prepare(cfg, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare %s: %w", cfg.Game, err)
	}
	return p, nil
}
