package cli

import (
	"fmt"

	"gamegraph/artifact"
	"gamegraph/config"
	"gamegraph/engine"
	"gamegraph/experiments"
	"gamegraph/game"
	"gamegraph/metrics"
	"gamegraph/searcher"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGenerateCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the grammar and replies files of a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.load(cmd)
			if err != nil {
				return err
			}
			collector := metrics.NewCollector(cfg.Game)
			p, err := prepare(cfg, collector)
			if err != nil {
				return err
			}

			graph, err := p.trace()
			if err != nil {
				return fmt.Errorf("failed to trace %s: %w", cfg.Game, err)
			}
			grammar := artifact.BuildGrammar(p.grammar, graph)
			replies := artifact.BuildReplies(graph)
			if err := artifact.Write(cfg.OutputDir, cfg.ArtifactName(), grammar, replies); err != nil {
				return err
			}
			return finish(cfg, collector, p)
		},
	}
}

func newSolveCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Solve a game and print its value and principal variation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.load(cmd)
			if err != nil {
				return err
			}
			collector := metrics.NewCollector(cfg.Game)
			p, err := prepare(cfg, collector)
			if err != nil {
				return err
			}
			if p.engine == nil {
				return fmt.Errorf("%w: %s", ErrNotSolvable, cfg.Game)
			}

			value, err := searcher.Solve(p.engine, p.start)
			if err != nil {
				return err
			}
			line, err := searcher.PrincipalVariation(p.engine, p.start)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d canonical states, value %d\n", cfg.Game, p.engine.Len(), value)
			for ply, state := range line {
				d, _ := p.engine.Details(state)
				fmt.Fprintf(out, "%3d  %s  %5d  %s\n", ply, state, d.Value, d.Status)
			}
			return finish(cfg, collector, p)
		},
	}
}

func newMatchCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "match <input>",
		Short: "Show which reply the text generator would pick for an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd)
			if err != nil {
				return err
			}
			p, err := prepare(cfg, metrics.NewDummyCollector())
			if err != nil {
				return err
			}
			graph, err := p.trace()
			if err != nil {
				return fmt.Errorf("failed to trace %s: %w", cfg.Game, err)
			}

			reply, ok := artifact.BuildReplies(graph).Match(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no reply")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", reply.Pattern, reply.Action)
			return nil
		},
	}
}

func newExperimentCommand(s *settings) *cobra.Command {
	var runs int
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Explore and solve a game under several frontier orders and compare the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.load(cmd)
			if err != nil {
				return err
			}
			if runs < 1 {
				return fmt.Errorf("%w: runs must be positive, got %d", config.ErrInvalidConfig, runs)
			}
			e, err := lookup(cfg.Game)
			if err != nil {
				return err
			}
			prepare := func(options ...engine.Option) (*engine.Engine, game.State, error) {
				p, err := e.prepare(cfg, options...)
				if err != nil {
					return nil, game.State{}, err
				}
				if p.engine == nil {
					return nil, game.State{}, fmt.Errorf("%w: %s", ErrNotSolvable, cfg.Game)
				}
				return p.engine, p.start, nil
			}

			var writer *metrics.Writer
			if cfg.ReportDir != "" {
				writer, err = metrics.NewWriter(cfg.ReportDir)
				if err != nil {
					return err
				}
			}
			options := []engine.Option{engine.WithWinMagnitude(game.Value(cfg.WinMagnitude))}
			records, err := experiments.Run(cfg.ArtifactName(), prepare, experiments.Seeds(runs), options, writer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range records {
				fmt.Fprintf(out, "%3d  seed %-4d  %d canonical states  %d isomorphism tests  value %d  %s\n",
					r.ID, r.Seed, r.Canonical, r.Isomorphism, r.Value, r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 4, "number of frontier orders, the first being LIFO")
	return cmd
}

func newGamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the available games",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, e := range registry {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", e.name, e.description)
			}
		},
	}
}

// finish logs the run summary and writes the optional metrics and reports.
func finish(cfg config.Config, collector *metrics.PrometheusCollector, p *prepared) error {
	summary := collector.Complete()
	log.Info().Msgf("%s: %d canonical states, %d isomorphism tests, %d expanded, %d terminal, %d solved in %s",
		cfg.Game, summary.Canonical, summary.Isomorphism, summary.Expanded, summary.Terminal, summary.Solved, summary.Duration)

	if cfg.MetricsFile != "" {
		if err := collector.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	if cfg.ReportDir != "" && p.engine != nil {
		w, err := metrics.NewWriter(cfg.ReportDir)
		if err != nil {
			return err
		}
		if err := w.WriteStates(cfg.ArtifactName(), records(p)); err != nil {
			return err
		}
		if err := w.WriteSummary(cfg.ArtifactName(), summary); err != nil {
			return err
		}
	}
	return nil
}

func records(p *prepared) []metrics.StateRecord {
	states := p.engine.States()
	out := make([]metrics.StateRecord, 0, len(states))
	for _, state := range states {
		d, _ := p.engine.Details(state)
		record := metrics.StateRecord{
			State:      state.String(),
			Player:     state.Player.String(),
			Status:     d.Status.String(),
			Value:      int(d.Value),
			Optimal:    d.Optimal,
			Successors: len(d.Successors),
		}
		if d.Winner != nil {
			record.Winner = d.Winner.String()
		}
		out = append(out, record)
	}
	return out
}
