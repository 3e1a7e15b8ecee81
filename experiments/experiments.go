// Package experiments explores and solves a game under several frontier
// orders and checks that the canonical state space and the start value agree.
package experiments

import (
	"errors"
	"fmt"
	"runtime"

	"gamegraph/engine"
	"gamegraph/game"
	"gamegraph/metrics"
	"gamegraph/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrOrderDependent = errors.New("result depends on the exploration order")

// Prepare explores and solves a game with the given engine options and
// returns the engine with the start state of the game.
type Prepare func(options ...engine.Option) (*engine.Engine, game.State, error)

// Seeds returns n frontier seeds. The first is 0, the LIFO order.
func Seeds(n int) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = uint64(i)
	}
	return seeds
}

// Run prepares the game once per seed and stores a run record for each when
// writer is not nil. Runs are independent and execute concurrently.
func Run(name string, prepare Prepare, seeds []uint64, options []engine.Option, writer *metrics.Writer) ([]metrics.RunRecord, error) {
	records := make([]metrics.RunRecord, len(seeds))

	log.Info().Msgf("starting %s experiment with %d runs...", name, len(seeds))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, seed := range seeds {
		g.Go(func() error {
			record, err := runOnce(name, prepare, seed, options)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			record.ID = i
			records[i] = record
			log.Info().Msgf("finished run %d of %d: seed %d, %d canonical states, value %d in %s",
				i+1, len(seeds), seed, record.Canonical, record.Value, record.Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := compare(records); err != nil {
		return records, err
	}

	if writer != nil {
		err := writer.WriteRuns(name, records)
		if err != nil {
			return records, err
		}
		log.Info().Msg("stored run records")
	}
	return records, nil
}

func runOnce(name string, prepare Prepare, seed uint64, options []engine.Option) (metrics.RunRecord, error) {
	collector := metrics.NewCollector(name)
	all := append([]engine.Option{}, options...)
	all = append(all, engine.WithCollector(collector))
	if seed != 0 {
		all = append(all, engine.WithShuffle(seed))
	}

	collector.Start()
	e, start, err := prepare(all...)
	if err != nil {
		return metrics.RunRecord{}, err
	}
	value, err := searcher.Solve(e, start)
	if err != nil {
		return metrics.RunRecord{}, err
	}

	return metrics.RunRecord{
		Seed:    seed,
		Value:   int(value),
		Summary: collector.Complete(),
	}, nil
}

// compare checks every run against the first. Isomorphism test counts and
// durations are allowed to differ.
func compare(records []metrics.RunRecord) error {
	if len(records) == 0 {
		return nil
	}
	first := records[0]
	for _, r := range records[1:] {
		switch {
		case r.Canonical != first.Canonical:
			return fmt.Errorf("%w: seed %d registered %d canonical states, seed %d registered %d",
				ErrOrderDependent, first.Seed, first.Canonical, r.Seed, r.Canonical)
		case r.Terminal != first.Terminal:
			return fmt.Errorf("%w: seed %d found %d decided states, seed %d found %d",
				ErrOrderDependent, first.Seed, first.Terminal, r.Seed, r.Terminal)
		case r.Value != first.Value:
			return fmt.Errorf("%w: seed %d valued the start %d, seed %d valued it %d",
				ErrOrderDependent, first.Seed, first.Value, r.Seed, r.Value)
		}
	}
	return nil
}
