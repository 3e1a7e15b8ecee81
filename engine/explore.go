package engine

import (
	"fmt"

	"gamegraph/game"
	"gamegraph/meta"

	"github.com/rs/zerolog/log"
)

// Explore expands every canonical state reachable from the seeds exactly
// once. Terminal states are classified, and given their value, on discovery.
// Seeds are assumed to be in progress unless already classified.
// Explore may be called again with new seeds; expanded states are not
// revisited.
func (e *Engine) Explore(seeds ...game.State) error {
	f := newFrontier(e.rng)
	for _, seed := range seeds {
		state, err := e.Canonicalize(seed)
		if err != nil {
			return fmt.Errorf("canonicalizing seed: %w", err)
		}
		d := e.details[state]
		if d.Status == Unknown {
			d.Status = InProgress
		}
		if !d.Expanded {
			f.push(state)
		}
	}

	expansions := 0
	for f.len() > 0 {
		state := f.pop()
		d := e.details[state]
		if d.Expanded { // Duplicate seed
			continue
		}
		d.Expanded = true
		e.metrics.AddExpansion()
		expansions++
		if expansions%meta.ProgressInterval == 0 {
			log.Debug().Msgf("expanded %d states, %d pending, %d registered", expansions, f.len(), len(e.order))
		}

		if d.Status != InProgress {
			continue
		}
		if err := e.expand(state, d, f); err != nil {
			return err
		}
	}

	log.Info().Msgf("explored %d canonical states (%d registered)", expansions, len(e.order))
	return nil
}

func (e *Engine) expand(state game.State, d *Details, f *frontier) error {
	moves := e.rules.Moves(state)
	d.Successors = make(map[int]game.State, len(moves))
	for _, move := range moves {
		if _, ok := d.Successors[move]; ok {
			return fmt.Errorf("%w: move %d from %s", ErrDuplicateMove, move, state)
		}

		next := e.rules.Apply(state, move)
		successor, err := e.Canonicalize(next)
		if err != nil {
			return fmt.Errorf("expanding %s with move %d: %w", state, move, err)
		}
		d.Successors[move] = successor

		sd := e.details[successor]
		if sd.Status == Unknown { // Newly discovered
			e.classify(next, move, sd)
			f.push(successor)
		}
	}
	return nil
}

// classify uses the raw successor and the raw move, since the move's index is
// only meaningful on the board it was played on.
func (e *Engine) classify(raw game.State, last int, d *Details) {
	decided, winner := e.rules.Evaluate(raw, last)
	if !decided {
		d.Status = InProgress
		return
	}

	d.Status = Decided
	d.Winner = winner
	value := game.Value(0)
	if winner != nil {
		value = winner.WinValue(e.magnitude)
	}
	d.SetValue(value, game.NoMove)
	e.metrics.AddTerminal()
}
