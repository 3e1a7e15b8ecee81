package engine

import (
	"fmt"

	"gamegraph/game"
	"gamegraph/symmetry"
)

// Canonicalize returns the representative of the symmetry class of raw,
// registering raw as a new representative if no isomorphic state is known.
// The first state seen in a class becomes its representative, so the choice
// depends on discovery order.
func (e *Engine) Canonicalize(raw game.State) (game.State, error) {
	state, fp, found, err := e.find(raw)
	if err != nil {
		return game.State{}, err
	}
	if found {
		return state, nil
	}
	e.register(raw, fp)
	return raw, nil
}

// Find returns the representative and details of raw's class without
// registering anything.
func (e *Engine) Find(raw game.State) (game.State, *Details, error) {
	state, _, found, err := e.find(raw)
	if err != nil {
		return game.State{}, nil, err
	}
	if !found {
		return game.State{}, nil, fmt.Errorf("%w: %s", ErrUnknownState, raw)
	}
	return state, e.details[state], nil
}

// Fingerprint exposes the bucket key of a well-formed state.
func (e *Engine) Fingerprint(s game.State) symmetry.Fingerprint {
	return e.structure.Fingerprint(uint8(s.Player), s.Cells)
}

func (e *Engine) find(raw game.State) (game.State, symmetry.Fingerprint, bool, error) {
	if state, ok := e.canonical[raw]; ok {
		return state, 0, true, nil
	}
	if err := raw.Validate(e.structure.Size()); err != nil {
		return game.State{}, 0, false, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}

	fp := e.Fingerprint(raw)
	for _, candidate := range e.buckets[fp] {
		if candidate.Player != raw.Player {
			continue
		}
		e.metrics.AddIsomorphismTest()
		if e.structure.Isomorphic(raw.Cells, candidate.Cells) {
			e.canonical[raw] = candidate
			return candidate, fp, true, nil
		}
	}
	return game.State{}, fp, false, nil
}

func (e *Engine) register(state game.State, fp symmetry.Fingerprint) {
	e.canonical[state] = state
	e.buckets[fp] = append(e.buckets[fp], state)
	e.details[state] = newDetails()
	e.order = append(e.order, state)
	e.metrics.AddCanonical()
}
