package searcher

import (
	"fmt"

	"gamegraph/engine"
	"gamegraph/game"
)

// PrincipalVariation follows optimal moves from root's class to a terminal
// state and returns the canonical states visited, root's class first.
func PrincipalVariation(e *engine.Engine, root game.State) ([]game.State, error) {
	state, d, err := e.Find(root)
	if err != nil {
		return nil, err
	}

	line := []game.State{state}
	for !d.Terminal() {
		if !d.Solved {
			return nil, fmt.Errorf("%w: %s", ErrUnsolved, state)
		}
		state = d.Successors[d.Optimal]
		d, _ = e.Details(state)
		line = append(line, state)
	}
	return line, nil
}

// OptimalMoves returns the legal moves of a raw, in-progress state whose
// successors have the mover's best value, with that value. Unlike a state's
// recorded optimal move, it keeps every tied move and uses raw's own board
// coordinates.
func OptimalMoves(e *engine.Engine, raw game.State) ([]int, game.Value, error) {
	rules := e.Rules()
	moves := rules.Moves(raw)
	if len(moves) == 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoMoves, raw)
	}

	values := make([]game.Value, len(moves))
	for i, move := range moves {
		_, d, err := e.Find(rules.Apply(raw, move))
		if err != nil {
			return nil, 0, err
		}
		if !d.Solved {
			return nil, 0, fmt.Errorf("%w: move %d from %s", ErrUnsolved, move, raw)
		}
		values[i] = d.Value
	}

	best := values[0]
	for _, v := range values[1:] {
		if raw.Player.Better(v, best) {
			best = v
		}
	}
	var optimal []int
	for i, move := range moves {
		if values[i] == best {
			optimal = append(optimal, move)
		}
	}
	return optimal, best, nil
}
