package searcher

import (
	"errors"
	"fmt"

	"gamegraph/engine"
	"gamegraph/game"
	"gamegraph/utils"

	"github.com/rs/zerolog/log"
)

type frame struct {
	state   game.State
	details *engine.Details
	moves   []int // Successor moves, ascending
	next    int   // Index of the next move to visit
}

func newFrame(state game.State, details *engine.Details) *frame {
	return &frame{
		state:   state,
		details: details,
		moves:   utils.SortedKeys(details.Successors),
	}
}

// Solve returns the value of root's class, solving every state below it that
// has no value yet. Every state reachable from root must have been explored.
//
// The optimal move of a state is the first move, in ascending order, whose
// successor has the optimal value; other tied moves are not recorded.
//
// The traversal is an explicit post-order walk, so deep games do not grow the
// goroutine stack, and reaching a state that is still on the walk's path is
// reported as ErrCycle.
func Solve(e *engine.Engine, root game.State) (game.Value, error) {
	state, d, err := e.Find(root)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownState) {
			return 0, fmt.Errorf("%w: %w", ErrUnexplored, err)
		}
		return 0, err
	}
	if d.Solved {
		return d.Value, nil
	}
	if err := checkExplored(state, d); err != nil {
		return 0, err
	}

	onPath := map[game.State]bool{state: true}
	stack := []*frame{newFrame(state, d)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.moves) {
			child := top.details.Successors[top.moves[top.next]]
			top.next++

			cd, ok := e.Details(child)
			if !ok {
				return 0, fmt.Errorf("%w: successor %s is not registered", ErrUnexplored, child)
			}
			if cd.Solved {
				continue
			}
			if onPath[child] {
				return 0, fmt.Errorf("%w: %s is its own descendant", ErrCycle, child)
			}
			if err := checkExplored(child, cd); err != nil {
				return 0, err
			}
			onPath[child] = true
			stack = append(stack, newFrame(child, cd))
			continue
		}

		// All successors solved
		if err := settle(e, top); err != nil {
			return 0, err
		}
		delete(onPath, top.state)
		stack = stack[:len(stack)-1]
	}

	return d.Value, nil
}

// SolveAll solves every registered canonical state.
func SolveAll(e *engine.Engine) error {
	for _, state := range e.States() {
		if _, err := Solve(e, state); err != nil {
			return err
		}
	}
	log.Info().Msgf("solved %d canonical states", e.Len())
	return nil
}

func checkExplored(state game.State, d *engine.Details) error {
	if !d.Expanded || d.Status != engine.InProgress {
		return fmt.Errorf("%w: %s is %s and expanded=%t", ErrUnexplored, state, d.Status, d.Expanded)
	}
	return nil
}

func settle(e *engine.Engine, f *frame) error {
	if len(f.moves) == 0 {
		return fmt.Errorf("%w: %s", ErrNoMoves, f.state)
	}

	player := f.state.Player
	best, optimal := game.Value(0), game.NoMove
	for i, move := range f.moves {
		sd, _ := e.Details(f.details.Successors[move])
		if i == 0 || player.Better(sd.Value, best) {
			best, optimal = sd.Value, move
		}
	}

	value, err := best.Decay()
	if err != nil {
		return fmt.Errorf("solving %s: %w", f.state, err)
	}
	f.details.SetValue(value, optimal)
	e.Collector().AddSolved()
	return nil
}
