// Package gametest provides small games for tests.
package gametest

import (
	"gamegraph/game"
	"gamegraph/symmetry"
)

// Square is played on the four corners of a square. A player wins by owning
// two adjacent corners; a full board without a win is a draw. PlayerOne
// always wins on the third ply.
//
// The game has 7 canonical states under the square's 8 symmetries: the empty
// board, one opening, two replies (adjacent and opposite), a won position, a
// blocked position and a drawn full board.
type Square struct {
	structure *symmetry.Structure
}

var squareSides = [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

func NewSquare() *Square {
	group, err := symmetry.Closure(symmetry.Permutation{1, 2, 3, 0}, symmetry.Permutation{0, 3, 2, 1})
	if err != nil {
		panic(err)
	}
	structure, err := symmetry.NewStructure(4, squareSides, group)
	if err != nil {
		panic(err)
	}
	return &Square{structure: structure}
}

func (s *Square) Start() game.State {
	return game.NewState(game.PlayerOne, 4)
}

func (s *Square) Structure() *symmetry.Structure {
	return s.structure
}

func (s *Square) Moves(state game.State) []int {
	return state.Empty()
}

func (s *Square) Apply(state game.State, move int) game.State {
	return state.Play(move)
}

func (s *Square) Evaluate(state game.State, last int) (bool, *game.Player) {
	mover := state.Player.Other()
	for _, side := range squareSides {
		if side[0] != last && side[1] != last {
			continue
		}
		if state.At(side[0]) == mover.Mark() && state.At(side[1]) == mover.Mark() {
			return true, &mover
		}
	}
	if state.Count(game.Empty) == 0 {
		return true, nil
	}
	return false, nil
}
