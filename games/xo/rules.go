// Package xo is noughts and crosses on a 3x3 grid. The player (crosses,
// PlayerOne) plays against a solver-backed opponent (noughts, PlayerTwo).
package xo

import (
	"gamegraph/game"
	"gamegraph/symmetry"
	"gamegraph/utils"
)

// Size is the number of squares, numbered row by row from 0.
const Size = 9

var lines = [][]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // Rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // Columns
	{0, 4, 8}, {2, 4, 6}, // Diagonals
}

var (
	rotate = symmetry.Permutation{6, 3, 0, 7, 4, 1, 8, 5, 2}
	mirror = symmetry.Permutation{2, 1, 0, 5, 4, 3, 8, 7, 6}
)

// Rules are the moves and win condition of the grid under its eight
// symmetries.
type Rules struct {
	structure *symmetry.Structure
}

func NewRules() *Rules {
	group, err := symmetry.Closure(rotate, mirror)
	if err != nil {
		panic(err)
	}
	structure, err := symmetry.NewStructure(Size, lines, group)
	if err != nil {
		panic(err)
	}
	return &Rules{structure: structure}
}

func (r *Rules) Structure() *symmetry.Structure {
	return r.structure
}

func (r *Rules) Moves(state game.State) []int {
	return state.Empty()
}

func (r *Rules) Apply(state game.State, move int) game.State {
	return state.Play(move)
}

// Evaluate only checks the lines through the last square played.
func (r *Rules) Evaluate(state game.State, last int) (bool, *game.Player) {
	mover := state.Player.Other()
	for _, line := range lines {
		if utils.FindIndex(line, last) < 0 {
			continue
		}
		if owns(state, line, mover.Mark()) {
			return true, &mover
		}
	}
	if state.Count(game.Empty) == 0 {
		return true, nil
	}
	return false, nil
}

// Outcome classifies a state without knowing the last move.
func Outcome(state game.State) (decided bool, winner *game.Player) {
	for _, line := range lines {
		mark := state.At(line[0])
		if mark != game.Empty && owns(state, line, mark) {
			w := mark.Owner()
			return true, &w
		}
	}
	return state.Count(game.Empty) == 0, nil
}

func owns(state game.State, line []int, mark game.Mark) bool {
	for _, pos := range line {
		if state.At(pos) != mark {
			return false
		}
	}
	return true
}
