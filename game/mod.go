package game

import "gamegraph/symmetry"

// NoMove marks the absence of a move (terminal states have no optimal move).
const NoMove = -1

// Rules is what the canonical engine needs from a game whose positions are
// boards of marks. Moves are position indices.
type Rules interface {
	// Structure describes the positions and the symmetry group of the board.
	Structure() *symmetry.Structure
	// Moves returns the legal moves of a non-terminal state in ascending order.
	Moves(State) []int
	// Apply plays a move and passes the turn. The input state is not modified.
	Apply(State, int) State
	// Evaluate classifies a state using only the move that produced it, which
	// is enough because a win can only be completed by the last placed mark.
	Evaluate(state State, last int) (decided bool, winner *Player)
}

// Start is a configured start state with the message introducing it.
type Start[S any] struct {
	State   S
	Message string
}

// Category is a named group of states resulting from one player input
// (e.g. "optimal" and "suboptimal" replies).
type Category[S any] struct {
	Name   string
	States []S
}

// Game is the contract a game adapter satisfies to be traced and serialized.
// S is the adapter's state type and I its input type.
type Game[S comparable, I comparable] interface {
	StartStates() []Start[S]
	// Options returns the valid inputs for a state, empty when it is terminal.
	Options(S) []I
	// Result returns the states reachable from a state+input, grouped by
	// category in a stable order.
	Result(S, I) []Category[S]
	// Display returns the grammar fragment rendering a state.
	Display(S) string
	// Encode returns a string uniquely identifying a state. It must be a
	// single word (letters, digits, underscore).
	Encode(S) string
	// DisplayInput returns the label a player types to choose an input.
	DisplayInput(I) string
	// Grammar returns the game's partial rule set.
	Grammar() map[string][]string
}
