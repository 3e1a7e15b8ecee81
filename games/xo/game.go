package xo

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"gamegraph/engine"
	"gamegraph/game"
	"gamegraph/searcher"
	"gamegraph/utils"
)

const Name = "xo"

const (
	invitation = "Would you like to play Noughts and Crosses?"
	opening    = "I'll start."
	// startWeight repeats the empty board among the start states so the
	// player moves first as often as the opponent.
	startWeight = 9
)

// Game is the adapter traced into artifacts. Its states are raw boards with
// the player (crosses) to move, except boards the player just finished.
type Game struct {
	rules  *Rules
	engine *engine.Engine
}

// New explores and solves every position reachable from the start states.
func New(options ...engine.Option) (*Game, error) {
	rules := NewRules()
	e := engine.New(rules, options...)

	g := &Game{rules: rules, engine: e}
	var seeds []game.State
	for _, start := range g.StartStates() {
		seeds = append(seeds, start.State)
	}
	if err := e.Explore(seeds...); err != nil {
		return nil, fmt.Errorf("failed to explore %s: %w", Name, err)
	}
	if err := searcher.SolveAll(e); err != nil {
		return nil, fmt.Errorf("failed to solve %s: %w", Name, err)
	}
	return g, nil
}

func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Start is the empty board with crosses to move.
func Start() game.State {
	return game.NewState(game.PlayerOne, Size)
}

func (g *Game) StartStates() []game.Start[game.State] {
	starts := make([]game.Start[game.State], 0, startWeight+Size)
	for range startWeight {
		starts = append(starts, game.Start[game.State]{State: Start(), Message: invitation + "\n"})
	}
	for i := range Size {
		starts = append(starts, game.Start[game.State]{
			State:   Start().With(i, game.MarkTwo),
			Message: invitation + " " + opening + "\n",
		})
	}
	return starts
}

func (g *Game) Options(state game.State) []int {
	if decided, _ := Outcome(state); decided {
		return nil
	}
	return g.rules.Moves(state)
}

// Result plays the player's move, then every reply of the opponent, split by
// whether the solver rates the reply optimal. A reply that is never
// suboptimal lists the optimal replies in both categories, and a move that
// ends the game yields the finished board in both.
func (g *Game) Result(state game.State, move int) []game.Category[game.State] {
	played := g.rules.Apply(state, move)
	if decided, _ := Outcome(played); decided {
		return categories([]game.State{played}, []game.State{played})
	}

	best, _, err := searcher.OptimalMoves(g.engine, played)
	if err != nil {
		panic(fmt.Sprintf("%s after move %d from %s is not solved: %v", played, move, state, err))
	}
	var optimal, suboptimal []game.State
	for _, reply := range g.rules.Moves(played) {
		next := g.rules.Apply(played, reply)
		if utils.FindIndex(best, reply) >= 0 {
			optimal = append(optimal, next)
		} else {
			suboptimal = append(suboptimal, next)
		}
	}
	if len(suboptimal) == 0 {
		suboptimal = optimal
	}
	return categories(optimal, suboptimal)
}

func categories(optimal, suboptimal []game.State) []game.Category[game.State] {
	return []game.Category[game.State]{
		{Name: "optimal", States: optimal},
		{Name: "suboptimal", States: suboptimal},
	}
}

func (g *Game) Display(state game.State) string {
	var sb strings.Builder
	sb.WriteString("#init#")
	for i := range Size {
		switch state.At(i) {
		case game.MarkOne:
			fmt.Fprintf(&sb, "#x%d#", i+1)
		case game.MarkTwo:
			fmt.Fprintf(&sb, "#o%d#", i+1)
		}
	}

	decided, winner := Outcome(state)
	if !decided {
		sb.WriteString("#display#")
		return sb.String()
	}
	switch {
	case winner == nil:
		sb.WriteString("#draw#")
	case *winner == game.PlayerOne:
		sb.WriteString("#player_win#")
	default:
		sb.WriteString("#ai_win#")
	}
	sb.WriteString("#display_end#")
	return sb.String()
}

// Encode reads the player to move and the board as a ternary number and
// writes it in base 62. The leading player digit is nonzero, so codes never
// collide with the single digit move labels.
func (g *Game) Encode(state game.State) string {
	digits := make([]byte, 0, Size+1)
	digits = append(digits, byte('0'+state.Player.Mark()))
	for i := range Size {
		digits = append(digits, byte('0'+state.At(i)))
	}
	n, ok := new(big.Int).SetString(string(digits), 3)
	if !ok {
		panic(fmt.Sprintf("invalid board %s", state))
	}
	return n.Text(62)
}

func (g *Game) DisplayInput(move int) string {
	return strconv.Itoa(move + 1)
}
