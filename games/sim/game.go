package sim

import (
	"fmt"
	"strings"

	"gamegraph/engine"
	"gamegraph/game"
	"gamegraph/searcher"
	"gamegraph/utils"
)

const Name = "sim"

// Game is the adapter traced into artifacts. Its states are the canonical
// states of its engine, and each option leads to exactly one canonical
// successor.
type Game struct {
	engine *engine.Engine
}

// New explores and solves the whole game.
func New(options ...engine.Option) (*Game, error) {
	e := engine.New(NewRules(), options...)
	if err := e.Explore(Start()); err != nil {
		return nil, fmt.Errorf("failed to explore %s: %w", Name, err)
	}
	if err := searcher.SolveAll(e); err != nil {
		return nil, fmt.Errorf("failed to solve %s: %w", Name, err)
	}
	return &Game{engine: e}, nil
}

func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Start is the uncoloured graph with red to move.
func Start() game.State {
	return game.NewState(game.PlayerOne, Edges)
}

func (g *Game) StartStates() []game.Start[game.State] {
	return []game.Start[game.State]{
		{State: Start(), Message: "Would you like to play a game of Sim?\n"},
	}
}

func (g *Game) details(state game.State) *engine.Details {
	d, ok := g.engine.Details(state)
	if !ok {
		panic(fmt.Sprintf("%s is not a canonical state", state))
	}
	return d
}

func (g *Game) Options(state game.State) []int {
	return utils.SortedKeys(g.details(state).Successors)
}

func (g *Game) Result(state game.State, move int) []game.Category[game.State] {
	return []game.Category[game.State]{
		{Name: "only", States: []game.State{g.details(state).Successors[move]}},
	}
}

// Display sets the rule of every coloured edge to its colour's line and
// announces the winner of a finished game.
func (g *Game) Display(state game.State) string {
	var sb strings.Builder
	sb.WriteString("#init#")
	for e := range Edges {
		if m := state.At(e); m != game.Empty {
			fmt.Fprintf(&sb, "[%d:#%c%d#]", e, colour(m), e)
		}
	}

	d := g.details(state)
	if !d.Terminal() {
		sb.WriteString("#display#")
		return sb.String()
	}
	if d.Winner != nil {
		fmt.Fprintf(&sb, "#%s_win#", colourName(d.Winner.Mark()))
	}
	sb.WriteString("#display_end#")
	return sb.String()
}

// Encode spells the player to move and every edge with the initial of its
// colour: e, r or b.
func (g *Game) Encode(state game.State) string {
	code := make([]byte, 0, Edges+1)
	code = append(code, colour(state.Player.Mark()))
	for e := range Edges {
		code = append(code, colour(state.At(e)))
	}
	return string(code)
}

// DisplayInput names an edge by its one-based vertices.
func (g *Game) DisplayInput(move int) string {
	e := EdgeAt(move)
	return fmt.Sprintf("%d %d", e[0]+1, e[1]+1)
}

func colour(m game.Mark) byte {
	return colourName(m)[0]
}

func colourName(m game.Mark) string {
	switch m {
	case game.MarkOne:
		return "red"
	case game.MarkTwo:
		return "blue"
	default:
		return "empty"
	}
}
