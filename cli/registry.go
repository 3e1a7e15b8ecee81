package cli

import (
	"errors"
	"fmt"
	"strings"

	"gamegraph/config"
	"gamegraph/engine"
	"gamegraph/game"
	"gamegraph/games/circle"
	"gamegraph/games/sim"
	"gamegraph/games/xo"
	"gamegraph/utils"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrNotSolvable = errors.New("game is not solved by the engine")
)

// prepared is a game ready to be traced. Games backed by the canonical engine
// also carry it, explored and solved, with their start state.
type prepared struct {
	trace   func() (*engine.Graph, error)
	grammar map[string][]string
	engine  *engine.Engine
	start   game.State
}

type entry struct {
	name        string
	description string
	prepare     func(cfg config.Config, options ...engine.Option) (*prepared, error)
}

var registry = []entry{
	{
		name:        xo.Name,
		description: "noughts and crosses against a perfect opponent that blunders one time in thirty",
		prepare: func(_ config.Config, options ...engine.Option) (*prepared, error) {
			g, err := xo.New(options...)
			if err != nil {
				return nil, err
			}
			return &prepared{
				trace:   func() (*engine.Graph, error) { return engine.Trace[game.State, int](g) },
				grammar: g.Grammar(),
				engine:  g.Engine(),
				start:   xo.Start(),
			}, nil
		},
	},
	{
		name:        sim.Name,
		description: "Sim on the complete graph K6, both sides played by the reader",
		prepare: func(_ config.Config, options ...engine.Option) (*prepared, error) {
			g, err := sim.New(options...)
			if err != nil {
				return nil, err
			}
			return &prepared{
				trace:   func() (*engine.Graph, error) { return engine.Trace[game.State, int](g) },
				grammar: g.Grammar(),
				engine:  g.Engine(),
				start:   sim.Start(),
			}, nil
		},
	},
	{
		name:        circle.Name,
		description: "a walk around a circle, for checking reply ordering",
		prepare: func(cfg config.Config, _ ...engine.Option) (*prepared, error) {
			c, err := circle.New(cfg.CircleSize)
			if err != nil {
				return nil, err
			}
			return &prepared{
				trace:   func() (*engine.Graph, error) { return engine.Trace[int, circle.Step](c) },
				grammar: c.Grammar(),
			}, nil
		},
	},
}

func names() []string {
	all := make([]string, len(registry))
	for i, e := range registry {
		all[i] = e.name
	}
	return all
}

func lookup(name string) (entry, error) {
	i := utils.FindIndex(names(), name)
	if i < 0 {
		return entry{}, fmt.Errorf("%w %q, expected one of %s", ErrUnknownGame, name, strings.Join(names(), ", "))
	}
	return registry[i], nil
}
