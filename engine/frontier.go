package engine

import (
	"gamegraph/game"

	"golang.org/x/exp/rand"
)

// frontier holds discovered states awaiting expansion. Push and pop are O(1);
// pop takes the newest state, or a random one when rng is set.
type frontier struct {
	states []game.State
	rng    *rand.Rand
}

func newFrontier(rng *rand.Rand) *frontier {
	return &frontier{rng: rng}
}

func (f *frontier) push(state game.State) {
	f.states = append(f.states, state)
}

func (f *frontier) pop() game.State {
	last := len(f.states) - 1
	if f.rng != nil {
		i := f.rng.Intn(len(f.states))
		f.states[i], f.states[last] = f.states[last], f.states[i]
	}
	state := f.states[last]
	f.states = f.states[:last]
	return state
}

func (f *frontier) len() int {
	return len(f.states)
}
