// Package engine owns the canonical state registry of one game: it maps raw
// positions to symmetry class representatives, explores the reachable
// canonical states and records their successors and terminal classification.
package engine

import (
	"gamegraph/game"
	"gamegraph/meta"
	"gamegraph/metrics"
	"gamegraph/symmetry"

	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// Engine is not safe for concurrent use; exploration and solving are
// sequential passes over its tables.
type Engine struct {
	rules     game.Rules
	structure *symmetry.Structure
	magnitude game.Value
	canonical map[game.State]game.State
	buckets   map[symmetry.Fingerprint][]game.State
	details   map[game.State]*Details
	order     []game.State // Canonical states in registration order
	rng       *rand.Rand   // Frontier extraction order, LIFO if nil
	metrics   metrics.Collector
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// WithShuffle extracts frontier states in a pseudo-random order. The explored
// graph does not depend on it; only which member of a symmetry class becomes
// its representative does.
func WithShuffle(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithWinMagnitude(magnitude game.Value) Option {
	return func(e *Engine) {
		if magnitude > 0 {
			e.magnitude = magnitude
		}
	}
}

func New(rules game.Rules, options ...Option) *Engine {
	e := &Engine{ // Default values
		rules:     rules,
		structure: rules.Structure(),
		magnitude: meta.WinMagnitude,
		canonical: make(map[game.State]game.State),
		buckets:   make(map[symmetry.Fingerprint][]game.State),
		details:   make(map[game.State]*Details),
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Rules() game.Rules {
	return e.rules
}

func (e *Engine) WinMagnitude() game.Value {
	return e.magnitude
}

func (e *Engine) Collector() metrics.Collector {
	return e.metrics
}

// Details returns the record of a canonical state.
func (e *Engine) Details(state game.State) (*Details, bool) {
	d, ok := e.details[state]
	return d, ok
}

// States returns the canonical states in registration order.
func (e *Engine) States() []game.State {
	states := make([]game.State, len(e.order))
	copy(states, e.order)
	return states
}

// Len is the number of canonical states registered.
func (e *Engine) Len() int {
	return len(e.order)
}
