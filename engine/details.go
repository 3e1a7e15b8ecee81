package engine

import (
	"fmt"

	"gamegraph/game"
)

// Status is the terminal classification of a canonical state.
type Status uint8

const (
	Unknown Status = iota
	InProgress
	Decided
)

func (s Status) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case InProgress:
		return "in-progress"
	case Decided:
		return "decided"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Details is the mutable record kept for each canonical state.
type Details struct {
	Expanded   bool
	Status     Status
	Winner     *game.Player // nil for a draw or an undecided state
	Solved     bool
	Value      game.Value
	Optimal    int                // Move reaching the optimal successor, game.NoMove if none
	Successors map[int]game.State // Set once on expansion, only for in-progress states
}

func newDetails() *Details {
	return &Details{Optimal: game.NoMove}
}

// SetValue assigns the solved value. A value never changes once set.
func (d *Details) SetValue(value game.Value, optimal int) {
	if d.Solved {
		panic(fmt.Sprintf("value already set to %d, cannot set %d", d.Value, value))
	}
	d.Solved = true
	d.Value = value
	d.Optimal = optimal
}

func (d *Details) Terminal() bool {
	return d.Status == Decided
}
