package game

import (
	"fmt"
	"strings"
)

// State is a board position plus the player to move. Cells holds one Mark per
// position; being a string it is immutable and State compares structurally.
// Operations on State always return a new copy.
type State struct {
	Player Player
	Cells  string
}

// NewState returns an empty board of the given size with p to move.
func NewState(p Player, size int) State {
	return State{Player: p, Cells: strings.Repeat(string(rune(Empty)), size)}
}

// FromMarks builds a state from a mark slice.
func FromMarks(p Player, marks []Mark) State {
	b := make([]byte, len(marks))
	for i, m := range marks {
		b[i] = byte(m)
	}
	return State{Player: p, Cells: string(b)}
}

func (s State) Size() int {
	return len(s.Cells)
}

func (s State) At(i int) Mark {
	return Mark(s.Cells[i])
}

// With returns a copy of s with position i set to m. The player is unchanged.
func (s State) With(i int, m Mark) State {
	b := []byte(s.Cells)
	b[i] = byte(m)
	return State{Player: s.Player, Cells: string(b)}
}

// Play places the mover's mark at i and passes the turn.
func (s State) Play(i int) State {
	next := s.With(i, s.Player.Mark())
	next.Player = s.Player.Other()
	return next
}

func (s State) Count(m Mark) int {
	return strings.Count(s.Cells, string(rune(m)))
}

// Empty returns the indices of empty positions in ascending order.
func (s State) Empty() []int {
	var empty []int
	for i := 0; i < len(s.Cells); i++ {
		if Mark(s.Cells[i]) == Empty {
			empty = append(empty, i)
		}
	}
	return empty
}

// Validate checks that s is a well-formed board of the given size.
func (s State) Validate(size int) error {
	if !s.Player.Valid() {
		return fmt.Errorf("invalid player %d", uint8(s.Player))
	}
	if len(s.Cells) != size {
		return fmt.Errorf("board has %d positions, expected %d", len(s.Cells), size)
	}
	for i := 0; i < len(s.Cells); i++ {
		if !Mark(s.Cells[i]).Valid() {
			return fmt.Errorf("invalid mark %d at position %d", s.Cells[i], i)
		}
	}
	return nil
}

// String renders the board with '.', '1' and '2' followed by the player to move.
func (s State) String() string {
	var sb strings.Builder
	for i := 0; i < len(s.Cells); i++ {
		switch Mark(s.Cells[i]) {
		case Empty:
			sb.WriteByte('.')
		case MarkOne:
			sb.WriteByte('1')
		case MarkTwo:
			sb.WriteByte('2')
		default:
			sb.WriteByte('?')
		}
	}
	return fmt.Sprintf("%s, %s to move", sb.String(), s.Player)
}
