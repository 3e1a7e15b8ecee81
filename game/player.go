package game

import (
	"errors"
	"fmt"
)

var ErrDecayExhausted = errors.New("value decay would reach zero, terminal magnitude too small for game depth")

// Player is one of the two alternating players. PlayerOne minimizes values,
// PlayerTwo maximizes them.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Mark returns the mark the player places.
func (p Player) Mark() Mark {
	return Mark(p + 1)
}

func (p Player) Maximizes() bool {
	return p == PlayerTwo
}

// WinValue is the terminal value of a state won by p.
func (p Player) WinValue(magnitude Value) Value {
	if p.Maximizes() {
		return magnitude
	}
	return -magnitude
}

// Better reports whether a is strictly preferred to b by p.
func (p Player) Better(a, b Value) bool {
	if p.Maximizes() {
		return a > b
	}
	return a < b
}

func (p Player) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	default:
		return fmt.Sprintf("player(%d)", uint8(p))
	}
}

// Mark is the content of one board position.
type Mark uint8

const (
	Empty Mark = iota
	MarkOne
	MarkTwo
)

func (m Mark) Valid() bool {
	return m <= MarkTwo
}

// Owner returns the player who places m. It must not be called on Empty.
func (m Mark) Owner() Player {
	if m == Empty || !m.Valid() {
		panic(fmt.Sprintf("mark %d has no owner", m))
	}
	return Player(m - 1)
}

// Value is a solved game-theoretic value. Positive favours PlayerTwo.
type Value int

// Decay shifts v one unit toward zero. A draw stays a draw; a win or loss must
// keep its sign.
func (v Value) Decay() (Value, error) {
	switch {
	case v > 1:
		return v - 1, nil
	case v < -1:
		return v + 1, nil
	case v == 0:
		return 0, nil
	default:
		return v, fmt.Errorf("decaying %d: %w", v, ErrDecayExhausted)
	}
}
