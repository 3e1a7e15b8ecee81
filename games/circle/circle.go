// Package circle is a walk around a circle of positions, one step forward or
// back per turn. Its state graph is a cycle, so it is traced but never solved.
package circle

import (
	"errors"
	"fmt"
	"strconv"

	"gamegraph/game"
)

const Name = "circle"

var ErrInvalidSize = errors.New("circle needs at least one position")

// Step is an input: +1 or -1.
type Step int

const (
	Forward Step = 1
	Back    Step = -1
)

type Circle struct {
	n int
}

func New(n int) (*Circle, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return &Circle{n: n}, nil
}

func (c *Circle) StartStates() []game.Start[int] {
	return []game.Start[int]{{State: 0, Message: "Let's walk around a circle.\n"}}
}

func (c *Circle) Options(int) []Step {
	return []Step{Forward, Back}
}

func (c *Circle) Result(state int, step Step) []game.Category[int] {
	next := ((state+int(step))%c.n + c.n) % c.n
	return []game.Category[int]{{Name: "only", States: []int{next}}}
}

func (c *Circle) Display(state int) string {
	return "state: " + strconv.Itoa(state) + "#display#"
}

func (c *Circle) Encode(state int) string {
	return strconv.Itoa(state)
}

// DisplayInput uses words, since a "+" or "-" label could never sit between
// word boundaries in a reply pattern.
func (c *Circle) DisplayInput(step Step) string {
	if step == Forward {
		return "forward"
	}
	return "back"
}

func (c *Circle) Grammar() map[string][]string {
	return map[string][]string{
		"display": {"\nCode: #code#\nOptions: #options#"},
		"result":  {"#only#"},
	}
}
