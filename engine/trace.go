package engine

import (
	"fmt"

	"gamegraph/game"

	"github.com/rs/zerolog/log"
)

// Graph is the textual transition graph of a game adapter: for every state
// code, the states each input label leads to, grouped by result category.
type Graph struct {
	Codes    []string // Discovery order
	Edges    map[string]map[string][]Category
	Displays map[string]string
	Origins  []Origin // One per configured start state, in order
}

type Category struct {
	Name  string
	Codes []string
}

type Origin struct {
	Message string
	Code    string
}

// Pairs counts the distinct (state, input label) pairs of the graph.
func (g *Graph) Pairs() int {
	n := 0
	for _, options := range g.Edges {
		n += len(options)
	}
	return n
}

// Trace walks the adapter's states from its start states. It fails on the
// first input label shared by two options of one state and on the first code
// shared by two distinct states; both are adapter defects.
func Trace[S comparable, I comparable](g game.Game[S, I]) (*Graph, error) {
	graph := &Graph{
		Edges:    make(map[string]map[string][]Category),
		Displays: make(map[string]string),
	}
	seen := make(map[string]S)
	var pending []S

	discover := func(state S) (string, error) {
		code := g.Encode(state)
		if prev, ok := seen[code]; ok {
			if prev != state {
				return "", fmt.Errorf("%w: code %q", ErrEncodingCollision, code)
			}
			return code, nil
		}
		if !isWord(code) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
		}
		seen[code] = state
		pending = append(pending, state)
		graph.Codes = append(graph.Codes, code)
		return code, nil
	}

	for _, start := range g.StartStates() {
		code, err := discover(start.State)
		if err != nil {
			return nil, err
		}
		graph.Origins = append(graph.Origins, Origin{Message: start.Message, Code: code})
	}

	for len(pending) > 0 {
		state := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		code := g.Encode(state)
		graph.Displays[code] = g.Display(state)

		options := make(map[string][]Category)
		for _, input := range g.Options(state) {
			label := g.DisplayInput(input)
			if _, ok := options[label]; ok {
				return nil, fmt.Errorf("%w: state %q has two inputs labelled %q", ErrInputCollision, code, label)
			}

			var categories []Category
			for _, result := range g.Result(state, input) {
				category := Category{Name: result.Name}
				for _, next := range result.States {
					nextCode, err := discover(next)
					if err != nil {
						return nil, err
					}
					category.Codes = append(category.Codes, nextCode)
				}
				categories = append(categories, category)
			}
			options[label] = categories
		}
		graph.Edges[code] = options
	}

	log.Info().Msgf("traced %d states with %d inputs", len(graph.Codes), graph.Pairs())
	return graph, nil
}

// isWord reports whether code is non-empty and made of ASCII letters, digits
// and underscores, so it is a rule name suffix and a whole regexp word.
func isWord(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
