// Package sim is the game of Sim: two players take turns colouring the edges
// of the complete graph on six vertices, red (PlayerOne) first, and the first
// player to complete a triangle of their own colour loses.
package sim

import (
	"gamegraph/game"
	"gamegraph/symmetry"
)

const (
	Vertices = 6
	Edges    = Vertices * (Vertices - 1) / 2
)

// Edge is a vertex pair, smaller vertex first.
type Edge [2]int

var (
	edges     = completeGraph()
	edgeIDs   = indexEdges(edges)
	triangles = sideEdges(edges)
	incidents = incidentEdges(edges)
)

func completeGraph() []Edge {
	all := make([]Edge, 0, Edges)
	for u := range Vertices {
		for v := u + 1; v < Vertices; v++ {
			all = append(all, Edge{u, v})
		}
	}
	return all
}

func indexEdges(all []Edge) map[Edge]int {
	ids := make(map[Edge]int, len(all))
	for id, e := range all {
		ids[e] = id
	}
	return ids
}

func edgeID(u, v int) int {
	if u > v {
		u, v = v, u
	}
	return edgeIDs[Edge{u, v}]
}

// sideEdges lists, for every edge, the other two edges of each triangle it is
// part of.
func sideEdges(all []Edge) [][][2]int {
	sides := make([][][2]int, len(all))
	for id, e := range all {
		for w := range Vertices {
			if w == e[0] || w == e[1] {
				continue
			}
			sides[id] = append(sides[id], [2]int{edgeID(e[0], w), edgeID(e[1], w)})
		}
	}
	return sides
}

func incidentEdges(all []Edge) [][]int {
	sites := make([][]int, Vertices)
	for id, e := range all {
		sites[e[0]] = append(sites[e[0]], id)
		sites[e[1]] = append(sites[e[1]], id)
	}
	return sites
}

// EdgeAt returns the vertices of an edge position.
func EdgeAt(id int) Edge {
	return edges[id]
}

// Rules play Sim on the edge positions of K6 under all 720 vertex relabellings.
type Rules struct {
	structure *symmetry.Structure
}

func NewRules() *Rules {
	pairs := make([][2]int, len(edges))
	for i, e := range edges {
		pairs[i] = e
	}

	var generators []symmetry.Permutation
	for _, vertices := range []symmetry.Permutation{
		{1, 0, 2, 3, 4, 5}, // Transposition
		{1, 2, 3, 4, 5, 0}, // Rotation
	} {
		p, err := symmetry.Induced(vertices, pairs)
		if err != nil {
			panic(err)
		}
		generators = append(generators, p)
	}
	group, err := symmetry.Closure(generators...)
	if err != nil {
		panic(err)
	}
	structure, err := symmetry.NewStructure(Edges, incidents, group)
	if err != nil {
		panic(err)
	}
	return &Rules{structure: structure}
}

func (r *Rules) Structure() *symmetry.Structure {
	return r.structure
}

func (r *Rules) Moves(state game.State) []int {
	return state.Empty()
}

func (r *Rules) Apply(state game.State, move int) game.State {
	return state.Play(move)
}

// Evaluate checks the triangles through the last edge coloured. The player who
// closed a triangle in their own colour loses, so the player now to move wins.
func (r *Rules) Evaluate(state game.State, last int) (bool, *game.Player) {
	mark := state.Player.Other().Mark()
	for _, side := range triangles[last] {
		if state.At(side[0]) == mark && state.At(side[1]) == mark {
			winner := state.Player
			return true, &winner
		}
	}
	// Unreachable on K6, any complete colouring has a monochromatic triangle
	if state.Count(game.Empty) == 0 {
		return true, nil
	}
	return false, nil
}
