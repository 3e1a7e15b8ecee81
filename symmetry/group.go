// Package symmetry provides the permutation groups used to identify board
// positions that are equivalent under a game's symmetries.
package symmetry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPermutation = errors.New("invalid permutation")

// Permutation maps position i of a transformed board to position p[i] of the
// original board.
type Permutation []int

func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Compose returns the permutation applying q then p: r[i] = p[q[i]].
func (p Permutation) Compose(q Permutation) Permutation {
	r := make(Permutation, len(q))
	for i, j := range q {
		r[i] = p[j]
	}
	return r
}

func (p Permutation) Inverse() Permutation {
	r := make(Permutation, len(p))
	for i, j := range p {
		r[j] = i
	}
	return r
}

func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for i, j := range p {
		if j < 0 || j >= len(p) || seen[j] {
			return fmt.Errorf("%w: position %d maps to %d", ErrInvalidPermutation, i, j)
		}
		seen[j] = true
	}
	return nil
}

func (p Permutation) key() string {
	var sb strings.Builder
	for i, j := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(j))
	}
	return sb.String()
}

// Closure returns every element of the group generated by the generators,
// identity first. All generators must have the same size.
func Closure(generators ...Permutation) ([]Permutation, error) {
	if len(generators) == 0 {
		return nil, fmt.Errorf("%w: no generators", ErrInvalidPermutation)
	}
	n := len(generators[0])
	for _, g := range generators {
		if len(g) != n {
			return nil, fmt.Errorf("%w: generator sizes differ (%d and %d)", ErrInvalidPermutation, n, len(g))
		}
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	identity := Identity(n)
	elements := []Permutation{identity}
	seen := map[string]bool{identity.key(): true}
	// Breadth first over products; a finite group is closed under composition
	for i := 0; i < len(elements); i++ {
		for _, g := range generators {
			product := elements[i].Compose(g)
			k := product.key()
			if !seen[k] {
				seen[k] = true
				elements = append(elements, product)
			}
		}
	}
	return elements, nil
}

// Induced maps a permutation of graph vertices onto the permutation it causes
// on the given edges. Edges must be distinct and stored with the smaller
// vertex first.
func Induced(vertices Permutation, edges [][2]int) (Permutation, error) {
	index := make(map[[2]int]int, len(edges))
	for i, e := range edges {
		index[e] = i
	}
	p := make(Permutation, len(edges))
	for i, e := range edges {
		u, v := vertices[e[0]], vertices[e[1]]
		if u > v {
			u, v = v, u
		}
		j, ok := index[[2]int{u, v}]
		if !ok {
			return nil, fmt.Errorf("%w: edge (%d,%d) has no image", ErrInvalidPermutation, e[0], e[1])
		}
		p[i] = j
	}
	return p, nil
}
