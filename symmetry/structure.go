package symmetry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

var ErrInvalidStructure = errors.New("invalid board structure")

// Fingerprint is an isomorphism invariant of a board: equal boards under the
// group always share it, unequal boards may too.
type Fingerprint uint64

// Structure describes a board: its number of positions, the sites used for
// fingerprinting (each a set of incident positions, e.g. the lines of a grid
// or the edges at a graph vertex) and the full symmetry group.
//
// Boards are strings with one mark byte per position; byte 0 is empty, 1 and 2
// belong to the two players. Callers validate boards before passing them in.
type Structure struct {
	size  int
	sites [][]int
	group []Permutation
	// siteKeys maps a sorted site to its index, to check the group permutes sites
	siteKeys map[string]int
}

// NewStructure checks that every group element permutes the sites among
// themselves, which is what makes the fingerprint invariant.
func NewStructure(size int, sites [][]int, group []Permutation) (*Structure, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidStructure, size)
	}
	if len(group) == 0 {
		return nil, fmt.Errorf("%w: empty group", ErrInvalidStructure)
	}

	s := &Structure{
		size:     size,
		sites:    make([][]int, len(sites)),
		group:    group,
		siteKeys: make(map[string]int, len(sites)),
	}
	for i, site := range sites {
		sorted := slices.Sorted(slices.Values(site))
		for _, pos := range sorted {
			if pos < 0 || pos >= size {
				return nil, fmt.Errorf("%w: site %d has position %d", ErrInvalidStructure, i, pos)
			}
		}
		s.sites[i] = sorted
		s.siteKeys[Permutation(sorted).key()] = i
	}

	for _, p := range group {
		if len(p) != size {
			return nil, fmt.Errorf("%w: permutation of size %d on board of size %d", ErrInvalidStructure, len(p), size)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		for i, site := range s.sites {
			image := make(Permutation, len(site))
			for k, pos := range site {
				image[k] = p[pos]
			}
			slices.Sort(image)
			if _, ok := s.siteKeys[image.key()]; !ok {
				return nil, fmt.Errorf("%w: permutation %v does not map site %d onto a site", ErrInvalidStructure, p, i)
			}
		}
	}
	return s, nil
}

func (s *Structure) Size() int {
	return s.size
}

// Order is the number of elements of the symmetry group.
func (s *Structure) Order() int {
	return len(s.group)
}

func (s *Structure) Group() []Permutation {
	return s.group
}

// Fingerprint combines the player to move with the sorted multiset of
// per-site mark counts.
func (s *Structure) Fingerprint(player uint8, cells string) Fingerprint {
	degrees := make([]uint16, len(s.sites))
	for i, site := range s.sites {
		var one, two uint8
		for _, pos := range site {
			switch cells[pos] {
			case 1:
				one++
			case 2:
				two++
			}
		}
		degrees[i] = uint16(one)<<8 | uint16(two)
	}
	slices.Sort(degrees)

	buf := make([]byte, 1, 1+2*len(degrees))
	buf[0] = player
	for _, d := range degrees {
		buf = binary.LittleEndian.AppendUint16(buf, d)
	}
	return Fingerprint(xxhash.Sum64(buf))
}

// Transform returns the board b with b[i] = cells[p[i]].
func (s *Structure) Transform(cells string, p Permutation) string {
	b := make([]byte, len(p))
	for i, j := range p {
		b[i] = cells[j]
	}
	return string(b)
}

// Isomorphic reports whether some group element carries a onto b. Empty
// positions must line up with empty positions like any other mark.
func (s *Structure) Isomorphic(a, b string) bool {
	for _, p := range s.group {
		if s.maps(a, b, p) {
			return true
		}
	}
	return false
}

func (s *Structure) maps(a, b string, p Permutation) bool {
	for i, j := range p {
		if a[j] != b[i] {
			return false
		}
	}
	return true
}
