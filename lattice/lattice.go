package lattice

// Bond is an undirected hopping bond between two matrix indices.
// Site-level bonds carry indices in [0, N); flavor-extended bonds produced
// by ExtendGroups carry the flavor-block offset already applied.
// A self bond (I == J) denotes an on-site (diagonal) term.
type Bond struct {
	I, J int
}

// Square is a periodic L×L square lattice with sites enumerated row-major:
// site = y*L + x. The unique nearest-neighbor bond list is precomputed at
// construction and never mutated afterwards.
type Square struct {
	l     int
	bonds []Bond
}

// NewSquare constructs a periodic L×L square lattice.
// Returns ErrBadLattice if l <= 0.
//
// The bond list contains each unordered nearest-neighbor pair exactly once
// (periodic wrapping on small lattices would otherwise duplicate pairs),
// ordered by first appearance during the row-major site sweep. Self pairs
// arising from L=1 wrapping are skipped.
// Complexity: O(L²) time and memory.
func NewSquare(l int) (*Square, error) {
	if l <= 0 {
		return nil, ErrBadLattice
	}

	n := l * l
	seen := make(map[[2]int]bool, 2*n)
	bonds := make([]Bond, 0, 2*n)

	// addBond registers the unordered pair (i,j) once, in sweep order.
	addBond := func(i, j int) {
		if i == j {
			return // periodic self pair on L=1
		}
		a, b := i, j
		if a > b {
			a, b = b, a
		}
		if seen[[2]int{a, b}] {
			return
		}
		seen[[2]int{a, b}] = true
		bonds = append(bonds, Bond{I: a, J: b})
	}

	var x, y int
	for y = 0; y < l; y++ {
		for x = 0; x < l; x++ {
			site := y*l + x
			addBond(site, y*l+(x+1)%l)   // right neighbor, periodic
			addBond(site, ((y+1)%l)*l+x) // down neighbor, periodic
		}
	}

	return &Square{l: l, bonds: bonds}, nil
}

// L returns the linear lattice size.
func (s *Square) L() int { return s.l }

// Sites returns the number of lattice sites, L².
func (s *Square) Sites() int { return s.l * s.l }

// NumBonds returns the number of unique nearest-neighbor bonds.
func (s *Square) NumBonds() int { return len(s.bonds) }

// Bonds returns a copy of the unique nearest-neighbor bond list.
// The copy prevents external mutation of the precomputed list.
// Complexity: O(B) per call.
func (s *Square) Bonds() []Bond {
	out := make([]Bond, len(s.bonds))
	copy(out, s.bonds)

	return out
}
