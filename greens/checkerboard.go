package greens

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"detqmc/lattice"
)

// factorGroup is one checkerboard factor: the exponential of the hopping
// restricted to a set of pairwise site-disjoint bonds. Because the bonds
// are disjoint, the factor decomposes into independent 2×2 blocks (and
// scalar diagonal entries for self bonds) and is applied in place.
type factorGroup struct {
	bonds []lattice.Bond
	x     []float64 // Δτ/2 · T[i,j] per bond
}

// Checkerboard is the sparse hopping-exponential representation: an ordered
// chain of factor groups whose product approximates e^{-Δτ·T/2} (minus
// side) and e^{+Δτ·T/2} (plus side, the exact inverse factor by factor).
//
// The group ORDER is part of the representation: the unwrapping transform
// applies both chains in reverse group order, inverting the forward
// permutation used when the propagator stack was built. The factors of
// different groups do not commute, so reordering changes the operator.
type Checkerboard struct {
	dim    int
	groups []factorGroup
}

// NewCheckerboard builds the factor chain for hopping matrix T from bond
// groups (each group pairwise site-disjoint, as produced by
// lattice.BondGroups / lattice.ExtendGroups) and time step dtau. Nonzero
// diagonal entries of T (chemical potential) become a trailing group of
// self bonds.
//
// Returns ErrNilBuffer for a nil T, ErrBadDim for a non-square T,
// ErrBadStep for dtau <= 0, ErrFactorRange for bond indices outside T, and
// ErrGroupOverlap when a group violates disjointness.
// Complexity: O(B + dim) construction.
func NewCheckerboard(T mat.Matrix, groups [][]lattice.Bond, dtau float64) (*Checkerboard, error) {
	if T == nil {
		return nil, ErrNilBuffer
	}
	r, c := T.Dims()
	if r != c {
		return nil, ErrBadDim
	}
	if dtau <= 0 {
		return nil, ErrBadStep
	}

	chain := make([]factorGroup, 0, len(groups)+1)
	for _, grp := range groups {
		fg := factorGroup{
			bonds: make([]lattice.Bond, 0, len(grp)),
			x:     make([]float64, 0, len(grp)),
		}
		seen := make(map[int]bool, 2*len(grp))
		for _, b := range grp {
			if b.I < 0 || b.I >= r || b.J < 0 || b.J >= r {
				return nil, ErrFactorRange
			}
			if seen[b.I] || seen[b.J] {
				return nil, ErrGroupOverlap
			}
			seen[b.I] = true
			seen[b.J] = true
			fg.bonds = append(fg.bonds, b)
			fg.x = append(fg.x, 0.5*dtau*T.At(b.I, b.J))
		}
		chain = append(chain, fg)
	}

	// Diagonal half-step scalings as a trailing self-bond group.
	var diag factorGroup
	for i := 0; i < r; i++ {
		if v := T.At(i, i); v != 0 {
			diag.bonds = append(diag.bonds, lattice.Bond{I: i, J: i})
			diag.x = append(diag.x, 0.5*dtau*v)
		}
	}
	if len(diag.bonds) > 0 {
		chain = append(chain, diag)
	}

	return &Checkerboard{dim: r, groups: chain}, nil
}

// Dim returns the matrix dimension the factor chain acts on.
func (c *Checkerboard) Dim() int { return c.dim }

// Groups returns the number of factor groups in the chain (including the
// diagonal group, if present).
func (c *Checkerboard) Groups() int { return len(c.groups) }

// apply computes the checkerboard basis transform in place on target:
// copy source in, right-multiply the minus chain in reverse group order,
// then left-multiply the plus chain in reverse group order. temp is not
// read or written on this path, so target==temp is safe here.
func (c *Checkerboard) apply(target, _, source *mat.Dense) {
	if target != source {
		target.Copy(source)
	}
	var g int
	for g = len(c.groups) - 1; g >= 0; g-- {
		c.groups[g].rightMulMinus(target)
	}
	for g = len(c.groups) - 1; g >= 0; g-- {
		c.groups[g].leftMulPlus(target)
	}
}

// rightMulMinus applies m ← m · F_minus for this group: per bond the 2×2
// column mix with entries (cosh x, -sinh x); per self bond the column
// scaling e^{-x}. Bonds are site-disjoint, so the in-place update is exact.
// Complexity: O(rows · bonds).
func (fg *factorGroup) rightMulMinus(m *mat.Dense) {
	rows, _ := m.Dims()
	var r int
	for k, b := range fg.bonds {
		if b.I == b.J {
			e := math.Exp(-fg.x[k])
			for r = 0; r < rows; r++ {
				m.Set(r, b.I, e*m.At(r, b.I))
			}

			continue
		}
		ch, sh := math.Cosh(fg.x[k]), -math.Sinh(fg.x[k])
		for r = 0; r < rows; r++ {
			mi, mj := m.At(r, b.I), m.At(r, b.J)
			m.Set(r, b.I, ch*mi+sh*mj)
			m.Set(r, b.J, sh*mi+ch*mj)
		}
	}
}

// leftMulPlus applies m ← F_plus · m for this group: the row-side mix with
// entries (cosh x, +sinh x), the exact inverse of the minus factor
// (cosh² − sinh² = 1), and e^{+x} row scalings for self bonds.
// Complexity: O(cols · bonds).
func (fg *factorGroup) leftMulPlus(m *mat.Dense) {
	_, cols := m.Dims()
	var col int
	for k, b := range fg.bonds {
		if b.I == b.J {
			e := math.Exp(fg.x[k])
			for col = 0; col < cols; col++ {
				m.Set(b.I, col, e*m.At(b.I, col))
			}

			continue
		}
		ch, sh := math.Cosh(fg.x[k]), math.Sinh(fg.x[k])
		for col = 0; col < cols; col++ {
			mi, mj := m.At(b.I, col), m.At(b.J, col)
			m.Set(b.I, col, ch*mi+sh*mj)
			m.Set(b.J, col, sh*mi+ch*mj)
		}
	}
}

// DenseMinus expands the minus chain into its dense product, in the exact
// order apply uses on the right side. Intended for equivalence checks
// against the dense representation and for suppliers that want to verify a
// grouping; not used on the hot path.
// Complexity: O(dim² · B).
func (c *Checkerboard) DenseMinus() *mat.Dense {
	out := identity(c.dim)
	for g := len(c.groups) - 1; g >= 0; g-- {
		c.groups[g].rightMulMinus(out)
	}

	return out
}

// DensePlus expands the plus chain into its dense product, in the exact
// order apply uses on the left side. DensePlus() · DenseMinus() telescopes
// to the identity.
// Complexity: O(dim² · B).
func (c *Checkerboard) DensePlus() *mat.Dense {
	out := identity(c.dim)
	for g := len(c.groups) - 1; g >= 0; g-- {
		c.groups[g].leftMulPlus(out)
	}

	return out
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}

	return out
}
