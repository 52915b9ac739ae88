package lattice

// BondGroups partitions the lattice bond list into groups of pairwise
// site-disjoint bonds — the checkerboard grouping. Within one group no two
// bonds touch the same site, so their 2×2 hopping exponentials commute and
// the group factor is exact; only the ordering between groups carries a
// Trotter error.
//
// The partition is a greedy first-fit coloring over the deterministic bond
// order, so the grouping depends only on L.
// Returns ErrNilLattice for a nil lattice.
// Complexity: O(B·G) time where G is the resulting number of groups.
func BondGroups(lat *Square) ([][]Bond, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}

	groups := make([][]Bond, 0, 4)
	used := make([]map[int]bool, 0, 4) // per-group occupied sites

	for _, b := range lat.bonds {
		placed := false
		for g := range groups {
			if used[g][b.I] || used[g][b.J] {
				continue
			}
			groups[g] = append(groups[g], b)
			used[g][b.I] = true
			used[g][b.J] = true
			placed = true

			break
		}
		if !placed {
			groups = append(groups, []Bond{b})
			used = append(used, map[int]bool{b.I: true, b.J: true})
		}
	}

	return groups, nil
}

// ExtendGroups replicates site-level bond groups across flavor blocks:
// every bond (i,j) with i,j in [0,n) yields flavor copies (i+f·n, j+f·n)
// for f = 0..flavors-1, all within the same group (the copies act on
// disjoint index ranges, so group disjointness is preserved).
//
// Returns ErrBondRange if any input bond index falls outside [0, n),
// ErrBadLattice if n or flavors is non-positive.
// Complexity: O(B·F).
func ExtendGroups(groups [][]Bond, n, flavors int) ([][]Bond, error) {
	if n <= 0 || flavors <= 0 {
		return nil, ErrBadLattice
	}

	out := make([][]Bond, len(groups))
	for g, grp := range groups {
		ext := make([]Bond, 0, len(grp)*flavors)
		for _, b := range grp {
			if b.I < 0 || b.I >= n || b.J < 0 || b.J >= n {
				return nil, ErrBondRange
			}
			for f := 0; f < flavors; f++ {
				ext = append(ext, Bond{I: b.I + f*n, J: b.J + f*n})
			}
		}
		out[g] = ext
	}

	return out, nil
}
