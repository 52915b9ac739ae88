// Package lattice provides the spatial plumbing the DQMC measurement core
// is exercised with: a periodic square lattice, dense and block-diagonal
// hopping-matrix representations, the checkerboard bond grouping, and the
// deterministic site/pair/bond iterators used as measurement defaults.
//
// 🚀 What lattice gives you:
//
//   - Square: a periodic L×L lattice with a deterministic, duplicate-free
//     nearest-neighbor bond list
//   - Hopping: the dense single-flavor hopping matrix (−t on bonds, −mu on
//     the diagonal)
//   - BlockDiagonal: a flavor-block-diagonal hopping specialization that
//     implements gonum's mat.Matrix read-only and exposes its blocks for
//     per-flavor contractions
//   - BondGroups: a greedy partition of the bond list into groups of
//     pairwise site-disjoint bonds — the invariant the checkerboard
//     propagator factors rely on
//   - EachSite / EachSitePair / EachBondPair: fixed-order index iterators
//
// Everything here is deterministic: bond lists, groupings and iteration
// orders depend only on L, never on map ordering or randomness.
package lattice
