// Package greens implements the propagation layer of the DQMC measurement
// core: reconstruction of the physical equal-time Green's function from the
// "effective" Green's function maintained by the stabilized propagator
// stack.
//
// The effective basis differs from the physical one by conjugation with
// half-time-step hopping-exponential factors. That conjugation undoes a
// cyclic reordering of the imaginary-time propagator product performed
// elsewhere for floating-point accuracy; it must be inverted identically
// every time a physical Green's function is requested:
//
//	physical = eThalfplus · effective · eThalfminus
//
// Two interchangeable representations of the half-step factors exist:
//
//   - DenseExp: one dense factor per side, two matrix multiplications
//   - Checkerboard: an ordered chain of sparse bond-group factors applied
//     sequentially, in reverse group order on both sides — the reverse
//     order is mandatory, forward order inverts the wrong permutation
//
// All scratch space lives in a caller-owned Workspace; every entry point
// documents which workspace buffers it overwrites, and callers must treat
// previously obtained Green's functions as invalidated accordingly.
//
// Error handling is fail-fast with package sentinels; buffer dimension
// mismatches are not pre-validated here and surface as panics from the
// underlying gonum layer, matching its documented contract.
package greens
