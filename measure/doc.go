// Package measure implements the measurement-kernel framework of the DQMC
// core: pure functions that convert Green's-function values into physical
// observables via Wick's-theorem decomposition of multi-operator
// expectation values.
//
// 🚀 Kernel families
//
//	occupation            — ⟨n_i⟩ = 1 − G[i,i]
//	charge density        — ⟨n_i(l) n_j(0)⟩, all flavor combinations
//	magnetization x/y/z   — on-site spin components from flavor blocks
//	spin density x/y/z    — ⟨m_i(l) m_j(0)⟩ signed flavor sums
//	pairing (+alt, +sum)  — bond-to-bond singlet pair correlations
//	current-current       — hopping-weighted bond current correlations
//	kinetic/interaction/  — trace-like contractions of (I − G), with a
//	total energy            block-diagonal fast path for the hopping matrix
//
// Every contraction reduces to signed products of Green's-function entries
// through the fixed identity ⟨c_a† c_b⟩ = δ_ab − G[b,a]. The flavor block
// offset is N = Model.Sites(): extended index i addresses flavor 0
// (spin-up), i+N flavor 1 (spin-down).
//
// ✨ Two input shapes, one algebra
//
// Correlator kernels consume the packed tuple (G00, G0l, Gl0, Gll) of
// Green's functions at combined time arguments. The equal-time form is the
// tuple form evaluated on EqualTime(G) — the degenerate tuple (G,G,G,G)
// with the equal-time indicator set. Only the tuple algebra is implemented;
// the single-matrix entry points are thin adapters, so the two shapes
// cannot drift apart. The δ_ab indicator encoding the canonical
// anticommutator is applied to the mixed-time matrices G0l/Gl0 exactly when
// the tuple is equal-time, never silently dropped.
//
// Measurement constructors wire a family kernel to a default lattice
// iterator and an observable accumulator. Flavor-count assumptions are
// checked permissively: a mismatch emits a structured zap warning and
// evaluation continues — a deliberate choice to keep exploratory models
// usable. Invalid direction selectors, by contrast, fail fast with
// ErrDirection.
package measure
