// Package detqmc is the measurement core of a determinant quantum Monte
// Carlo (DQMC) simulator for lattice fermion models.
//
// 🚀 What is detqmc?
//
//	A compact, numerics-first library that brings together:
//		• Green's-function reconstruction: recover the physical equal-time
//		  Green's function from the numerically convenient "effective" basis
//		  maintained by a stabilized propagator stack
//		• Two interchangeable hopping-exponential representations: dense
//		  matrices and the sparse checkerboard factor chain
//		• Wick-contraction kernels: occupation, charge- and spin-density
//		  correlations, pairing, current-current, and energy observables
//		• Measurement constructors that bind a kernel to a lattice iterator
//		  and an observable accumulator
//
// ✨ Design principles
//
//   - Kernels are pure functions over Green's-function snapshots — a single
//     equal-time matrix or the packed tuple (G00, G0l, Gl0, Gll)
//   - The equal-time form of every correlator is the tuple form evaluated
//     on (G, G, G, G); only the tuple algebra exists, so the two can never drift
//   - All scratch space is caller-owned: the core allocates no persistent
//     state and documents exactly which workspace buffers each call overwrites
//
// Everything is organized under three subpackages:
//
//	lattice/ — hopping-matrix representations, checkerboard bond grouping,
//	           site/pair/bond iterators
//	greens/  — propagation layer: basis unwrapping of effective Green's
//	           functions, dense and checkerboard paths
//	measure/ — kernel framework: Wick contractions and measurement wiring
//
// The Monte Carlo sweep engine, the UDT-stabilized propagator stack, and
// statistical binning analysis are external collaborators; detqmc consumes
// their products through narrow interfaces and produces observable values.
//
//	go get detqmc
package detqmc
