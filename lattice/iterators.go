package lattice

// Iterators enumerate index tuples in a fixed, documented order so that
// measurement sweeps are reproducible run to run. They are the default
// "lattice iterator" strategies bound by the measurement constructors;
// callers with Fourier-weighted or distance-binned needs supply their own.

// EachSite invokes fn for every index 0..n-1 in ascending order.
// n is a plain count, so the same iterator serves site-level (N) and
// flavor-extended (F·N) sweeps.
func EachSite(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// EachSitePair invokes fn for every ordered pair (i, j), i and j each
// 0..n-1, in row-major order (i outer, j inner).
// Complexity: O(n²) invocations.
func EachSitePair(n int, fn func(i, j int)) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			fn(i, j)
		}
	}
}

// EachBondPair invokes fn for every ordered pair of unique lattice bonds,
// handing over the two source/target site tuples bond-to-bond kernels
// consume. Iteration order follows the deterministic bond list.
// Complexity: O(B²) invocations.
func EachBondPair(lat *Square, fn func(src1, trg1, src2, trg2 int)) {
	for _, b1 := range lat.bonds {
		for _, b2 := range lat.bonds {
			fn(b1.I, b1.J, b2.I, b2.J)
		}
	}
}
