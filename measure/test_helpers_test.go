package measure_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"detqmc/lattice"
	"detqmc/measure"
)

// randDense fills an n×n matrix with deterministic pseudo-random entries.
func randDense(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(n, n, data)
}

// scaledEye returns v·I of dimension n.
func scaledEye(n int, v float64) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, v)
	}

	return out
}

// randTuple packs four independent random matrices as a genuinely
// unequal-time tuple.
func randTuple(n int, seed int64) measure.GreensTuple {
	return measure.NewTuple(
		randDense(n, seed),
		randDense(n, seed+1),
		randDense(n, seed+2),
		randDense(n, seed+3),
	)
}

// spinSymmetric builds a flavor-block-diagonal Green's function with two
// identical N×N blocks — the spin-symmetric sector.
func spinSymmetric(n int, seed int64) *mat.Dense {
	blk := randDense(n, seed)
	out := mat.NewDense(2*n, 2*n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.Set(i, j, blk.At(i, j))
			out.Set(i+n, j+n, blk.At(i, j))
		}
	}

	return out
}

// newHubbard builds the standard test collaborator: an L×L lattice with a
// flavor-extended block-diagonal hopping matrix and on-site interaction U.
func newHubbard(t *testing.T, l int, hop, mu, u float64) (measure.HubbardModel, *lattice.Square) {
	t.Helper()

	lat, err := lattice.NewSquare(l)
	require.NoError(t, err)
	T, err := lattice.Hopping(lat, hop, mu)
	require.NoError(t, err)
	bd, err := lattice.NewBlockDiagonal(T, T)
	require.NoError(t, err)

	return measure.HubbardModel{N: lat.Sites(), U: u, Hop: bd}, lat
}
