package greens_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"detqmc/greens"
	"detqmc/lattice"
)

// TestNewCheckerboard_Validation covers the construction guards.
func TestNewCheckerboard_Validation(t *testing.T) {
	T := mat.NewDense(4, 4, nil)
	good := [][]lattice.Bond{{{I: 0, J: 1}, {I: 2, J: 3}}}

	_, err := greens.NewCheckerboard(nil, good, 0.1)
	assert.ErrorIs(t, err, greens.ErrNilBuffer)

	_, err = greens.NewCheckerboard(mat.NewDense(3, 4, nil), good, 0.1)
	assert.ErrorIs(t, err, greens.ErrBadDim)

	_, err = greens.NewCheckerboard(T, good, 0)
	assert.ErrorIs(t, err, greens.ErrBadStep)

	_, err = greens.NewCheckerboard(T, [][]lattice.Bond{{{I: 0, J: 4}}}, 0.1)
	assert.ErrorIs(t, err, greens.ErrFactorRange)

	_, err = greens.NewCheckerboard(T, [][]lattice.Bond{{{I: 0, J: 1}, {I: 1, J: 2}}}, 0.1)
	assert.ErrorIs(t, err, greens.ErrGroupOverlap, "bonds sharing site 1 must be rejected")
}

// TestCheckerboard_DiagonalGroup verifies that a nonzero hopping diagonal
// produces the trailing self-bond group.
func TestCheckerboard_DiagonalGroup(t *testing.T) {
	lat, err := lattice.NewSquare(2)
	require.NoError(t, err)
	groups, err := lattice.BondGroups(lat)
	require.NoError(t, err)

	Tfree, err := lattice.Hopping(lat, 1.0, 0.0)
	require.NoError(t, err)
	cb, err := greens.NewCheckerboard(Tfree, groups, 0.1)
	require.NoError(t, err)
	assert.Equal(t, len(groups), cb.Groups(), "mu=0: no diagonal group")

	Tmu, err := lattice.Hopping(lat, 1.0, 0.5)
	require.NoError(t, err)
	cbMu, err := greens.NewCheckerboard(Tmu, groups, 0.1)
	require.NoError(t, err)
	assert.Equal(t, len(groups)+1, cbMu.Groups(), "mu≠0: trailing diagonal group")
}

// TestCheckerboard_PlusInvertsMinus verifies the factor chains are exact
// inverses: DensePlus() · DenseMinus() telescopes to the identity
// (cosh²x − sinh²x = 1 per bond, e^{x}·e^{-x} = 1 per self bond).
func TestCheckerboard_PlusInvertsMinus(t *testing.T) {
	lat, err := lattice.NewSquare(3)
	require.NoError(t, err)
	T, err := lattice.Hopping(lat, 1.3, 0.4)
	require.NoError(t, err)
	groups, err := lattice.BondGroups(lat)
	require.NoError(t, err)
	cb, err := greens.NewCheckerboard(T, groups, 0.2)
	require.NoError(t, err)

	n := lat.Sites()
	var prod mat.Dense
	prod.Mul(cb.DensePlus(), cb.DenseMinus())

	eye := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1)
	}
	assert.True(t, mat.EqualApprox(eye, &prod, 1e-13))
}

// TestCheckerboard_GroupOrderMatters guards the mandatory reverse ordering:
// the factor groups do not commute, so a chain built with the groups
// reversed expresses a different operator.
func TestCheckerboard_GroupOrderMatters(t *testing.T) {
	lat, err := lattice.NewSquare(2)
	require.NoError(t, err)
	T, err := lattice.Hopping(lat, 1.0, 0.0)
	require.NoError(t, err)
	groups, err := lattice.BondGroups(lat)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(groups), 2, "need at least two non-commuting groups")

	reversed := make([][]lattice.Bond, len(groups))
	for i := range groups {
		reversed[len(groups)-1-i] = groups[i]
	}

	// Large step so the Trotter commutator term is well above tolerance.
	cb, err := greens.NewCheckerboard(T, groups, 0.5)
	require.NoError(t, err)
	cbRev, err := greens.NewCheckerboard(T, reversed, 0.5)
	require.NoError(t, err)

	assert.False(t, mat.EqualApprox(cb.DenseMinus(), cbRev.DenseMinus(), 1e-6),
		"reordering the groups must change the minus chain")

	src := randomDense(lat.Sites(), 13)
	wsA, _ := greens.NewWorkspace(lat.Sites())
	wsB, _ := greens.NewWorkspace(lat.Sites())
	ga, err := greens.Equal(cb, wsA, src)
	require.NoError(t, err)
	gb, err := greens.Equal(cbRev, wsB, src)
	require.NoError(t, err)
	assert.False(t, mat.EqualApprox(ga, gb, 1e-6),
		"reordering the groups must change the unwrapped Green's function")
}

// TestCheckerboard_SingleBond pins the 2×2 factor entries against the
// closed-form exponential of one bond: for T = [[0,h],[h,0]],
// e^{-Δτ·T/2} = [[cosh x, -sinh x], [-sinh x, cosh x]] with x = Δτ·h/2.
func TestCheckerboard_SingleBond(t *testing.T) {
	h, dtau := -1.7, 0.3 // hopping entry -t with t=1.7
	T := mat.NewDense(2, 2, []float64{0, h, h, 0})
	cb, err := greens.NewCheckerboard(T, [][]lattice.Bond{{{I: 0, J: 1}}}, dtau)
	require.NoError(t, err)

	minus := cb.DenseMinus()
	x := 0.5 * dtau * h
	assert.InDelta(t, math.Cosh(x), minus.At(0, 0), 1e-15)
	assert.InDelta(t, math.Cosh(x), minus.At(1, 1), 1e-15)
	assert.InDelta(t, -math.Sinh(x), minus.At(0, 1), 1e-15)
	assert.InDelta(t, -math.Sinh(x), minus.At(1, 0), 1e-15)
}
