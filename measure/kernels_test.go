package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"detqmc/measure"
)

// TestOccupation_SumRule pins the two exact limits: G = 0 is the fully
// occupied state (⟨n⟩ = 1 everywhere), G = I the empty one (⟨n⟩ = 0).
func TestOccupation_SumRule(t *testing.T) {
	n := 8
	full := mat.NewDense(n, n, nil)
	empty := scaledEye(n, 1)

	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, measure.Occupation(full, i), "G=0 must give occupation 1")
		assert.Equal(t, 0.0, measure.Occupation(empty, i), "G=I must give occupation 0")
	}
}

// cdcEqualTimeRef is an independent rendering of the equal-time
// charge-density formula, written directly from Wick's theorem without the
// tuple plumbing: Σ_{f1,f2} (1−G[a,a])(1−G[b,b]) + (δ_ab−G[b,a])·G[a,b].
func cdcEqualTimeRef(n int, g *mat.Dense, i, j int) float64 {
	var out float64
	for _, f1 := range []int{0, n} {
		a := i + f1
		for _, f2 := range []int{0, n} {
			b := j + f2
			d := 0.0
			if a == b {
				d = 1
			}
			out += (1-g.At(a, a))*(1-g.At(b, b)) + (d-g.At(b, a))*g.At(a, b)
		}
	}

	return out
}

// TestChargeDensity_EqualTimeDegeneracy verifies the tuple kernel on
// EqualTime(G) against the independently coded equal-time formula for
// every site pair of a random Green's function.
func TestChargeDensity_EqualTimeDegeneracy(t *testing.T) {
	m, _ := newHubbard(t, 2, 1.0, 0.0, 4.0)
	n := m.Sites()
	g := randDense(2*n, 42)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := cdcEqualTimeRef(n, g, i, j)
			got := measure.ChargeDensityEqual(m, g, i, j)
			assert.InDelta(t, want, got, 1e-13, "cdc(%d,%d)", i, j)
		}
	}
}

// TestChargeDensity_HalfFilling pins the closed forms at G = ½·I:
// ⟨n_i n_j⟩ = ⟨n⟩² = 1 off site, and ⟨n²⟩ = ⟨n⟩ + 2⟨n↑n↓⟩ = 3/2 on site.
func TestChargeDensity_HalfFilling(t *testing.T) {
	m, _ := newHubbard(t, 2, 1.0, 0.0, 0.0)
	g := scaledEye(2*m.Sites(), 0.5)

	assert.InDelta(t, 1.0, measure.ChargeDensityEqual(m, g, 0, 1), 1e-15)
	assert.InDelta(t, 1.5, measure.ChargeDensityEqual(m, g, 0, 0), 1e-15)
}

// TestMagnetization pins each component against a hand-built Green's
// function with known flavor-block entries.
func TestMagnetization(t *testing.T) {
	// N=1, two flavors: G is 2×2 with explicit cross-flavor entries.
	m := measure.HubbardModel{N: 1}
	g := mat.NewDense(2, 2, []float64{
		0.3, 0.2, // G[up,up], G[up,dn]
		0.7, 0.4, // G[dn,up], G[dn,dn]
	})

	assert.InDelta(t, -0.9, measure.MagnetizationX(m, g, 0), 1e-15, "-G[dn,up]-G[up,dn]")
	assert.InDelta(t, 0.5, measure.MagnetizationY(m, g, 0), 1e-15, "G[dn,up]-G[up,dn] in units of i")
	assert.InDelta(t, 0.1, measure.MagnetizationZ(m, g, 0), 1e-15, "G[dn,dn]-G[up,up]")

	// Half filling without spin order: every component vanishes.
	half := scaledEye(2, 0.5)
	assert.Zero(t, measure.MagnetizationX(m, half, 0))
	assert.Zero(t, measure.MagnetizationY(m, half, 0))
	assert.Zero(t, measure.MagnetizationZ(m, half, 0))
}

// TestSpinDensity_HalfFilling pins the closed forms at G = ½·I: all three
// components give 0 off site and ½ on site (the uncorrelated local moment
// ⟨n↑⟩ + ⟨n↓⟩ − 2⟨n↑⟩⟨n↓⟩).
func TestSpinDensity_HalfFilling(t *testing.T) {
	m, _ := newHubbard(t, 2, 1.0, 0.0, 0.0)
	g := measure.EqualTime(scaledEye(2*m.Sites(), 0.5))

	for _, tc := range []struct {
		name   string
		kernel func(measure.Model, measure.GreensTuple, int, int) float64
	}{
		{"x", measure.SpinDensityX},
		{"y", measure.SpinDensityY},
		{"z", measure.SpinDensityZ},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, 0.0, tc.kernel(m, g, 0, 1), 1e-15, "off-site")
			assert.InDelta(t, 0.5, tc.kernel(m, g, 0, 0), 1e-15, "on-site local moment")
		})
	}
}

// TestSpinDensity_SpinSymmetricIsotropy: on a flavor-block-diagonal
// Green's function with identical blocks, SU(2) symmetry forces the x, y
// and z correlators to coincide for every site pair.
func TestSpinDensity_SpinSymmetricIsotropy(t *testing.T) {
	m, _ := newHubbard(t, 2, 1.0, 0.0, 0.0)
	n := m.Sites()
	g := measure.EqualTime(spinSymmetric(n, 5))

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x := measure.SpinDensityX(m, g, i, j)
			y := measure.SpinDensityY(m, g, i, j)
			z := measure.SpinDensityZ(m, g, i, j)
			assert.InDelta(t, z, x, 1e-13, "x vs z at (%d,%d)", i, j)
			assert.InDelta(t, z, y, 1e-13, "y vs z at (%d,%d)", i, j)
		}
	}
}

// TestSpinDensity_Dispatch covers the fatal invalid-direction path and the
// agreement of the dispatcher with the direct kernels.
func TestSpinDensity_Dispatch(t *testing.T) {
	m, _ := newHubbard(t, 2, 1.0, 0.0, 0.0)
	tup := randTuple(2*m.Sites(), 77)

	_, err := measure.SpinDensity(m, tup, measure.Direction(99), 0, 1)
	assert.ErrorIs(t, err, measure.ErrDirection)

	got, err := measure.SpinDensity(m, tup, measure.Z, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, measure.SpinDensityZ(m, tup, 0, 1), got)
}

// TestMixedTimeIndicator guards the δ discipline: on a genuinely
// unequal-time tuple whose matrices all equal G, the kernels must differ
// from the equal-time evaluation exactly by the dropped indicator terms.
func TestMixedTimeIndicator(t *testing.T) {
	m, _ := newHubbard(t, 2, 1.0, 0.0, 0.0)
	n := m.Sites()
	g := randDense(2*n, 9)

	equal := measure.EqualTime(g)
	displaced := measure.NewTuple(g, g, g, g)

	assert.True(t, equal.EqualTimed())
	assert.False(t, displaced.EqualTimed())

	// On-site charge density: the difference is Σ_f 1·G[a,a] from the two
	// same-index mixed contractions.
	wantDiff := g.At(0, 0) + g.At(n, n)
	diff := measure.ChargeDensity(m, equal, 0, 0) - measure.ChargeDensity(m, displaced, 0, 0)
	assert.InDelta(t, wantDiff, diff, 1e-13)

	// Off-site pairs carry no δ term, so both tuples agree.
	assert.InDelta(t,
		measure.ChargeDensity(m, equal, 0, 1),
		measure.ChargeDensity(m, displaced, 0, 1), 1e-15)
}
