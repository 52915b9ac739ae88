package measure

import "gonum.org/v1/gonum/mat"

// Wick contraction helpers. All kernel algebra reduces to these two
// contractions plus direct ⟨c_a(τ) c_b†(τ')⟩ = G_ττ'[a,b] lookups.

// ncon is the equal-time number contraction ⟨c_a† c_b⟩ = δ_ab − g[b,a]
// against one of the equal-time matrices (G00 or Gll).
func ncon(g *mat.Dense, a, b int) float64 {
	var d float64
	if a == b {
		d = 1
	}

	return d - g.At(b, a)
}

// mcon is the mixed-time contraction ⟨c_a†(l) c_b(0)⟩ = id·δ_ab − G0l[b,a].
// The anticommutator indicator id is live only on an equal-time tuple — it
// must never be dropped there, and never appear otherwise.
func mcon(tup GreensTuple, a, b int) float64 {
	var d float64
	if a == b {
		d = tup.delta()
	}

	return d - tup.G0l.At(b, a)
}

// Occupation is the occupation kernel ⟨n_i⟩ = 1 − G[i,i] at extended index
// i: i < N addresses spin-up, i+N spin-down. Sum rule: G=0 (fully
// occupied) gives 1, G=I gives 0.
func Occupation(g *mat.Dense, i int) float64 {
	return 1 - g.At(i, i)
}

// ChargeDensity is the charge-density correlation kernel
// ⟨n_i(l) n_j(0)⟩ summed over all flavor combinations:
//
//	Σ_{f1,f2} (1−Gll[a,a])(1−G00[b,b]) + (δ_ab − G0l[b,a])·Gl0[a,b]
//
// with a = i+f1·N, b = j+f2·N — the direct (density-density) product plus
// the Wick-exchange contraction per flavor pair.
func ChargeDensity(m Model, tup GreensTuple, i, j int) float64 {
	n := m.Sites()
	var out float64
	var f1, f2 int
	for f1 = 0; f1 < m.Flavors(); f1++ {
		a := i + f1*n
		for f2 = 0; f2 < m.Flavors(); f2++ {
			b := j + f2*n
			out += (1 - tup.Gll.At(a, a)) * (1 - tup.G00.At(b, b))
			out += mcon(tup, a, b) * tup.Gl0.At(a, b)
		}
	}

	return out
}

// ChargeDensityEqual is the single-matrix form of ChargeDensity.
func ChargeDensityEqual(m Model, g *mat.Dense, i, j int) float64 {
	return ChargeDensity(m, EqualTime(g), i, j)
}

// MagnetizationX is the on-site x-magnetization kernel
// ⟨c_i↑† c_i↓ + c_i↓† c_i↑⟩ = −G[i+N,i] − G[i,i+N].
func MagnetizationX(m Model, g *mat.Dense, i int) float64 {
	n := m.Sites()

	return -g.At(i+n, i) - g.At(i, i+n)
}

// MagnetizationY is the on-site y-magnetization kernel, reported in units
// of i for real-valued simulations: ⟨m_y⟩/i = G[i+N,i] − G[i,i+N].
func MagnetizationY(m Model, g *mat.Dense, i int) float64 {
	n := m.Sites()

	return g.At(i+n, i) - g.At(i, i+n)
}

// MagnetizationZ is the on-site z-magnetization kernel
// ⟨n_i↑ − n_i↓⟩ = G[i+N,i+N] − G[i,i].
func MagnetizationZ(m Model, g *mat.Dense, i int) float64 {
	n := m.Sites()

	return g.At(i+n, i+n) - g.At(i, i)
}

// SpinDensityZ is the z-spin-density correlation kernel
// ⟨m^z_i(l) m^z_j(0)⟩ with m^z = n↑ − n↓: the 8-term signed flavor sum
//
//	Σ_{f1,f2} s(f1)·s(f2)·[(1−Gll[a,a])(1−G00[b,b]) + (δ_ab − G0l[b,a])·Gl0[a,b]]
//
// with s(up) = +1, s(down) = −1.
func SpinDensityZ(m Model, tup GreensTuple, i, j int) float64 {
	n := m.Sites()
	offs := [2]int{0, n}
	sgn := [2]float64{1, -1}

	var out float64
	var p, q int
	for p = 0; p < 2; p++ {
		a := i + offs[p]
		for q = 0; q < 2; q++ {
			b := j + offs[q]
			out += sgn[p] * sgn[q] *
				((1-tup.Gll.At(a, a))*(1-tup.G00.At(b, b)) + mcon(tup, a, b)*tup.Gl0.At(a, b))
		}
	}

	return out
}

// spinFlipTerms expands the four cross-flavor operator pairings shared by
// the x and y spin-density kernels. With u/d the up/down extended indices
// of i and j, the four Wick-reduced lines are:
//
//	t1: (↑↓,↑↓)  Gll[id,iu]·G00[jd,ju] − G0l[jd,iu]·Gl0[id,ju]
//	t2: (↑↓,↓↑)  Gll[id,iu]·G00[ju,jd] + (δ_ij − G0l[ju,iu])·Gl0[id,jd]
//	t3: (↓↑,↑↓)  Gll[iu,id]·G00[jd,ju] + (δ_ij − G0l[jd,id])·Gl0[iu,ju]
//	t4: (↓↑,↓↑)  Gll[iu,id]·G00[ju,jd] − G0l[ju,id]·Gl0[iu,jd]
//
// The δ indicator lives only on the same-flavor mixed-time contractions.
func spinFlipTerms(m Model, tup GreensTuple, i, j int) (t1, t2, t3, t4 float64) {
	n := m.Sites()
	iu, id := i, i+n
	ju, jd := j, j+n

	t1 = tup.Gll.At(id, iu)*tup.G00.At(jd, ju) - tup.G0l.At(jd, iu)*tup.Gl0.At(id, ju)
	t2 = tup.Gll.At(id, iu)*tup.G00.At(ju, jd) + mcon(tup, iu, ju)*tup.Gl0.At(id, jd)
	t3 = tup.Gll.At(iu, id)*tup.G00.At(jd, ju) + mcon(tup, id, jd)*tup.Gl0.At(iu, ju)
	t4 = tup.Gll.At(iu, id)*tup.G00.At(ju, jd) - tup.G0l.At(ju, id)*tup.Gl0.At(iu, jd)

	return t1, t2, t3, t4
}

// SpinDensityX is the x-spin-density correlation kernel
// ⟨m^x_i(l) m^x_j(0)⟩ with m^x = c↑†c↓ + c↓†c↑: all four cross-flavor
// pairings enter with +.
func SpinDensityX(m Model, tup GreensTuple, i, j int) float64 {
	t1, t2, t3, t4 := spinFlipTerms(m, tup, i, j)

	return t1 + t2 + t3 + t4
}

// SpinDensityY is the y-spin-density correlation kernel: the (−i)² = −1
// prefactor of m^y·m^y flips the sign of the flavor-preserving pairings,
// giving −t1 + t2 + t3 − t4.
func SpinDensityY(m Model, tup GreensTuple, i, j int) float64 {
	t1, t2, t3, t4 := spinFlipTerms(m, tup, i, j)

	return -t1 + t2 + t3 - t4
}

// SpinDensityEqual is the single-matrix form of the spin-density kernels;
// the direction selector dispatches to x/y/z and is fatal on an unknown
// value.
func SpinDensityEqual(m Model, g *mat.Dense, dir Direction, i, j int) (float64, error) {
	return SpinDensity(m, EqualTime(g), dir, i, j)
}

// SpinDensity dispatches a spin-density direction to its kernel.
// Returns ErrDirection for an unrecognized selector.
func SpinDensity(m Model, tup GreensTuple, dir Direction, i, j int) (float64, error) {
	switch dir {
	case X:
		return SpinDensityX(m, tup, i, j), nil
	case Y:
		return SpinDensityY(m, tup, i, j), nil
	case Z:
		return SpinDensityZ(m, tup, i, j), nil
	default:
		return 0, ErrDirection
	}
}
