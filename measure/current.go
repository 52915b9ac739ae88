package measure

import "gonum.org/v1/gonum/mat"

// CurrentCurrent is the current-current correlation kernel
// ⟨J_{s1,t1}(l) J_{s2,t2}(0)⟩ for the bond current operator
//
//	J_{s,t}(τ) = i Σ_f T[a,b]·(c_a†(τ) c_b(τ) − c_b†(τ) c_a(τ)),  a = s+f·N, b = t+f·N.
//
// The double flavor sum expands ⟨(A−A′)(B−B′)⟩ into four sign
// combinations; each is a disconnected product of equal-time number
// contractions plus a connected cross contraction:
//
//	⟨c_a†c_b c_c†c_d⟩ = (δ_ab−Gll[b,a])(δ_cd−G00[d,c]) + (δ_ad−G0l[d,a])·Gl0[b,c]
//
// The overall −1 carries the i² of the two current prefactors. The hopping
// matrix is the model's, passed explicitly over flavor-extended indices;
// flavor pairs with vanishing weight T[a,b]·T[c,d] are skipped.
func CurrentCurrent(m Model, T mat.Matrix, tup GreensTuple, src1, trg1, src2, trg2 int) float64 {
	n := m.Sites()

	var out float64
	var f1, f2 int
	for f1 = 0; f1 < m.Flavors(); f1++ {
		a, b := src1+f1*n, trg1+f1*n
		for f2 = 0; f2 < m.Flavors(); f2++ {
			c, d := src2+f2*n, trg2+f2*n
			w := T.At(a, b) * T.At(c, d)
			if w == 0 {
				continue
			}

			ab := ncon(tup.Gll, a, b)
			ba := ncon(tup.Gll, b, a)
			cd := ncon(tup.G00, c, d)
			dc := ncon(tup.G00, d, c)

			// ⟨AB⟩ − ⟨AB′⟩ − ⟨A′B⟩ + ⟨A′B′⟩
			sum := ab*cd + mcon(tup, a, d)*tup.Gl0.At(b, c)
			sum -= ab*dc + mcon(tup, a, c)*tup.Gl0.At(b, d)
			sum -= ba*cd + mcon(tup, b, d)*tup.Gl0.At(a, c)
			sum += ba*dc + mcon(tup, b, c)*tup.Gl0.At(a, d)

			out -= w * sum
		}
	}

	return out
}

// CurrentCurrentEqual is the single-matrix form of CurrentCurrent.
func CurrentCurrentEqual(m Model, T mat.Matrix, g *mat.Dense, src1, trg1, src2, trg2 int) float64 {
	return CurrentCurrent(m, T, EqualTime(g), src1, trg1, src2, trg2)
}
