package measure

import "gonum.org/v1/gonum/mat"

// Pairing is the s-wave bond-to-bond pair correlation kernel
// ⟨Δ_{s1,t1}(l) Δ†_{s2,t2}(0)⟩ with the pair operator
// Δ_{s,t} = c_{s↑} c_{t↓}:
//
//	Gl0[s1,s2]·Gl0[t1+N,t2+N] − Gl0[s1,t2+N]·Gl0[t1+N,s2]
//
// Both contractions pair an annihilator at l with a creator at 0, so only
// Gl0 enters and no anticommutator indicator arises.
func Pairing(m Model, tup GreensTuple, src1, trg1, src2, trg2 int) float64 {
	n := m.Sites()

	return tup.Gl0.At(src1, src2)*tup.Gl0.At(trg1+n, trg2+n) -
		tup.Gl0.At(src1, trg2+n)*tup.Gl0.At(trg1+n, src2)
}

// PairingAlt is the Hermitian-conjugate pair correlation kernel
// ⟨Δ†_{s1,t1}(l) Δ_{s2,t2}(0)⟩, built from (I − G) blocks: creators at l
// contract against annihilators at 0, so every same-flavor contraction
// carries the mixed-time δ indicator:
//
//	(δ_{t1t2} − G0l[t2+N,t1+N])·(δ_{s1s2} − G0l[s2,s1]) − G0l[s2,t1+N]·G0l[t2+N,s1]
func PairingAlt(m Model, tup GreensTuple, src1, trg1, src2, trg2 int) float64 {
	n := m.Sites()

	return mcon(tup, trg1+n, trg2+n)*mcon(tup, src1, src2) -
		tup.G0l.At(src2, trg1+n)*tup.G0l.At(trg2+n, src1)
}

// PairingCombined is the Hermitian combination Pairing + PairingAlt. The
// identity holds exactly, term by term, for every site tuple and every
// Green's-function input.
func PairingCombined(m Model, tup GreensTuple, src1, trg1, src2, trg2 int) float64 {
	return Pairing(m, tup, src1, trg1, src2, trg2) + PairingAlt(m, tup, src1, trg1, src2, trg2)
}

// PairingEqual is the single-matrix form of Pairing.
func PairingEqual(m Model, g *mat.Dense, src1, trg1, src2, trg2 int) float64 {
	return Pairing(m, EqualTime(g), src1, trg1, src2, trg2)
}

// PairingAltEqual is the single-matrix form of PairingAlt.
func PairingAltEqual(m Model, g *mat.Dense, src1, trg1, src2, trg2 int) float64 {
	return PairingAlt(m, EqualTime(g), src1, trg1, src2, trg2)
}
