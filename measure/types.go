package measure

import "gonum.org/v1/gonum/mat"

// GreensTuple packs the four Green's-function matrices at combined time
// arguments needed by unequal-time correlators:
//
//	G00 — equal-time Green's function at the reference slice 0
//	G0l — time-displaced ⟨c_i(0) c_j†(l)⟩
//	Gl0 — time-displaced ⟨c_i(l) c_j†(0)⟩
//	Gll — equal-time Green's function at slice l
//
// The tuple is produced once per measurement step by the propagation layer
// and consumed read-only by kernels; the core never mutates it.
//
// The unexported equal flag records whether the tuple is the equal-time
// degeneration (G,G,G,G): it drives the δ_ab anticommutator indicator
// inside contractions against the mixed-time matrices G0l/Gl0, which is
// present exactly when both time arguments coincide.
type GreensTuple struct {
	G00, G0l, Gl0, Gll *mat.Dense

	equal bool
}

// NewTuple packs four distinct-time Green's functions (l ≠ 0): the
// mixed-time δ indicator is off.
func NewTuple(g00, g0l, gl0, gll *mat.Dense) GreensTuple {
	return GreensTuple{G00: g00, G0l: g0l, Gl0: gl0, Gll: gll}
}

// EqualTime adapts a single equal-time Green's function to the tuple shape
// (G,G,G,G) with the δ indicator on. Every single-matrix kernel variant is
// defined as the tuple kernel on EqualTime(G); the degeneracy is exact.
func EqualTime(g *mat.Dense) GreensTuple {
	return GreensTuple{G00: g, G0l: g, Gl0: g, Gll: g, equal: true}
}

// EqualTimed reports whether the tuple is the equal-time degeneration.
func (tup GreensTuple) EqualTimed() bool { return tup.equal }

// delta is the mixed-time anticommutator indicator: 1 on an equal-time
// tuple, 0 otherwise.
func (tup GreensTuple) delta() float64 {
	if tup.equal {
		return 1
	}

	return 0
}

// Direction selects a magnetization / spin-density component.
type Direction int

const (
	// X is the in-plane spin-flip component c↑†c↓ + c↓†c↑.
	X Direction = iota
	// Y is the in-plane component −i(c↑†c↓ − c↓†c↑); real-valued kernels
	// report it in units of i.
	Y
	// Z is the density difference n↑ − n↓.
	Z
)

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	switch d {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return "invalid"
	}
}

// Model is the narrow contract every kernel needs from the model
// collaborator: the lattice size N (the flavor block offset) and the
// flavor count F. The Green's-function dimension is F·N.
type Model interface {
	Sites() int
	Flavors() int
}

// HoppingModel additionally exposes the model's hopping matrix over
// flavor-extended indices, required by kinetic-energy and current-current
// kernels. The matrix is read-only external input; a
// *lattice.BlockDiagonal unlocks the per-flavor-block fast path.
type HoppingModel interface {
	Model
	Hopping() mat.Matrix
}

// InteractionModel additionally exposes the on-site interaction strength
// (Hubbard U convention), required by the interaction-energy kernel.
type InteractionModel interface {
	Model
	Interaction() float64
}

// HubbardModel is the concrete minimal model collaborator: N sites, two
// flavors, on-site interaction U, and a flavor-extended hopping matrix.
// It exists so the kernel layer can be exercised end to end; full model
// construction lives outside this core.
type HubbardModel struct {
	N   int
	U   float64
	Hop mat.Matrix
}

// Sites returns the lattice site count N.
func (h HubbardModel) Sites() int { return h.N }

// Flavors returns 2: spin-up and spin-down.
func (h HubbardModel) Flavors() int { return 2 }

// Interaction returns the Hubbard U.
func (h HubbardModel) Interaction() float64 { return h.U }

// Hopping returns the flavor-extended hopping matrix.
func (h HubbardModel) Hopping() mat.Matrix { return h.Hop }
