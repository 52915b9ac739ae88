package greens

import "gonum.org/v1/gonum/mat"

// HoppingExp is the active representation of the half-time-step
// hopping-exponential pair (e^{-Δτ·T/2}, e^{+Δτ·T/2}). The interface is
// sealed: exactly two implementations exist, DenseExp and Checkerboard, and
// both must produce the same basis transform for the same hopping matrix —
// that equivalence is the primary correctness property of this layer.
type HoppingExp interface {
	// Dim returns the matrix dimension the representation acts on.
	Dim() int

	// apply computes target = plus · source · minus using temp as scratch.
	// Aliasing rules are path-specific and enforced by Unwrap.
	apply(target, temp, source *mat.Dense)
}

// Workspace is the caller-owned buffer context shared across propagation
// calls (the core allocates no persistent state of its own). Buffer roles:
//
//	Eff  — staging buffer for the effective Green's function; overwritten
//	       by AtSlice
//	Tmp  — scratch for the two-multiply dense transform; overwritten by
//	       Equal, EqualCopy and AtSlice
//	Phys — result buffer holding the physical Green's function; overwritten
//	       by Equal, EqualCopy and AtSlice
//
// A call that overwrites a buffer invalidates every previously returned
// matrix backed by it; callers needing a stable snapshot use EqualCopy or
// copy explicitly. The Workspace is not safe for concurrent use.
type Workspace struct {
	Eff  *mat.Dense
	Tmp  *mat.Dense
	Phys *mat.Dense
}

// NewWorkspace allocates an m×m workspace.
// Returns ErrBadDim if m <= 0.
func NewWorkspace(m int) (*Workspace, error) {
	if m <= 0 {
		return nil, ErrBadDim
	}

	return &Workspace{
		Eff:  mat.NewDense(m, m, nil),
		Tmp:  mat.NewDense(m, m, nil),
		Phys: mat.NewDense(m, m, nil),
	}, nil
}

// SliceCalculator is the stabilization subsystem's entry point: it writes
// the effective Green's function at the requested imaginary-time slice
// into dst. Slice indices are 1-based and valid in [1, Slices()]. Any
// numerical failure surfaces to the caller unchanged; this layer performs
// no retries and no recovery.
type SliceCalculator interface {
	Slices() int
	CalculateGreens(slice int, dst *mat.Dense) error
}

// DenseExp is the dense hopping-exponential representation: one matrix per
// side, with Plus the exact inverse of Minus. Both are supplied by the
// stabilization subsystem (which already holds them for propagation); they
// are treated read-only here and never recomputed.
type DenseExp struct {
	minus *mat.Dense // eThalfminus = e^{-Δτ·T/2}
	plus  *mat.Dense // eThalfplus  = e^{+Δτ·T/2}
	dim   int
}

// NewDenseExp wraps the half-step factor pair.
// Returns ErrNilBuffer for nil factors and ErrBadDim if the factors are
// non-square or differ in dimension. Inverse-ness of plus is the supplier's
// contract and is not verified here.
func NewDenseExp(minus, plus *mat.Dense) (*DenseExp, error) {
	if minus == nil || plus == nil {
		return nil, ErrNilBuffer
	}
	mr, mc := minus.Dims()
	pr, pc := plus.Dims()
	if mr != mc || pr != pc || mr != pr {
		return nil, ErrBadDim
	}

	return &DenseExp{minus: minus, plus: plus, dim: mr}, nil
}

// Dim returns the matrix dimension the factors act on.
func (d *DenseExp) Dim() int { return d.dim }

// apply performs the dense two-multiply transform:
// temp ← source · minus; target ← plus · temp.
// source is not read after the first multiply, so target may alias source;
// temp must alias neither (enforced by Unwrap).
func (d *DenseExp) apply(target, temp, source *mat.Dense) {
	temp.Mul(source, d.minus)
	target.Mul(d.plus, temp)
}
