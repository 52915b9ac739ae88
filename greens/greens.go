package greens

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Unwrap recovers the physical Green's function from the effective one:
// target = eThalfplus · source · eThalfminus, using the active hopping
// representation. The result is written into target, which is returned.
//
// Buffer discipline (see package doc):
//   - dense path: temp ← source·minus, target ← plus·temp. temp must alias
//     neither source nor target; target MAY alias source (source is not
//     read after the first multiply).
//   - checkerboard path: source is copied into target first, then factors
//     are applied in place on target; temp is untouched, so target==temp is
//     harmless, but target must not partially overlap source.
//
// Dimension mismatches between the buffers and the representation are not
// pre-validated; they surface as panics from the underlying gonum layer.
// No partial result is produced on such a failure.
func Unwrap(rep HoppingExp, target, temp, source *mat.Dense) (*mat.Dense, error) {
	if rep == nil {
		return nil, ErrNilRep
	}
	if target == nil || temp == nil || source == nil {
		return nil, ErrNilBuffer
	}
	if target == temp && !isCheckerboard(rep) {
		return nil, ErrAliasedBuffers
	}
	if temp == source && !isCheckerboard(rep) {
		return nil, ErrAliasedBuffers
	}

	rep.apply(target, temp, source)

	return target, nil
}

// isCheckerboard reports whether rep takes the in-place factor path, which
// never touches temp.
func isCheckerboard(rep HoppingExp) bool {
	_, ok := rep.(*Checkerboard)

	return ok
}

// Equal computes the physical equal-time Green's function from the
// effective matrix source into ws.Phys and returns it.
// Overwrites ws.Tmp and ws.Phys; any previously returned matrix backed by
// those buffers is invalidated. With unchanged rep, ws and source the call
// is idempotent bit for bit — the equal-time path consumes no state.
func Equal(rep HoppingExp, ws *Workspace, source *mat.Dense) (*mat.Dense, error) {
	if ws == nil {
		return nil, fmt.Errorf("Equal: %w", ErrNilBuffer)
	}
	g, err := Unwrap(rep, ws.Phys, ws.Tmp, source)
	if err != nil {
		return nil, fmt.Errorf("Equal: %w", err)
	}

	return g, nil
}

// EqualCopy is the convenience wrapper returning a fresh copy of the
// physical Green's function, detached from every workspace buffer. Use it
// when the snapshot must survive later propagation calls.
// Overwrites ws.Tmp and ws.Phys like Equal; allocates one dim×dim matrix.
func EqualCopy(rep HoppingExp, ws *Workspace, source *mat.Dense) (*mat.Dense, error) {
	g, err := Equal(rep, ws, source)
	if err != nil {
		return nil, fmt.Errorf("EqualCopy: %w", err)
	}

	return mat.DenseCopyOf(g), nil
}

// AtSlice computes the physical equal-time Green's function at
// imaginary-time slice l (1-based, within [1, calc.Slices()]). The
// stabilization collaborator produces the effective Green's function at l
// into ws.Eff; the basis transform then yields the physical result in
// ws.Phys, which is returned.
//
// Side effect: ws.Eff, ws.Tmp and ws.Phys are ALL overwritten — every
// previously obtained Green's function backed by the workspace is
// invalidated unless the caller copied it. Calculator failures surface to
// the caller wrapped with the operation prefix only; there are no retries.
func AtSlice(calc SliceCalculator, rep HoppingExp, ws *Workspace, l int) (*mat.Dense, error) {
	if calc == nil {
		return nil, fmt.Errorf("AtSlice: %w", ErrNilCalculator)
	}
	if ws == nil {
		return nil, fmt.Errorf("AtSlice: %w", ErrNilBuffer)
	}
	if l < 1 || l > calc.Slices() {
		return nil, fmt.Errorf("AtSlice(%d): %w", l, ErrSliceRange)
	}

	if err := calc.CalculateGreens(l, ws.Eff); err != nil {
		return nil, fmt.Errorf("AtSlice(%d): %w", l, err)
	}

	g, err := Unwrap(rep, ws.Phys, ws.Tmp, ws.Eff)
	if err != nil {
		return nil, fmt.Errorf("AtSlice(%d): %w", l, err)
	}

	return g, nil
}
