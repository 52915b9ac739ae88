// Package greens: sentinel error set.
// All entry points MUST return these sentinels (possibly wrapped with an
// operation prefix via fmt.Errorf("Op: %w", err)) and tests MUST check them
// via errors.Is.
package greens

import "errors"

var (
	// ErrNilBuffer indicates a nil matrix buffer where one is required.
	ErrNilBuffer = errors.New("greens: nil matrix buffer")

	// ErrNilRep indicates a nil hopping-exponential representation.
	ErrNilRep = errors.New("greens: nil hopping representation")

	// ErrNilCalculator indicates a nil slice calculator collaborator.
	ErrNilCalculator = errors.New("greens: nil slice calculator")

	// ErrAliasedBuffers indicates target/temp/source aliasing outside the
	// documented in-place cases. Aliasing is undefined behavior for the
	// transform, so it is rejected up front.
	ErrAliasedBuffers = errors.New("greens: result and scratch buffers must not alias")

	// ErrBadDim indicates a non-positive matrix dimension at construction.
	ErrBadDim = errors.New("greens: dimension must be > 0")

	// ErrBadStep indicates a non-positive imaginary-time step.
	ErrBadStep = errors.New("greens: time step must be > 0")

	// ErrSliceRange indicates a time-slice index outside [1, Slices()].
	ErrSliceRange = errors.New("greens: slice index out of range")

	// ErrFactorRange indicates a checkerboard bond index outside the matrix
	// dimension.
	ErrFactorRange = errors.New("greens: checkerboard bond index out of range")

	// ErrGroupOverlap indicates two bonds within one checkerboard group share
	// a site; such factors do not commute and the group product is undefined.
	ErrGroupOverlap = errors.New("greens: checkerboard group bonds must be site-disjoint")
)
