// Package lattice: sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.
package lattice

import "errors"

var (
	// ErrBadLattice indicates a non-positive linear lattice size.
	ErrBadLattice = errors.New("lattice: linear size must be > 0")

	// ErrNilLattice indicates a nil *Square was passed where one is required.
	ErrNilLattice = errors.New("lattice: lattice is nil")

	// ErrBondRange indicates a bond index outside the valid site range.
	ErrBondRange = errors.New("lattice: bond index out of range")

	// ErrBondOverlap indicates two bonds within one checkerboard group share
	// a site, violating the disjointness invariant.
	ErrBondOverlap = errors.New("lattice: bonds within a group must be site-disjoint")

	// ErrBlockShape indicates block-diagonal construction from blocks that are
	// missing, non-square, or of unequal dimension.
	ErrBlockShape = errors.New("lattice: blocks must be square and equally sized")
)
