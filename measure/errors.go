// Package measure: sentinel error set.
// Constructors MUST return these sentinels and tests MUST check them via
// errors.Is. Flavor-count mismatches are deliberately NOT errors — they go
// through the zap warning channel (see CheckFlavors).
package measure

import "errors"

var (
	// ErrDirection indicates an unrecognized magnetization/spin-density
	// direction selector. Fatal by design: no default, no retry.
	ErrDirection = errors.New("measure: unknown direction selector")

	// ErrNilModel indicates a nil model was passed to a constructor.
	ErrNilModel = errors.New("measure: model is nil")

	// ErrNilLattice indicates a nil lattice where bond iteration requires one.
	ErrNilLattice = errors.New("measure: lattice is nil")

	// ErrNeedHopping indicates the model does not expose a hopping matrix,
	// required by kinetic-energy and current-current observables.
	ErrNeedHopping = errors.New("measure: model does not provide a hopping matrix")

	// ErrNeedInteraction indicates the model does not expose an interaction
	// strength, required by interaction- and total-energy observables.
	ErrNeedInteraction = errors.New("measure: model does not provide an interaction strength")
)
