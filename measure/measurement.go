package measure

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"detqmc/lattice"
)

// Measurement binds one kernel family to a model, an iterator strategy and
// an accumulator, so a generic accumulation loop can drive every
// observable uniformly: call Measure once per Green's-function snapshot.
type Measurement struct {
	family string
	model  Model
	logger *zap.Logger
	acc    *Accumulator
	eval   func(tup GreensTuple) float64
}

// Option configures a Measurement at construction.
type Option func(*Measurement)

// WithLogger routes the non-fatal diagnostic channel (flavor-count
// warnings) to l instead of the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(ms *Measurement) {
		if l != nil {
			ms.logger = l
		}
	}
}

// WithAccumulator substitutes a caller-managed accumulator, e.g. one
// shared with an external binning pipeline.
func WithAccumulator(a *Accumulator) Option {
	return func(ms *Measurement) {
		if a != nil {
			ms.acc = a
		}
	}
}

// CheckFlavors verifies a correlator's flavor-count assumption against the
// model. A mismatch is reported as a structured warning, NOT an error:
// evaluation continues with whatever values result, and interpreting them
// is the caller's responsibility. This permissiveness is deliberate — it
// keeps unconventional/exploratory models usable.
func CheckFlavors(logger *zap.Logger, family string, want, got int) {
	if want == got || logger == nil {
		return
	}
	logger.Warn("flavor count assumption violated; continuing",
		zap.String("observable", family),
		zap.Int("want", want),
		zap.Int("got", got),
	)
}

// newMeasurement performs the shared constructor stages: model guard,
// defaults, option application.
func newMeasurement(family string, m Model, opts []Option) (*Measurement, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	ms := &Measurement{
		family: family,
		model:  m,
		logger: zap.NewNop(),
		acc:    NewAccumulator(),
	}
	for _, opt := range opts {
		opt(ms)
	}

	return ms, nil
}

// Family returns the observable family name.
func (ms *Measurement) Family() string { return ms.family }

// Accumulator returns the bound accumulator.
func (ms *Measurement) Accumulator() *Accumulator { return ms.acc }

// Measure evaluates the bound kernel sweep on the tuple, records the value
// and returns it. The tuple is consumed read-only.
func (ms *Measurement) Measure(tup GreensTuple) float64 {
	v := ms.eval(tup)
	ms.acc.Record(v)

	return v
}

// MeasureEqual is the equal-time entry point: Measure on EqualTime(g).
func (ms *Measurement) MeasureEqual(g *mat.Dense) float64 {
	return ms.Measure(EqualTime(g))
}

// NewOccupationMeasurement builds the mean-occupation observable: the
// occupation kernel averaged over all flavor-extended sites of the
// current-slice Green's function. Valid for any flavor count.
func NewOccupationMeasurement(m Model, opts ...Option) (*Measurement, error) {
	ms, err := newMeasurement("occupation", m, opts)
	if err != nil {
		return nil, err
	}

	total := m.Sites() * m.Flavors()
	ms.eval = func(tup GreensTuple) float64 {
		var sum float64
		lattice.EachSite(total, func(i int) {
			sum += Occupation(tup.Gll, i)
		})

		return sum / float64(total)
	}

	return ms, nil
}

// NewChargeDensityMeasurement builds the charge-density correlation
// observable: the kernel summed over all ordered site pairs, normalized by
// N (the uniform structure-factor normalization). Assumes two flavors;
// mismatches warn and continue.
func NewChargeDensityMeasurement(m Model, opts ...Option) (*Measurement, error) {
	ms, err := newMeasurement("charge density correlation", m, opts)
	if err != nil {
		return nil, err
	}
	CheckFlavors(ms.logger, ms.family, 2, m.Flavors())

	n := m.Sites()
	ms.eval = func(tup GreensTuple) float64 {
		var sum float64
		lattice.EachSitePair(n, func(i, j int) {
			sum += ChargeDensity(m, tup, i, j)
		})

		return sum / float64(n)
	}

	return ms, nil
}

// NewMagnetizationMeasurement builds the mean magnetization observable for
// the given direction, averaged over sites. An unknown direction is fatal:
// ErrDirection, no default substituted.
func NewMagnetizationMeasurement(m Model, dir Direction, opts ...Option) (*Measurement, error) {
	var kernel func(Model, *mat.Dense, int) float64
	switch dir {
	case X:
		kernel = MagnetizationX
	case Y:
		kernel = MagnetizationY
	case Z:
		kernel = MagnetizationZ
	default:
		return nil, ErrDirection
	}

	ms, err := newMeasurement("magnetization "+dir.String(), m, opts)
	if err != nil {
		return nil, err
	}
	CheckFlavors(ms.logger, ms.family, 2, m.Flavors())

	n := m.Sites()
	ms.eval = func(tup GreensTuple) float64 {
		var sum float64
		lattice.EachSite(n, func(i int) {
			sum += kernel(m, tup.Gll, i)
		})

		return sum / float64(n)
	}

	return ms, nil
}

// NewSpinDensityMeasurement builds the spin-density correlation observable
// for the given direction: the kernel summed over all ordered site pairs,
// normalized by N. An unknown direction is fatal: ErrDirection.
func NewSpinDensityMeasurement(m Model, dir Direction, opts ...Option) (*Measurement, error) {
	var kernel func(Model, GreensTuple, int, int) float64
	switch dir {
	case X:
		kernel = SpinDensityX
	case Y:
		kernel = SpinDensityY
	case Z:
		kernel = SpinDensityZ
	default:
		return nil, ErrDirection
	}

	ms, err := newMeasurement("spin density correlation "+dir.String(), m, opts)
	if err != nil {
		return nil, err
	}
	CheckFlavors(ms.logger, ms.family, 2, m.Flavors())

	n := m.Sites()
	ms.eval = func(tup GreensTuple) float64 {
		var sum float64
		lattice.EachSitePair(n, func(i, j int) {
			sum += kernel(m, tup, i, j)
		})

		return sum / float64(n)
	}

	return ms, nil
}

// NewPairingMeasurement builds the bond-to-bond pair correlation
// observable: the Hermitian combination PairingCombined summed over all
// ordered pairs of lattice bonds, normalized by N.
func NewPairingMeasurement(m Model, lat *lattice.Square, opts ...Option) (*Measurement, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	ms, err := newMeasurement("pairing correlation", m, opts)
	if err != nil {
		return nil, err
	}
	CheckFlavors(ms.logger, ms.family, 2, m.Flavors())

	n := m.Sites()
	ms.eval = func(tup GreensTuple) float64 {
		var sum float64
		lattice.EachBondPair(lat, func(src1, trg1, src2, trg2 int) {
			sum += PairingCombined(m, tup, src1, trg1, src2, trg2)
		})

		return sum / float64(n)
	}

	return ms, nil
}

// NewCurrentCurrentMeasurement builds the current-current correlation
// observable over all ordered bond pairs, normalized by N. The model must
// expose its hopping matrix: ErrNeedHopping otherwise.
func NewCurrentCurrentMeasurement(m Model, lat *lattice.Square, opts ...Option) (*Measurement, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	hm, ok := m.(HoppingModel)
	if !ok {
		return nil, ErrNeedHopping
	}
	if lat == nil {
		return nil, ErrNilLattice
	}
	ms, err := newMeasurement("current-current correlation", m, opts)
	if err != nil {
		return nil, err
	}
	CheckFlavors(ms.logger, ms.family, 2, m.Flavors())

	n := m.Sites()
	T := hm.Hopping()
	ms.eval = func(tup GreensTuple) float64 {
		var sum float64
		lattice.EachBondPair(lat, func(src1, trg1, src2, trg2 int) {
			sum += CurrentCurrent(m, T, tup, src1, trg1, src2, trg2)
		})

		return sum / float64(n)
	}

	return ms, nil
}

// NewKineticEnergyMeasurement builds the extensive hopping-energy
// observable. The model must expose its hopping matrix: ErrNeedHopping.
func NewKineticEnergyMeasurement(m Model, opts ...Option) (*Measurement, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	hm, ok := m.(HoppingModel)
	if !ok {
		return nil, ErrNeedHopping
	}
	ms, err := newMeasurement("kinetic energy", m, opts)
	if err != nil {
		return nil, err
	}

	T := hm.Hopping()
	ms.eval = func(tup GreensTuple) float64 {
		return KineticEnergy(T, tup.Gll)
	}

	return ms, nil
}

// NewInteractionEnergyMeasurement builds the extensive on-site interaction
// energy observable. The model must expose an interaction strength:
// ErrNeedInteraction.
func NewInteractionEnergyMeasurement(m Model, opts ...Option) (*Measurement, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	im, ok := m.(InteractionModel)
	if !ok {
		return nil, ErrNeedInteraction
	}
	ms, err := newMeasurement("interaction energy", m, opts)
	if err != nil {
		return nil, err
	}
	CheckFlavors(ms.logger, ms.family, 2, m.Flavors())

	ms.eval = func(tup GreensTuple) float64 {
		return InteractionEnergy(im, tup.Gll)
	}

	return ms, nil
}

// NewTotalEnergyMeasurement builds the extensive total-energy observable
// ⟨H_T⟩ + ⟨H_U⟩; requires both the hopping matrix and the interaction
// strength.
func NewTotalEnergyMeasurement(m Model, opts ...Option) (*Measurement, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	hm, ok := m.(HoppingModel)
	if !ok {
		return nil, ErrNeedHopping
	}
	im, ok := m.(InteractionModel)
	if !ok {
		return nil, ErrNeedInteraction
	}
	ms, err := newMeasurement("total energy", m, opts)
	if err != nil {
		return nil, err
	}
	CheckFlavors(ms.logger, ms.family, 2, m.Flavors())

	T := hm.Hopping()
	ms.eval = func(tup GreensTuple) float64 {
		return TotalEnergy(im, T, tup.Gll)
	}

	return ms, nil
}
