package measure

import "gonum.org/v1/gonum/stat"

// Accumulator records per-measurement observable values. It is the thin
// default sink the measurement constructors bind; full binning/jackknife
// analysis belongs to the statistics layer outside this core, which can
// drain Samples into its own pipeline.
type Accumulator struct {
	samples []float64
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Record appends one observable value.
func (a *Accumulator) Record(v float64) {
	a.samples = append(a.samples, v)
}

// Count returns the number of recorded values.
func (a *Accumulator) Count() int { return len(a.samples) }

// Mean returns the sample mean, or 0 for an empty accumulator.
func (a *Accumulator) Mean() float64 {
	if len(a.samples) == 0 {
		return 0
	}

	return stat.Mean(a.samples, nil)
}

// Std returns the corrected sample standard deviation, or 0 with fewer
// than two samples.
func (a *Accumulator) Std() float64 {
	if len(a.samples) < 2 {
		return 0
	}

	return stat.StdDev(a.samples, nil)
}

// Samples returns a copy of the recorded values, oldest first.
func (a *Accumulator) Samples() []float64 {
	out := make([]float64, len(a.samples))
	copy(out, a.samples)

	return out
}

// Reset discards all recorded values, keeping the backing storage.
func (a *Accumulator) Reset() {
	a.samples = a.samples[:0]
}
