package simulation

import "flocksim/atomic_float"

// tickSmoothing controls how quickly AverageDeltaFrame reacts to a new
// sample; small enough that one stalled tick doesn't spike the gauge.
const tickSmoothing = 0.1

// Metrics is a small set of gauges the simulation task updates every
// tick and the network task's status handlers read concurrently,
// without a mutex (spec §5: the two tasks never share state except
// through mailboxes — this is the one deliberate, read-only exception).
type Metrics struct {
	avgDeltaFrame *atomic_float.AtomicFloat64
}

// NewMetrics returns a zeroed gauge set.
func NewMetrics() *Metrics {
	return &Metrics{avgDeltaFrame: atomic_float.NewAtomicFloat64(0)}
}

// Observe folds one tick's DeltaFrame into the exponential moving
// average.
func (m *Metrics) Observe(delta DeltaFrame) {
	old := m.avgDeltaFrame.AtomicRead()
	m.avgDeltaFrame.AtomicSet(old + tickSmoothing*(float64(delta.Delta)-old))
}

// AverageDeltaFrame returns the current smoothed frames-elapsed-per-tick
// reading. A value well above 1.0 indicates the simulation is missing
// its tick deadline.
func (m *Metrics) AverageDeltaFrame() float64 {
	return m.avgDeltaFrame.AtomicRead()
}
