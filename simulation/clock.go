package simulation

import "time"

// FrameDurationMillis is the fixed tick period T (spec §4.1): ≈62.5 Hz.
const FrameDurationMillis = 16

// FramePeriod is FrameDurationMillis as a time.Duration.
const FramePeriod = FrameDurationMillis * time.Millisecond

// FrameClock is the drift-compensated tick source described in spec
// §4.1. IdealStartTime only ever advances by whole multiples of
// FramePeriod, so a long GC or OS stall shows up as a large DeltaFrame
// on the next tick rather than as permanent clock skew.
type FrameClock struct {
	Number         int64
	StartTime      time.Time
	IdealStartTime time.Time

	// ticked is false until the first Advance call returns, so that call
	// can report DeltaFrame{0} instead of waiting out a full frame period.
	ticked bool
}

// NewFrameClock returns a clock starting at now, tick zero.
func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{Number: 0, StartTime: now, IdealStartTime: now}
}

// DeltaFrame is the number of whole frame periods elapsed since the
// previous tick (spec §3): 0 before the first tick, ≥1 thereafter.
type DeltaFrame struct {
	Delta int64
}

// Advance blocks via sleep until at least one full frame period has
// elapsed since IdealStartTime, then moves the clock forward by the
// resulting whole number of frames. now and sleep are injected so the
// drift-compensation arithmetic can be exercised without a real clock
// in tests.
func (c *FrameClock) Advance(now func() time.Time, sleep func(time.Duration)) DeltaFrame {
	if !c.ticked {
		c.ticked = true
		c.StartTime = now()
		return DeltaFrame{Delta: 0}
	}

	elapsed := now().Sub(c.IdealStartTime)
	if elapsed < FramePeriod {
		sleep(FramePeriod - elapsed)
		elapsed = now().Sub(c.IdealStartTime)
	}

	elapsedCount := int64(elapsed / FramePeriod)
	if elapsedCount < 1 {
		elapsedCount = 1
	}

	c.Number += elapsedCount
	c.IdealStartTime = c.IdealStartTime.Add(time.Duration(elapsedCount) * FramePeriod)
	c.StartTime = now()

	return DeltaFrame{Delta: elapsedCount}
}
