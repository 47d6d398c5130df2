package simulation

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFrameClockAdvance(t *testing.T) {
	Convey("Given a clock started at a fixed instant", t, func() {
		start := time.Unix(0, 0)
		clock := NewFrameClock(start)

		Convey("The first tick reports zero elapsed frames", func() {
			delta := clock.Advance(func() time.Time { return start }, func(time.Duration) {})
			So(delta.Delta, ShouldEqual, int64(0))
			So(clock.IdealStartTime, ShouldResemble, start)
		})

		Convey("A tick that arrives exactly on schedule advances by one frame", func() {
			clock.Advance(func() time.Time { return start }, func(time.Duration) {})
			now := start.Add(FramePeriod)
			delta := clock.Advance(func() time.Time { return now }, func(time.Duration) {})
			So(delta.Delta, ShouldEqual, int64(1))
			So(clock.IdealStartTime, ShouldResemble, start.Add(FramePeriod))
		})

		Convey("A long stall before the next tick is reported as several elapsed frames", func() {
			clock.Advance(func() time.Time { return start }, func(time.Duration) {})
			// Scenario: a 100ms stall should show up as >= 6 frames (100/16).
			now := start.Add(100 * time.Millisecond)
			delta := clock.Advance(func() time.Time { return now }, func(time.Duration) {})
			So(delta.Delta, ShouldBeGreaterThanOrEqualTo, int64(6))
			So(clock.IdealStartTime, ShouldResemble, start.Add(time.Duration(delta.Delta)*FramePeriod))
		})

		Convey("ideal_start_time always advances by an exact multiple of the frame period", func() {
			clock.Advance(func() time.Time { return start }, func(time.Duration) {})
			now := start.Add(250 * time.Millisecond)
			before := clock.IdealStartTime
			clock.Advance(func() time.Time { return now }, func(time.Duration) {})
			elapsed := clock.IdealStartTime.Sub(before)
			So(elapsed%FramePeriod, ShouldEqual, time.Duration(0))
		})

		Convey("A tick that arrives early sleeps for the remaining time", func() {
			clock.Advance(func() time.Time { return start }, func(time.Duration) {})
			slept := time.Duration(0)
			sleepFn := func(d time.Duration) { slept = d }
			nowFn := func() time.Time { return start }
			clock.Advance(nowFn, sleepFn)
			So(slept, ShouldEqual, FramePeriod)
		})
	})
}
