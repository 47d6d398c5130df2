package simulation

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"flocksim/behavior"
)

func TestNextBehaviorTransitionInvariants(t *testing.T) {
	Convey("A transition out of Running with the stop-running draw forced to succeed", t, func() {
		counts := behaviorNeighborCounts{naturalCount: 1, meanDistance: 36.0, stoppedRunning: 1}
		next := nextBehavior(behavior.NewRunning(), counts, DefaultParameters(), constantRand{value: 0})

		Convey("always produces Stationary{was_running_last_update=true}", func() {
			So(next.Kind, ShouldEqual, behavior.Stationary)
			So(next.WasRunningLastUpdate, ShouldBeTrue)
		})
	})

	Convey("A transition into Stationary from Walking or the Stationary self-loop", t, func() {
		counts := behaviorNeighborCounts{}

		Convey("from Walking, forcing the stop draw to succeed and the run draw to fail", func() {
			// pRun with no natural neighbors is 0, so only the second draw
			// (pStop) needs forcing; constantRand forces every draw alike,
			// so use a two-stage source instead.
			rnd := &sequenceRand{values: []float64{0.999, 0.0}}
			next := nextBehavior(behavior.NewWalking(), counts, DefaultParameters(), rnd)
			So(next.Kind, ShouldEqual, behavior.Stationary)
			So(next.WasRunningLastUpdate, ShouldBeFalse)
		})

		Convey("from the Stationary self-loop (both draws fail)", func() {
			rnd := &sequenceRand{values: []float64{0.999, 0.999}}
			next := nextBehavior(behavior.NewStationary(true), counts, DefaultParameters(), rnd)
			So(next.Kind, ShouldEqual, behavior.Stationary)
			So(next.WasRunningLastUpdate, ShouldBeFalse)
		})
	})
}

func TestVelocityZeroIffStationary(t *testing.T) {
	Convey("Given one agent per behavior kind", t, func() {
		w := NewWorld()
		params := DefaultParameters()

		stationary := w.Entities.Create()
		w.Headings.Set(stationary, Heading{})
		w.Behaviors.Set(stationary, behavior.NewState(behavior.NewStationary(false)))
		w.Velocities.Set(stationary, Velocity{})

		walking := w.Entities.Create()
		w.Headings.Set(walking, Heading{})
		w.Behaviors.Set(walking, behavior.NewState(behavior.NewWalking()))
		w.Velocities.Set(walking, Velocity{})

		running := w.Entities.Create()
		w.Headings.Set(running, Heading{})
		w.Behaviors.Set(running, behavior.NewState(behavior.NewRunning()))
		w.Velocities.Set(running, Velocity{})

		StageVelocity(w, params)

		Convey("Velocity is zero exactly for the stationary agent", func() {
			vStationary, _ := w.Velocities.Get(stationary)
			vWalking, _ := w.Velocities.Get(walking)
			vRunning, _ := w.Velocities.Get(running)

			So(vStationary.V.Magnitude(), ShouldEqual, float32(0))
			So(vWalking.V.Magnitude(), ShouldBeGreaterThan, float32(0))
			So(vRunning.V.Magnitude(), ShouldBeGreaterThan, float32(0))
		})
	})
}

// sequenceRand returns successive values from a fixed list, repeating
// the last one once exhausted.
type sequenceRand struct {
	values []float64
	i      int
}

func (s *sequenceRand) Float64() float64 {
	if s.i >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.i]
	s.i++
	return v
}
