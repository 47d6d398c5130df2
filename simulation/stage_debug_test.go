package simulation

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"flocksim/behavior"
)

func TestStageDebugLogDoesNotMutateWorld(t *testing.T) {
	Convey("Given a world with one agent of each behavior kind", t, func() {
		w := NewWorld()
		for _, b := range []behavior.Behavior{behavior.NewStationary(false), behavior.NewWalking(), behavior.NewRunning()} {
			e := w.Entities.Create()
			w.Behaviors.Set(e, behavior.NewState(b))
		}

		Convey("Logging the tally leaves the behavior store untouched", func() {
			before := w.Behaviors.Len()
			StageDebugLog(w)
			So(w.Behaviors.Len(), ShouldEqual, before)
		})
	})
}
