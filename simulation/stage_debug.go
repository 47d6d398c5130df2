package simulation

import (
	"log"

	"flocksim/behavior"
	"flocksim/ecs"
)

// StageDebugLog prints a one-line tally of agent counts by behavior
// kind. It is disabled by default and, unlike the eight stages
// RunTick dispatches, never mutates World or Resources, so it sits
// outside the fixed pipeline order rather than inside it.
func StageDebugLog(w *World) {
	var stationary, walking, running int
	w.Behaviors.Each(func(_ ecs.Entity, state *behavior.State) {
		switch state.Behavior.Kind {
		case behavior.Stationary:
			stationary++
		case behavior.Walking:
			walking++
		case behavior.Running:
			running++
		}
	})
	log.Printf("tick debug: stationary=%d walking=%d running=%d sockets=%d",
		stationary, walking, running, w.Sockets.Len())
}
