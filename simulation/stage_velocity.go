package simulation

import (
	"flocksim/behavior"
	"flocksim/ecs"
	"flocksim/geometry"
)

// StageVelocity sets every agent's velocity from its current behavior
// and heading, per spec §4.5.
func StageVelocity(w *World, params Parameters) {
	w.Velocities.Each(func(e ecs.Entity, vel *Velocity) {
		state, ok := w.Behaviors.Get(e)
		if !ok {
			return
		}
		heading, ok := w.Headings.Get(e)
		if !ok {
			return
		}

		switch state.Behavior.Kind {
		case behavior.Stationary:
			vel.V = geometry.Zero
		case behavior.Walking:
			vel.V = heading.R.Apply(geometry.Vector2{X: params.WalkingSpeed})
		case behavior.Running:
			vel.V = heading.R.Apply(geometry.Vector2{X: params.RunningSpeed})
		}
	})
}
