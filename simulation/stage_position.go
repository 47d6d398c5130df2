package simulation

import (
	"flocksim/ecs"
)

// StagePosition integrates every agent's velocity into its position,
// discarding the update if it would leave the open world box (spec
// §4.6). The discarded agent simply stalls against the boundary for
// this tick rather than being reflected or clamped onto it.
func StagePosition(w *World, res *Resources, params Parameters) {
	deltaSeconds := float32(res.Delta.Delta) * float32(FrameDurationMillis) / 1000.0

	w.Positions.Each(func(e ecs.Entity, pos *Position) {
		vel, ok := w.Velocities.Get(e)
		if !ok {
			return
		}
		proposed := pos.V.Add(vel.V.Scale(deltaSeconds))
		if proposed.X > 0 && proposed.X < params.WorldWidth && proposed.Y > 0 && proposed.Y < params.WorldHeight {
			pos.V = proposed
		}
	})
}
