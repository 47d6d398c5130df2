package simulation

import (
	"flocksim/ecs"
	"flocksim/spatial"
)

// StageSpatialIndexRebuild bulk-loads a fresh spatial index from every
// agent that currently carries a Position, Heading, and BehaviorState
// (spec §4.2, §4.10). Entities that are pure client markers (Socket
// only, no Position yet) are correctly absent from the index.
func StageSpatialIndexRebuild(w *World, res *Resources) {
	entries := make([]spatial.Entry, 0, w.Positions.Len())
	w.Positions.Each(func(e ecs.Entity, pos *Position) {
		heading, hasHeading := w.Headings.Get(e)
		state, hasBehavior := w.Behaviors.Get(e)
		if !hasHeading || !hasBehavior {
			return
		}
		entries = append(entries, spatial.Entry{
			Entity:   e,
			Position: pos.V,
			Heading:  heading.R,
			Behavior: state.Behavior,
		})
	})
	res.SpatialIndex = spatial.Build(entries)
}
