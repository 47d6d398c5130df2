package simulation

// StageCreation drains the CreationQueue, allocating one fully-equipped
// agent per command (spec §4.8). It runs last in the stage graph so
// these agents first appear in next tick's spatial index rather than
// this one's (spec §4.10).
func StageCreation(w *World, res *Resources) {
	for _, cmd := range res.CreationQueue {
		e := w.Entities.Create()
		w.Positions.Set(e, cmd.Position)
		w.Headings.Set(e, cmd.Heading)
		w.Velocities.Set(e, cmd.Velocity)
		w.Behaviors.Set(e, cmd.Behavior)
	}
	res.CreationQueue = res.CreationQueue[:0]
}
