package simulation

import (
	"flocksim/behavior"
	"flocksim/ecs"
	"flocksim/geometry"
)

// StageHeading recomputes every agent's heading per spec §4.4. Agents
// without a Position (pure client markers) have no heading to update.
func StageHeading(w *World, res *Resources, params Parameters, rnd RandSource) {
	w.Headings.Each(func(e ecs.Entity, heading *Heading) {
		state, ok := w.Behaviors.Get(e)
		if !ok {
			return
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			return
		}

		switch state.Behavior.Kind {
		case behavior.Stationary:
			// unchanged

		case behavior.Walking:
			heading.R = headingWalking(res, params, rnd, pos.V, heading.R)

		case behavior.Running:
			heading.R = headingRunning(res, params, e, pos.V, heading.R)
		}
	})
}

func headingUnit(r geometry.Rotation2) geometry.Vector2 {
	return r.Apply(geometry.Vector2{X: 1, Y: 0})
}

func headingWalking(res *Resources, params Parameters, rnd RandSource, p geometry.Vector2, current geometry.Rotation2) geometry.Rotation2 {
	// RangeCircle's closed disk includes p itself, so self's own heading
	// is already one term of the sum (spec §4.4: "including self").
	sum := geometry.Zero
	for _, entry := range res.SpatialIndex.RangeCircle(p, params.MetricRange) {
		sum = sum.Add(headingUnit(entry.Heading))
	}

	preNoise := current
	if sum.Magnitude() > 0.1 {
		preNoise = geometry.NewRotation2(sum.Angle())
	}

	noise := (rnd.Float64()*2 - 1) * float64(params.HeadingNoiseRadian)
	return preNoise.Mul(geometry.NewRotation2(float32(noise)))
}

func headingRunning(res *Resources, params Parameters, self ecs.Entity, p geometry.Vector2, current geometry.Rotation2) geometry.Rotation2 {
	var sum geometry.Vector2
	count := 0
	it := res.SpatialIndex.NaturalNeighbors(p)
	for count < NaturalNeighborLimit {
		entry, ok := it.Next()
		if !ok {
			break
		}
		if entry.Entity == self || entry.Behavior.Kind != behavior.Running {
			continue
		}
		count++

		d := float64(p.Distance(entry.Position))
		if d == 0 {
			continue
		}
		f := (d - params.EquilibriumDist) / params.EquilibriumDist
		if f > 1.0 {
			f = 1.0
		}

		alignment := headingUnit(entry.Heading).Scale(float32(params.AlignmentMimetic))
		toward := entry.Position.Sub(p).Scale(float32(params.EquilibriumForce * f / d))
		sum = sum.Add(alignment).Add(toward)
	}

	if count == 0 || sum.Magnitude() == 0 {
		return current
	}
	return geometry.NewRotation2(sum.Angle())
}
