package simulation

import (
	"math"

	"flocksim/behavior"
	"flocksim/ecs"
	"flocksim/geometry"
	"flocksim/spatial"
)

// StageBehavior advances every agent's behavior state machine one tick,
// per spec §4.3. Agents whose countdown has not yet expired are left
// untouched; the rest make a stochastic transition and reset the
// countdown to behavior.CheckPeriodMillis.
func StageBehavior(w *World, res *Resources, params Parameters, rnd RandSource) {
	w.Behaviors.Each(func(e ecs.Entity, state *behavior.State) {
		state.NextCheckMillis -= int32(res.Delta.Delta) * FrameDurationMillis
		if state.NextCheckMillis > 0 {
			return
		}
		state.NextCheckMillis = behavior.CheckPeriodMillis

		pos, ok := w.Positions.Get(e)
		if !ok {
			return
		}

		neighbors := behaviorNeighbors(res.SpatialIndex, e, pos.V, params)
		state.Behavior = nextBehavior(state.Behavior, neighbors, params, rnd)
	})
}

// behaviorNeighborCounts holds the aggregate neighbor statistics spec
// §4.3 defines, computed once per agent per check.
type behaviorNeighborCounts struct {
	walkingMetric    int
	stationaryMetric int
	naturalCount     int
	meanDistance     float64
	runningNatural   int
	stoppedRunning   int
}

func behaviorNeighbors(idx *spatial.Index, self ecs.Entity, p geometry.Vector2, params Parameters) behaviorNeighborCounts {
	var c behaviorNeighborCounts

	for _, entry := range idx.RangeCircle(p, params.MetricRange) {
		if entry.Entity == self {
			continue
		}
		switch entry.Behavior.Kind {
		case behavior.Walking:
			c.walkingMetric++
		case behavior.Stationary:
			c.stationaryMetric++
		}
	}

	it := idx.NaturalNeighbors(p)
	var totalDistance float64
	for c.naturalCount < NaturalNeighborLimit {
		entry, ok := it.Next()
		if !ok {
			break
		}
		if entry.Entity == self {
			continue
		}
		c.naturalCount++
		totalDistance += float64(p.Distance(entry.Position))
		if entry.Behavior.Kind == behavior.Running {
			c.runningNatural++
		}
		if entry.Behavior.Kind == behavior.Stationary && entry.Behavior.WasRunningLastUpdate {
			c.stoppedRunning++
		}
	}
	if c.naturalCount > 0 {
		c.meanDistance = totalDistance / float64(c.naturalCount)
	}
	return c
}

// nextBehavior applies the fixed-priority transition table of spec
// §4.3 for one behavior check.
func nextBehavior(current behavior.Behavior, n behaviorNeighborCounts, params Parameters, rnd RandSource) behavior.Behavior {
	lambda := params.MimeticWeight
	pWalk := (1 + lambda*float64(n.walkingMetric)) / 35.0
	pStop := (1 + lambda*float64(n.stationaryMetric)) / 8.0

	var pRun, pStopRunning float64
	if n.naturalCount > 0 && n.meanDistance > 0 {
		L := params.CharacteristicLen
		e := params.MimeticExponent
		pRun = (1.0 / 25.0) * math.Pow((n.meanDistance/L)*(1+lambda*float64(n.runningNatural)), e)
		pStopRunning = (1.0 / 25.0) * math.Pow((L/n.meanDistance)*(1+lambda*float64(n.stoppedRunning)), e)
	}

	switch current.Kind {
	case behavior.Stationary:
		if rnd.Float64() < pRun {
			return behavior.NewRunning()
		}
		if rnd.Float64() < pWalk {
			return behavior.NewWalking()
		}
		return behavior.NewStationary(false)

	case behavior.Walking:
		if rnd.Float64() < pRun {
			return behavior.NewRunning()
		}
		if rnd.Float64() < pStop {
			return behavior.NewStationary(false)
		}
		return behavior.NewWalking()

	case behavior.Running:
		if rnd.Float64() < pStopRunning {
			return behavior.NewStationary(true)
		}
		return behavior.NewRunning()

	default:
		return current
	}
}
