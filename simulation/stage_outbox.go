package simulation

import (
	"flocksim/ecs"
	"flocksim/network"
)

// StageOutbox builds one OutgoingMessage per connected client,
// broadcasting every agent's current position and heading (spec §4.9).
// Region-of-interest filtering is deliberately not applied here yet;
// the RegionRegistry is populated for a future per-client filter but
// the baseline behavior is full broadcast.
func StageOutbox(w *World, res *Resources) {
	snapshot := make([]network.AgentState, 0, w.Positions.Len())
	w.Positions.Each(func(e ecs.Entity, pos *Position) {
		heading, ok := w.Headings.Get(e)
		if !ok {
			return
		}
		snapshot = append(snapshot, network.AgentState{
			Position: [2]float32{pos.V.X, pos.V.Y},
			Heading:  heading.R.Angle,
		})
	})

	w.Sockets.Each(func(e ecs.Entity, sock *Socket) {
		res.Outbox = append(res.Outbox, OutboundFrame{
			Addr:    sock.Addr,
			Message: network.OutgoingMessage{AgentStates: snapshot},
		})
	})
}
