// Package network defines the wire protocol and transport/codec error
// types for talking to simulation clients over WebSocket, and a
// gorilla/websocket-based client loop (spec §6, §7).
package network

import "flocksim/geometry"

// IncomingEnvelope is the client-to-server message shape: a single
// tagged field, matching the `{ "RegisterInterest": {...} }` wire
// format of spec §6.
type IncomingEnvelope struct {
	RegisterInterest *RegisterInterest `json:"RegisterInterest,omitempty"`
}

// RegisterInterest asks the server to remember the sender's region of
// interest. The core's current Outbox stage still broadcasts to every
// client (spec §4.9); this value is recorded in the RegionRegistry for
// the region-filtering optimization spec §4.9 defers.
type RegisterInterest struct {
	XMin float32 `json:"x_min"`
	XMax float32 `json:"x_max"`
	YMin float32 `json:"y_min"`
	YMax float32 `json:"y_max"`
}

// ToAABB converts a wire RegisterInterest into the geometry type the
// RegionRegistry stores.
func (r RegisterInterest) ToAABB() geometry.AABB {
	return geometry.AABB{XMin: r.XMin, XMax: r.XMax, YMin: r.YMin, YMax: r.YMax}
}

// AgentState is one entry of an outgoing frame: position as a 2-tuple
// and heading in radians, per spec §6.
type AgentState struct {
	Position [2]float32 `json:"position"`
	Heading  float32    `json:"heading"`
}

// OutgoingMessage is the per-tick, per-client frame sent to a connected
// client: the full broadcast baseline described in spec §4.9.
type OutgoingMessage struct {
	AgentStates []AgentState `json:"agent_states"`
}

// IncomingMessage pairs a decoded client message with the address it
// arrived from, so the Inbox stage (spec §4.7) can tell a brand-new
// sender from one refreshing its region of interest. RegisterInterest
// is nil when the client's frame carried no RegisterInterest field;
// such a message still announces the sender's presence.
type IncomingMessage struct {
	Sender           string
	RegisterInterest *RegisterInterest
}
