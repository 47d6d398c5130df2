// Package simulation implements the per-tick pipeline: the component
// stores, the world-scoped resources, each stage named in spec §4, and
// the orchestrator that drives the frame clock and dispatches stages in
// the fixed order spec §4.10 requires.
package simulation

import (
	"flocksim/behavior"
	"flocksim/ecs"
	"flocksim/geometry"
	"flocksim/network"
	"flocksim/spatial"
)

// Position, Heading, and Velocity are thin named wrappers around the
// geometry primitives so each is a distinct component type in the
// stores below, matching the component table in spec §3.
type Position struct{ V geometry.Vector2 }
type Heading struct{ R geometry.Rotation2 }
type Velocity struct{ V geometry.Vector2 }

// Socket is the component that marks an entity as a connected client's
// presence in the world (spec §3, §4.7).
type Socket struct{ Addr string }

// World holds the entity allocator and one component Store per
// component kind named in spec §3's component table.
type World struct {
	Entities *ecs.Allocator

	Positions  *ecs.Store[Position]
	Headings   *ecs.Store[Heading]
	Velocities *ecs.Store[Velocity]
	Behaviors  *ecs.Store[behavior.State]
	Sockets    *ecs.Store[Socket]
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{
		Entities:   ecs.NewAllocator(),
		Positions:  ecs.NewStore[Position](),
		Headings:   ecs.NewStore[Heading](),
		Velocities: ecs.NewStore[Velocity](),
		Behaviors:  ecs.NewStore[behavior.State](),
		Sockets:    ecs.NewStore[Socket](),
	}
}

// CreateCommand specifies the full component set for a newly-created
// agent, per spec §4.8.
type CreateCommand struct {
	Position Position
	Heading  Heading
	Velocity Velocity
	Behavior behavior.State
}

// Resources bundles the world-scoped singletons spec §3 names besides
// the entity store itself: the clock, the two cross-task mailboxes, the
// spatial index, the region registry, and the pending-creation queue.
type Resources struct {
	Clock *FrameClock
	Delta DeltaFrame

	Inbox  []network.IncomingMessage
	Outbox []OutboundFrame

	SpatialIndex *spatial.Index

	RegionRegistry map[string]geometry.AABB

	CreationQueue []CreateCommand

	// socketsByAddr lets the Inbox stage tell a brand-new sender from one
	// refreshing its region of interest in O(1), without a linear scan of
	// the Socket store (spec §4.7).
	socketsByAddr map[string]ecs.Entity
}

// OutboundFrame pairs one tick's outgoing message with the address of
// the client it is addressed to (spec §4.9).
type OutboundFrame struct {
	Addr    string
	Message network.OutgoingMessage
}

// NewResources returns a zeroed resource bundle anchored to clock.
func NewResources(clock *FrameClock) *Resources {
	return &Resources{
		Clock:          clock,
		RegionRegistry: make(map[string]geometry.AABB),
		socketsByAddr:  make(map[string]ecs.Entity),
	}
}
