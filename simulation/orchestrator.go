package simulation

import (
	"context"
	"time"

	"flocksim/behavior"
	"flocksim/geometry"
	"flocksim/network"
)

// Orchestrator drives the simulation task: each iteration advances the
// frame clock (the loop's only suspension point, spec §5), runs the
// per-tick pipeline, and flushes the outbox to the network collaborator
// via the ClientRegistry.
type Orchestrator struct {
	World     *World
	Resources *Resources
	Params    Parameters
	Rand      RandSource

	Inbox    <-chan network.IncomingMessage
	Registry *ClientRegistry
	Metrics  *Metrics

	// DebugLog enables the optional per-tick behavior tally (disabled by
	// default); set from the command line for development visibility.
	DebugLog bool
}

// NewOrchestrator wires a fresh world and resources around a shared
// inbox channel and client registry.
func NewOrchestrator(inbox <-chan network.IncomingMessage, registry *ClientRegistry, params Parameters) *Orchestrator {
	clock := NewFrameClock(time.Now())
	resources := NewResources(clock)
	seedInitialFlock(resources)
	return &Orchestrator{
		World:     NewWorld(),
		Resources: resources,
		Params:    params,
		Rand:      NewDefaultRandSource(),
		Inbox:     inbox,
		Registry:  registry,
		Metrics:   NewMetrics(),
	}
}

// flockGridExtent is the side length of the initial Walking flock laid
// down at startup (spec §3 "seeded at startup"): a 5x5 grid, agents
// spaced 3 units apart, matching the original's initialize_cmd_queue.
const flockGridExtent = 5
const flockGridSpacing = 3

// seedInitialFlock enqueues the startup population so the first tick's
// StageCreation call turns it into live agents before any client has
// connected.
func seedInitialFlock(res *Resources) {
	for x := 1; x <= flockGridExtent; x++ {
		for y := 1; y <= flockGridExtent; y++ {
			res.CreationQueue = append(res.CreationQueue, CreateCommand{
				Position: Position{V: geometry.Vector2{X: float32(x * flockGridSpacing), Y: float32(y * flockGridSpacing)}},
				Heading:  Heading{R: geometry.NewRotation2(0)},
				Velocity: Velocity{},
				Behavior: behavior.NewState(behavior.NewWalking()),
			})
		}
	}
}

// Run executes the simulation loop until ctx is cancelled. It returns
// nil when cancellation is observed, matching the "first task to
// finish wins, the other is dropped" shutdown rule of spec §5.
func (o *Orchestrator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		o.Resources.Delta = o.Resources.Clock.Advance(time.Now, time.Sleep)
		o.Metrics.Observe(o.Resources.Delta)

		o.drainInbox()
		RunTick(o.World, o.Resources, o.Params, o.Rand)
		o.flushOutbox()

		if o.DebugLog {
			StageDebugLog(o.World)
		}
	}
}

func (o *Orchestrator) drainInbox() {
	for {
		select {
		case msg := <-o.Inbox:
			o.Resources.Inbox = append(o.Resources.Inbox, msg)
		default:
			return
		}
	}
}

func (o *Orchestrator) flushOutbox() {
	for _, frame := range o.Resources.Outbox {
		o.Registry.Send(frame.Addr, frame.Message)
	}
	o.Resources.Outbox = o.Resources.Outbox[:0]
}
