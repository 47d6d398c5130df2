package simulation

import (
	"sync"

	"flocksim/network"
)

// OutboundBufferSize is the per-client mailbox capacity. A client
// slower than the tick rate drops frames rather than stalling the
// simulation (spec §4.9, §5).
const OutboundBufferSize = 8

// ClientRegistry maps a connected client's address to its outbound
// mailbox. The network task registers a client on connect and
// deregisters it on disconnect; the simulation task only ever looks
// addresses up to deliver a frame, never blocking if the channel is
// full or absent.
type ClientRegistry struct {
	mu    sync.Mutex
	sinks map[string]chan network.OutgoingMessage
}

// NewClientRegistry returns an empty registry.
func NewClientRegistry() *ClientRegistry {
	return &ClientRegistry{sinks: make(map[string]chan network.OutgoingMessage)}
}

// Register creates and returns a new client's outbound mailbox.
func (r *ClientRegistry) Register(addr string) <-chan network.OutgoingMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan network.OutgoingMessage, OutboundBufferSize)
	r.sinks[addr] = ch
	return ch
}

// Deregister closes and removes a client's mailbox.
func (r *ClientRegistry) Deregister(addr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch, ok := r.sinks[addr]; ok {
		close(ch)
		delete(r.sinks, addr)
	}
}

// Send delivers msg to addr's mailbox without blocking. If the mailbox
// is full or the client is gone, the message is dropped silently.
func (r *ClientRegistry) Send(addr string, msg network.OutgoingMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.sinks[addr]
	if !ok {
		return
	}
	select {
	case ch <- msg:
	default:
	}
}
