// Package ecs implements the entity store: a dense, generation-tagged
// entity id allocator plus sparse-set component storage, a static,
// data-declared table in place of a dynamic-dispatch ECS library (spec
// §9's Design Notes).
package ecs

// Entity is an opaque id with a generation counter, so a reused index
// (an extension point the core doesn't exercise, since agents are never
// destroyed) can still be distinguished from a stale reference.
type Entity struct {
	Index      uint32
	Generation uint32
}

// Allocator hands out fresh entities. The core never frees one, so this
// is presently just a monotonic counter; Free exists for the destruction
// extension point named in spec §3 and bumps the generation so any Entity
// value captured before the free is recognizably stale.
type Allocator struct {
	generations []uint32
	free        []uint32
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Create allocates a new entity, reusing a freed index if one is available.
func (a *Allocator) Create() Entity {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		return Entity{Index: idx, Generation: a.generations[idx]}
	}

	idx := uint32(len(a.generations))
	a.generations = append(a.generations, 0)
	return Entity{Index: idx, Generation: 0}
}

// Free releases an entity's index for reuse and invalidates outstanding
// references to it by bumping its generation.
func (a *Allocator) Free(e Entity) {
	a.generations[e.Index]++
	a.free = append(a.free, e.Index)
}

// IsAlive reports whether e's generation still matches the allocator's
// current record for its index.
func (a *Allocator) IsAlive(e Entity) bool {
	return int(e.Index) < len(a.generations) && a.generations[e.Index] == e.Generation
}
