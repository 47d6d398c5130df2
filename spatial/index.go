// Package spatial implements the per-tick spatial index over agent
// positions: a bulk-loaded k-d tree supporting circular range queries
// and incremental nearest-neighbor search, plus the natural-neighbor
// iterator spec §4.2 describes on top of it.
package spatial

import (
	"sort"

	"flocksim/behavior"
	"flocksim/ecs"
	"flocksim/geometry"
)

// Entry is one record in the index: an agent's entity id, position,
// heading, and behavior state, snapshotted at rebuild time (spec §4.2).
type Entry struct {
	Entity   ecs.Entity
	Position geometry.Vector2
	Heading  geometry.Rotation2
	Behavior behavior.Behavior
}

type node struct {
	entry       Entry
	axis        int
	left, right *node
}

// Index is a static, bulk-loaded spatial index over a snapshot of
// entries. It is rebuilt from scratch every tick (spec §4.2, §9): every
// agent's position changes every tick, so bulk-load beats incremental
// maintenance and sidesteps stale-entry bookkeeping.
type Index struct {
	root    *node
	entries []Entry
}

// Build bulk-loads an index from entries via recursive median-of-axis
// partition, alternating split axis with tree depth.
func Build(entries []Entry) *Index {
	working := make([]Entry, len(entries))
	copy(working, entries)
	return &Index{
		root:    buildNode(working, 0),
		entries: entries,
	}
}

func buildNode(entries []Entry, axis int) *node {
	if len(entries) == 0 {
		return nil
	}
	if axis == 0 {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Position.X < entries[j].Position.X })
	} else {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Position.Y < entries[j].Position.Y })
	}
	mid := len(entries) / 2
	n := &node{entry: entries[mid], axis: axis}
	n.left = buildNode(entries[:mid], 1-axis)
	n.right = buildNode(entries[mid+1:], 1-axis)
	return n
}

func axisValue(v geometry.Vector2, axis int) float64 {
	if axis == 0 {
		return float64(v.X)
	}
	return float64(v.Y)
}

func squaredDistance(a, b geometry.Vector2) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return dx*dx + dy*dy
}

// RangeCircle returns every entry whose position lies within the closed
// disk of the given radius around center (spec §4.2 lookup_in_circle).
func (idx *Index) RangeCircle(center geometry.Vector2, radius float32) []Entry {
	var out []Entry
	r2 := float64(radius) * float64(radius)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if squaredDistance(center, n.entry.Position) <= r2 {
			out = append(out, n.entry)
		}
		split := axisValue(n.entry.Position, n.axis)
		q := axisValue(center, n.axis)
		if q-float64(radius) <= split {
			walk(n.left)
		}
		if q+float64(radius) >= split {
			walk(n.right)
		}
	}
	walk(idx.root)
	return out
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}
