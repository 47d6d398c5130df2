package spatial

import (
	"container/heap"

	"flocksim/geometry"
)

// NearestIterator yields entries in strictly increasing distance order
// from a fixed query point, one at a time, without materializing the
// full ordering up front. The natural-neighbor filter is built
// directly on top of it (spec §4.2).
//
// It is lazy (each Next descends only as much of the tree as is needed
// to produce one more result), restartable (a fresh iterator can be
// constructed from the same Index at any time), and single-pass (it
// holds no external state beyond its own heap).
type NearestIterator struct {
	query geometry.Vector2
	pq    pqHeap
}

// Nearest returns an iterator over idx's entries ordered by increasing
// distance from query.
func (idx *Index) Nearest(query geometry.Vector2) *NearestIterator {
	it := &NearestIterator{query: query}
	if idx.root != nil {
		heap.Push(&it.pq, pqItem{isNode: true, node: idx.root})
	}
	return it
}

// Next returns the next-nearest entry, or ok=false once every entry in
// the index has been produced.
func (it *NearestIterator) Next() (entry Entry, ok bool) {
	for it.pq.Len() > 0 {
		item := heap.Pop(&it.pq).(pqItem)
		if !item.isNode {
			return item.entry, true
		}
		n := item.node
		heap.Push(&it.pq, pqItem{isNode: false, priority: squaredDistance(it.query, n.entry.Position), entry: n.entry})
		if n.left != nil {
			heap.Push(&it.pq, pqItem{isNode: true, priority: subtreeLowerBound(it.query, n, n.left, true), node: n.left})
		}
		if n.right != nil {
			heap.Push(&it.pq, pqItem{isNode: true, priority: subtreeLowerBound(it.query, n, n.right, false), node: n.right})
		}
	}
	return Entry{}, false
}

// subtreeLowerBound computes an admissible (never-overestimating) lower
// bound on the distance from query to any point in the named child
// subtree of n, using only the fact that a k-d tree node's children lie
// on either side of its splitting value along its axis.
func subtreeLowerBound(query geometry.Vector2, n *node, child *node, isLeft bool) float64 {
	split := axisValue(n.entry.Position, n.axis)
	q := axisValue(query, n.axis)
	var d float64
	if isLeft {
		if q > split {
			d = q - split
		}
	} else {
		if q < split {
			d = split - q
		}
	}
	return d * d
}

type pqItem struct {
	isNode   bool
	priority float64
	node     *node
	entry    Entry
}

type pqHeap []pqItem

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pqHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *pqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
