package spatial

import "flocksim/geometry"

// line is a Voronoi bisector, represented as either a non-vertical
// line in slope-intercept form or a vertical line at a fixed x.
// Keeping the two cases separate avoids dividing by a near-zero run
// when two points share an x coordinate.
type line struct {
	vertical   bool
	slope      float64 // meaningful when !vertical
	yIntercept float64 // meaningful when !vertical
	xIntercept float64 // meaningful when vertical
}

const epsilon = 1e-6

// bisector returns the perpendicular bisector of the segment p1-p2.
func bisector(p1, p2 geometry.Vector2) line {
	x1, y1 := float64(p1.X), float64(p1.Y)
	x2, y2 := float64(p2.X), float64(p2.Y)
	midX, midY := (x1+x2)/2, (y1+y2)/2

	dx := x2 - x1
	dy := y2 - y1

	if dx < epsilon && dx > -epsilon {
		// p1-p2 is vertical; its bisector is horizontal: y = midY.
		return line{vertical: false, slope: 0, yIntercept: midY}
	}
	if dy < epsilon && dy > -epsilon {
		// p1-p2 is horizontal; its bisector is vertical: x = midX.
		return line{vertical: true, xIntercept: midX}
	}

	segmentSlope := dy / dx
	bisectorSlope := -1.0 / segmentSlope
	yIntercept := midY - bisectorSlope*midX
	return line{vertical: false, slope: bisectorSlope, yIntercept: yIntercept}
}

// isLessThan reports whether p lies on the same side of l as the point
// "less than" the line would conventionally be: below a non-vertical
// line, or left of a vertical one. Used to test whether a candidate
// point lies on the query-point side of a bisector.
func isLessThan(p geometry.Vector2, l line) bool {
	x, y := float64(p.X), float64(p.Y)
	if l.vertical {
		return x < l.xIntercept
	}
	return y < l.slope*x+l.yIntercept
}

// sameSide reports whether p and reference lie on the same side of l.
func sameSide(p, reference geometry.Vector2, l line) bool {
	return isLessThan(p, l) == isLessThan(reference, l)
}

// NaturalNeighborIterator streams entries from nearest to farthest,
// same as NearestIterator, but skips any candidate that a closer
// neighbor's Voronoi bisector has already excluded from the query
// point's natural-neighbor cell (spec §4.2 "aggregate neighbor
// interactions").
type NaturalNeighborIterator struct {
	query     geometry.Vector2
	inner     *NearestIterator
	perimeter []line
}

// NaturalNeighbors returns an iterator over idx's entries in natural-
// neighbor order around query: the true nearest neighbor is always
// first, and every later candidate has been confirmed to lie on the
// query's side of every bisector accumulated so far.
func (idx *Index) NaturalNeighbors(query geometry.Vector2) *NaturalNeighborIterator {
	return &NaturalNeighborIterator{query: query, inner: idx.Nearest(query)}
}

// Next returns the next natural neighbor, or ok=false once the
// underlying nearest-neighbor stream is exhausted.
func (it *NaturalNeighborIterator) Next() (entry Entry, ok bool) {
	for {
		candidate, found := it.inner.Next()
		if !found {
			return Entry{}, false
		}
		accepted := true
		for _, l := range it.perimeter {
			if !sameSide(candidate.Position, it.query, l) {
				accepted = false
				break
			}
		}
		if !accepted {
			continue
		}
		// An entry sitting on the query point (the querying agent itself)
		// has no bisector with it, so it adds no line to the perimeter.
		if candidate.Position != it.query {
			it.perimeter = append(it.perimeter, bisector(it.query, candidate.Position))
		}
		return candidate, true
	}
}
