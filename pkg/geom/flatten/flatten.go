// Package flatten implements the lazy depth-first walk that yields
// primitive geometries (Point, LineString, LinearRing, Polygon) from a
// root geometry, recursively descending through nested Multi*/
// GeometryCollection values in declared order.
//
// The iterator never mutates its input and is infallible: a malformed or
// empty collection simply yields nothing.
package flatten

import "github.com/geoncore/geoncore/pkg/geom"

// frame is one level of the explicit DFS stack: the collection being
// walked and the index of the next child to visit. Using an explicit
// stack (rather than a recursive generator) avoids goroutine-based
// iterators; descending into a collection still allocates a frame and
// its child slice.
type frame struct {
	elems []geom.Geometry
	idx   int
}

// Iterator yields primitive geometries from a root geometry in
// depth-first, left-to-right order. The zero value is not usable; use
// New. Borrowed geometry values are returned; the caller must not
// outlive the slice/geometry the Iterator was built over (Go's GC makes
// this a non-issue in practice, but the contract matches the source
// design).
type Iterator struct {
	stack []frame
	// next holds the primitive that the following Next call returns,
	// found ahead of time by advance; it is valid only while hasNext is
	// true.
	next    geom.Geometry
	hasNext bool
	done    bool
}

// New returns an Iterator over the primitives reachable from root.
func New(root geom.Geometry) *Iterator {
	it := &Iterator{}
	it.push(root)
	it.advance()
	return it
}

func (it *Iterator) push(g geom.Geometry) {
	if g == nil {
		return
	}
	if !g.IsCollection() {
		it.stack = append(it.stack, frame{elems: []geom.Geometry{g}})
		return
	}
	it.stack = append(it.stack, frame{elems: children(g)})
}

func children(g geom.Geometry) []geom.Geometry {
	switch v := g.(type) {
	case geom.MultiPoint:
		out := make([]geom.Geometry, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = e
		}
		return out
	case geom.MultiLineString:
		out := make([]geom.Geometry, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = e
		}
		return out
	case geom.MultiPolygon:
		out := make([]geom.Geometry, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = e
		}
		return out
	case geom.GeometryCollection:
		return v.Elems
	default:
		return nil
	}
}

// advance walks the stack until it finds the next primitive (or the
// stack empties), buffering the result in it.next.
func (it *Iterator) advance() {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.idx >= len(top.elems) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		g := top.elems[top.idx]
		top.idx++
		if g == nil {
			continue
		}
		if g.IsCollection() {
			it.stack = append(it.stack, frame{elems: children(g)})
			continue
		}
		it.next = g
		it.hasNext = true
		return
	}
	it.hasNext = false
	it.done = true
}

// Next returns the next primitive geometry and true, or a zero value and
// false once the walk is exhausted.
func (it *Iterator) Next() (geom.Geometry, bool) {
	if !it.hasNext {
		return nil, false
	}
	g := it.next
	it.hasNext = false
	it.advance()
	return g, true
}

// All collects the entire sequence into a slice for callers that don't
// need laziness. Collecting twice from independent iterators over the
// same root yields equal slices (idempotence).
func All(root geom.Geometry) []geom.Geometry {
	it := New(root)
	var out []geom.Geometry
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, g)
	}
	return out
}
