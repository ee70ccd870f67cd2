// Package noding implements the two noding policies described in the
// component design: iterated exact noding (tolerance zero) and snapping
// noding (tolerance greater than zero). Both consume a flat list of
// segment strings and produce a new list such that no two distinct
// output segments cross except at shared endpoints.
package noding

import (
	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/segment"
)

// MaxPasses bounds the number of full pairwise intersection passes the
// iterated exact noder will run before giving up and reporting
// ErrCodeNodingConvergence. The snapping noder uses the same bound but
// treats exhaustion as "stop, return best effort" rather than fatal,
// since its representative-snapping guarantees eventual termination in
// well-formed inputs and a hard cap is only a defensive backstop.
const MaxPasses = 50

// Noder finds all pairwise intersections in a segment-string set and
// returns a non-crossing replacement, optionally unifying endpoints
// within a tolerance.
type Noder interface {
	Node(segments []segment.String) ([]segment.String, error)
}

// explode decomposes every input segment string into its primitive
// two-coordinate segments. The segments carry no record of the string
// they came from. Degenerate two-coordinate strings (points) pass
// through unchanged; strings with fewer than two coordinates are dropped.
func explode(strings []segment.String) []atomicSegment {
	var out []atomicSegment
	for _, s := range strings {
		cs := geom.CoordinateSequence(s)
		if len(cs) < 2 {
			continue
		}
		for i := 0; i < len(cs)-1; i++ {
			out = append(out, atomicSegment{A: cs[i], B: cs[i+1]})
		}
	}
	return out
}

// atomicSegment is the noder's unit of work: a single directed
// two-coordinate segment.
type atomicSegment struct {
	A, B geom.Coordinate
}

// isDegenerate reports whether the segment's endpoints coincide, i.e. it
// represents a lone point sentinel from the segment extractor.
func (s atomicSegment) isDegenerate() bool { return s.A.Equal(s.B) }

func toSegmentStrings(segs []atomicSegment) []segment.String {
	out := make([]segment.String, len(segs))
	for i, s := range segs {
		out[i] = segment.String{s.A, s.B}
	}
	return out
}

// dedupeKey returns an orientation-insensitive key for a segment: the
// lexicographically smaller endpoint first, per the noder's dedup
// contract ("segments with reversed coordinate order are equal").
func dedupeKey(s atomicSegment) [2]geom.Coordinate {
	if s.A.Compare(s.B) <= 0 {
		return [2]geom.Coordinate{s.A, s.B}
	}
	return [2]geom.Coordinate{s.B, s.A}
}

// dedupe removes duplicate segments using the orientation-insensitive
// key, keeping the first occurrence and preserving degenerate segments
// (lone points) that survive.
func dedupe(segs []atomicSegment) []atomicSegment {
	seen := make(map[[2]geom.Coordinate]bool, len(segs))
	out := make([]atomicSegment, 0, len(segs))
	for _, s := range segs {
		k := dedupeKey(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
