package noding

import (
	"sort"

	"github.com/geoncore/geoncore/pkg/geom"
)

// applySplits rewrites segs by cutting each segment at its recorded
// interior split points, sorted along the segment from A to B. A
// segment with no recorded splits passes through unchanged.
func applySplits(segs []atomicSegment, splits map[int][]geom.Coordinate) []atomicSegment {
	out := make([]atomicSegment, 0, len(segs))
	for i, s := range segs {
		pts := splits[i]
		if len(pts) == 0 {
			out = append(out, s)
			continue
		}
		sort.Slice(pts, func(a, b int) bool {
			return paramT(s, pts[a]) < paramT(s, pts[b])
		})
		prev := s.A
		for _, p := range pts {
			if prev.Equal(p) {
				continue
			}
			out = append(out, atomicSegment{A: prev, B: p})
			prev = p
		}
		if !prev.Equal(s.B) {
			out = append(out, atomicSegment{A: prev, B: s.B})
		}
	}
	return out
}

// paramT returns the parametric position of p along segment s, used
// only to order multiple split points on the same segment.
func paramT(s atomicSegment, p geom.Coordinate) float64 {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	if abs(dx) >= abs(dy) {
		if dx == 0 {
			return 0
		}
		return (p.X - s.A.X) / dx
	}
	if dy == 0 {
		return 0
	}
	return (p.Y - s.A.Y) / dy
}
