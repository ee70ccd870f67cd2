package noding

import "github.com/geoncore/geoncore/pkg/geom"

// endpointEps is the tolerance used to decide whether a computed
// intersection parameter lies at a segment endpoint (no split needed)
// versus strictly in its interior (split needed). It is independent of
// the noder's snapping tolerance, which governs endpoint unification,
// not intersection classification.
const endpointEps = 1e-9

// intersection describes where two atomic segments meet, in terms of
// the parametric position along each (0 at A, 1 at B).
type intersection struct {
	point    geom.Coordinate
	onFirst  bool // true if point lies strictly inside the first segment
	onSecond bool // true if point lies strictly inside the second segment
	found    bool
}

func cross(ax, ay, bx, by float64) float64 { return ax*by - ay*bx }

// intersect computes where segments s1 and s2 meet, if at all. Parallel
// non-collinear segments never meet. Collinear overlapping segments are
// handled by testing whether either segment's endpoint lies strictly
// within the other, which covers the common glancing-overlap case
// without a full interval-merge algorithm.
func intersect(s1, s2 atomicSegment) []intersection {
	if s1.isDegenerate() || s2.isDegenerate() {
		return nil
	}

	d1x, d1y := s1.B.X-s1.A.X, s1.B.Y-s1.A.Y
	d2x, d2y := s2.B.X-s2.A.X, s2.B.Y-s2.A.Y
	denom := cross(d1x, d1y, d2x, d2y)

	if abs(denom) < endpointEps {
		return collinearIntersections(s1, s2)
	}

	ex, ey := s2.A.X-s1.A.X, s2.A.Y-s1.A.Y
	t := cross(ex, ey, d2x, d2y) / denom
	u := cross(ex, ey, d1x, d1y) / denom

	if t < -endpointEps || t > 1+endpointEps || u < -endpointEps || u > 1+endpointEps {
		return nil
	}

	pt := geom.NewXY(s1.A.X+t*d1x, s1.A.Y+t*d1y)
	return []intersection{{
		point:    pt,
		onFirst:  t > endpointEps && t < 1-endpointEps,
		onSecond: u > endpointEps && u < 1-endpointEps,
		found:    true,
	}}
}

// collinearIntersections handles the parallel case: if the two segments
// lie on the same line and overlap, either endpoint of one that falls
// strictly inside the other becomes a split point there.
func collinearIntersections(s1, s2 atomicSegment) []intersection {
	d1x, d1y := s1.B.X-s1.A.X, s1.B.Y-s1.A.Y
	// Collinearity test: s2.A must lie on the line through s1.
	cx, cy := s2.A.X-s1.A.X, s2.A.Y-s1.A.Y
	if abs(cross(d1x, d1y, cx, cy)) > endpointEps {
		return nil
	}

	var out []intersection
	if p, ok := pointStrictlyInside(s2.A, s1); ok {
		out = append(out, intersection{point: p, onFirst: true, found: true})
	}
	if p, ok := pointStrictlyInside(s2.B, s1); ok {
		out = append(out, intersection{point: p, onFirst: true, found: true})
	}
	if p, ok := pointStrictlyInside(s1.A, s2); ok {
		out = append(out, intersection{point: p, onSecond: true, found: true})
	}
	if p, ok := pointStrictlyInside(s1.B, s2); ok {
		out = append(out, intersection{point: p, onSecond: true, found: true})
	}
	return out
}

// pointStrictlyInside reports whether p lies strictly between seg.A and
// seg.B, given p is already known to be collinear with seg.
func pointStrictlyInside(p geom.Coordinate, seg atomicSegment) (geom.Coordinate, bool) {
	dx, dy := seg.B.X-seg.A.X, seg.B.Y-seg.A.Y
	var t float64
	if abs(dx) >= abs(dy) {
		if dx == 0 {
			return geom.Coordinate{}, false
		}
		t = (p.X - seg.A.X) / dx
	} else {
		if dy == 0 {
			return geom.Coordinate{}, false
		}
		t = (p.Y - seg.A.Y) / dy
	}
	if t <= endpointEps || t >= 1-endpointEps {
		return geom.Coordinate{}, false
	}
	return geom.NewXY(p.X, p.Y), true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
