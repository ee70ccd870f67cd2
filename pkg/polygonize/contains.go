package polygonize

import "github.com/geoncore/geoncore/pkg/geom"

const areaEpsilon = 1e-9

// signedArea computes the shoelace signed area of a closed coordinate
// sequence (first coordinate repeated as last).
func signedArea(ring []geom.Coordinate) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return sum / 2
}

// pointInRing implements the standard even-odd ray-casting test for
// whether p lies inside the closed ring (first coordinate repeated as
// last). Points exactly on the boundary are not guaranteed either way,
// so classify probes with a vertex of the inner ring that is not also a
// vertex of the candidate container; in a noded graph such a vertex is
// never on the container's boundary.
func pointInRing(p geom.Coordinate, ring []geom.Coordinate) bool {
	inside := false
	n := len(ring) - 1
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, yj := ring[i].Y, ring[j].Y
		xi, xj := ring[i].X, ring[j].X
		if (yi > p.Y) != (yj > p.Y) {
			xIntersect := xi + (p.Y-yi)/(yj-yi)*(xj-xi)
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// candidateRing is a positive-area traced ring awaiting shell/hole
// classification via containment.
type candidateRing struct {
	coords []geom.Coordinate
	area   float64
	parent int // index into the candidates slice, or -1
	depth  int
}

// classify assigns each candidate ring a containment parent (the
// smallest-area other candidate that strictly contains it) and a
// nesting depth, from which even depth means "shell" and odd depth
// means "hole of its parent".
func classify(rings [][]geom.Coordinate) []candidateRing {
	cands := make([]candidateRing, len(rings))
	for i, r := range rings {
		cands[i] = candidateRing{coords: r, area: signedArea(r), parent: -1}
	}

	for i := range cands {
		bestArea := -1.0
		best := -1
		for j := range cands {
			if i == j {
				continue
			}
			if cands[j].area <= cands[i].area {
				continue
			}
			probe := -1
		scan:
			for k, p := range cands[i].coords {
				for _, q := range cands[j].coords {
					if p.Equal(q) {
						continue scan
					}
				}
				probe = k
				break
			}
			if probe == -1 || !pointInRing(cands[i].coords[probe], cands[j].coords) {
				continue
			}
			if best == -1 || cands[j].area < bestArea {
				best = j
				bestArea = cands[j].area
			}
		}
		cands[i].parent = best
	}

	for i := range cands {
		depth := 0
		for p := cands[i].parent; p != -1; p = cands[p].parent {
			depth++
		}
		cands[i].depth = depth
	}

	return cands
}
