package noding

import (
	"math"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/segment"
)

// SnappingNoder unifies coordinates within a tolerance before and during
// intersection finding, so near-coincident endpoints (a one-unit gap
// between two roads that should meet, for instance) collapse to a
// single node instead of leaving a dangling near-miss. Representative
// selection is first-seen-wins: whichever coordinate the noder
// registers first in a neighborhood becomes the representative that all
// later, nearby coordinates resolve to.
type SnappingNoder struct {
	Epsilon   float64
	MaxPasses int
}

func (n SnappingNoder) maxPasses() int {
	if n.MaxPasses > 0 {
		return n.MaxPasses
	}
	return MaxPasses
}

// Node implements Noder.
func (n SnappingNoder) Node(strings []segment.String) ([]segment.String, error) {
	reg := newSnapRegistry(n.Epsilon)

	segs := explode(strings)
	for i := range segs {
		segs[i].A = reg.snap(segs[i].A)
		segs[i].B = reg.snap(segs[i].B)
	}

	for pass := 0; pass < n.maxPasses(); pass++ {
		splits := make(map[int][]geom.Coordinate)
		changed := false

		for i := 0; i < len(segs); i++ {
			if segs[i].isDegenerate() {
				continue
			}
			for j := i + 1; j < len(segs); j++ {
				if segs[j].isDegenerate() {
					continue
				}
				if shareEndpoint(segs[i], segs[j]) {
					continue
				}
				for _, x := range intersect(segs[i], segs[j]) {
					p := reg.snap(x.point)
					if x.onFirst && !p.Equal(segs[i].A) && !p.Equal(segs[i].B) {
						splits[i] = append(splits[i], p)
						changed = true
					}
					if x.onSecond && !p.Equal(segs[j].A) && !p.Equal(segs[j].B) {
						splits[j] = append(splits[j], p)
						changed = true
					}
				}
			}
		}

		if !changed {
			break
		}
		segs = applySplits(segs, splits)
	}

	return toSegmentStrings(dedupe(segs)), nil
}

// snapRegistry buckets registered coordinates into a grid of cell size
// epsilon so a query only needs to inspect the 3x3 neighborhood around
// its own cell rather than every previously registered point.
type snapRegistry struct {
	eps    float64
	points []geom.Coordinate
	cells  map[[2]int64][]int
}

func newSnapRegistry(eps float64) *snapRegistry {
	return &snapRegistry{eps: eps, cells: make(map[[2]int64][]int)}
}

func (r *snapRegistry) cellOf(c geom.Coordinate) [2]int64 {
	return [2]int64{int64(math.Floor(c.X / r.eps)), int64(math.Floor(c.Y / r.eps))}
}

// snap returns the representative coordinate for c: the earliest
// registered coordinate within epsilon, or c itself if none is found
// (in which case c becomes the representative for future queries).
func (r *snapRegistry) snap(c geom.Coordinate) geom.Coordinate {
	cell := r.cellOf(c)
	best := -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			nc := [2]int64{cell[0] + dx, cell[1] + dy}
			for _, idx := range r.cells[nc] {
				if r.points[idx].Distance2D(c) <= r.eps && (best == -1 || idx < best) {
					best = idx
				}
			}
		}
	}
	if best >= 0 {
		return r.points[best]
	}
	idx := len(r.points)
	r.points = append(r.points, c)
	r.cells[cell] = append(r.cells[cell], idx)
	return c
}
