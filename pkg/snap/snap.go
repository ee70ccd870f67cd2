// Package snap implements the coordinate-unification strategies behind
// the "snap" CLI operation: grid snapping, which rounds every coordinate
// onto a fixed lattice, and closest-point snapping, which unifies nearby
// coordinates to a first-seen representative without constraining them
// to a lattice. The snapping noder in package noding keeps its own,
// separate registry and does not use this package.
package snap

import (
	"math"

	"github.com/geoncore/geoncore/pkg/geom"
)

// Strategy selects a snapping algorithm.
type Strategy string

const (
	StrategyGrid    Strategy = "grid"
	StrategyClosest Strategy = "closest"
)

// Grid rounds every coordinate onto a lattice of cell size eps. Ties
// exactly halfway between two lattice lines round away from zero,
// matching math.Round's own tie-breaking rule.
func Grid(coords []geom.Coordinate, eps float64) []geom.Coordinate {
	out := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = gridSnapCoordinate(c, eps)
	}
	return out
}

func gridSnapCoordinate(c geom.Coordinate, eps float64) geom.Coordinate {
	x := math.Round(c.X/eps) * eps
	y := math.Round(c.Y/eps) * eps
	if c.HasZ {
		z := math.Round(c.Z/eps) * eps
		return geom.NewXYZ(x, y, z)
	}
	return geom.NewXY(x, y)
}

// Closest unifies coordinates within eps of one another to a
// first-seen representative, using the same grid-bucketed nearest-
// neighbor search the snapping noder uses internally.
func Closest(coords []geom.Coordinate, eps float64) []geom.Coordinate {
	reg := newRegistry(eps)
	out := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = reg.snap(c)
	}
	return out
}

// registry buckets registered coordinates into cells of size eps so a
// query only inspects its own cell's 3x3 neighborhood.
type registry struct {
	eps    float64
	points []geom.Coordinate
	cells  map[[2]int64][]int
}

func newRegistry(eps float64) *registry {
	return &registry{eps: eps, cells: make(map[[2]int64][]int)}
}

func (r *registry) cellOf(c geom.Coordinate) [2]int64 {
	return [2]int64{int64(math.Floor(c.X / r.eps)), int64(math.Floor(c.Y / r.eps))}
}

func (r *registry) snap(c geom.Coordinate) geom.Coordinate {
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

// apply runs strategy over coords as a single batch (so Closest's
// first-seen registry sees every coordinate in a consistent order).
func apply(coords []geom.Coordinate, eps float64, strategy Strategy) []geom.Coordinate {
	switch strategy {
	case StrategyClosest:
		return Closest(coords, eps)
	default:
		return Grid(coords, eps)
	}
}
