// Package polygonize turns a planar graph into the polygons its edges
// enclose, reporting anything left over that could not close into a
// ring (dangling chains) separately.
//
// The algorithm: prune dangling chains first so they cannot contaminate
// a ring trace with an out-and-back detour, build a half-edge structure
// over what remains, trace every face by following angularly-ordered
// next pointers, keep the positive-area (counterclockwise) rings as
// polygon-boundary candidates, and resolve shell/hole nesting by
// containment rather than by orientation alone, since a shell and its
// hole are frequently disjoint components in the source graph.
package polygonize

import (
	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geonerrors"
	"github.com/geoncore/geoncore/pkg/graph"
)

// Result is the outcome of polygonizing a graph: closed rings that
// assembled into polygons, and any coordinate sequences that dangled
// off the structure without ever closing.
type Result struct {
	Polygons []geom.Polygon
	Dangles  []geom.LineString
}

// Polygonize builds all polygons enclosed by g's edges.
func Polygonize(g *graph.Graph) (Result, error) {
	adj := copyAdjacency(g)
	chains := pruneDangles(adj)

	var dangles []geom.LineString
	for _, chain := range chains {
		coords := make(geom.CoordinateSequence, len(chain))
		for i, idx := range chain {
			coords[i] = g.Coords[idx]
		}
		dangles = append(dangles, geom.NewLineString(coords))
	}

	if !hasAnyEdge(adj) {
		return Result{Dangles: dangles}, nil
	}

	edges := buildHalfEdges(adj, g.Coords)
	nodeRings := traceRings(edges)

	var positive [][]geom.Coordinate
	for _, nr := range nodeRings {
		if len(nr) < 4 {
			continue
		}
		coords := make([]geom.Coordinate, len(nr))
		for i, idx := range nr {
			coords[i] = g.Coords[idx]
		}
		area := signedArea(coords)
		if area <= areaEpsilon {
			continue
		}
		positive = append(positive, coords)
	}

	cands := classify(positive)

	polysByShell := make(map[int]*geom.Polygon)
	var order []int
	for i, c := range cands {
		if c.depth%2 == 0 {
			ring, err := geom.NewLinearRingSafe(geom.CoordinateSequence(c.coords))
			if err != nil {
				return Result{}, geonerrors.Wrap(geonerrors.ErrCodePolygonizationDefect, err, "assembling shell ring")
			}
			p := geom.NewPolygon(ring, nil)
			polysByShell[i] = &p
			order = append(order, i)
		}
	}
	for _, c := range cands {
		if c.depth%2 == 1 && c.parent != -1 {
			shell, ok := polysByShell[c.parent]
			if !ok {
				continue
			}
			ring, err := geom.NewLinearRingSafe(geom.CoordinateSequence(c.coords))
			if err != nil {
				return Result{}, geonerrors.Wrap(geonerrors.ErrCodePolygonizationDefect, err, "assembling hole ring")
			}
			shell.Holes = append(shell.Holes, ring)
		}
	}

	polys := make([]geom.Polygon, 0, len(order))
	for _, i := range order {
		polys = append(polys, *polysByShell[i])
	}

	return Result{Polygons: polys, Dangles: dangles}, nil
}

func hasAnyEdge(adj adjacency) bool {
	for _, set := range adj {
		if len(set) > 0 {
			return true
		}
	}
	return false
}
