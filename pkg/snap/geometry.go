package snap

import "github.com/geoncore/geoncore/pkg/geom"

type coordSnapper func(geom.Coordinate) geom.Coordinate

// Geometry rewrites every coordinate in g through the chosen strategy,
// preserving g's structure (a Polygon stays a Polygon with the same
// number of holes, etc.) rather than flattening it. A single snapping
// registry is shared across the whole call for StrategyClosest, so two
// endpoints in different elements of a MultiLineString still unify if
// they fall within eps of each other.
func Geometry(g geom.Geometry, eps float64, strategy Strategy) geom.Geometry {
	var snapper coordSnapper
	if strategy == StrategyClosest {
		reg := newRegistry(eps)
		snapper = reg.snap
	} else {
		snapper = func(c geom.Coordinate) geom.Coordinate { return gridSnapCoordinate(c, eps) }
	}
	return snapGeometry(g, snapper)
}

func snapCoords(cs geom.CoordinateSequence, snapper coordSnapper) geom.CoordinateSequence {
	out := make(geom.CoordinateSequence, len(cs))
	for i, c := range cs {
		out[i] = snapper(c)
	}
	return out
}

func snapGeometry(g geom.Geometry, snapper coordSnapper) geom.Geometry {
	switch v := g.(type) {
	case geom.Point:
		return geom.NewPoint(snapper(v.C))

	case geom.LineString:
		return geom.NewLineString(snapCoords(v.Coords, snapper))

	case geom.LinearRing:
		return geom.NewLinearRing(snapCoords(v.Coords, snapper))

	case geom.Polygon:
		shell := geom.NewLinearRing(snapCoords(v.Shell.Coords, snapper))
		holes := make([]geom.LinearRing, len(v.Holes))
		for i, h := range v.Holes {
			holes[i] = geom.NewLinearRing(snapCoords(h.Coords, snapper))
		}
		return geom.NewPolygon(shell, holes)

	case geom.MultiPoint:
		pts := make([]geom.Point, len(v.Elems))
		for i, e := range v.Elems {
			pts[i] = snapGeometry(e, snapper).(geom.Point)
		}
		return geom.NewMultiPoint(pts)

	case geom.MultiLineString:
		lines := make([]geom.LineString, len(v.Elems))
		for i, e := range v.Elems {
			lines[i] = snapGeometry(e, snapper).(geom.LineString)
		}
		return geom.NewMultiLineString(lines)

	case geom.MultiPolygon:
		polys := make([]geom.Polygon, len(v.Elems))
		for i, e := range v.Elems {
			polys[i] = snapGeometry(e, snapper).(geom.Polygon)
		}
		return geom.NewMultiPolygon(polys)

	case geom.GeometryCollection:
		elems := make([]geom.Geometry, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = snapGeometry(e, snapper)
		}
		return geom.NewGeometryCollection(elems)

	default:
		return g
	}
}
