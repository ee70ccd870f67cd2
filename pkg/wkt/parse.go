package wkt

import (
	"strings"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geonerrors"
)

// Parse parses a single WKT geometry from s. Malformed WKT (including a
// trailing comma inside a coordinate sequence, which the grammar simply
// cannot accept) yields a *geonerrors.Error with ErrCodeParse.
func Parse(s string) (geom.Geometry, error) {
	node, err := wktParser.ParseString("", s)
	if err != nil {
		return nil, geonerrors.Wrap(geonerrors.ErrCodeParse, err, "parsing WKT %q", strings.TrimSpace(s))
	}
	return toGeometry(node)
}

// ParsePoint parses s and requires the result to be a Point, as needed
// for TGF node labels. Anything else is a parse error.
func ParsePoint(s string) (geom.Point, error) {
	g, err := Parse(s)
	if err != nil {
		return geom.Point{}, err
	}
	p, ok := g.(geom.Point)
	if !ok {
		return geom.Point{}, geonerrors.New(geonerrors.ErrCodeParse, "expected POINT, got %s", g.Kind())
	}
	return p, nil
}

func toCoordinate(n *coordNode) geom.Coordinate {
	if n.Z != nil {
		return geom.NewXYZ(n.X, n.Y, *n.Z)
	}
	return geom.NewXY(n.X, n.Y)
}

func toCoordinateSequence(n *coordSeqNode) geom.CoordinateSequence {
	out := make(geom.CoordinateSequence, len(n.Coords))
	for i, c := range n.Coords {
		out[i] = toCoordinate(c)
	}
	return out
}

func toGeometry(n *geometryNode) (geom.Geometry, error) {
	switch {
	case n.Point != nil:
		return geom.NewPoint(toCoordinate(n.Point.Coord)), nil

	case n.LineString != nil:
		cs := toCoordinateSequence(n.LineString.Seq)
		if len(cs) < 2 {
			return nil, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "LINESTRING requires at least 2 coordinates, got %d", len(cs))
		}
		return geom.NewLineString(cs), nil

	case n.Polygon != nil:
		if len(n.Polygon.Rings) == 0 {
			return nil, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "POLYGON requires at least a shell ring")
		}
		shell, err := toRing(n.Polygon.Rings[0])
		if err != nil {
			return nil, err
		}
		holes := make([]geom.LinearRing, 0, len(n.Polygon.Rings)-1)
		for _, r := range n.Polygon.Rings[1:] {
			hole, err := toRing(r)
			if err != nil {
				return nil, err
			}
			holes = append(holes, hole)
		}
		return geom.NewPolygon(shell, holes), nil

	case n.MultiPoint != nil:
		pts := make([]geom.Point, 0, len(n.MultiPoint.Points))
		for _, p := range n.MultiPoint.Points {
			if len(p.Coords) == 0 {
				return nil, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "MULTIPOINT element has no coordinates")
			}
			pts = append(pts, geom.NewPoint(toCoordinate(p.Coords[0])))
		}
		return geom.NewMultiPoint(pts), nil

	case n.MultiLineString != nil:
		lines := make([]geom.LineString, 0, len(n.MultiLineString.Lines))
		for _, l := range n.MultiLineString.Lines {
			cs := toCoordinateSequence(l)
			if len(cs) < 2 {
				return nil, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "MULTILINESTRING element requires at least 2 coordinates")
			}
			lines = append(lines, geom.NewLineString(cs))
		}
		return geom.NewMultiLineString(lines), nil

	case n.MultiPolygon != nil:
		polys := make([]geom.Polygon, 0, len(n.MultiPolygon.Polygons))
		for _, p := range n.MultiPolygon.Polygons {
			if len(p.Rings) == 0 {
				return nil, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "MULTIPOLYGON element requires at least a shell ring")
			}
			shell, err := toRing(p.Rings[0])
			if err != nil {
				return nil, err
			}
			holes := make([]geom.LinearRing, 0, len(p.Rings)-1)
			for _, r := range p.Rings[1:] {
				hole, err := toRing(r)
				if err != nil {
					return nil, err
				}
				holes = append(holes, hole)
			}
			polys = append(polys, geom.NewPolygon(shell, holes))
		}
		return geom.NewMultiPolygon(polys), nil

	case n.GeometryCollection != nil:
		elems := make([]geom.Geometry, 0, len(n.GeometryCollection.Geoms))
		for _, g := range n.GeometryCollection.Geoms {
			elem, err := toGeometry(g)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return geom.NewGeometryCollection(elems), nil
	}
	return nil, geonerrors.New(geonerrors.ErrCodeParse, "empty geometry production")
}

func toRing(n *coordSeqNode) (geom.LinearRing, error) {
	cs := toCoordinateSequence(n)
	if len(cs) < 4 {
		return geom.LinearRing{}, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "ring requires at least 4 coordinates, got %d", len(cs))
	}
	if !cs[0].Equal(cs[len(cs)-1]) {
		return geom.LinearRing{}, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "ring is not closed (first != last)")
	}
	return geom.NewLinearRing(cs), nil
}
