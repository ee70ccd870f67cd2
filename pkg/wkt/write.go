package wkt

import (
	"strconv"
	"strings"

	"github.com/geoncore/geoncore/pkg/geom"
)

// Write serializes g as WKT text using trimmed numerics (no trailing
// zeros) and a "Z" tag whenever any coordinate carries a z value.
func Write(g geom.Geometry) string {
	var b strings.Builder
	writeGeometry(&b, g)
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeCoord(b *strings.Builder, c geom.Coordinate) {
	b.WriteString(formatNumber(c.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(c.Y))
	if c.HasZ {
		b.WriteByte(' ')
		b.WriteString(formatNumber(c.Z))
	}
}

func writeCoordSeq(b *strings.Builder, cs geom.CoordinateSequence) {
	b.WriteByte('(')
	for i, c := range cs {
		if i > 0 {
			b.WriteString(", ")
		}
		writeCoord(b, c)
	}
	b.WriteByte(')')
}

func anyHasZ(cs []geom.Coordinate) bool {
	for _, c := range cs {
		if c.HasZ {
			return true
		}
	}
	return false
}

func zTag(hasZ bool) string {
	if hasZ {
		return " Z "
	}
	return ""
}

func writeGeometry(b *strings.Builder, g geom.Geometry) {
	switch v := g.(type) {
	case geom.Point:
		b.WriteString("POINT")
		b.WriteString(zTag(v.C.HasZ))
		b.WriteByte('(')
		writeCoord(b, v.C)
		b.WriteByte(')')

	case geom.LineString:
		b.WriteString("LINESTRING")
		b.WriteString(zTag(anyHasZ(v.Coords)))
		writeCoordSeq(b, v.Coords)

	case geom.LinearRing:
		b.WriteString("LINESTRING")
		b.WriteString(zTag(anyHasZ(v.Coords)))
		writeCoordSeq(b, v.Coords)

	case geom.Polygon:
		b.WriteString("POLYGON")
		b.WriteString(zTag(anyHasZ(v.Coordinates())))
		b.WriteByte('(')
		writeCoordSeq(b, v.Shell.Coords)
		for _, h := range v.Holes {
			b.WriteString(", ")
			writeCoordSeq(b, h.Coords)
		}
		b.WriteByte(')')

	case geom.MultiPoint:
		b.WriteString("MULTIPOINT")
		b.WriteString(zTag(anyHasZ(v.Coordinates())))
		b.WriteByte('(')
		for i, p := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			writeCoord(b, p.C)
			b.WriteByte(')')
		}
		b.WriteByte(')')

	case geom.MultiLineString:
		b.WriteString("MULTILINESTRING")
		b.WriteString(zTag(anyHasZ(v.Coordinates())))
		b.WriteByte('(')
		for i, l := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeCoordSeq(b, l.Coords)
		}
		b.WriteByte(')')

	case geom.MultiPolygon:
		b.WriteString("MULTIPOLYGON")
		b.WriteString(zTag(anyHasZ(v.Coordinates())))
		b.WriteByte('(')
		for i, p := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			writeCoordSeq(b, p.Shell.Coords)
			for _, h := range p.Holes {
				b.WriteString(", ")
				writeCoordSeq(b, h.Coords)
			}
			b.WriteByte(')')
		}
		b.WriteByte(')')

	case geom.GeometryCollection:
		b.WriteString("GEOMETRYCOLLECTION(")
		for i, e := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeGeometry(b, e)
		}
		b.WriteByte(')')
	}
}
