// Package segment turns any geometry into a flat list of directed segment
// strings for the noder: one segment string per Point (a degenerate
// two-coordinate sentinel), per LineString/LinearRing, and per ring
// (shell + holes) of every Polygon reachable through the geometry.
package segment

import (
	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/flatten"
)

// String is a coordinate sequence interpreted as consecutive directed
// segments. A String of length 2 with equal endpoints represents a lone
// point, preserved through noding as a degenerate segment.
type String geom.CoordinateSequence

// Reversed returns the segment string with its coordinate order flipped.
func (s String) Reversed() String {
	return String(geom.CoordinateSequence(s).Reversed())
}

// Extract converts any geometry into its constituent segment strings,
// applying flatten.All to descend through nested collections first.
func Extract(g geom.Geometry) []String {
	var out []String
	for _, prim := range flatten.All(g) {
		out = append(out, extractPrimitive(prim)...)
	}
	return out
}

func extractPrimitive(g geom.Geometry) []String {
	switch v := g.(type) {
	case geom.Point:
		return []String{{v.C, v.C}}
	case geom.LineString:
		return []String{String(v.Coords.Clone())}
	case geom.LinearRing:
		return []String{String(v.Coords.Clone())}
	case geom.Polygon:
		out := make([]String, 0, 1+len(v.Holes))
		out = append(out, String(v.Shell.Coords.Clone()))
		for _, h := range v.Holes {
			out = append(out, String(h.Coords.Clone()))
		}
		return out
	default:
		return nil
	}
}
