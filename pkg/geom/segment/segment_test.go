package segment

import (
	"testing"

	"github.com/geoncore/geoncore/pkg/geom"
)

func xy(x, y float64) geom.Coordinate { return geom.NewXY(x, y) }

func TestExtractPointYieldsDegenerateSegment(t *testing.T) {
	out := Extract(geom.NewPoint(xy(1, 1)))
	if len(out) != 1 {
		t.Fatalf("Extract() yielded %d strings, want 1", len(out))
	}
	if len(out[0]) != 2 || !out[0][0].Equal(xy(1, 1)) || !out[0][1].Equal(xy(1, 1)) {
		t.Fatalf("Extract(POINT) = %v, want degenerate {(1,1),(1,1)}", out[0])
	}
}

func TestExtractLineString(t *testing.T) {
	ls := geom.NewLineString(geom.CoordinateSequence{xy(0, 0), xy(1, 1)})
	out := Extract(ls)
	if len(out) != 1 || len(out[0]) != 2 {
		t.Fatalf("Extract(LINESTRING) = %v, want one 2-point string", out)
	}
}

func TestExtractPolygonYieldsShellThenHoles(t *testing.T) {
	shell := geom.NewLinearRing(geom.CoordinateSequence{
		xy(0, 0), xy(0, 4), xy(4, 4), xy(4, 0), xy(0, 0),
	})
	hole := geom.NewLinearRing(geom.CoordinateSequence{
		xy(1, 1), xy(1, 2), xy(2, 2), xy(1, 1),
	})
	poly := geom.NewPolygon(shell, []geom.LinearRing{hole})

	out := Extract(poly)
	if len(out) != 2 {
		t.Fatalf("Extract(POLYGON) yielded %d strings, want 2", len(out))
	}
	if len(out[0]) != 5 {
		t.Fatalf("shell string has %d coords, want 5", len(out[0]))
	}
	if len(out[1]) != 4 {
		t.Fatalf("hole string has %d coords, want 4", len(out[1]))
	}
}

func TestExtractDescendsCollections(t *testing.T) {
	coll := geom.NewGeometryCollection([]geom.Geometry{
		geom.NewPoint(xy(0, 0)),
		geom.NewMultiLineString([]geom.LineString{
			geom.NewLineString(geom.CoordinateSequence{xy(1, 1), xy(2, 2)}),
		}),
	})
	out := Extract(coll)
	if len(out) != 2 {
		t.Fatalf("Extract(collection) yielded %d strings, want 2", len(out))
	}
}

func TestReversedFlipsOrder(t *testing.T) {
	s := String{xy(0, 0), xy(1, 1), xy(2, 2)}
	r := s.Reversed()
	want := String{xy(2, 2), xy(1, 1), xy(0, 0)}
	for i := range want {
		if !r[i].Equal(want[i]) {
			t.Fatalf("Reversed()[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}
