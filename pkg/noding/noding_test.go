package noding

import (
	"testing"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/segment"
)

func str(coords ...geom.Coordinate) segment.String { return segment.String(coords) }

func xy(x, y float64) geom.Coordinate { return geom.NewXY(x, y) }

func TestExactNoderCrossingLines(t *testing.T) {
	in := []segment.String{
		str(xy(0, 0), xy(1, 0)),
		str(xy(0.5, -1), xy(0.5, 1)),
	}
	out, err := ExactNoder{}.Node(in)
	if err != nil {
		t.Fatalf("Node error: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got %d segments, want 4: %v", len(out), out)
	}
	want := map[[2]geom.Coordinate]bool{
		dedupeKey(atomicSegment{xy(0, 0), xy(0.5, 0)}):  true,
		dedupeKey(atomicSegment{xy(0.5, 0), xy(1, 0)}):  true,
		dedupeKey(atomicSegment{xy(0.5, -1), xy(0.5, 0)}): true,
		dedupeKey(atomicSegment{xy(0.5, 0), xy(0.5, 1)}):  true,
	}
	for _, s := range out {
		cs := geom.CoordinateSequence(s)
		k := dedupeKey(atomicSegment{cs[0], cs[1]})
		if !want[k] {
			t.Errorf("unexpected output segment %v", s)
		}
	}
}

func TestExactNoderTouchingSquares(t *testing.T) {
	// Two squares sharing an edge: no interior crossings. The squares
	// emit eight boundary segments (four each), and the orientation-
	// insensitive dedup collapses the shared edge, which the two squares
	// traverse in opposite directions, leaving seven.
	square := func(x0, y0, x1, y1 float64) segment.String {
		return str(xy(x0, y0), xy(x1, y0), xy(x1, y1), xy(x0, y1), xy(x0, y0))
	}
	in := []segment.String{square(0, 0, 1, 1), square(1, 0, 2, 1)}
	out, err := ExactNoder{}.Node(in)
	if err != nil {
		t.Fatalf("Node error: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("got %d segments, want 7: %v", len(out), out)
	}
}

func TestExactNoderIdempotent(t *testing.T) {
	in := []segment.String{
		str(xy(0, 0), xy(1, 0)),
		str(xy(0.5, -1), xy(0.5, 1)),
	}
	first, err := ExactNoder{}.Node(in)
	if err != nil {
		t.Fatalf("first Node error: %v", err)
	}
	second, err := ExactNoder{}.Node(first)
	if err != nil {
		t.Fatalf("second Node error: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("re-noding changed segment count: %d != %d", len(second), len(first))
	}
}

func TestSnappingNoderJoinsGap(t *testing.T) {
	in := []segment.String{
		str(xy(0, 0), xy(10, 0)),
		str(xy(10.5, 0), xy(20, 0)),
	}
	out, err := SnappingNoder{Epsilon: 1.0}.Node(in)
	if err != nil {
		t.Fatalf("Node error: %v", err)
	}
	seen := make(map[geom.Coordinate]int)
	for _, s := range out {
		for _, c := range geom.CoordinateSequence(s) {
			seen[c]++
		}
	}
	var joined geom.Coordinate
	found := false
	for c := range seen {
		if c.X > 9.9 && c.X < 10.6 {
			joined = c
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a joined endpoint near x=10, got %v", out)
	}
	for _, s := range out {
		cs := geom.CoordinateSequence(s)
		for _, c := range cs {
			if c.X > 9.9 && c.X < 10.6 && !c.Equal(joined) {
				t.Errorf("endpoint %v was not snapped to representative %v", c, joined)
			}
		}
	}
}

// TestPointOnlyInputsSurviveBothPolicies pins spec.md §9's open
// question about point-only inputs: a lone point is a degenerate
// two-coordinate segment, and it must come back out of the noder
// unchanged under both the exact and the snapping policy rather than
// being dropped as a zero-length edge.
func TestPointOnlyInputsSurviveBothPolicies(t *testing.T) {
	in := []segment.String{str(xy(5, 5), xy(5, 5))}

	exact, err := ExactNoder{}.Node(in)
	if err != nil {
		t.Fatalf("ExactNoder.Node error: %v", err)
	}
	if len(exact) != 1 {
		t.Fatalf("ExactNoder: got %d segments, want 1: %v", len(exact), exact)
	}
	cs := geom.CoordinateSequence(exact[0])
	if len(cs) != 2 || !cs[0].Equal(xy(5, 5)) || !cs[1].Equal(xy(5, 5)) {
		t.Fatalf("ExactNoder: got %v, want degenerate {(5,5),(5,5)}", exact[0])
	}

	snapped, err := SnappingNoder{Epsilon: 0.1}.Node(in)
	if err != nil {
		t.Fatalf("SnappingNoder.Node error: %v", err)
	}
	if len(snapped) != 1 {
		t.Fatalf("SnappingNoder: got %d segments, want 1: %v", len(snapped), snapped)
	}
	cs = geom.CoordinateSequence(snapped[0])
	if len(cs) != 2 || !cs[0].Equal(xy(5, 5)) || !cs[1].Equal(xy(5, 5)) {
		t.Fatalf("SnappingNoder: got %v, want degenerate {(5,5),(5,5)}", snapped[0])
	}
}

// TestSnappingNoderPreservesPointAmongLines checks that a lone point
// survives the snap-tolerance path even when mixed with real segments
// that do intersect, i.e. the fix does not depend on the point being
// the only input.
func TestSnappingNoderPreservesPointAmongLines(t *testing.T) {
	in := []segment.String{
		str(xy(0, 0), xy(1, 0)),
		str(xy(0.5, -1), xy(0.5, 1)),
		str(xy(9, 9), xy(9, 9)),
	}
	out, err := SnappingNoder{Epsilon: 0.1}.Node(in)
	if err != nil {
		t.Fatalf("Node error: %v", err)
	}
	found := false
	for _, s := range out {
		cs := geom.CoordinateSequence(s)
		if len(cs) == 2 && cs[0].Equal(xy(9, 9)) && cs[1].Equal(xy(9, 9)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the lone point (9,9) to survive among %v", out)
	}
}

func TestDedupeOrientationInsensitive(t *testing.T) {
	segs := []atomicSegment{
		{xy(0, 0), xy(1, 0)},
		{xy(1, 0), xy(0, 0)},
	}
	if got := dedupe(segs); len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
}
