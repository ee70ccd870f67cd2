package graph

import (
	"testing"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/segment"
)

func xy(x, y float64) geom.Coordinate { return geom.NewXY(x, y) }

func TestBuilderSquare(t *testing.T) {
	square := segment.String{xy(0, 0), xy(0, 1), xy(1, 1), xy(1, 0), xy(0, 0)}
	g, err := Builder{}.Build([]segment.String{square})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", g.NodeCount())
	}
	if g.EdgeCount() != 4 {
		t.Fatalf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
	idx, ok := g.NodeIndex(xy(0, 0))
	if !ok {
		t.Fatal("expected node at (0,0)")
	}
	if len(g.Neighbors(idx)) != 2 {
		t.Fatalf("Neighbors(0,0) = %d, want 2", len(g.Neighbors(idx)))
	}
}

func TestAddEdgeIgnoresSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge(xy(1, 1), xy(1, 1))
	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestBuilderIsolatedPoint(t *testing.T) {
	point := segment.String{xy(5, 5), xy(5, 5)}
	g, err := Builder{}.Build([]segment.String{point})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if _, ok := g.NodeIndex(xy(5, 5)); !ok {
		t.Fatal("expected isolated point to be registered as a node")
	}
}

func TestNodesEdgesPairsAndLineStrings(t *testing.T) {
	square := segment.String{xy(0, 0), xy(0, 1), xy(1, 1), xy(1, 0), xy(0, 0)}
	g, err := Builder{}.Build([]segment.String{square})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if len(g.Nodes()) != g.NodeCount() {
		t.Fatalf("Nodes() len = %d, want %d", len(g.Nodes()), g.NodeCount())
	}

	pairs := g.EdgesPairs()
	if len(pairs) != g.EdgeCount() {
		t.Fatalf("EdgesPairs() len = %d, want %d", len(pairs), g.EdgeCount())
	}
	for k, p := range pairs {
		if p[0] >= p[1] {
			t.Fatalf("pair %d = %v, want i < j", k, p)
		}
		if k > 0 && pairs[k-1][0] > p[0] {
			t.Fatalf("pairs not in ascending order: %v before %v", pairs[k-1], p)
		}
	}

	lines := g.EdgesAsLineStrings()
	if len(lines) != len(pairs) {
		t.Fatalf("EdgesAsLineStrings() len = %d, want %d", len(lines), len(pairs))
	}
	for k, ls := range lines {
		if len(ls.Coords) != 2 {
			t.Fatalf("edge linestring %d has %d coords, want 2", k, len(ls.Coords))
		}
		if !ls.Coords[0].Equal(g.Coords[pairs[k][0]]) || !ls.Coords[1].Equal(g.Coords[pairs[k][1]]) {
			t.Fatalf("edge linestring %d = %v, want endpoints of pair %v", k, ls.Coords, pairs[k])
		}
	}
}

func TestBuilderDangle(t *testing.T) {
	// A triangle plus a single dangling edge off one vertex.
	triangle := segment.String{xy(0, 0), xy(2, 0), xy(1, 2), xy(0, 0)}
	dangle := segment.String{xy(1, 2), xy(1, 4)}
	g, err := Builder{}.Build([]segment.String{triangle, dangle})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", g.NodeCount())
	}
	apex, ok := g.NodeIndex(xy(1, 2))
	if !ok {
		t.Fatal("expected node at apex (1,2)")
	}
	if len(g.Neighbors(apex)) != 3 {
		t.Fatalf("apex has %d neighbors, want 3", len(g.Neighbors(apex)))
	}
}
