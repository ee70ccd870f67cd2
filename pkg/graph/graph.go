// Package graph builds and stores the planar graph that the
// polygonizer consumes: nodes keyed by exact coordinate identity, edges
// as an undirected adjacency, built from a noded segment-string set.
package graph

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/segment"
)

func coordComparator(a, b interface{}) int {
	return a.(geom.Coordinate).Compare(b.(geom.Coordinate))
}

// Graph is an undirected planar graph over exact coordinates. Node
// identity is by exact equality, never by tolerance: two coordinates
// that differ in the last bit are different nodes, which is why the
// noder's job of unifying near-coincident points must happen before a
// geometry reaches the builder.
type Graph struct {
	index  *redblacktree.Tree
	Coords []geom.Coordinate
	adj    []*treeset.Set
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: redblacktree.NewWith(coordComparator)}
}

// NodeCount returns the number of distinct coordinates registered.
func (g *Graph) NodeCount() int { return len(g.Coords) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, s := range g.adj {
		n += s.Size()
	}
	return n / 2
}

// NodeIndex returns the node index for c, if it has been registered.
func (g *Graph) NodeIndex(c geom.Coordinate) (int, bool) {
	v, found := g.index.Get(c)
	if !found {
		return 0, false
	}
	return v.(int), true
}

// AddNode registers c if not already present and returns its index.
func (g *Graph) AddNode(c geom.Coordinate) int {
	if idx, ok := g.NodeIndex(c); ok {
		return idx
	}
	idx := len(g.Coords)
	g.Coords = append(g.Coords, c)
	g.adj = append(g.adj, treeset.NewWith(utils.IntComparator))
	g.index.Put(c, idx)
	return idx
}

// AddEdge registers both endpoints and connects them. A segment whose
// endpoints coincide (a degenerate point, or a self-loop produced by
// snapping) still registers the coordinate as a node — an isolated
// point must not disappear from the graph — but adds no adjacency,
// since the graph has no notion of a zero-length edge.
func (g *Graph) AddEdge(a, b geom.Coordinate) {
	ia := g.AddNode(a)
	ib := g.AddNode(b)
	if ia == ib {
		return
	}
	g.adj[ia].Add(ib)
	g.adj[ib].Add(ia)
}

// Neighbors returns the sorted node indices adjacent to idx.
func (g *Graph) Neighbors(idx int) []int {
	values := g.adj[idx].Values()
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v.(int)
	}
	return out
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b int) bool {
	return g.adj[a].Contains(b)
}

// Nodes returns an ordered view of the registered coordinates, indexed
// by node index.
func (g *Graph) Nodes() []geom.Coordinate {
	out := make([]geom.Coordinate, len(g.Coords))
	copy(out, g.Coords)
	return out
}

// EdgesPairs returns every undirected edge exactly once, as (i, j) with
// i < j, in ascending lexicographic order.
func (g *Graph) EdgesPairs() [][2]int {
	var out [][2]int
	for i := range g.Coords {
		for _, j := range g.Neighbors(i) {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// EdgesAsLineStrings materializes every edge as a two-coordinate
// LineString built from its endpoint nodes.
func (g *Graph) EdgesAsLineStrings() []geom.LineString {
	pairs := g.EdgesPairs()
	out := make([]geom.LineString, len(pairs))
	for k, p := range pairs {
		out[k] = geom.NewLineString(geom.CoordinateSequence{g.Coords[p[0]], g.Coords[p[1]]})
	}
	return out
}

// Builder assembles a Graph from a noded segment-string set: every
// consecutive coordinate pair in every string becomes a graph edge, and
// a string with a single coordinate becomes an isolated node.
// Segment strings are expected to already be non-crossing (the output
// of a Noder), since the builder does not itself detect crossings.
type Builder struct{}

// Build constructs a Graph from noded segments.
func (Builder) Build(segments []segment.String) (*Graph, error) {
	g := New()
	for _, s := range segments {
		cs := geom.CoordinateSequence(s)
		if len(cs) == 1 {
			g.AddNode(cs[0])
		}
		for i := 0; i < len(cs)-1; i++ {
			g.AddEdge(cs[i], cs[i+1])
		}
	}
	return g, nil
}
