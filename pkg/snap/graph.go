package snap

import "github.com/geoncore/geoncore/pkg/graph"

// GraphAware snaps every node coordinate in g and rebuilds the graph
// over the resulting representatives, merging any nodes that snap to
// the same point and dropping the self-loops that merge produces (an
// edge whose two endpoints snapped together no longer represents
// anything).
func GraphAware(g *graph.Graph, eps float64, strategy Strategy) *graph.Graph {
	snapped := apply(g.Coords, eps, strategy)

	out := graph.New()
	for i := range g.Coords {
		for _, j := range g.Neighbors(i) {
			if i >= j {
				continue
			}
			out.AddEdge(snapped[i], snapped[j])
		}
	}
	// Coordinates that ended up isolated (no surviving edges, e.g. an
	// original degree-0 point) still register as nodes so they are not
	// silently dropped from the result.
	for _, c := range snapped {
		out.AddNode(c)
	}
	return out
}
