package polygonize

import (
	"math"
	"sort"

	"github.com/geoncore/geoncore/pkg/geom"
)

// halfEdge is one directed traversal of an undirected edge. Two
// half-edges, twins of each other, exist per edge.
type halfEdge struct {
	origin, dest int
	twin         int
	next         int
}

// buildHalfEdges constructs the directed half-edge set for adj and, for
// every half-edge, the "next" pointer that traces the face lying to its
// left: at the destination node, next is the outgoing half-edge
// immediately following the twin in counterclockwise angular order.
// Following next repeatedly from any half-edge yields a closed ring.
func buildHalfEdges(adj adjacency, coords []geom.Coordinate) []halfEdge {
	var edges []halfEdge

	// Deterministic pass: iterate nodes in order, neighbors in order.
	nodes := make([]int, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)

	for _, u := range nodes {
		nbrs := adj.sortedNeighbors(u)
		sort.Ints(nbrs)
		for _, v := range nbrs {
			if u >= v {
				continue
			}
			idxUV := len(edges)
			edges = append(edges, halfEdge{origin: u, dest: v})
			idxVU := len(edges)
			edges = append(edges, halfEdge{origin: v, dest: u})
			edges[idxUV].twin = idxVU
			edges[idxVU].twin = idxUV
		}
	}

	// Per node, the outgoing half-edges sorted by angle ascending.
	outgoing := make(map[int][]int)
	for i, he := range edges {
		outgoing[he.origin] = append(outgoing[he.origin], i)
	}
	for n, list := range outgoing {
		origin := coords[n]
		sort.Slice(list, func(a, b int) bool {
			return azimuth(origin, coords[edges[list[a]].dest]) < azimuth(origin, coords[edges[list[b]].dest])
		})
		outgoing[n] = list
	}

	for i := range edges {
		twin := edges[i].twin
		v := edges[i].dest
		list := outgoing[v]
		pos := indexOf(list, twin)
		edges[i].next = list[(pos+1)%len(list)]
	}

	return edges
}

func azimuth(from, to geom.Coordinate) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

func indexOf(list []int, v int) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

// traceRings follows next pointers from every unvisited half-edge to
// enumerate all faces, returning each as a closed sequence of node
// indices (first repeated as last).
func traceRings(edges []halfEdge) [][]int {
	visited := make([]bool, len(edges))
	var rings [][]int
	for start := range edges {
		if visited[start] {
			continue
		}
		var ring []int
		cur := start
		for {
			visited[cur] = true
			ring = append(ring, edges[cur].origin)
			cur = edges[cur].next
			if cur == start {
				break
			}
		}
		ring = append(ring, edges[start].origin)
		rings = append(rings, ring)
	}
	return rings
}
