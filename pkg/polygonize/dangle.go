package polygonize

import (
	"sort"

	"github.com/geoncore/geoncore/pkg/graph"
)

// adjacency is a mutable copy of a Graph's edge set, used so dangle
// pruning can delete edges without touching the immutable Graph itself.
type adjacency map[int]map[int]bool

func copyAdjacency(g *graph.Graph) adjacency {
	adj := make(adjacency, g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		set := make(map[int]bool)
		for _, j := range g.Neighbors(i) {
			set[j] = true
		}
		adj[i] = set
	}
	return adj
}

func (adj adjacency) degree(n int) int { return len(adj[n]) }

func (adj adjacency) removeEdge(a, b int) {
	delete(adj[a], b)
	delete(adj[b], a)
}

func (adj adjacency) sortedNeighbors(n int) []int {
	out := make([]int, 0, len(adj[n]))
	for j := range adj[n] {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}

// pruneDangles repeatedly strips degree-1 nodes and their chains from
// adj, returning the coordinate index chains removed. A face
// polygonizer only makes sense on a graph with no dangling ends: a
// dangle contributes no area and would otherwise contaminate a traced
// ring with an out-and-back detour, so it is removed first and reported
// separately as a dangle rather than folded into a ring's boundary.
func pruneDangles(adj adjacency) [][]int {
	var chains [][]int

	leaves := make([]int, 0)
	for n, set := range adj {
		if len(set) == 1 {
			leaves = append(leaves, n)
		}
	}

	for len(leaves) > 0 {
		u := leaves[0]
		leaves = leaves[1:]
		if adj.degree(u) != 1 {
			continue
		}

		chain := []int{u}
		cur := u
		for {
			nbrs := adj.sortedNeighbors(cur)
			if len(nbrs) == 0 {
				break
			}
			next := nbrs[0]
			adj.removeEdge(cur, next)
			chain = append(chain, next)
			cur = next
			if adj.degree(cur) != 1 {
				break
			}
		}
		if adj.degree(cur) == 1 {
			leaves = append(leaves, cur)
		}
		if len(chain) >= 2 {
			chains = append(chains, chain)
		}
	}
	return chains
}
