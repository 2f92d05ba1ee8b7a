package connect

import (
	"sort"

	"github.com/tesselic/waypath/core"
)

// Components returns every connected component of g, each sorted by node
// ID, ordered largest first (ties by smallest member ID). The result is
// deterministic for a given graph regardless of insertion order.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) [][]core.Node {
	if g == nil || g.NodeCount() == 0 {
		return nil
	}

	visited := make(map[string]bool, g.NodeCount())
	var components [][]core.Node

	// g.Nodes() is ID-sorted, so component discovery order is stable and
	// each component comes out already sorted: BFS only adds IDs, the
	// final per-component sort below normalizes traversal order.
	for _, seed := range g.Nodes() {
		if visited[seed.ID] {
			continue
		}
		visited[seed.ID] = true
		component := []core.Node{seed}
		queue := []core.Node{seed}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, arc := range g.Neighbors(current.ID) {
				if !visited[arc.To.ID] {
					visited[arc.To.ID] = true
					component = append(component, arc.To)
					queue = append(queue, arc.To)
				}
			}
		}

		sort.Slice(component, func(i, j int) bool { return component[i].ID < component[j].ID })
		components = append(components, component)
	}

	sort.SliceStable(components, func(i, j int) bool {
		if len(components[i]) != len(components[j]) {
			return len(components[i]) > len(components[j])
		}

		return components[i][0].ID < components[j][0].ID
	})

	return components
}

// LargestComponent extracts the biggest connected component of g into a
// fresh Graph, preserving edge multiplicity among the surviving nodes.
// Road networks fetched from segment data routinely contain stray
// disconnected fragments; routing against the main component avoids
// NoPath outcomes caused by snapping an endpoint onto a fragment.
//
// An empty or nil input yields an empty Graph.
//
// Complexity: O(V log V + E).
func LargestComponent(g *core.Graph) *core.Graph {
	out := core.NewGraph()
	components := Components(g)
	if len(components) == 0 {
		return out
	}

	keep := make(map[string]bool, len(components[0]))
	for _, n := range components[0] {
		keep[n.ID] = true
		out.AddNode(n)
	}

	// Each undirected edge is stored once per endpoint; copying only the
	// arcs whose far end has the greater ID takes each edge exactly once
	// while keeping parallel entries intact.
	for _, n := range components[0] {
		for _, arc := range g.Neighbors(n.ID) {
			if keep[arc.To.ID] && n.ID < arc.To.ID {
				// Weights in g are already validated; AddEdge cannot fail here.
				_ = out.AddEdge(n, arc.To, arc.Weight)
			}
		}
	}

	return out
}
