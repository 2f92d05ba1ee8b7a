package core

import (
	"fmt"
	"sort"
)

// AddNode inserts n into the graph if absent.
// If a node with the same ID already exists, this is a no-op; the stored
// coordinates are not overwritten (first write wins, identity is the ID).
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) {
	if _, exists := g.nodes[n.ID]; exists {
		return
	}
	g.nodes[n.ID] = n
	// Adjacency entries are created lazily by AddEdge; absent means empty.
}

// AddEdge inserts the undirected edge a—b with the given weight in meters.
//
// Both endpoints are auto-inserted if absent (via AddNode), then the arc
// (b, w) is appended to a's list and (a, w) to b's list. Parallel edges
// between the same pair accumulate as extra adjacency entries.
//
// Returns ErrInvalidEdge (wrapped with detail) when w <= 0 or a and b share
// an ID; validation happens before any mutation, so a failed call leaves
// the graph exactly as it was.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b Node, w float64) error {
	if w <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g", ErrInvalidEdge, w)
	}
	if a.ID == b.ID {
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, a.ID)
	}

	g.AddNode(a)
	g.AddNode(b)

	// Both directions, so the adjacency relation stays symmetric at all times.
	g.adjacency[a.ID] = append(g.adjacency[a.ID], Arc{To: g.nodes[b.ID], Weight: w})
	g.adjacency[b.ID] = append(g.adjacency[b.ID], Arc{To: g.nodes[a.ID], Weight: w})
	g.arcTotal += 2

	return nil
}

// HasNode reports whether the graph contains a node with the given ID.
//
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeByID returns the stored Node for id and whether it exists.
//
// Complexity: O(1).
func (g *Graph) NodeByID(id string) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Neighbors returns a copy of the arc list for the node with the given ID,
// in insertion order. Nodes without adjacency entries (isolated nodes, or
// IDs the graph has never seen) yield an empty slice, never an error:
// a node that exists but is unreachable is a valid query target.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Arc {
	arcs := g.adjacency[id]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}

// Nodes returns all nodes sorted by ID, so iteration order is deterministic
// across runs and platforms.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns the number of nodes in the graph.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges. Each edge is stored as
// two arcs, so this halves the running arc total.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.arcTotal / 2
}
