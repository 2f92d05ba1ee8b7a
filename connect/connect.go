// Package connect: this file provides BFS reachability over a core.Graph.
package connect

import (
	"errors"
	"fmt"

	"github.com/tesselic/waypath/core"
)

// Sentinel errors for connectivity queries.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("connect: graph is nil")

	// ErrEmptyGraph indicates the graph holds no nodes at all.
	ErrEmptyGraph = errors.New("connect: graph has no nodes")
)

// Reachable reports whether any edge sequence joins startID to goalID.
//
// Unknown endpoints return a core.ErrNodeNotFound-wrapped error: unlike a
// search outcome, a connectivity probe over an ID the graph never held is
// a caller bug, not a route that happens to be missing.
//
// Complexity: O(V + E) worst case (plain BFS, weights ignored).
func Reachable(g *core.Graph, startID, goalID string) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.HasNode(startID) {
		return false, fmt.Errorf("%w: %q", core.ErrNodeNotFound, startID)
	}
	if !g.HasNode(goalID) {
		return false, fmt.Errorf("%w: %q", core.ErrNodeNotFound, goalID)
	}
	if startID == goalID {
		return true, nil
	}

	visited := map[string]bool{startID: true}
	queue := []string{startID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, arc := range g.Neighbors(current) {
			next := arc.To.ID
			if next == goalID {
				return true, nil
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return false, nil
}
