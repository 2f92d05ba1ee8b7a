package connect

import (
	"github.com/tesselic/waypath/core"
	"github.com/tesselic/waypath/geo"
)

// Nearest returns the graph node closest to the given coordinate by
// great-circle distance, together with that distance in meters. This is
// the snap step a graph-building collaborator runs to map a geocoded
// address onto the road network before searching.
//
// Returns ErrNilGraph or ErrEmptyGraph when there is nothing to snap to.
//
// Complexity: O(V) linear scan; road-network graphs here are per-request
// and small enough that a spatial index would not pay for itself.
func Nearest(g *core.Graph, lat, lon float64) (core.Node, float64, error) {
	if g == nil {
		return core.Node{}, 0, ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return core.Node{}, 0, ErrEmptyGraph
	}

	best := nodes[0]
	bestDist := geo.HaversineMeters(lat, lon, best.Lat, best.Lon)
	for _, n := range nodes[1:] {
		if d := geo.HaversineMeters(lat, lon, n.Lat, n.Lon); d < bestDist {
			best, bestDist = n, d
		}
	}

	return best, bestDist, nil
}
