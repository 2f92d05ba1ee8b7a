// Package core defines the Node and Graph types shared by every other
// waypath package.
//
// This file declares Node, Arc, Graph, the NewNode/NewGraph constructors,
// and the sentinel errors for graph construction.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrLatitudeRange  - latitude outside [-90, 90] decimal degrees.
//	ErrLongitudeRange - longitude outside [-180, 180] decimal degrees.
//	ErrInvalidEdge    - edge with non-positive weight, or a self-loop.
//	ErrNodeNotFound   - an operation referenced a node the graph does not hold.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrLatitudeRange indicates a latitude outside [-90, 90] decimal degrees.
	ErrLatitudeRange = errors.New("core: latitude out of range [-90, 90]")

	// ErrLongitudeRange indicates a longitude outside [-180, 180] decimal degrees.
	ErrLongitudeRange = errors.New("core: longitude out of range [-180, 180]")

	// ErrInvalidEdge indicates an edge with a non-positive weight or identical
	// endpoints. The graph is left untouched when AddEdge returns it.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node represents a point in the road network.
//
// Identity is the ID alone: two Nodes with the same ID are the same node
// regardless of their coordinates, which are carried as metadata for
// distance estimation. Nodes are immutable value objects.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Lat is the latitude in decimal degrees, range [-90, 90].
	Lat float64

	// Lon is the longitude in decimal degrees, range [-180, 180].
	Lon float64
}

// NewNode builds a Node after validating its identifier and coordinate
// ranges. Returns ErrEmptyNodeID, ErrLatitudeRange or ErrLongitudeRange
// (wrapped with the offending value) on invalid input.
func NewNode(id string, lat, lon float64) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	if lat < -90 || lat > 90 {
		return Node{}, fmt.Errorf("%w: %g", ErrLatitudeRange, lat)
	}
	if lon < -180 || lon > 180 {
		return Node{}, fmt.Errorf("%w: %g", ErrLongitudeRange, lon)
	}

	return Node{ID: id, Lat: lat, Lon: lon}, nil
}

// Arc is one adjacency entry: the far endpoint of an undirected edge and
// the edge weight in meters. Every stored weight is strictly positive.
type Arc struct {
	// To is the neighboring node.
	To Node

	// Weight is the traversal cost in meters (> 0).
	Weight float64
}

// Graph is an undirected, weighted multigraph over an adjacency list,
// modeling a sparse road network.
//
// The only mutation path is AddNode/AddEdge; there is no removal. Parallel
// edges between the same pair of nodes are permitted and kept (multiple
// road segments between the same intersections), self-loops are not.
// Each undirected edge is stored twice, once per endpoint.
//
// Graph carries no lock: the intended lifecycle is build once, then treat
// as read-only. Any number of concurrent searches may read a quiescent
// Graph safely; interleaving AddNode/AddEdge with reads is not supported.
type Graph struct {
	// nodes maps node ID to its Node value (first write wins).
	nodes map[string]Node

	// adjacency maps node ID to its ordered arc list, in insertion order.
	adjacency map[string][]Arc

	// arcTotal counts stored arcs; EdgeCount halves it.
	arcTotal int
}

// NewGraph returns an empty Graph ready for population.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]Node),
		adjacency: make(map[string][]Arc),
	}
}
