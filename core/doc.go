// Package core provides the in-memory road-network graph consumed by the
// waypath search engine.
//
// Overview:
//
//   - Node is a value object: a unique string ID plus latitude/longitude in
//     decimal degrees. Equality is defined by ID alone; the coordinates are
//     metadata for distance estimation, never identity.
//   - Graph is an undirected, weighted multigraph stored as an adjacency
//     list. AddEdge(a, b, w) materializes both the a→b arc and the b→a arc,
//     so the adjacency relation is symmetric at all times.
//
// Invariants:
//
//   - Every stored weight is strictly positive (meters).
//   - Self-loops are rejected; parallel edges are kept as-is.
//   - Every edge endpoint also exists as a node (auto-inserted on AddEdge).
//
// Lifecycle and concurrency:
//
//	A Graph is built once per route request from externally supplied road
//	segments, then treated as read-only while searches run. No mutex is
//	held: concurrent reads of a quiescent Graph are safe, and no mutation
//	API may overlap a search. There is no removal and no persistence; the
//	whole structure is discarded after the route is computed.
//
// Error handling:
//
//	Construction-time problems (bad coordinates, non-positive weight,
//	self-loop) surface synchronously at the mutating call as sentinel
//	errors, wrapped with context and matchable via errors.Is. Queries over
//	missing nodes are not errors: Neighbors returns an empty slice.
package core
