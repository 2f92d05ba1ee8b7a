// Package waypath is a shortest-path engine for sparse road networks:
// build a weighted graph from road segments, then route across it with
// Dijkstra or A* and compare how the two behave.
//
// 🚀 What is waypath?
//
//	A small, focused library that brings together:
//		• Core primitives: geographic nodes & undirected weighted edges
//		• Heuristics: haversine (admissible), Manhattan, diagonal, equirectangular
//		• Search: one engine behind both Dijkstra and A*, with outcome-typed
//		  results, expansion statistics and optional trace telemetry
//		• Connectivity: reachability, components, largest-component extraction,
//		  nearest-node snapping
//		• Comparison: race both algorithms concurrently and measure the savings
//
// ✨ Why choose waypath?
//
//   - Deterministic – FIFO tie-breaking makes expansion counts reproducible
//   - Failure as data – missing nodes and unreachable goals are outcomes,
//     never exceptions in disguise
//   - Pure Go hot path – dense-index arenas, no string hashing in the loop
//   - Honest concurrency – immutable graph, share-nothing searches
//
// Everything is organized under five subpackages:
//
//	core/    — Node, Arc and the adjacency-list Graph
//	geo/     — distance estimators over coordinates
//	search/  — the Dijkstra/A* engine, Outcome and Trace types
//	connect/ — BFS reachability, components, nearest-node snapping
//	compare/ — concurrent dual-run harness with timing and logging
//
// Quick ASCII example:
//
//	    a───b
//	    │   │
//	    c───d
//
//	four intersections, four road segments; search any corner to any other.
//
// The graph is built once per route request from externally supplied
// segments (geocoding and segment fetching live outside this module),
// searched while read-only, and discarded with the result.
//
//	go get github.com/tesselic/waypath
package waypath
