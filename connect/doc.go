// Package connect provides the graph-side services a graph-building
// collaborator needs around the search engine: reachability probes,
// connected-component analysis, and coordinate-to-node snapping.
//
// Road networks assembled from external segment data are rarely one clean
// component: dead fragments, severed service roads and clipped boundary
// ways all survive ingestion. The usual pipeline is:
//
//  1. Build the raw core.Graph from segment data.
//  2. LargestComponent(g) to drop stray fragments.
//  3. Nearest(g, lat, lon) to snap each geocoded endpoint onto the network.
//  4. Optionally Reachable(g, start, goal) as a cheap preflight before the
//     weighted search.
//
// All functions here ignore edge weights (BFS, not shortest paths) and
// never mutate their input; LargestComponent returns a fresh Graph.
package connect
