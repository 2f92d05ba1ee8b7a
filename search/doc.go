// Package search provides goal-directed shortest-path search over a
// core.Graph: Dijkstra's algorithm and A* with a pluggable heuristic,
// sharing one priority-queue engine.
//
// Overview:
//
//   - AStar(g, start, goal, h) expands nodes in order of cost-so-far plus
//     h's estimate of the remaining cost. With an admissible h (one that
//     never overestimates, such as geo.Haversine) the returned path is
//     optimal and no more nodes are expanded than Dijkstra would expand.
//   - Dijkstra(g, start, goal) is AStar under the zero heuristic.
//   - The selection is explicit: pass Zero() or Estimator(fn). There is no
//     nil-function sniffing.
//
// Outcome, not exceptions:
//
//	Search-time conditions are returned as data. A missing endpoint yields
//	NotFound{UnknownNode}; an unreachable goal yields NotFound{NoPath};
//	identical endpoints yield Found with a one-node path, zero cost and
//	zero expansions. The error return covers only malformed invocations:
//	a nil graph, a negative weight met mid-search (a graph mutated after
//	construction), or an exhausted WithMaxExpansions budget.
//
// Determinism:
//
//	The frontier is a binary min-heap with lazy decrease-key: relaxations
//	push duplicates, stale entries are skipped on pop without counting as
//	expansions. Equal priorities extract FIFO by push sequence, so
//	NodesExpanded is reproducible across runs and platforms, which makes
//	A*-versus-Dijkstra expansion statistics comparable.
//
// Concurrency:
//
//	One invocation is single-threaded, synchronous, and owns all of its
//	mutable state (frontier, cost table, parent links). Any number of
//	invocations may run concurrently over the same quiescent Graph with no
//	synchronization; see the compare package for a harness that races the
//	two algorithms.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package search
