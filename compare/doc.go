// Package compare races Dijkstra and A* over the same immutable graph and
// reports both outcomes side by side.
//
// The point of running both is the statistics, not the route: with an
// admissible heuristic the two totals agree to floating-point tolerance,
// while the expansion counts show how much work the heuristic saved. A
// rendering or metrics collaborator consumes the Comparison to display
// exactly that.
//
// Concurrency:
//
//	The two searches run on separate goroutines via errgroup and share
//	nothing but the read-only graph; each invocation owns its frontier,
//	cost table and parent links. No locks are taken anywhere. The context
//	is checked before each launch; once started, a search runs to
//	completion (it has no suspension points).
//
// Timing:
//
//	The engine embeds no clock. Elapsed durations are measured here,
//	around each invocation, which is also where a caller would measure if
//	it drove the engine directly.
//
// Logging:
//
//	Silent by default. WithLogger(golog.New()) emits one summary line per
//	algorithm and a warning when the totals disagree, which with a correct
//	setup only happens under a non-admissible heuristic such as
//	geo.Manhattan.
package compare
