// Package search implements the goal-directed shortest-path engine shared
// by Dijkstra and A*.
//
// One parameterized algorithm serves both entry points: a min-priority
// frontier keyed by cost-so-far plus heuristic estimate, with lazy
// decrease-key (stale duplicates are skipped on pop, not removed on push)
// and FIFO tie-breaking on equal priorities. Dijkstra is the degenerate
// case under the zero heuristic.
//
// Complexity:
//
//   - Time:  O((V + E) log V). Each node settles at most once, each
//     relaxation may push one frontier entry, each heap op costs O(log N).
//   - Space: O(V + E) for the dense cost/parent/settled tables plus the
//     frontier under lazy decrease-key.
package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/tesselic/waypath/core"
)

// Dijkstra computes the cheapest path from startID to goalID in g.
// It is exactly AStar under the zero heuristic: the frontier priority is
// the cost so far, nothing more.
//
// Returns:
//
//   - Outcome: Found{Path, TotalCost, NodesExpanded} when a path exists;
//     NotFound{UnknownNode} when either endpoint is absent;
//     NotFound{NoPath} when the frontier drains without reaching goalID.
//   - err: ErrNilGraph, ErrNegativeWeight, or ErrExpansionBudget. Missing
//     endpoints and unreachable goals are data, never errors.
func Dijkstra(g *core.Graph, startID, goalID string, opts ...Option) (Outcome, error) {
	return AStar(g, startID, goalID, Zero(), opts...)
}

// AStar computes the cheapest path from startID to goalID in g, steering
// the frontier by h. With an admissible h the result cost is optimal and
// the engine expands no more nodes than Dijkstra would.
//
// Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. startID and goalID must exist (Outcome NotFound{UnknownNode}).
//  3. startID == goalID short-circuits to Found{[start], 0, 0}: identical
//     endpoints are a valid zero-length route, not an error.
//
// A nil h is treated as Zero().
func AStar(g *core.Graph, startID, goalID string, h Heuristic, opts ...Option) (Outcome, error) {
	// 1) Validate the graph before touching options, mirroring the fail-fast
	//    ordering of the container checks.
	if g == nil {
		return Outcome{}, ErrNilGraph
	}

	// 2) Build Options from the functional option list.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if h == nil {
		h = Zero()
	}

	// 3) Resolve endpoints. Absent endpoints are reported as data so callers
	//    branch on the Outcome without error machinery.
	start, okStart := g.NodeByID(startID)
	goal, okGoal := g.NodeByID(goalID)
	if !okStart || !okGoal {
		return notFound(ReasonUnknownNode, cfg), nil
	}

	// 4) Zero-length route short-circuit: one-node path, zero cost, zero
	//    expansions. Distinguishes "already there" from "cannot get there".
	if startID == goalID {
		out := Outcome{
			Found:     true,
			Path:      []core.Node{start},
			TotalCost: 0,
		}
		if cfg.CaptureTrace {
			out.Trace = &Trace{}
		}

		return out, nil
	}

	// 5) Run the engine with fresh per-invocation state.
	r := newRunner(g, goal, h, cfg)

	return r.run(start)
}

// runner holds the mutable state of a single engine invocation.
//
// Node identity inside the hot loop is a dense integer index handed out on
// first touch, so the cost, parent and settled tables are flat slices and
// the loop never hashes a string ID.
type runner struct {
	g    *core.Graph
	h    Heuristic
	goal core.Node
	cfg  Options

	// Arena: ID → dense index, index → Node.
	index map[string]int
	arena []core.Node

	// Per-index tables, grown in lockstep with arena.
	cost    []float64
	parent  []int
	settled []bool

	pq  frontier
	seq uint64

	expanded int
	trace    *Trace
}

// newRunner allocates search state sized for the graph.
func newRunner(g *core.Graph, goal core.Node, h Heuristic, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		h:       h,
		goal:    goal,
		cfg:     cfg,
		index:   make(map[string]int, n),
		arena:   make([]core.Node, 0, n),
		cost:    make([]float64, 0, n),
		parent:  make([]int, 0, n),
		settled: make([]bool, 0, n),
		pq:      make(frontier, 0, n),
	}
	if cfg.CaptureTrace {
		r.trace = &Trace{}
	}

	return r
}

// touch returns the dense index for n, assigning one on first sight.
func (r *runner) touch(n core.Node) int {
	if i, ok := r.index[n.ID]; ok {
		return i
	}
	i := len(r.arena)
	r.index[n.ID] = i
	r.arena = append(r.arena, n)
	r.cost = append(r.cost, math.Inf(1))
	r.parent = append(r.parent, -1)
	r.settled = append(r.settled, false)

	return i
}

// push enqueues a frontier entry for index v with the given priority.
// The monotonically increasing sequence number makes equal-priority
// extraction FIFO, so expansion counts are reproducible across platforms.
func (r *runner) push(v int, priority float64) {
	heap.Push(&r.pq, &frontierItem{node: v, priority: priority, seq: r.seq})
	r.seq++
}

// run executes the expansion loop from start and builds the Outcome.
func (r *runner) run(start core.Node) (Outcome, error) {
	// Seed: cost 0 at start, priority = pure heuristic estimate.
	si := r.touch(start)
	gi := r.touch(r.goal)
	r.cost[si] = 0
	heap.Init(&r.pq)
	r.push(si, r.h.Estimate(start, r.goal))
	if r.trace != nil {
		r.trace.Frontier = append(r.trace.Frontier, start)
	}

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.node

		// Goal reached: reconstruct by walking parent links back to start.
		if u == gi {
			return r.finish(si, gi), nil
		}

		// Stale lazy-deletion duplicate: a cheaper entry for u was already
		// processed. Skip without counting an expansion.
		if r.settled[u] {
			continue
		}

		if r.cfg.MaxExpansions > 0 && r.expanded >= r.cfg.MaxExpansions {
			return Outcome{}, fmt.Errorf("%w: cap %d reached before goal %q",
				ErrExpansionBudget, r.cfg.MaxExpansions, r.goal.ID)
		}

		r.settled[u] = true
		r.expanded++
		if r.trace != nil {
			r.trace.Expanded = append(r.trace.Expanded, r.arena[u])
		}

		if err := r.relax(u); err != nil {
			return Outcome{}, err
		}
	}

	// Frontier drained without reaching the goal.
	return r.drained(), nil
}

// relax examines each arc out of u and improves neighbor costs.
func (r *runner) relax(u int) error {
	from := r.arena[u]
	for _, arc := range r.g.Neighbors(from.ID) {
		// The graph refuses negative weights at construction time, but a
		// caller-mutated graph must fail loudly here, not mis-route.
		if arc.Weight < 0 {
			return fmt.Errorf("%w: edge %s—%s weight=%g",
				ErrNegativeWeight, from.ID, arc.To.ID, arc.Weight)
		}

		v := r.touch(arc.To)
		if r.trace != nil {
			r.trace.Edges = append(r.trace.Edges, [2]core.Node{from, arc.To})
		}
		if r.settled[v] {
			continue
		}

		tentative := r.cost[u] + arc.Weight
		if tentative >= r.cost[v] {
			continue
		}

		discovered := math.IsInf(r.cost[v], 1)
		r.cost[v] = tentative
		r.parent[v] = u
		r.push(v, tentative+r.h.Estimate(arc.To, r.goal))
		if r.trace != nil && discovered {
			r.trace.Frontier = append(r.trace.Frontier, arc.To)
		}
	}

	return nil
}

// finish builds the Found outcome by walking parent links goal → start and
// reversing. TotalCost is the settled running sum at the goal, the same
// accumulation the relaxations produced; nothing is re-summed.
func (r *runner) finish(si, gi int) Outcome {
	path := make([]core.Node, 0, 16)
	for at := gi; at != si; at = r.parent[at] {
		path = append(path, r.arena[at])
	}
	path = append(path, r.arena[si])
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Outcome{
		Found:         true,
		Path:          path,
		TotalCost:     r.cost[gi],
		NodesExpanded: r.expanded,
		Trace:         r.trace,
	}
}

// drained builds the NoPath outcome after the frontier emptied. The
// success fields stay zero: the two variants never overlap.
func (r *runner) drained() Outcome {
	return Outcome{Reason: ReasonNoPath, Trace: r.trace}
}

// notFound builds a NotFound outcome for the given reason.
func notFound(reason Reason, cfg Options) Outcome {
	out := Outcome{Reason: reason}
	if cfg.CaptureTrace {
		out.Trace = &Trace{}
	}

	return out
}

// frontierItem is one frontier entry: a dense node index, its priority
// (cost so far plus heuristic estimate), and its push sequence number.
type frontierItem struct {
	node     int
	priority float64
	seq      uint64
}

// frontier is a min-heap of *frontierItem ordered by (priority, seq):
// smaller priority first, earlier push first on exact ties. Stale entries
// from lazy decrease-key remain until popped and are skipped by the loop.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by insertion sequence for stable ties.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two heap slots.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last slot; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
