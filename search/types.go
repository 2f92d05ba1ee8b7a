// Package search: this file defines the Heuristic selection, the Outcome
// and Trace result types, configuration options, and sentinel errors for
// the goal-directed shortest-path engine.
//
// Errors (sentinel):
//
//	ErrNilGraph         - a nil *core.Graph was passed to the engine.
//	ErrNegativeWeight   - a negative edge weight surfaced during relaxation.
//	ErrExpansionBudget  - the WithMaxExpansions cap was exhausted.
//	ErrBadMaxExpansions - WithMaxExpansions received a non-positive cap.
package search

import (
	"errors"

	"github.com/tesselic/waypath/core"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to the engine.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNegativeWeight indicates a negative edge weight was met while
	// relaxing. core.Graph refuses to build such an edge, but the engine
	// re-validates defensively rather than silently produce a wrong path.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrExpansionBudget indicates the search stopped because it hit the
	// WithMaxExpansions cap before reaching the goal.
	ErrExpansionBudget = errors.New("search: expansion budget exhausted")

	// ErrBadMaxExpansions indicates WithMaxExpansions was given a cap < 1.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be positive")
)

// Heuristic estimates the remaining cost from a to b in the same unit as
// edge weights (meters). The engine runs A* under any Heuristic; under
// Zero() it degenerates to pure Dijkstra.
//
// For A* to stay optimal the estimate must be admissible: never larger
// than the true road distance between the two nodes.
type Heuristic interface {
	// Estimate returns the estimated cost from a to b, ≥ 0,
	// and exactly 0 when a and b are the same node.
	Estimate(a, b core.Node) float64
}

// zeroHeuristic is the Dijkstra variant: every estimate is 0.
type zeroHeuristic struct{}

// Estimate implements Heuristic.
func (zeroHeuristic) Estimate(_, _ core.Node) float64 { return 0 }

// Zero returns the zero Heuristic. Searching under Zero() is exactly
// Dijkstra: the frontier priority collapses to the cost so far.
func Zero() Heuristic { return zeroHeuristic{} }

// estimatorFunc adapts a plain function to the Heuristic interface.
type estimatorFunc func(a, b core.Node) float64

// Estimate implements Heuristic.
func (f estimatorFunc) Estimate(a, b core.Node) float64 { return f(a, b) }

// Estimator wraps fn as a Heuristic for A*. The selection between Dijkstra
// and A* is always explicit: pass Zero() or Estimator(...), never a nil
// function. A nil fn is treated as Zero() rather than dereferenced.
func Estimator(fn func(a, b core.Node) float64) Heuristic {
	if fn == nil {
		return Zero()
	}

	return estimatorFunc(fn)
}

// Reason explains a NotFound outcome.
type Reason int

const (
	// ReasonNone marks a Found outcome; no failure to explain.
	ReasonNone Reason = iota

	// ReasonNoPath: start and goal both exist, but no edge sequence
	// connects them (disconnected components).
	ReasonNoPath

	// ReasonUnknownNode: start or goal is absent from the graph.
	ReasonUnknownNode
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoPath:
		return "no path"
	case ReasonUnknownNode:
		return "unknown node"
	default:
		return "unknown reason"
	}
}

// Outcome is the tagged result of one engine invocation. Exactly one
// variant is populated:
//
//   - Found == true:  Path (start…goal inclusive), TotalCost and
//     NodesExpanded are set; Reason is ReasonNone.
//   - Found == false: Reason is ReasonNoPath or ReasonUnknownNode; the
//     success fields are zero.
//
// An Outcome is immutable once returned. Identical endpoints are not a
// failure: they yield Found with a single-node path, zero cost and zero
// expansions.
type Outcome struct {
	// Found tags the variant.
	Found bool

	// Path is the node sequence from start to goal, both inclusive.
	Path []core.Node

	// TotalCost is the sum of edge weights along Path, in meters.
	TotalCost float64

	// NodesExpanded counts frontier pops that were processed; stale
	// lazy-deletion duplicates are skipped without counting.
	NodesExpanded int

	// Reason explains a NotFound outcome; ReasonNone when Found.
	Reason Reason

	// Trace holds search telemetry when WithTrace was requested, nil
	// otherwise.
	Trace *Trace
}

// Trace records what the engine touched, for rendering collaborators that
// visualize the search alongside the final path.
type Trace struct {
	// Expanded lists nodes in expansion order.
	Expanded []core.Node

	// Frontier lists nodes in the order they first entered the frontier.
	Frontier []core.Node

	// Edges lists every examined edge as a (from, to) pair, including
	// edges into already-settled neighbors.
	Edges [][2]core.Node
}

// Options configures one engine invocation.
//
// MaxExpansions - cap on processed expansions; 0 means unlimited.
// CaptureTrace  - record Trace telemetry (costs extra allocations).
type Options struct {
	MaxExpansions int
	CaptureTrace  bool
}

// Option is a functional option for the engine.
type Option func(*Options)

// WithMaxExpansions caps how many nodes the engine may expand before it
// aborts with ErrExpansionBudget. Must be positive; a non-positive cap
// panics with ErrBadMaxExpansions, as misconfiguration is a programming
// error rather than an input condition.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithTrace enables telemetry capture on the resulting Outcome.
func WithTrace() Option {
	return func(o *Options) {
		o.CaptureTrace = true
	}
}

// DefaultOptions returns the engine defaults: unlimited expansions, no
// trace capture.
func DefaultOptions() Options {
	return Options{}
}
