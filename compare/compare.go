// Package compare: this file implements the dual-run harness that races
// Dijkstra and A* over one immutable graph and reports both outcomes with
// caller-side timings.
package compare

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/kataras/golog"
	"golang.org/x/sync/errgroup"

	"github.com/tesselic/waypath/core"
	"github.com/tesselic/waypath/search"
)

// Algorithm labels used in reports and log lines.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
)

// DefaultCostTolerance is the relative tolerance under which the two
// algorithms' totals are considered equal.
const DefaultCostTolerance = 1e-6

// Report is one algorithm's result plus the wall-clock duration measured
// around the engine invocation. The engine itself reads no clock; timing
// is the harness's job.
type Report struct {
	Algorithm string
	Outcome   search.Outcome
	Elapsed   time.Duration
}

// Comparison pairs the two reports from a single Run.
type Comparison struct {
	Dijkstra Report
	AStar    Report
}

// ExpansionSavings returns the fraction of Dijkstra's expansions that A*
// skipped: 0 means no savings, 0.75 means A* expanded a quarter of what
// Dijkstra did. Returns 0 when Dijkstra expanded nothing.
func (c Comparison) ExpansionSavings() float64 {
	if c.Dijkstra.Outcome.NodesExpanded == 0 {
		return 0
	}

	ratio := float64(c.AStar.Outcome.NodesExpanded) / float64(c.Dijkstra.Outcome.NodesExpanded)

	return 1 - ratio
}

// CostsAgree reports whether both runs found a path and their totals match
// within the given relative tolerance. With an admissible heuristic they
// always should; a disagreement means the supplied heuristic overestimates.
func (c Comparison) CostsAgree(tol float64) bool {
	if !c.Dijkstra.Outcome.Found || !c.AStar.Outcome.Found {
		return false
	}
	d, a := c.Dijkstra.Outcome.TotalCost, c.AStar.Outcome.TotalCost
	scale := math.Max(math.Abs(d), math.Abs(a))
	if scale == 0 {
		return true
	}

	return math.Abs(d-a) <= tol*scale
}

// Options configures a Run.
type Options struct {
	logger     *golog.Logger
	searchOpts []search.Option
}

// Option is a functional option for Run.
type Option func(*Options)

// WithLogger attaches a logger: one info line per finished algorithm and a
// warn line when the two totals disagree. Runs are silent without it.
func WithLogger(l *golog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithSearchOptions forwards engine options (for example search.WithTrace)
// to both runs.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.searchOpts = append(o.searchOpts, opts...) }
}

// Run races Dijkstra and A*(h) from startID to goalID over g on separate
// goroutines and joins both results.
//
// This is safe by construction: the graph is read-only for the duration
// and each invocation owns its entire mutable state, so the two searches
// share nothing but g. The context gates goroutine launch; a single
// search has no suspension points and runs to completion once started.
//
// Returns the first engine error (wrapped with the algorithm name), or
// ctx.Err() if the context was already done at launch.
func Run(ctx context.Context, g *core.Graph, startID, goalID string, h search.Heuristic, opts ...Option) (Comparison, error) {
	if g == nil {
		return Comparison{}, search.ErrNilGraph
	}
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var dij, ast Report
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		r, err := timedSearch(ctx, AlgorithmDijkstra, func() (search.Outcome, error) {
			return search.Dijkstra(g, startID, goalID, cfg.searchOpts...)
		})
		dij = r

		return err
	})
	eg.Go(func() error {
		r, err := timedSearch(ctx, AlgorithmAStar, func() (search.Outcome, error) {
			return search.AStar(g, startID, goalID, h, cfg.searchOpts...)
		})
		ast = r

		return err
	})

	if err := eg.Wait(); err != nil {
		return Comparison{}, err
	}

	c := Comparison{Dijkstra: dij, AStar: ast}
	cfg.log(c)

	return c, nil
}

// timedSearch gates on ctx, runs fn, and wraps it into a Report with the
// measured duration.
func timedSearch(ctx context.Context, algorithm string, fn func() (search.Outcome, error)) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	started := time.Now()
	out, err := fn()
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", algorithm, err)
	}

	return Report{Algorithm: algorithm, Outcome: out, Elapsed: time.Since(started)}, nil
}

// log emits the per-run summaries and the disagreement warning.
func (o Options) log(c Comparison) {
	if o.logger == nil {
		return
	}
	for _, r := range []Report{c.Dijkstra, c.AStar} {
		if r.Outcome.Found {
			o.logger.Infof("%s: cost=%.1fm path=%d nodes expanded=%d elapsed=%s",
				r.Algorithm, r.Outcome.TotalCost, len(r.Outcome.Path), r.Outcome.NodesExpanded, r.Elapsed)
		} else {
			o.logger.Infof("%s: not found (%s) elapsed=%s", r.Algorithm, r.Outcome.Reason, r.Elapsed)
		}
	}
	if c.Dijkstra.Outcome.Found && c.AStar.Outcome.Found && !c.CostsAgree(DefaultCostTolerance) {
		o.logger.Warnf("totals disagree: dijkstra=%.3fm astar=%.3fm - heuristic likely inadmissible",
			c.Dijkstra.Outcome.TotalCost, c.AStar.Outcome.TotalCost)
	}
}
