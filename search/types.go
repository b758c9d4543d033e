package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hamilton/constraint"
)

// Sentinel errors for search execution.
var (
	// ErrNoCycle is returned when the graph has no Hamiltonian cycle
	// reachable under the given options.
	ErrNoCycle = errors.New("search: no Hamiltonian cycle exists")

	// ErrTimeLimit is returned when WithTimeLimit expires before a result.
	ErrTimeLimit = errors.New("search: time limit exceeded")

	// ErrStartOutOfRange is returned when the start vertex is not in [0, n).
	ErrStartOutOfRange = errors.New("search: start vertex out of range")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Filter restricts which vertex may occupy which path position. position is
// the index the vertex would take in the path; the closing step back to the
// start uses position n.
type Filter interface {
	Allow(position, vertex int) bool
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(position, vertex int) bool

// Allow implements Filter.
func (f FilterFunc) Allow(position, vertex int) bool { return f(position, vertex) }

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. negative time limit), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Solve.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// StartVertex is the first vertex of the cycle.
	StartVertex int

	// Filter, if non-nil, must allow every vertex placed on the path.
	Filter Filter

	// TimeLimit, if > 0, bounds the wall-clock time of the search.
	TimeLimit time.Duration

	// OnExtend is called after a feasible step from `from` to `to` with
	// the path length before the step.
	OnExtend func(depth, from, to int)

	// OnBacktrack is called when a step to vertex is undone. verdict is the
	// check that rejected it, or constraint.Feasible when every
	// continuation from it failed.
	OnBacktrack func(depth, vertex int, verdict constraint.Verdict)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - start vertex 0
//   - no filter, no time limit
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		StartVertex: 0,
		OnExtend:    func(int, int, int) {},
		OnBacktrack: func(int, int, constraint.Verdict) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartVertex sets the vertex the cycle starts at. Range is checked
// against the graph by Solve.
func WithStartVertex(v int) Option {
	return func(o *Options) {
		o.StartVertex = v
	}
}

// WithFilter installs an eligibility filter; nil is ignored.
func WithFilter(f Filter) Option {
	return func(o *Options) {
		if f != nil {
			o.Filter = f
		}
	}
}

// WithTimeLimit bounds the search duration.
//
//	d > 0: limit to d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithOnExtend registers a callback run after every feasible step.
func WithOnExtend(fn func(depth, from, to int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExtend = fn
		}
	}
}

// WithOnBacktrack registers a callback run whenever a step is undone.
func WithOnBacktrack(fn func(depth, vertex int, verdict constraint.Verdict)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}

// Stats summarises the work done by one Solve call.
type Stats struct {
	// Candidates counts tentative steps tried.
	Candidates int

	// Backtracks counts steps undone.
	Backtracks int

	// Propagations counts edges decided by the constraint rules.
	Propagations int

	// MaxDepth is the longest partial path reached.
	MaxDepth int

	// Rejections counts infeasible steps by verdict.
	Rejections map[constraint.Verdict]int
}

// Result holds the outcome of Solve.
type Result struct {
	// Cycle lists the vertices in visiting order, starting at the start
	// vertex; the closing edge runs from the last element back to the first.
	Cycle []int

	// Stats is filled on success and on failure.
	Stats Stats
}
