package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hamilton/constraint"
	"github.com/katalvlaran/hamilton/core"
)

const (
	methodSolve = "Solve"

	// deadlineMask sets how often (in candidates) the context and deadline
	// are polled.
	deadlineMask = 4095
)

// Solve searches g for a Hamiltonian cycle.
//
// On success the returned cycle starts at the start vertex and has been
// verified against g's topology; g is left with the cycle's edges Required.
// On failure g is restored to its state on entry and the error is
// ErrNoCycle, ErrTimeLimit, the context's error, or an input error.
func Solve(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, ErrGraphNil)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, o.err)
	}
	n := g.N()
	if o.StartVertex < 0 || o.StartVertex >= n {
		return Result{}, fmt.Errorf("%s: start %d with n=%d: %w",
			methodSolve, o.StartVertex, n, ErrStartOutOfRange)
	}
	if err := o.Ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, err)
	}

	en := newEngine(g, o)
	root := g.NewCheckpoint()
	found := en.run()
	res := Result{Stats: en.stats}

	switch {
	case en.abort != nil:
		_ = g.Restore(root)
		return res, fmt.Errorf("%s: after %d candidates: %w", methodSolve, en.stats.Candidates, en.abort)
	case !found:
		_ = g.Restore(root)
		return res, fmt.Errorf("%s: %d candidates, %d backtracks: %w",
			methodSolve, en.stats.Candidates, en.stats.Backtracks, ErrNoCycle)
	}

	res.Cycle = append([]int(nil), en.path...)
	if err := g.VerifyCycle(res.Cycle); err != nil {
		_ = g.Restore(root)
		return res, fmt.Errorf("%s: %w", methodSolve, err)
	}

	return res, nil
}

// engine holds all search data for one Solve call.
type engine struct {
	g    *core.Graph
	cons *constraint.Engine
	opts Options

	n     int
	start int

	// Current search state
	path   []int  // path[0] == start
	onPath []bool // membership of path
	cps    []core.Checkpoint

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int
	abort       error

	stats Stats
}

// newEngine allocates the per-call state; checkpoints are sized lazily by
// core.Graph.Save on first use of each depth.
func newEngine(g *core.Graph, o Options) *engine {
	n := g.N()
	en := &engine{
		g:      g,
		cons:   constraint.NewEngine(g),
		opts:   o,
		n:      n,
		start:  o.StartVertex,
		path:   make([]int, 0, n),
		onPath: make([]bool, n),
		cps:    make([]core.Checkpoint, n),
		stats:  Stats{Rejections: make(map[constraint.Verdict]int)},
	}
	if o.TimeLimit > 0 {
		en.useDeadline = true
		en.deadline = time.Now().Add(o.TimeLimit)
	}

	return en
}

// run seeds the path with the start vertex, propagates the initial state
// and descends.
func (en *engine) run() bool {
	en.path = append(en.path, en.start)
	en.onPath[en.start] = true
	en.stats.MaxDepth = 1
	if en.opts.Filter != nil && !en.opts.Filter.Allow(0, en.start) {
		return false
	}

	en.stats.Propagations += en.cons.Propagate(constraint.Frontier{
		Final: en.n == 1, Current: en.start, Start: en.start,
	})
	if verdict := en.cons.Check(en.path); verdict != constraint.Feasible {
		en.stats.Rejections[verdict]++
		return false
	}

	return en.extend()
}

// extend tries every candidate step from the end of the current path.
// It returns true once the cycle is closed. On a false return the graph
// and path are as they were on entry, unless the search was aborted.
func (en *engine) extend() bool {
	g := en.g
	l := len(en.path)
	v := en.path[l-1]
	prev := -1
	if l > 1 {
		prev = en.path[l-2]
	}
	cp := &en.cps[l-1]
	g.Save(cp)

	for _, e := range g.Incident(v) {
		if g.Status(e) == core.Deleted {
			continue
		}
		u := g.Other(e, v)
		if !en.eligible(l, u, prev) {
			continue
		}
		if en.tick() {
			return false
		}

		en.stats.Candidates++
		g.Require(e)
		closing := l == en.n
		if !closing {
			en.path = append(en.path, u)
			en.onPath[u] = true
		}
		cur := u
		if closing {
			cur = v
		}
		en.stats.Propagations += en.cons.Propagate(constraint.Frontier{
			Final: len(en.path) == en.n, Current: cur, Start: en.start,
		})

		verdict := en.cons.Check(en.path)
		if verdict == constraint.Feasible {
			en.opts.OnExtend(l, v, u)
			if closing {
				return true
			}
			if len(en.path) > en.stats.MaxDepth {
				en.stats.MaxDepth = len(en.path)
			}
			if en.extend() {
				return true
			}
			if en.abort != nil {
				return false
			}
		} else {
			en.stats.Rejections[verdict]++
		}

		if !closing {
			en.path = en.path[:l]
			en.onPath[u] = false
		}
		_ = g.Restore(cp)
		en.stats.Backtracks++
		en.opts.OnBacktrack(l, u, verdict)
	}

	return false
}

// eligible reports whether u may follow the path of length l ending after prev.
func (en *engine) eligible(l, u, prev int) bool {
	if u == prev {
		return false
	}
	if l == en.n {
		if u != en.start {
			return false
		}
	} else if en.onPath[u] {
		return false
	}
	if en.opts.Filter != nil && !en.opts.Filter.Allow(l, u) {
		return false
	}

	return true
}

// tick polls the context and deadline every deadlineMask+1 candidates and
// records the abort reason.
func (en *engine) tick() bool {
	en.steps++
	if en.steps&deadlineMask != 0 {
		return false
	}
	if err := en.opts.Ctx.Err(); err != nil {
		en.abort = err
		return true
	}
	if en.useDeadline && time.Now().After(en.deadline) {
		en.abort = ErrTimeLimit
		return true
	}

	return false
}
