package partition

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hamilton/core"
	"github.com/katalvlaran/hamilton/search"
)

const (
	methodValidate = "Validate"
	methodNewPlan  = "NewPlan"
	methodSolve    = "Solve"
)

// Validate checks that assignment maps n vertices to contiguous ids 0..k-1
// and returns k.
func Validate(assignment []int, n int) (int, error) {
	if n == 0 || len(assignment) != n {
		return 0, fmt.Errorf("%s: %d entries for %d vertices: %w",
			methodValidate, len(assignment), n, ErrAssignmentLength)
	}
	k := 0
	for v, p := range assignment {
		if p < 0 {
			return 0, fmt.Errorf("%s: vertex %d has id %d: %w", methodValidate, v, p, ErrNegativePartition)
		}
		// n vertices cannot cover more than n ids
		if p >= n {
			return 0, fmt.Errorf("%s: vertex %d has id %d with n=%d: %w", methodValidate, v, p, n, ErrEmptyPartition)
		}
		if p+1 > k {
			k = p + 1
		}
	}
	used := make([]bool, k)
	for _, p := range assignment {
		used[p] = true
	}
	for p, ok := range used {
		if !ok {
			return 0, fmt.Errorf("%s: id %d unused with k=%d: %w", methodValidate, p, k, ErrEmptyPartition)
		}
	}

	return k, nil
}

// NewPlan validates assignment against g and computes a visiting order
// whose first partition contains start. opts configure the coarse search
// (context, time limit, hooks); the start vertex is always the start
// vertex's partition.
func NewPlan(g *core.Graph, assignment []int, start int, opts ...search.Option) (*Plan, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodNewPlan, search.ErrGraphNil)
	}
	n := g.N()
	k, err := Validate(assignment, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPlan, err)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%s: start %d with n=%d: %w", methodNewPlan, start, n, search.ErrStartOutOfRange)
	}

	sizes := make([]int, k)
	for _, p := range assignment {
		sizes[p]++
	}
	coarse, err := core.NewCoarse(g, assignment, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPlan, err)
	}
	order, err := coarseOrder(coarse, assignment[start], opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPlan, err)
	}

	p := &Plan{
		Order:      order,
		Sizes:      sizes,
		assignment: append([]int(nil), assignment...),
		slots:      make([]int, 0, n),
		runStart:   make([]int, 0, n),
	}
	for _, part := range order {
		first := len(p.slots)
		for i := 0; i < sizes[part]; i++ {
			p.slots = append(p.slots, part)
			p.runStart = append(p.runStart, first)
		}
	}

	return p, nil
}

// coarseOrder finds a cyclic order over the coarse graph's vertices
// starting at first.
func coarseOrder(coarse *core.Graph, first int, opts []search.Option) ([]int, error) {
	k := coarse.N()
	switch k {
	case 1:
		return []int{0}, nil
	case 2:
		if _, ok := coarse.EdgeBetween(0, 1); !ok {
			return nil, fmt.Errorf("2 partitions without a crossing edge: %w", ErrNoPartitionOrder)
		}
		return []int{first, 1 - first}, nil
	}

	all := make([]search.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, search.WithStartVertex(first))
	res, err := search.Solve(coarse, all...)
	if errors.Is(err, search.ErrNoCycle) {
		return nil, fmt.Errorf("%d partitions: %w", k, ErrNoPartitionOrder)
	}
	if err != nil {
		return nil, err
	}

	return res.Cycle, nil
}

// K returns the number of partitions.
func (p *Plan) K() int { return len(p.Order) }

// Assignment returns a copy of the assignment the plan was built from.
func (p *Plan) Assignment() []int { return append([]int(nil), p.assignment...) }

// Expected returns the partition scheduled at path position (taken modulo
// n) and how many of its vertices precede that position in the schedule.
func (p *Plan) Expected(position int) (partition, consumed int) {
	i := position % len(p.slots)

	return p.slots[i], i - p.runStart[i]
}

// Allow implements search.Filter: vertex may take position iff it belongs
// to the partition scheduled there.
func (p *Plan) Allow(position, vertex int) bool {
	return p.assignment[vertex] == p.slots[position%len(p.slots)]
}

// Solve plans a partition order and searches g under it. Only the context
// and time limit of opts reach the coarse search, and the time limit covers
// both searches. The remaining options configure the fine search, where a
// filter among them is replaced by the plan. A fine search without result
// fails with search.ErrNoCycle.
func Solve(g *core.Graph, assignment []int, opts ...search.Option) (search.Result, *Plan, error) {
	o := search.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	began := time.Now()
	plan, err := NewPlan(g, assignment, o.StartVertex,
		search.WithContext(o.Ctx), search.WithTimeLimit(o.TimeLimit))
	if err != nil {
		return search.Result{}, nil, fmt.Errorf("%s: %w", methodSolve, err)
	}

	fine := make([]search.Option, 0, len(opts)+2)
	fine = append(fine, opts...)
	if o.TimeLimit > 0 {
		left := o.TimeLimit - time.Since(began)
		if left <= 0 {
			return search.Result{}, plan, fmt.Errorf("%s: planning used %s: %w",
				methodSolve, o.TimeLimit, search.ErrTimeLimit)
		}
		fine = append(fine, search.WithTimeLimit(left))
	}
	fine = append(fine, search.WithFilter(plan))
	res, err := search.Solve(g, fine...)
	if err != nil {
		return res, plan, fmt.Errorf("%s: order %v: %w", methodSolve, plan.Order, err)
	}

	return res, plan, nil
}
