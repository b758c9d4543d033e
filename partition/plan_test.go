package partition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/builder"
	"github.com/katalvlaran/hamilton/core"
	"github.com/katalvlaran/hamilton/partition"
	"github.com/katalvlaran/hamilton/search"
)

// graphOf builds a core graph from a builder constructor.
func graphOf(t testing.TB, con builder.Constructor) *core.Graph {
	t.Helper()
	adj, err := builder.Build(con)
	require.NoError(t, err)
	g, err := core.NewFromAdjacency(adj)
	require.NoError(t, err)

	return g
}

// assertOrderValid checks that order is a permutation of 0..k-1 whose
// consecutive pairs, with wraparound, are coarse edges.
func assertOrderValid(t *testing.T, g *core.Graph, assignment, order []int, k int) {
	t.Helper()
	coarse, err := core.NewCoarse(g, assignment, k)
	require.NoError(t, err)
	require.Len(t, order, k)
	seen := make([]bool, k)
	for _, p := range order {
		require.False(t, seen[p], "partition %d repeated", p)
		seen[p] = true
	}
	if k < 2 {
		return
	}
	for i := range order {
		a, b := order[i], order[(i+1)%k]
		_, ok := coarse.EdgeBetween(a, b)
		assert.True(t, ok, "no coarse edge %d-%d", a, b)
	}
}

// TestValidate covers each assignment error.
func TestValidate(t *testing.T) {
	t.Parallel()

	k, err := partition.Validate([]int{1, 0, 2, 2}, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	_, err = partition.Validate([]int{0, 1}, 3)
	assert.ErrorIs(t, err, partition.ErrAssignmentLength)
	_, err = partition.Validate(nil, 0)
	assert.ErrorIs(t, err, partition.ErrAssignmentLength)
	_, err = partition.Validate([]int{0, -1, 1}, 3)
	assert.ErrorIs(t, err, partition.ErrNegativePartition)
	_, err = partition.Validate([]int{0, 2, 2}, 3)
	assert.ErrorIs(t, err, partition.ErrEmptyPartition)

	// ids of n or more are rejected before anything is sized by them
	_, err = partition.Validate([]int{0, 1 << 62}, 2)
	assert.ErrorIs(t, err, partition.ErrEmptyPartition)
	_, err = partition.Validate([]int{0, 3, 1}, 3)
	assert.ErrorIs(t, err, partition.ErrEmptyPartition)
}

// TestNewPlan_Schedule checks order, sizes and the slot schedule for two
// partitions on a ring.
func TestNewPlan_Schedule(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Cycle(6))
	assignment := []int{0, 0, 0, 1, 1, 1}
	plan, err := partition.NewPlan(g, assignment, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, plan.Order)
	assert.Equal(t, []int{3, 3}, plan.Sizes)
	assert.Equal(t, 2, plan.K())

	for _, tc := range []struct{ pos, part, consumed int }{
		{0, 0, 0}, {2, 0, 2}, {3, 1, 0}, {4, 1, 1}, {6, 0, 0},
	} {
		part, consumed := plan.Expected(tc.pos)
		assert.Equal(t, tc.part, part, "position %d", tc.pos)
		assert.Equal(t, tc.consumed, consumed, "position %d", tc.pos)
	}
	assert.True(t, plan.Allow(1, 2))
	assert.False(t, plan.Allow(1, 3))
	assert.True(t, plan.Allow(6, 0))

	// start in the second partition rotates the order
	plan, err = partition.NewPlan(g, assignment, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, plan.Order)
}

// TestNewPlan_OrderValidity checks the coarse order on larger block meshes.
func TestNewPlan_OrderValidity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rows, cols, br, bc int
	}{
		{4, 4, 2, 2},
		{6, 6, 3, 3},
		{6, 6, 3, 2},
		{8, 4, 2, 2},
	}
	for _, tc := range tests {
		g := graphOf(t, builder.Grid(tc.rows, tc.cols))
		assignment, err := builder.GridBlocks(tc.rows, tc.cols, tc.br, tc.bc)
		require.NoError(t, err)
		k, err := partition.Validate(assignment, g.N())
		require.NoError(t, err)

		plan, err := partition.NewPlan(g, assignment, 0)
		require.NoError(t, err, "%dx%d/%dx%d", tc.rows, tc.cols, tc.br, tc.bc)
		assertOrderValid(t, g, assignment, plan.Order, k)
		assert.Equal(t, assignment[0], plan.Order[0])
	}
}

// TestNewPlan_NoOrder covers coarse graphs without a Hamiltonian cycle.
func TestNewPlan_NoOrder(t *testing.T) {
	t.Parallel()

	// ring split so that partitions 1 and 2 only touch partition 0
	g := graphOf(t, builder.Cycle(8))
	_, err := partition.NewPlan(g, []int{0, 0, 1, 1, 0, 0, 2, 2}, 0)
	assert.ErrorIs(t, err, partition.ErrNoPartitionOrder)

	// two triangles with nothing in between
	adj := make([][]bool, 6)
	for i := range adj {
		adj[i] = make([]bool, 6)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}} {
		adj[e[0]][e[1]], adj[e[1]][e[0]] = true, true
	}
	g2, err := core.NewFromAdjacency(adj)
	require.NoError(t, err)
	_, err = partition.NewPlan(g2, []int{0, 0, 0, 1, 1, 1}, 0)
	assert.ErrorIs(t, err, partition.ErrNoPartitionOrder)

	_, err = partition.NewPlan(g2, []int{0, 0, 0, 1, 1, 1}, 6)
	assert.ErrorIs(t, err, search.ErrStartOutOfRange)
}

// TestSolve_GridBlocks solves a 4×4 mesh under a 2×2 block plan and checks
// that the cycle follows the schedule.
func TestSolve_GridBlocks(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Grid(4, 4))
	assignment, err := builder.GridBlocks(4, 4, 2, 2)
	require.NoError(t, err)
	original := append([]int(nil), assignment...)

	res, plan, err := partition.Solve(g, assignment, search.WithStartVertex(4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, plan.Order)
	require.NoError(t, g.VerifyCycle(res.Cycle))
	assert.Equal(t, 4, res.Cycle[0])
	for i, v := range res.Cycle {
		part, _ := plan.Expected(i)
		assert.Equal(t, part, assignment[v], "position %d vertex %d", i, v)
	}
	assert.Equal(t, original, assignment, "assignment mutated")
	assert.Equal(t, original, plan.Assignment())
}

// TestSolve_OptionsScope checks that hooks and filters configure only the
// fine search while the coarse search still plans the order.
func TestSolve_OptionsScope(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Grid(4, 4))
	assignment, err := builder.GridBlocks(4, 4, 2, 2)
	require.NoError(t, err)

	var firstSteps, steps int
	res, plan, err := partition.Solve(g, assignment,
		search.WithStartVertex(4),
		search.WithTimeLimit(time.Minute),
		search.WithFilter(search.FilterFunc(func(int, int) bool { return false })),
		search.WithOnExtend(func(depth, from, to int) {
			steps++
			if depth == 1 {
				firstSteps++
				assert.Equal(t, 4, from, "first step leaves the start vertex")
			}
		}),
	)
	require.NoError(t, err)
	require.NoError(t, g.VerifyCycle(res.Cycle))
	assert.Equal(t, []int{0, 1, 3, 2}, plan.Order)
	assert.Positive(t, firstSteps)
	assert.GreaterOrEqual(t, steps, g.N())

	_, _, err = partition.Solve(nil, assignment)
	assert.ErrorIs(t, err, search.ErrGraphNil)
}

// TestSolve_ScheduleTooStrict checks that a plan whose last partition does
// not touch the start vertex leaves the fine search without a cycle.
func TestSolve_ScheduleTooStrict(t *testing.T) {
	t.Parallel()

	// vertex 0 of a 4×4 grid only neighbours its own block, and the order
	// [0 1 3 2] ends in block 2
	g := graphOf(t, builder.Grid(4, 4))
	assignment, err := builder.GridBlocks(4, 4, 2, 2)
	require.NoError(t, err)

	_, plan, err := partition.Solve(g, assignment)
	assert.ErrorIs(t, err, search.ErrNoCycle)
	require.NotNil(t, plan)
	assert.Equal(t, []int{0, 1, 3, 2}, plan.Order)
}

// TestSolve_SinglePartition matches the unrestricted search.
func TestSolve_SinglePartition(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Complete(5))
	res, plan, err := partition.Solve(g, make([]int, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, plan.Order)

	g.Reset()
	plain, err := search.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, plain.Cycle, res.Cycle)
}
