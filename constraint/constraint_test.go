package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/builder"
	"github.com/katalvlaran/hamilton/constraint"
	"github.com/katalvlaran/hamilton/core"
)

// graphOf builds a core graph from a builder constructor.
func graphOf(t testing.TB, con builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	adj, err := builder.Build(con, opts...)
	require.NoError(t, err)
	g, err := core.NewFromAdjacency(adj)
	require.NoError(t, err)

	return g
}

// graphFromEdges builds a core graph on n vertices from an edge list.
func graphFromEdges(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}
	g, err := core.NewFromAdjacency(adj)
	require.NoError(t, err)

	return g
}

// requireEdge marks {u,v} Required or fails the test.
func requireEdge(t testing.TB, g *core.Graph, u, v int) {
	t.Helper()
	e, ok := g.EdgeBetween(u, v)
	require.True(t, ok, "no edge %d-%d", u, v)
	g.Require(e)
}

// statusOf returns the status of {u,v}.
func statusOf(t testing.TB, g *core.Graph, u, v int) core.EdgeStatus {
	t.Helper()
	e, ok := g.EdgeBetween(u, v)
	require.True(t, ok, "no edge %d-%d", u, v)

	return g.Status(e)
}

// snapshot captures every edge status.
func snapshot(g *core.Graph) []core.EdgeStatus {
	out := make([]core.EdgeStatus, g.NumEdges())
	for e := range out {
		out[e] = g.Status(e)
	}

	return out
}

// TestPropagate_R1 checks that a cycle graph is fully forced by degree two.
func TestPropagate_R1(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Cycle(4))
	assert.Equal(t, 4, constraint.Propagate(g, constraint.Frontier{}))
	for e := 0; e < g.NumEdges(); e++ {
		assert.Equal(t, core.Required, g.Status(e), "edge %d", e)
	}
	assert.Equal(t, constraint.Feasible, constraint.Check(g, []int{0}))
}

// TestPropagate_NothingToDo leaves an untouched K4 undecided.
func TestPropagate_NothingToDo(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Complete(4))
	assert.Equal(t, 0, constraint.Propagate(g, constraint.Frontier{}))
	assert.Equal(t, constraint.Feasible, constraint.Check(g, []int{0}))
}

// TestPropagate_D1D3 checks saturation and premature-circuit deletions on K5.
func TestPropagate_D1D3(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Complete(5))
	requireEdge(t, g, 0, 1)
	requireEdge(t, g, 1, 2)

	assert.Equal(t, 3, constraint.Propagate(g, constraint.Frontier{Current: 2}))
	assert.Equal(t, core.Deleted, statusOf(t, g, 1, 3), "D1")
	assert.Equal(t, core.Deleted, statusOf(t, g, 1, 4), "D1")
	assert.Equal(t, core.Deleted, statusOf(t, g, 0, 2), "D3")
	assert.Equal(t, core.Undecided, statusOf(t, g, 2, 3))
	assert.Equal(t, constraint.Feasible, constraint.Check(g, []int{0, 1, 2}))
}

// TestPropagate_ClosingEdgeKept checks that a Required Hamiltonian path keeps
// its closing edge and completes to a cycle.
func TestPropagate_ClosingEdgeKept(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Complete(5))
	path := []int{0, 1, 2, 3, 4}
	for i := 0; i+1 < len(path); i++ {
		requireEdge(t, g, path[i], path[i+1])
	}
	constraint.Propagate(g, constraint.Frontier{Final: true, Current: 4, Start: 0})

	assert.Equal(t, core.Required, statusOf(t, g, 4, 0))
	required := 0
	for e := 0; e < g.NumEdges(); e++ {
		if g.Status(e) == core.Required {
			required++
		}
	}
	assert.Equal(t, 5, required)
	assert.Equal(t, constraint.Feasible, constraint.Check(g, path))
}

// TestPropagate_Idempotent checks the fixed-point property on random graphs
// with a few seeded decisions.
func TestPropagate_Idempotent(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		g := graphOf(t, builder.RandomSparse(12, 0.4), builder.WithSeed(seed))
		for e := 0; e < g.NumEdges(); e += 5 {
			g.Require(e)
		}
		f := constraint.Frontier{Current: 0, Start: 0}
		constraint.Propagate(g, f)
		before := snapshot(g)
		assert.Equal(t, 0, constraint.Propagate(g, f), "seed %d", seed)
		assert.Equal(t, before, snapshot(g), "seed %d", seed)

		for v := 0; v < g.N(); v++ {
			vx := g.Vertex(v)
			assert.LessOrEqual(t, vx.RequiredDegree+vx.DeletedDegree, vx.Degree)
		}
	}
}

// TestCheck_Scenarios covers each verdict.
func TestCheck_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("isolated vertex", func(t *testing.T) {
		g := graphFromEdges(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})
		assert.Equal(t, constraint.Disconnected, constraint.Check(g, []int{0}))
	})
	t.Run("degree-one vertex", func(t *testing.T) {
		g := graphFromEdges(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{0, 3})
		assert.Equal(t, constraint.Underdegree, constraint.Check(g, []int{0}))
	})
	t.Run("premature triangle", func(t *testing.T) {
		// two triangles sharing vertex 0
		g := graphFromEdges(t, 5,
			[2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2},
			[2]int{0, 3}, [2]int{0, 4}, [2]int{3, 4})
		assert.Equal(t, 6, constraint.Propagate(g, constraint.Frontier{}))
		assert.Equal(t, constraint.PrematureCycle, constraint.Check(g, []int{0}))
	})
	t.Run("overdegree", func(t *testing.T) {
		g := graphOf(t, builder.Complete(5))
		requireEdge(t, g, 0, 1)
		requireEdge(t, g, 0, 2)
		requireEdge(t, g, 0, 3)
		assert.Equal(t, constraint.Overdegree, constraint.Check(g, []int{0}))
	})
	t.Run("path blocks the remainder", func(t *testing.T) {
		// 1 and 3 can only be reached from 0 through 2
		g := graphFromEdges(t, 5,
			[2]int{0, 2}, [2]int{0, 4}, [2]int{2, 1}, [2]int{2, 3}, [2]int{1, 3}, [2]int{4, 2})
		requireEdge(t, g, 0, 4)
		requireEdge(t, g, 4, 2)
		assert.Equal(t, constraint.Disconnected, constraint.Check(g, []int{0, 4, 2}))
	})
}

// TestCheck_Pure checks that Check does not modify the graph.
func TestCheck_Pure(t *testing.T) {
	t.Parallel()

	g := graphOf(t, builder.Petersen())
	requireEdge(t, g, 0, 1)
	g.Delete(2)
	before := snapshot(g)
	en := constraint.NewEngine(g)
	first := en.Check([]int{0, 1})
	assert.Equal(t, first, en.Check([]int{0, 1}))
	assert.Equal(t, before, snapshot(g))
	assert.Equal(t, first == constraint.Feasible, constraint.IsFeasible(g, []int{0, 1}))
}

// TestVerdict_String covers the Stringer.
func TestVerdict_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "feasible", constraint.Feasible.String())
	assert.Equal(t, "premature-cycle", constraint.PrematureCycle.String())
	assert.Equal(t, "unknown", constraint.Verdict(99).String())
	assert.Len(t, constraint.Verdicts, 4)
}
