package core_test

import (
	"fmt"

	"github.com/katalvlaran/hamilton/core"
)

// ExampleGraph demonstrates construction, status changes and rollback.
func ExampleGraph() {
	// Triangle 0-1-2.
	adj := [][]bool{
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	g, err := core.NewFromAdjacency(adj)
	if err != nil {
		fmt.Println(err)
		return
	}

	cp := g.NewCheckpoint()
	e, _ := g.EdgeBetween(0, 1)
	g.Require(e)
	fmt.Println(g.Status(e), g.Vertex(0).RequiredDegree)

	_ = g.Restore(cp)
	fmt.Println(g.Status(e), g.Vertex(0).RequiredDegree)
	fmt.Println(g.VerifyCycle([]int{0, 1, 2}))

	// Output:
	// required 1
	// undecided 0
	// <nil>
}
