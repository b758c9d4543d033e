package constraint

import (
	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/hamilton/core"
)

// Engine runs Propagate and Check against one graph, keeping its traversal
// buffers between calls.
type Engine struct {
	g *core.Graph

	// required-edge components, rebuilt once per propagation pass
	comp     []int
	compSize []int

	// connectivity and circuit scratch
	mark       []bool
	depth      []int
	parentEdge []int
	stack      []frame
	queue      *arrayqueue.Queue
}

// frame is one entry of the iterative DFS over Required edges.
type frame struct {
	v    int
	next int // index into g.Incident(v)
}

// NewEngine returns an Engine bound to g.
func NewEngine(g *core.Graph) *Engine {
	n := g.N()

	return &Engine{
		g:          g,
		comp:       make([]int, n),
		compSize:   make([]int, 0, n),
		mark:       make([]bool, n),
		depth:      make([]int, n),
		parentEdge: make([]int, n),
		stack:      make([]frame, 0, n),
		queue:      arrayqueue.New(),
	}
}

// Graph returns the graph the engine is bound to.
func (en *Engine) Graph() *core.Graph { return en.g }

// Propagate applies R1, D1 and D3 to g until a fixed point and returns the
// number of edges decided. See Engine.Propagate.
func Propagate(g *core.Graph, f Frontier) int {
	return NewEngine(g).Propagate(f)
}

// Check reports the first violated feasibility condition of g given the
// partial path. See Engine.Check.
func Check(g *core.Graph, path []int) Verdict {
	return NewEngine(g).Check(path)
}

// IsFeasible reports whether Check(g, path) == Feasible.
func IsFeasible(g *core.Graph, path []int) bool {
	return Check(g, path) == Feasible
}

// bfs visits every vertex reachable from root over edges accepted by use,
// marking them in en.mark. Vertices already marked are not entered.
func (en *Engine) bfs(root int, use func(e int) bool, visit func(v int)) {
	en.queue.Clear()
	en.mark[root] = true
	visit(root)
	en.queue.Enqueue(root)
	for !en.queue.Empty() {
		x, _ := en.queue.Dequeue()
		v := x.(int)
		for _, e := range en.g.Incident(v) {
			if !use(e) {
				continue
			}
			w := en.g.Other(e, v)
			if en.mark[w] {
				continue
			}
			en.mark[w] = true
			visit(w)
			en.queue.Enqueue(w)
		}
	}
}

// clearMarks resets the visit flags.
func (en *Engine) clearMarks() {
	for i := range en.mark {
		en.mark[i] = false
	}
}
