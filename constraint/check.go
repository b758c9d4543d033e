package constraint

import "github.com/katalvlaran/hamilton/core"

// Check reports the first violated feasibility condition of the engine's
// graph given the partial path (path[0] is the cycle's start; an empty path
// checks from vertex 0). It does not modify the graph.
func (en *Engine) Check(path []int) Verdict {
	if !en.reachable(path) {
		return Disconnected
	}
	if en.shortCircuit() {
		return PrematureCycle
	}
	g := en.g
	for v := 0; v < g.N(); v++ {
		vx := g.Vertex(v)
		if vx.Degree-vx.DeletedDegree < 2 {
			return Underdegree
		}
		if vx.RequiredDegree >= 3 {
			return Overdegree
		}
	}

	return Feasible
}

// reachable implements F7/F8. The rest of the cycle runs from the path's end
// back to its start through vertices not yet on the path, so every such
// vertex must be reachable from the start without passing through the
// path's other vertices.
func (en *Engine) reachable(path []int) bool {
	g := en.g
	n := g.N()
	if n == 0 {
		return true
	}
	en.clearMarks()
	root, covered := 0, 0
	if len(path) > 0 {
		root = path[0]
		for _, v := range path[1:] {
			en.mark[v] = true
		}
		covered = len(path) - 1
	}
	en.bfs(root,
		func(e int) bool { return g.Status(e) != core.Deleted },
		func(int) { covered++ })

	return covered == n
}

// shortCircuit implements F6 with an iterative DFS over Required edges.
// Every non-tree edge of an undirected DFS joins a vertex to one of its
// ancestors, so the circuit it closes has length depth(v)-depth(w)+1.
func (en *Engine) shortCircuit() bool {
	g := en.g
	n := g.N()
	en.clearMarks()
	for root := 0; root < n; root++ {
		if en.mark[root] {
			continue
		}
		en.mark[root] = true
		en.depth[root] = 0
		en.parentEdge[root] = -1
		en.stack = append(en.stack[:0], frame{v: root})
		for len(en.stack) > 0 {
			top := &en.stack[len(en.stack)-1]
			v := top.v
			inc := g.Incident(v)
			if top.next == len(inc) {
				en.stack = en.stack[:len(en.stack)-1]
				continue
			}
			e := inc[top.next]
			top.next++
			if e == en.parentEdge[v] || g.Status(e) != core.Required {
				continue
			}
			w := g.Other(e, v)
			if !en.mark[w] {
				en.mark[w] = true
				en.depth[w] = en.depth[v] + 1
				en.parentEdge[w] = e
				en.stack = append(en.stack, frame{v: w})
				continue
			}
			// descendants were already examined from their own side
			if en.depth[w] < en.depth[v] && en.depth[v]-en.depth[w]+1 != n {
				return true
			}
		}
	}

	return false
}
