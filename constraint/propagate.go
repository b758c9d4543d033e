package constraint

import "github.com/katalvlaran/hamilton/core"

// Propagate applies R1, D1 and D3 to the engine's graph until no rule
// changes any edge, and returns the number of edges it decided. A second
// call with the same frontier returns 0.
//
// The closing edge {f.Current, f.Start} is never deleted when f.Final is
// set, nor is the closing edge of any Required path through all n vertices.
// Propagate cannot fail; infeasible states are left for Check to report.
func (en *Engine) Propagate(f Frontier) int {
	total := 0
	for {
		changed := en.degreePass()
		changed += en.circuitPass(f)
		if changed == 0 {
			return total
		}
		total += changed
	}
}

// degreePass applies R1 then D1 to every vertex in index order.
func (en *Engine) degreePass() int {
	g := en.g
	changed := 0
	for v := 0; v < g.N(); v++ {
		vx := g.Vertex(v)
		switch {
		case vx.Degree-vx.DeletedDegree == 2 && vx.RequiredDegree < 2:
			for _, e := range vx.Edges {
				if g.Require(e) {
					changed++
				}
			}
		case vx.RequiredDegree == 2 && vx.Degree-vx.DeletedDegree > 2:
			for _, e := range vx.Edges {
				if g.Delete(e) {
					changed++
				}
			}
		}
	}

	return changed
}

// circuitPass applies D3. Deletions never merge or split Required
// components, so one labelling serves the whole pass.
func (en *Engine) circuitPass(f Frontier) int {
	g := en.g
	en.labelRequired()
	n := g.N()
	changed := 0
	for e := 0; e < g.NumEdges(); e++ {
		edge := g.Edge(e)
		if edge.Status != core.Undecided || en.comp[edge.U] != en.comp[edge.V] {
			continue
		}
		if en.compSize[en.comp[edge.U]] == n {
			continue
		}
		if f.Final && isPair(edge, f.Current, f.Start) {
			continue
		}
		if g.Delete(e) {
			changed++
		}
	}

	return changed
}

// labelRequired assigns every vertex the id of its Required-edge component
// and records component sizes.
func (en *Engine) labelRequired() {
	g := en.g
	en.clearMarks()
	en.compSize = en.compSize[:0]
	for root := 0; root < g.N(); root++ {
		if en.mark[root] {
			continue
		}
		id := len(en.compSize)
		size := 0
		en.bfs(root,
			func(e int) bool { return g.Status(e) == core.Required },
			func(v int) {
				en.comp[v] = id
				size++
			})
		en.compSize = append(en.compSize, size)
	}
}

// isPair reports whether edge joins a and b.
func isPair(edge core.Edge, a, b int) bool {
	return (edge.U == a && edge.V == b) || (edge.U == b && edge.V == a)
}
