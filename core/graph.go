package core

import "fmt"

const methodNewFromAdjacency = "NewFromAdjacency"

// NewFromAdjacency builds a Graph from a symmetric boolean adjacency matrix
// with a zero diagonal. Edges are created scanning the lower triangle
// (i ascending, then j < i ascending), which fixes both the global edge
// numbering and every vertex's incident-edge order.
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrSelfLoop, ErrAsymmetry, each
// wrapped with the offending position.
//
// Complexity: O(n²) time, O(n + m) space.
func NewFromAdjacency(adj [][]bool) (*Graph, error) {
	n := len(adj)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewFromAdjacency, ErrEmptyMatrix)
	}
	for i := 0; i < n; i++ {
		if len(adj[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				methodNewFromAdjacency, i, len(adj[i]), n, ErrNonSquare)
		}
	}
	for i := 0; i < n; i++ {
		if adj[i][i] {
			return nil, fmt.Errorf("%s: vertex %d: %w", methodNewFromAdjacency, i, ErrSelfLoop)
		}
		for j := 0; j < i; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, fmt.Errorf("%s: entries (%d,%d) and (%d,%d) differ: %w",
					methodNewFromAdjacency, i, j, j, i, ErrAsymmetry)
			}
		}
	}

	g := &Graph{vertices: make([]Vertex, n)}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if adj[i][j] {
				g.addEdge(i, j)
			}
		}
	}

	return g, nil
}

// addEdge appends edge {u,v} and registers it with both endpoints.
func (g *Graph) addEdge(u, v int) {
	e := len(g.edges)
	g.edges = append(g.edges, Edge{U: u, V: v})
	g.vertices[u].Edges = append(g.vertices[u].Edges, e)
	g.vertices[u].Degree++
	g.vertices[v].Edges = append(g.vertices[v].Edges, e)
	g.vertices[v].Degree++
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.vertices) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Vertex returns a copy of vertex v. The Edges slice is shared and must not
// be modified.
func (g *Graph) Vertex(v int) Vertex { return g.vertices[v] }

// Edge returns a copy of edge e.
func (g *Graph) Edge(e int) Edge { return g.edges[e] }

// Status returns the current status of edge e.
func (g *Graph) Status(e int) EdgeStatus { return g.edges[e].Status }

// Incident returns the indices of the edges incident to v, in construction
// order. The slice is shared and must not be modified.
func (g *Graph) Incident(v int) []int { return g.vertices[v].Edges }

// Other returns the endpoint of edge e that is not v.
func (g *Graph) Other(e, v int) int {
	if g.edges[e].U == v {
		return g.edges[e].V
	}

	return g.edges[e].U
}

// EdgeBetween returns the index of the edge joining u and v, if any.
//
// Complexity: O(min(deg u, deg v)).
func (g *Graph) EdgeBetween(u, v int) (int, bool) {
	if u < 0 || v < 0 || u >= len(g.vertices) || v >= len(g.vertices) {
		return 0, false
	}
	a, b := u, v
	if g.vertices[b].Degree < g.vertices[a].Degree {
		a, b = b, a
	}
	for _, e := range g.vertices[a].Edges {
		if g.Other(e, a) == b {
			return e, true
		}
	}

	return 0, false
}

// Adjacency rebuilds the n×n topology matrix, ignoring edge status.
func (g *Graph) Adjacency() [][]bool {
	n := len(g.vertices)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.edges {
		adj[e.U][e.V] = true
		adj[e.V][e.U] = true
	}

	return adj
}

// Require marks an undecided edge as required and reports whether the
// status changed. Required and deleted edges are left untouched.
func (g *Graph) Require(e int) bool {
	edge := &g.edges[e]
	if edge.Status != Undecided {
		return false
	}
	edge.Status = Required
	g.vertices[edge.U].RequiredDegree++
	g.vertices[edge.V].RequiredDegree++

	return true
}

// Delete marks an undecided edge as deleted and reports whether the
// status changed. Required and deleted edges are left untouched.
func (g *Graph) Delete(e int) bool {
	edge := &g.edges[e]
	if edge.Status != Undecided {
		return false
	}
	edge.Status = Deleted
	g.vertices[edge.U].DeletedDegree++
	g.vertices[edge.V].DeletedDegree++

	return true
}

// Reset returns every edge to Undecided and clears the degree counters.
func (g *Graph) Reset() {
	for i := range g.edges {
		g.edges[i].Status = Undecided
	}
	for i := range g.vertices {
		g.vertices[i].RequiredDegree = 0
		g.vertices[i].DeletedDegree = 0
	}
}
