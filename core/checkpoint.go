package core

import "fmt"

// NewCheckpoint returns a checkpoint sized for g holding g's current state.
func (g *Graph) NewCheckpoint() *Checkpoint {
	cp := &Checkpoint{}
	g.Save(cp)

	return cp
}

// Save copies the status of every edge and the required/deleted counters of
// every vertex into cp, reusing cp's buffers when they are large enough.
//
// Complexity: O(n + m), no allocation after the first use of cp.
func (g *Graph) Save(cp *Checkpoint) {
	m, n := len(g.edges), len(g.vertices)
	if cap(cp.status) < m {
		cp.status = make([]EdgeStatus, m)
	}
	if cap(cp.required) < n {
		cp.required = make([]int, n)
		cp.deleted = make([]int, n)
	}
	cp.status = cp.status[:m]
	cp.required = cp.required[:n]
	cp.deleted = cp.deleted[:n]

	for i := range g.edges {
		cp.status[i] = g.edges[i].Status
	}
	for i := range g.vertices {
		cp.required[i] = g.vertices[i].RequiredDegree
		cp.deleted[i] = g.vertices[i].DeletedDegree
	}
}

// Restore writes the state captured in cp back into g.
// It fails with ErrCheckpointMismatch if cp was taken from a graph with a
// different number of vertices or edges; g is not modified in that case.
func (g *Graph) Restore(cp *Checkpoint) error {
	if cp == nil || len(cp.status) != len(g.edges) || len(cp.required) != len(g.vertices) {
		return fmt.Errorf("Restore: %w", ErrCheckpointMismatch)
	}
	for i := range g.edges {
		g.edges[i].Status = cp.status[i]
	}
	for i := range g.vertices {
		g.vertices[i].RequiredDegree = cp.required[i]
		g.vertices[i].DeletedDegree = cp.deleted[i]
	}

	return nil
}
