package core

import "errors"

// Sentinel errors for graph construction and state handling.
var (
	// ErrEmptyMatrix indicates an adjacency matrix without rows.
	ErrEmptyMatrix = errors.New("core: adjacency matrix is empty")

	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = errors.New("core: adjacency matrix is not square")

	// ErrSelfLoop indicates a true entry on the diagonal.
	ErrSelfLoop = errors.New("core: self-loop in adjacency matrix")

	// ErrAsymmetry indicates adj[i][j] != adj[j][i].
	ErrAsymmetry = errors.New("core: adjacency matrix is not symmetric")

	// ErrVertexOutOfRange indicates a vertex or partition index outside its range.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrCheckpointMismatch indicates a checkpoint whose shape does not match the graph.
	ErrCheckpointMismatch = errors.New("core: checkpoint does not match graph")

	// ErrNotPermutation indicates a cycle that does not visit every vertex exactly once.
	ErrNotPermutation = errors.New("core: cycle is not a permutation of the vertices")

	// ErrMissingEdge indicates two consecutive cycle vertices without an edge between them.
	ErrMissingEdge = errors.New("core: cycle uses a missing edge")
)

// EdgeStatus is the decision state of an edge during search.
type EdgeStatus uint8

const (
	// Undecided edges may still be used or discarded.
	Undecided EdgeStatus = iota
	// Required edges are proven to belong to the cycle being built.
	Required
	// Deleted edges are proven to be excluded from it.
	Deleted
)

// String implements fmt.Stringer.
func (s EdgeStatus) String() string {
	switch s {
	case Undecided:
		return "undecided"
	case Required:
		return "required"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Vertex is a graph vertex. Degree is fixed at construction;
// RequiredDegree and DeletedDegree follow the status of the incident edges.
//
// Invariant: RequiredDegree + DeletedDegree <= Degree.
type Vertex struct {
	// Edges lists incident edge indices in construction order.
	Edges []int

	// Degree is len(Edges).
	Degree int

	// RequiredDegree counts incident edges with status Required.
	RequiredDegree int

	// DeletedDegree counts incident edges with status Deleted.
	DeletedDegree int
}

// Edge is an undirected edge between vertices U and V (U > V).
type Edge struct {
	U, V   int
	Status EdgeStatus
}

// Graph holds a fixed vertex set and edge set. Only edge status and the
// per-vertex required/deleted counters change after construction.
type Graph struct {
	vertices []Vertex
	edges    []Edge
}

// Checkpoint is a snapshot of every mutable field of a Graph.
// A zero Checkpoint is valid for Save, which sizes it on first use.
type Checkpoint struct {
	status   []EdgeStatus
	required []int
	deleted  []int
}
