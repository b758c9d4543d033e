// Package core defines the graph model shared by every hamilton algorithm:
// a fixed set of vertices and undirected edges, where each edge carries a
// tri-state decision status and each vertex counts how many of its incident
// edges are currently required or deleted.
//
// Representation:
//
//	vertices []Vertex  — Vertex.Edges holds indices into edges
//	edges    []Edge    — Edge.U, Edge.V hold indices into vertices
//
// No record points at another record, so the whole mutable state of a graph
// is two flat arrays of small integers. Checkpoint captures that state and
// Restore writes it back field for field, which is what the backtracking
// search relies on to undo a failed branch.
//
// Lifecycle:
//
//   - NewFromAdjacency validates a symmetric, zero-diagonal boolean matrix and
//     builds the graph; edges are numbered in lower-triangle scan order.
//   - NewCoarse derives an independent graph over partitions.
//   - Require / Delete move an edge out of Undecided exactly once; the only
//     way back is Restore (or Reset).
//
// Errors:
//
//	ErrEmptyMatrix        - adjacency matrix has no rows.
//	ErrNonSquare          - a row length differs from the row count.
//	ErrSelfLoop           - non-zero diagonal entry.
//	ErrAsymmetry          - adj[i][j] != adj[j][i].
//	ErrVertexOutOfRange   - vertex index outside [0, n).
//	ErrCheckpointMismatch - checkpoint taken from a graph of another shape.
//	ErrNotPermutation     - cycle is not a permutation of all vertices.
//	ErrMissingEdge        - consecutive cycle vertices are not adjacent.
//
// Concurrency: a Graph is owned by a single search; it is not safe for
// concurrent mutation.
package core
