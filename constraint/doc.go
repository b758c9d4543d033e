// Package constraint implements the deduction rules and feasibility checks
// that prune the Hamiltonian cycle search over a core.Graph.
//
// Propagation (Propagate) repeats three local rules until no edge changes:
//
//   - R1: a vertex with exactly two non-deleted edges needs both of them,
//     so its undecided edges become Required.
//   - D1: a vertex with two Required edges is saturated, so its undecided
//     edges become Deleted.
//   - D3: an undecided edge whose endpoints are already joined by a path of
//     Required edges would close a circuit, so it becomes Deleted. The one
//     exception is the closing edge of a Required path that spans every
//     vertex, which completes the Hamiltonian cycle instead.
//
// Checking (Check) never mutates the graph and reports the first violated
// condition, in this order:
//
//   - Disconnected (F7/F8): the vertices not yet on the partial path cannot
//     all be reached from its start over non-deleted edges.
//   - PrematureCycle (F6): the Required edges contain a circuit shorter than n.
//   - Underdegree (F1/F2): a vertex keeps fewer than two non-deleted edges.
//   - Overdegree (F3): a vertex has three or more Required edges.
//
// Both operations are available as package functions, which allocate their
// scratch space per call, and as methods on Engine, which reuses it across
// calls on the same graph. An Engine is not safe for concurrent use.
//
// Complexity: one propagation pass and one check are O(n + m); Propagate
// runs at most m+1 passes since every productive pass decides an edge.
package constraint
