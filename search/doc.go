// Package search finds a Hamiltonian cycle in a core.Graph by backtracking
// over path extensions, pruning each tentative step with the deduction
// rules and feasibility checks of package constraint.
//
// The search keeps a partial path starting at the start vertex. At path
// length ℓ with end vertex v it tries, in v's incident-edge order, every
// non-deleted edge to a vertex u that is neither v's predecessor nor already
// on the path (at ℓ = n only the start vertex qualifies, closing the cycle).
// For each candidate it marks the edge Required, propagates to a fixed
// point, and checks feasibility; feasible steps recurse, infeasible ones are
// rolled back from a checkpoint taken before the first candidate.
//
// Options:
//
//   - WithStartVertex(v): vertex the cycle starts at (default 0).
//   - WithFilter(f): extra eligibility predicate; a Filter sees the path
//     position the vertex would take and the vertex itself.
//   - WithContext(ctx), WithTimeLimit(d): cancellation and a soft deadline,
//     both checked every 4096 candidates.
//   - WithOnExtend, WithOnBacktrack: observation hooks.
//
// Errors:
//
//   - ErrNoCycle when the search space is exhausted.
//   - ErrTimeLimit, or the context's error, when the search was cut short.
//   - ErrStartOutOfRange, ErrOptionViolation, ErrGraphNil for bad input.
//
// On failure the graph is restored to its state before Solve. On success
// every edge of the returned cycle is Required.
//
// Complexity: exponential in n in the worst case (the problem is
// NP-complete); each candidate costs O(n + m) per propagation pass plus one
// O(n + m) check. Memory: O(n·(n + m)) for per-depth checkpoints.
package search
