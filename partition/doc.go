// Package partition plans a partition-by-partition visiting order for the
// Hamiltonian cycle search.
//
// Given a vertex→partition assignment with ids 0..k-1, NewPlan builds the
// coarse graph over partitions (core.NewCoarse), finds a Hamiltonian cycle
// on it with package search, and turns that order into a slot schedule: the
// first partition's vertex count of positions for the first partition, then
// the next, wrapping around. The Plan is a search.Filter that admits a vertex
// at a path position only if it belongs to the partition scheduled there.
// The first scheduled partition is the start vertex's own, so the start
// takes position 0 and the closing step wraps back to it.
//
// Two and one partitions need no coarse search: with k = 1 the order is [0];
// with k = 2 the order is [a, b] whenever any edge crosses between them.
//
// The assignment is never modified and the coarse graph is discarded once
// the plan is built.
package partition
