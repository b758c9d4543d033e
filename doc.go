// Package hamilton finds Hamiltonian cycles in undirected graphs by
// backtracking search over tri-state edges, pruned by constraint
// propagation and feasibility checks after every step.
//
// 🚀 What is hamilton?
//
//	A small, deterministic solver that brings together:
//		• Graph model: vertices and edges with Undecided/Required/Deleted status + checkpoints
//		• Constraint engine: degree rules and premature-circuit elimination to a fixed point
//		• Validator: reachability, short circuits, under- and overdegree
//		• Search: depth-first path extension with restore-on-backtrack
//		• Partition planner: coarse visiting order over vertex blocks
//		• Formats: adjacency matrices, partition files, METIS and DOT output
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       — Graph, Vertex, Edge, Checkpoint and the coarse partition graph
//	constraint/ — Propagate (rules R1, D1, D3) and Check (the validator)
//	search/     — Solve with functional options, filters and hooks
//	partition/  — Plan and the partition-guided Solve
//	format/     — readers and writers for the file formats
//	builder/    — adjacency-matrix generators for standard graph families
//	cmd/hamcycle — the command line
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	vertices 1 and 3 have degree 2, so R1 requires all four sides and
//	D1 then deletes the diagonal: propagation alone decides 0 1 2 3.
//
//	go install github.com/katalvlaran/hamilton/cmd/hamcycle@latest
package hamilton
