// Package cli implements the hamcycle command line: the root command finds a
// Hamiltonian cycle in an adjacency-matrix file, optionally guided by a
// partition file, and the subcommands generate, metis and permute produce
// and transform inputs.
package cli
