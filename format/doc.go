// Package format reads and writes the file formats around the Hamiltonian
// cycle search.
//
// Graph files hold an n×n 0/1 adjacency matrix. n is the number of '0' and
// '1' characters on the first line; the matrix is then read as the first n²
// such characters of the whole input, so separators, line breaks and any
// other characters are ignored. Partition files hold one non-negative
// partition id per line, one line per vertex.
//
// Writers:
//
//   - WriteCycle: vertex indices separated by spaces, newline-terminated.
//   - WriteAdjacency: one row per line, entries separated by spaces.
//   - WriteAssignment: one partition id per line.
//   - WriteMETIS: the METIS graph format ("n m" header, then the 1-based
//     neighbours of each vertex), the input of gpmetis.
//   - WriteDOT: a Graphviz rendering with the cycle's edges highlighted.
//
// Permute reorders a matrix along a cycle so that the tour becomes the
// super- and sub-diagonal.
//
// Reading functions return sentinel errors that callers branch on with
// errors.Is; file helpers additionally wrap I/O failures with the path.
package format
