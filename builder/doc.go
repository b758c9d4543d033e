// Package builder generates deterministic graph fixtures as adjacency
// matrices, the input form accepted by core.NewFromAdjacency and written by
// format.WriteAdjacency. It also produces partition assignments for grid
// meshes, mirroring how a domain decomposition tiles a structured mesh.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor: a function producing an n×n adjacency matrix from a
//     resolved builderConfig.
//     – Build: resolves options and runs one Constructor.
//   - Topologies (all simple and undirected):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid, Petersen.
//     – PlatonicSolid: the five Platonic solids by PlatonicName.
//     – RandomSparse: Erdős–Rényi G(n,p), requires WithSeed or WithRand
//     unless p ∈ {0,1}.
//     – RandomRegular: d-regular stub matching, requires an RNG.
//   - Partitions:
//     – GridBlocks: row-major block assignment for a Grid(rows, cols) mesh.
//   - Options:
//     – WithSeed, WithRand.
//
// Guarantees:
//
//   - Determinism: same constructor, parameters and seed ⇒ identical matrix.
//   - Every returned matrix is square, symmetric and has a false diagonal.
//   - Invalid parameters surface as sentinel errors wrapped with the method
//     name ("Cycle: n=2 < min=3: builder: parameter too small"); option
//     constructors panic on meaningless values.
//
// Vertex numbering is documented per constructor; Grid and GridBlocks share
// the row-major numbering r*cols + c.
package builder
