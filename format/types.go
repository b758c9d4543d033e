package format

import "github.com/pkg/errors"

// Sentinel errors for parsing and permutation.
var (
	// ErrEmptyMatrix indicates a first line without any '0' or '1'.
	ErrEmptyMatrix = errors.New("format: first line holds no matrix entries")

	// ErrTruncatedMatrix indicates fewer than n² matrix entries.
	ErrTruncatedMatrix = errors.New("format: matrix has fewer than n*n entries")

	// ErrAssignmentLength indicates a partition file whose line count
	// differs from the vertex count.
	ErrAssignmentLength = errors.New("format: partition file length does not match vertex count")

	// ErrBadPartitionID indicates a line that is not an integer in [0, n).
	ErrBadPartitionID = errors.New("format: invalid partition id")

	// ErrBadCycle indicates a cycle that is not a permutation of the
	// matrix's vertices.
	ErrBadCycle = errors.New("format: cycle is not a permutation of the vertices")
)
