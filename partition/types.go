package partition

import "errors"

// Sentinel errors for assignment validation and planning.
var (
	// ErrAssignmentLength indicates an assignment whose length differs
	// from the vertex count.
	ErrAssignmentLength = errors.New("partition: assignment length does not match vertex count")

	// ErrNegativePartition indicates a negative partition id.
	ErrNegativePartition = errors.New("partition: negative partition id")

	// ErrEmptyPartition indicates an id in 0..k-1 that no vertex uses.
	ErrEmptyPartition = errors.New("partition: partition ids are not contiguous")

	// ErrNoPartitionOrder indicates that the coarse graph has no
	// Hamiltonian cycle, so no visiting order exists.
	ErrNoPartitionOrder = errors.New("partition: no visiting order over partitions")
)

// Plan is a cyclic visiting order over partitions together with the slot
// schedule derived from it. A Plan is immutable and safe for concurrent use.
type Plan struct {
	// Order lists partition ids in visiting order; Order[0] holds the
	// start vertex.
	Order []int

	// Sizes[p] is the number of vertices in partition p.
	Sizes []int

	assignment []int
	slots      []int // partition scheduled at each path position
	runStart   []int // first position of the run containing each position
}
