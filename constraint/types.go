package constraint

// Verdict is the outcome of Check.
type Verdict uint8

const (
	// Feasible means no condition is violated.
	Feasible Verdict = iota
	// Disconnected means the non-deleted edges cannot complete the path.
	Disconnected
	// PrematureCycle means the Required edges close a circuit shorter than n.
	PrematureCycle
	// Underdegree means some vertex keeps fewer than two usable edges.
	Underdegree
	// Overdegree means some vertex has more than two Required edges.
	Overdegree
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Feasible:
		return "feasible"
	case Disconnected:
		return "disconnected"
	case PrematureCycle:
		return "premature-cycle"
	case Underdegree:
		return "underdegree"
	case Overdegree:
		return "overdegree"
	default:
		return "unknown"
	}
}

// Verdicts lists every infeasible verdict in check order.
var Verdicts = []Verdict{Disconnected, PrematureCycle, Underdegree, Overdegree}

// Frontier describes the search position a propagation runs at.
type Frontier struct {
	// Final is true when the partial path spans every vertex.
	Final bool

	// Current is the last vertex of the partial path.
	Current int

	// Start is the first vertex of the partial path.
	Start int
}
