// Package gaussjordan defines the outcome and trace types of the elimination engine.

package gaussjordan

// Kind tags the variant held by an Outcome.
//
//   - Unique          : Solution holds n values, Rank == n.
//   - Inconsistent    : no solution; some reduced row reads 0 = c, c ≠ 0.
//   - Underdetermined : infinitely many solutions; Rank < n.
//   - InputError      : malformed input; Err says why.
type Kind int

const (
	// InputError marks malformed input (empty system, shape mismatch, NaN/Inf).
	// It is the zero value so an uninitialised Outcome never looks solved.
	InputError Kind = iota

	// Unique marks a system with exactly one solution.
	Unique

	// Inconsistent marks a system with no solution.
	Inconsistent

	// Underdetermined marks a system with infinitely many solutions.
	Underdetermined
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case InputError:
		return "input error"
	case Unique:
		return "unique"
	case Inconsistent:
		return "inconsistent"
	case Underdetermined:
		return "underdetermined"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one Solve call.
type Outcome struct {
	Kind     Kind
	Solution []float64 // len n when Kind == Unique, nil otherwise
	Rank     int       // count of rows with a non-zero coefficient after reduction
	Err      error     // non-nil only when Kind == InputError
}

// Solved reports whether the outcome carries a unique solution.
func (o Outcome) Solved() bool { return o.Kind == Unique }

// Trace is the ordered list of human-readable elimination steps.
// Matrix snapshots occupy a single entry with rows separated by '\n'.
//
// The closing entry of a unique solve lists the values as %.6f numbers
// separated by single spaces, e.g. "Solution found: [2.000000 1.000000]".
// Values are not quoted or comma-separated.
type Trace []string
