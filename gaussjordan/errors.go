package gaussjordan

import (
	"errors"
	"fmt"
)

// Sentinel errors. InputError outcomes carry one of the first four in
// Outcome.Err (wrapped with context); match them with errors.Is.
var (
	// ErrEmptySystem indicates a system with zero equations.
	ErrEmptySystem = errors.New("gaussjordan: system has no equations")

	// ErrDimensionMismatch indicates len(constants) differs from the number of equations.
	ErrDimensionMismatch = errors.New("gaussjordan: number of equations must equal number of constants")

	// ErrNonSquare indicates a coefficient row whose length differs from n.
	ErrNonSquare = errors.New("gaussjordan: coefficient matrix must be square")

	// ErrNonFinite indicates a NaN or ±Inf coefficient or constant, or an
	// intermediate value that overflowed during elimination. The overflow case
	// is the only InputError a well-formed, finite system can produce: for
	// example {{1e-9, 0}, {0, 1}} with constants {1e300, 1} overflows when
	// row 1 is divided by its pivot.
	ErrNonFinite = errors.New("gaussjordan: NaN or Inf in system")

	// ErrNotAugmented is returned by Reduce when the matrix is not n×(n+1).
	ErrNotAugmented = errors.New("gaussjordan: matrix must have exactly one more column than rows")

	// ErrResidual is returned by Verify when A·x deviates from b beyond tolerance.
	ErrResidual = errors.New("gaussjordan: residual exceeds tolerance")

	// ErrInvalidConfig is returned when a Config holds unusable values.
	ErrInvalidConfig = errors.New("gaussjordan: invalid config")
)

const (
	opReduce = "Reduce"
	opSolve  = "Solve"
	opVerify = "Verify"
	opConfig = "Config"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
