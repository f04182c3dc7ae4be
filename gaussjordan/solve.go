package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/matrix"
)

// Solve classifies and, when possible, solves the n×n system
// coefficients · x = constants.
//
// Validation (first failure wins; the outcome is InputError and the trace is nil):
//  1. len(coefficients) == 0          → ErrEmptySystem
//  2. len(constants) != n             → ErrDimensionMismatch
//  3. len(coefficients[r]) != n       → ErrNonSquare
//  4. NaN/±Inf anywhere               → ErrNonFinite
//
// After validation the augmented matrix [A|b] is reduced (see Reduce) and
// classified:
//   - Inconsistent when some row has every coefficient within ε of zero but a
//     constant beyond ε. This check runs before rank counting.
//   - Underdetermined(rank) when fewer than n rows keep a non-zero coefficient.
//   - Unique otherwise, with solution[k] read from the constants column of row k.
//
// The closing trace entry states the classification. Inputs are never mutated.
//
// Complexity:
//
//	Time O(n³), Memory O(n²) plus the trace.
func Solve(coefficients [][]float64, constants []float64, opts ...Option) (Outcome, Trace) {
	n := len(coefficients)
	if n == 0 {
		return inputError(ErrEmptySystem), nil
	}
	if len(constants) != n {
		return inputError(fmt.Errorf("%w: %d equations, %d constants", ErrDimensionMismatch, n, len(constants))), nil
	}
	for r, row := range coefficients {
		if len(row) != n {
			return inputError(fmt.Errorf("%w: row %d has %d coefficients, want %d", ErrNonSquare, r+1, len(row), n)), nil
		}
	}

	a, err := matrix.NewDenseFromRows(coefficients)
	if err != nil {
		return inputError(classifyBuildError(err)), nil
	}

	return solveSquare(a, constants, gatherOptions(opts...))
}

// SolveMatrix is Solve for a coefficient Matrix. A nil or zero-row matrix is
// reported as ErrEmptySystem; the other validation rules match Solve.
func SolveMatrix(a matrix.Matrix, constants []float64, opts ...Option) (Outcome, Trace) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return inputError(fmt.Errorf("%w: %w", ErrEmptySystem, err)), nil
	}
	n := a.Rows()
	if n == 0 {
		return inputError(ErrEmptySystem), nil
	}
	if len(constants) != n {
		return inputError(fmt.Errorf("%w: %d equations, %d constants", ErrDimensionMismatch, n, len(constants))), nil
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return inputError(fmt.Errorf("%w: %w", ErrNonSquare, err)), nil
	}

	return solveSquare(a, constants, gatherOptions(opts...))
}

// solveSquare runs Reducing → Classifying for a validated square a.
func solveSquare(a matrix.Matrix, constants []float64, o options) (Outcome, Trace) {
	aug, err := matrix.Augment(a, constants)
	if err != nil {
		return inputError(classifyBuildError(err)), nil
	}

	n := aug.Rows()
	rec := newRecorder(o)
	if err = reduce(aug, o.eps, rec); err != nil {
		return inputError(solverErrorf(opSolve, err)), nil
	}

	out := classify(aug, o.eps)
	log.Debugf("%dx%d system classified as %s (rank %d)", n, n, out.Kind, out.Rank)
	rec.outcome(out, n)

	return out, rec.steps
}

func inputError(err error) Outcome {
	log.Debugf("rejected input: %v", err)
	return Outcome{Kind: InputError, Err: err}
}
