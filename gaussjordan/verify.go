package gaussjordan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsolve/matrix"
)

// DefaultVerifyTolerance is the absolute residual accepted by Verify.
const DefaultVerifyTolerance = 1e-6

// Verify substitutes solution into the system and returns the largest
// absolute residual max_i |(A·x)_i − b_i|.
//
// Shape checks follow Solve and return the same sentinels; len(solution)
// must equal n (ErrDimensionMismatch). When the residual exceeds tol the
// residual is still returned, together with ErrResidual. A negative or
// non-finite tol is ErrInvalidConfig.
//
// Complexity: Time O(n²), Memory O(n²).
func Verify(coefficients [][]float64, constants, solution []float64, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return 0, solverErrorf(opVerify, fmt.Errorf("%w: tolerance %g", ErrInvalidConfig, tol))
	}
	n := len(coefficients)
	if n == 0 {
		return 0, solverErrorf(opVerify, ErrEmptySystem)
	}
	if len(constants) != n || len(solution) != n {
		return 0, solverErrorf(opVerify, ErrDimensionMismatch)
	}

	a, err := matrix.NewDenseFromRows(coefficients)
	if err != nil {
		return 0, solverErrorf(opVerify, classifyBuildError(err))
	}
	if a.Cols() != n {
		return 0, solverErrorf(opVerify, ErrNonSquare)
	}

	ax, err := matrix.MatVec(a, solution)
	if err != nil {
		return 0, solverErrorf(opVerify, err)
	}

	worst := 0.0
	for i, v := range ax {
		if d := math.Abs(v - constants[i]); d > worst || math.IsNaN(d) {
			worst = d
		}
	}
	if !(worst <= tol) {
		return worst, solverErrorf(opVerify, fmt.Errorf("%w: %g > %g", ErrResidual, worst, tol))
	}

	return worst, nil
}
