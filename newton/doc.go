// Package newton provides a finite-difference Newton–Raphson minimizer whose
// linear step is solved by the gaussjordan engine.
//
// Each iteration estimates the gradient ∇f with central differences and the
// Hessian H with second central differences (mixed terms via the four-point
// stencil), then solves
//
//	H · δ = −∇f
//
// and moves x ← x + δ. When the Hessian is singular the solver reports a
// non-unique outcome and the step is refused with ErrSingularHessian;
// Minimize stops at that point and flags the Result as Singular.
//
// Defaults (see DefaultOptions):
//   - gradient step  1e-5
//   - Hessian step   1e-4
//   - iterations     5
//   - pivot epsilon  gaussjordan.DefaultEpsilon
//
// Complexity per iteration for n variables: O(n²) evaluations of f for the
// Hessian plus O(n³) for the elimination.
//
// Example:
//
//	bowl := func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] }
//	res, err := newton.Minimize(bowl, []float64{10, 10}, nil)
//	// res.X ≈ [0 0] after the first iteration
package newton
