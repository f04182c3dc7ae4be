// Package lvlsolve is a small, deterministic toolkit for solving dense linear
// systems by hand-traceable Gauss-Jordan elimination.
//
// 🚀 What is lvlsolve?
//
//	A pure-Go library that brings together:
//		• Dense matrices: row-major storage, safe accessors, elementary row operations
//		• Gauss-Jordan: partial pivoting, solvability classification, step trace
//		• Verification: residual checks of a solution against the original system
//		• Newton–Raphson: finite-difference minimizer whose steps use the solver
//
// ✨ Why choose lvlsolve?
//
//   - Explainable: every swap, division and elimination is recorded in order
//   - Predictable: one tolerance, fixed loop orders, byte-identical traces
//   - Safe: malformed input is an outcome, never a panic; inputs are never mutated
//   - Configurable: functional options or a TOML settings file
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/      : Dense, row primitives, builders, MatVec, validators
//	gaussjordan/ : Solve, SolveMatrix, Reduce, Verify, Config
//	newton/      : Gradient, Hessian, Step, Minimize
//
// Quick example:
//
//	    2x +  y = 5
//	     x −  y = 1
//
//	out, trace := gaussjordan.Solve([][]float64{{2, 1}, {1, -1}}, []float64{5, 1})
//	// out.Kind == gaussjordan.Unique, out.Solution == [2 1]
//	for _, step := range trace {
//	    fmt.Println(step)
//	}
//
//	go get github.com/katalvlaran/lvlsolve
package lvlsolve
