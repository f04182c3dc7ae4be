// Package matrix provides the dense, row-major float64 container used by the
// elimination engine in package gaussjordan.
//
// The matrix package provides:
//
//   - Dense: a flat row-major buffer with bounds-checked At/Set and a
//     finite-only numeric policy (NaN/±Inf rejected by default).
//   - Row primitives (SwapRows, DivideRow, SubScaledRow) that implement the
//     three elementary row operations in place, O(cols) each.
//   - Builders (NewDense, NewDenseFromRows, ToDense, Augment) that always copy,
//     so callers never share storage with the matrices they pass in.
//   - MatVec for residual checks and a small set of validators.
//
// Matrices are meant for small, dense systems where O(n²) memory is fine.
//
// See example_test.go for usage patterns.
package matrix
