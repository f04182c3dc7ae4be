// Package gaussjordan solves square linear systems A·x = b by Gauss-Jordan
// elimination with partial pivoting, classifies their solvability and records
// a human-readable trace of every elimination step.
//
// 🚀 What does it do?
//
//	Given an n×n coefficient matrix and n constants, the engine builds the
//	augmented matrix [A|b], reduces it to reduced row-echelon form and tells
//	you which of three things is true:
//	  • Unique          : exactly one solution, returned as a vector
//	  • Inconsistent    : a row reads 0 = c with c ≠ 0, no solution exists
//	  • Underdetermined : rank < n, infinitely many solutions
//	Malformed input (empty system, wrong lengths, ragged rows, NaN/Inf) is
//	reported as a fourth outcome, InputError, never as a panic.
//
// ✨ Key features:
//   - partial pivoting: the largest |a[k][i]| wins, ties keep the lowest row
//   - degenerate pivots are skipped with a warning, never aborting the run
//   - one tolerance, DefaultEpsilon = 1e-10, for every comparison against zero
//   - deterministic Trace: same input and options ⇒ byte-identical trace
//   - inputs are copied on entry; callers' slices and matrices are never mutated
//
// ⚙️ Usage:
//
//	out, trace := gaussjordan.Solve(
//	    [][]float64{{2, 1}, {1, -1}},
//	    []float64{5, 1},
//	)
//	switch out.Kind {
//	case gaussjordan.Unique:
//	    fmt.Println(out.Solution) // [2 1]
//	case gaussjordan.InputError:
//	    fmt.Println(out.Err)
//	}
//	for _, step := range trace {
//	    fmt.Println(step)
//	}
//
// Options tune the tolerance and the trace (WithEpsilon, WithNoSnapshots,
// WithNoHeader). The same settings can be loaded from a TOML file, see
// ParseConfig and LoadConfig.
//
// Performance:
//
//   - Time:   O(n³) arithmetic, exactly n pivot columns per run
//   - Memory: O(n²) for the working copy, plus the trace
//
// Concurrency: every call owns its matrix and trace; concurrent calls need no
// synchronization.
package gaussjordan
