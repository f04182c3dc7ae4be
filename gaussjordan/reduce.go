package gaussjordan

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsolve/matrix"
)

// Reduce brings an n×(n+1) augmented matrix to reduced row-echelon form.
//
// Algorithm Outline (column i = 0..n-1):
//  1. Pivot: scan rows i..n-1 for the largest |a[k][i]|. The scan uses a
//     strict '>' so equal magnitudes keep the lowest row index.
//  2. Swap rows i and k when k ≠ i.
//  3. If |a[i][i]| < ε the column is degenerate: record a warning and move to
//     the next column. Nothing is normalized or eliminated for it.
//  4. Divide row i by a[i][i] unless it already equals 1.
//  5. For every row j ≠ i with |a[j][i]| > ε subtract a[j][i]·row i.
//  6. Record a snapshot of the whole matrix.
//
// Singular systems are not errors: the returned matrix simply carries
// structural zeros on the diagonal, which Solve turns into a classification.
//
// The input is copied; it is never mutated.
//
// Errors:
//   - ErrNilMatrix (from package matrix) for a nil input.
//   - ErrEmptySystem for a matrix without rows.
//   - ErrNotAugmented when Cols() != Rows()+1.
//   - ErrNonFinite when the input holds NaN/±Inf or elimination overflows.
//
// Complexity:
//
//	Time O(n³), Memory O(n²) plus the trace.
func Reduce(augmented matrix.Matrix, opts ...Option) (*matrix.Dense, Trace, error) {
	if err := matrix.ValidateNotNil(augmented); err != nil {
		return nil, nil, solverErrorf(opReduce, err)
	}
	if augmented.Rows() == 0 {
		return nil, nil, solverErrorf(opReduce, ErrEmptySystem)
	}
	if augmented.Cols() != augmented.Rows()+1 {
		return nil, nil, solverErrorf(opReduce, ErrNotAugmented)
	}

	work, err := matrix.ToDense(augmented)
	if err != nil {
		return nil, nil, solverErrorf(opReduce, classifyBuildError(err))
	}

	o := gatherOptions(opts...)
	rec := newRecorder(o)
	if err = reduce(work, o.eps, rec); err != nil {
		return nil, nil, solverErrorf(opReduce, err)
	}

	return work, rec.steps, nil
}

// reduce runs Gauss-Jordan elimination on m in place.
// m must be n×(n+1); callers validate the shape.
func reduce(m *matrix.Dense, eps float64, rec *recorder) error {
	n := m.Rows()
	rec.start(m)

	var i, j, k, best int
	var v, bestAbs, pivot, factor float64
	var err error
	for i = 0; i < n; i++ {
		// 1. Partial pivoting: largest magnitude, first occurrence on ties.
		best = i
		bestAbs = math.Abs(at(m, i, i))
		for k = i + 1; k < n; k++ {
			if v = math.Abs(at(m, k, i)); v > bestAbs {
				best, bestAbs = k, v
			}
		}

		// 2. Bring the pivot row into place.
		if best != i {
			if err = m.SwapRows(i, best); err != nil {
				return err
			}
			rec.swap(i, best)
		}

		// 3. Degenerate column: leave the structural zero for classification.
		// An exact zero is degenerate even when eps == 0.
		pivot = at(m, i, i)
		if math.Abs(pivot) < eps || pivot == 0 {
			log.Debugf("pivot at (%d,%d) is %g, below epsilon %g; skipping column", i+1, i+1, pivot, eps)
			rec.smallPivot(i)
			continue
		}

		// 4. Normalize so the pivot becomes exactly 1.
		if pivot != 1 {
			if err = m.DivideRow(i, pivot); err != nil {
				return overflow(err)
			}
			rec.divide(i, pivot)
		}

		// 5. Clear column i in every other row.
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			factor = at(m, j, i)
			if math.Abs(factor) > eps {
				if err = m.SubScaledRow(j, i, factor); err != nil {
					return overflow(err)
				}
				rec.eliminate(j, i, factor)
			}
		}

		// 6. Snapshot.
		rec.column(i, m)
	}

	return nil
}

// at reads m[i][j] for indices the caller has already bounded.
func at(m *matrix.Dense, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

// overflow maps a numeric-policy failure of a row primitive to ErrNonFinite,
// keeping the original cause in the chain.
func overflow(err error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%w: %w", ErrNonFinite, err)
	}

	return err
}

// classifyBuildError maps matrix ingestion errors onto this package's sentinels.
func classifyBuildError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNonFinite, err)
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrNonSquare, err)
	default:
		return err
	}
}
