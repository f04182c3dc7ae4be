// SPDX-License-Identifier: MIT

// Package matrix - copy-based builders.
//
// Every builder here allocates fresh storage: the returned *Dense never
// aliases caller-owned slices or matrices, so callers may keep mutating their
// inputs (or hand the same input to concurrent callers) without coordination.

package matrix

import "fmt"

const (
	ctxFromRows = "NewDenseFromRows"
	ctxToDense  = "ToDense"
	ctxAugment  = "Augment"
)

// NewDenseFromRows copies a rectangular row literal into a new Dense.
// MAIN DESCRIPTION:
//   - Ingest [][]float64 data under the default numeric policy.
//
// Implementation:
//   - Stage 1: validate len(rows)>0 and len(rows[0])>0.
//   - Stage 2: allocate r×c Dense; copy row by row, rejecting ragged rows and NaN/±Inf.
//
// Errors:
//   - ErrInvalidDimensions (empty literal), ErrDimensionMismatch (ragged row),
//     ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && isNonFinite(v) {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToDense returns an independent *Dense copy of any Matrix.
// A *Dense input takes the flat-copy fast path; other implementations are
// read through At in row-major order.
//
// Errors: ErrNilMatrix, plus any error surfaced by At/Set on the source.
// Complexity: Time O(r*c), Space O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToDense, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxToDense, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxToDense, err)
			}
		}
	}

	return out, nil
}

// Augment builds the augmented matrix [A | b] as a new (r)×(c+1) Dense.
//
// Errors:
//   - ErrNilMatrix (a nil), ErrDimensionMismatch (len(b) != a.Rows()),
//     ErrNaNInf (non-finite entry in a or b).
//
// Complexity:
//   - Time O(r*c), Space O(r*(c+1)).
func Augment(a Matrix, b []float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAugment, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAugment, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAugment, err)
	}

	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAugment, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxAugment, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxAugment, err)
			}
		}
		out.data[i*out.c+c] = b[i] // already validated finite
	}

	return out, nil
}
