// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on Dense.
//
// Purpose:
//   - Implement the three elementary row operations (swap, divide, subtract a
//     scaled row) in place on the flat buffer, one pass per row.
//   - Keep arithmetic bit-for-bit predictable: DivideRow performs a true
//     division per element (never multiplies by a reciprocal), so dividing a
//     row by its own pivot yields exactly 1.0 at the pivot column.
//
// Numeric policy:
//   - When the Dense guard is on, a write that would produce NaN/±Inf aborts
//     with ErrNaNInf. Elements written before the failing column keep their
//     new values; callers that need all-or-nothing semantics work on a clone.

package matrix

import "fmt"

const (
	ctxSwapRows     = "SwapRows"
	ctxDivideRow    = "DivideRow"
	ctxSubScaledRow = "SubScaledRow"
)

// rowErrorf wraps err with a row-primitive tag and the row indices involved.
func rowErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, a, b, err)
}

// checkRow reports ErrOutOfRange when i is not a valid row index.
func (m *Dense) checkRow(i int) error {
	if i < 0 || i >= m.r {
		return ErrOutOfRange
	}

	return nil
}

// SwapRows exchanges rows a and b in place.
// Swapping a row with itself is a no-op.
//
// Errors:
//   - ErrOutOfRange when a or b is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(a, b int) error {
	if err := m.checkRow(a); err != nil {
		return rowErrorf(ctxSwapRows, a, b, err)
	}
	if err := m.checkRow(b); err != nil {
		return rowErrorf(ctxSwapRows, a, b, err)
	}
	if a == b {
		return nil
	}

	var j int
	baseA, baseB := a*m.c, b*m.c
	for j = 0; j < m.c; j++ {
		m.data[baseA+j], m.data[baseB+j] = m.data[baseB+j], m.data[baseA+j]
	}

	return nil
}

// DivideRow replaces every element of row i with row[i][j] / d.
// MAIN DESCRIPTION:
//   - Row normalization step of Gauss-Jordan elimination.
//
// Implementation:
//   - Stage 1: validate i and d (d == 0 is rejected, not turned into ±Inf).
//   - Stage 2: divide element by element in column order, enforcing the numeric policy.
//
// Errors:
//   - ErrOutOfRange, ErrZeroDivisor, ErrNaNInf (d non-finite or overflow under policy).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) DivideRow(i int, d float64) error {
	if err := m.checkRow(i); err != nil {
		return rowErrorf(ctxDivideRow, i, i, err)
	}
	if d == 0 {
		return rowErrorf(ctxDivideRow, i, i, ErrZeroDivisor)
	}
	if m.validateNaNInf && isNonFinite(d) {
		return rowErrorf(ctxDivideRow, i, i, ErrNaNInf)
	}

	var j int
	var v float64
	base := i * m.c
	for j = 0; j < m.c; j++ {
		v = m.data[base+j] / d
		if m.validateNaNInf && isNonFinite(v) {
			return denseErrorf(ctxDivideRow, i, j, ErrNaNInf)
		}
		m.data[base+j] = v
	}

	return nil
}

// SubScaledRow performs row[dst] -= factor * row[src] over every column.
// MAIN DESCRIPTION:
//   - Row combination step of Gauss-Jordan elimination.
//
// Behavior highlights:
//   - dst == src is allowed and yields row[dst] *= (1 - factor).
//   - Fixed column order; no allocations.
//
// Errors:
//   - ErrOutOfRange for bad indices; ErrNaNInf for non-finite factor or overflow under policy.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SubScaledRow(dst, src int, factor float64) error {
	if err := m.checkRow(dst); err != nil {
		return rowErrorf(ctxSubScaledRow, dst, src, err)
	}
	if err := m.checkRow(src); err != nil {
		return rowErrorf(ctxSubScaledRow, dst, src, err)
	}
	if m.validateNaNInf && isNonFinite(factor) {
		return rowErrorf(ctxSubScaledRow, dst, src, ErrNaNInf)
	}

	var j int
	var v float64
	baseD, baseS := dst*m.c, src*m.c
	for j = 0; j < m.c; j++ {
		// The explicit conversion forbids fused multiply-add, keeping results
		// bit-identical across architectures.
		v = m.data[baseD+j] - float64(factor*m.data[baseS+j])
		if m.validateNaNInf && isNonFinite(v) {
			return denseErrorf(ctxSubScaledRow, dst, j, ErrNaNInf)
		}
		m.data[baseD+j] = v
	}

	return nil
}
