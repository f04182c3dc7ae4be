// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the elementary row operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsolve/matrix"
)

func TestSwapRows(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, m.SwapRows(0, 2))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	require.NoError(t, m.SwapRows(1, 1))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	assert.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
}

func TestDivideRow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{3, 1, 2}, {6, -1.5, 0}})
	require.NoError(t, m.DivideRow(1, -1.5))
	CompareExact(t, [][]float64{{3, 1, 2}, {-4, 1, 0}}, m)

	// Dividing by its own element yields exactly 1.
	require.NoError(t, m.DivideRow(0, 3))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 1.0/3, MustAt(t, m, 0, 1))
}

func TestDivideRow_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		row     int
		d       float64
		wantErr error
	}{
		{"row below range", -1, 2, matrix.ErrOutOfRange},
		{"row above range", 2, 2, matrix.ErrOutOfRange},
		{"zero divisor", 0, 0, matrix.ErrZeroDivisor},
		{"nan divisor", 0, math.NaN(), matrix.ErrNaNInf},
		{"inf divisor", 0, math.Inf(-1), matrix.ErrNaNInf},
		{"overflow", 1, 1e-300, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustRows(t, [][]float64{{1, 2}, {1, 1e300}})
			assert.ErrorIs(t, m.DivideRow(tc.row, tc.d), tc.wantErr)
		})
	}
}

func TestSubScaledRow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 0.5, 2.5}, {1, -1, 1}})
	require.NoError(t, m.SubScaledRow(1, 0, 1))
	CompareExact(t, [][]float64{{1, 0.5, 2.5}, {0, -1.5, -1.5}}, m)

	// negative factor adds
	require.NoError(t, m.SubScaledRow(0, 1, -2))
	CompareExact(t, [][]float64{{1, -2.5, -0.5}, {0, -1.5, -1.5}}, m)

	// dst == src scales the row by (1 - factor)
	require.NoError(t, m.SubScaledRow(1, 1, 3))
	CompareExact(t, [][]float64{{1, -2.5, -0.5}, {0, 3, 3}}, m)
}

func TestSubScaledRow_Errors(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1e300, 1}, {-1e300, 1}})
	assert.ErrorIs(t, m.SubScaledRow(0, 2, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SubScaledRow(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SubScaledRow(0, 1, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.SubScaledRow(0, 1, 1e10), matrix.ErrNaNInf)
}

// TestRowOps_Deterministic replays the same sequence on two copies and
// expects bit-identical storage.
func TestRowOps_Deterministic(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 6, 7, 99)
	b := a.Clone().(*matrix.Dense)

	apply := func(m *matrix.Dense) {
		require.NoError(t, m.SwapRows(0, 4))
		require.NoError(t, m.DivideRow(0, MustAt(t, m, 0, 0)))
		var i int
		for i = 1; i < m.Rows(); i++ {
			require.NoError(t, m.SubScaledRow(i, 0, MustAt(t, m, i, 0)))
		}
	}
	apply(a)
	apply(b)

	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			require.Equal(t, math.Float64bits(MustAt(t, a, i, j)), math.Float64bits(MustAt(t, b, i, j)))
		}
	}
	assert.Equal(t, 1.0, MustAt(t, a, 0, 0))
}
