// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the copy-based builders.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsolve/matrix"
)

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	CompareExact(t, src, m)

	// no aliasing
	src[0][0] = 42
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"nil", nil, matrix.ErrInvalidDimensions},
		{"no rows", [][]float64{}, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"ragged short", [][]float64{{1, 2}, {3}}, matrix.ErrDimensionMismatch},
		{"ragged long", [][]float64{{1, 2}, {3, 4, 5}}, matrix.ErrDimensionMismatch},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{1}, {math.Inf(1)}}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewDenseFromRows(tc.rows)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestToDense(t *testing.T) {
	t.Parallel()

	orig := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	fast, err := matrix.ToDense(orig)
	require.NoError(t, err)
	slow, err := matrix.ToDense(hide{orig})
	require.NoError(t, err)

	assert.Equal(t, orig.String(), fast.String())
	assert.Equal(t, fast.String(), slow.String())
	assert.NotSame(t, orig, fast)

	MustSet(t, fast, 0, 0, -1)
	MustSet(t, slow, 0, 0, -1)
	assert.Equal(t, 1.0, MustAt(t, orig, 0, 0))

	_, err = matrix.ToDense(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	_, err = matrix.ToDense(typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAugment(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{2, 1}, {1, -1}})
	b := []float64{5, 1}

	aug, err := matrix.Augment(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 1, 5}, {1, -1, 1}}, aug)

	viaFallback, err := matrix.Augment(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, aug.String(), viaFallback.String())

	b[0] = 0
	assert.Equal(t, 5.0, MustAt(t, aug, 0, 2), "constants are copied")
}

func TestAugment_Errors(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 0}, {0, 1}})

	_, err := matrix.Augment(nil, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Augment(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Augment(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Augment(a, []float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
