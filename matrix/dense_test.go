// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsvdparity/matrix"
)

func TestNewVector_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := matrix.NewVector(src)
	require.NoError(t, err)

	src[0] = 100 // caller mutation must not leak into the array
	require.Equal(t, 1.0, MustAt(t, v, 0))
	require.Equal(t, []int{3}, v.Shape())
	require.Equal(t, 1, v.Rank())
	require.Equal(t, 3, v.Len())
}

func TestNewVector_Empty(t *testing.T) {
	_, err := matrix.NewVector(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewScalar_IsSingleElementVector(t *testing.T) {
	s, err := matrix.NewScalar(2.5)
	require.NoError(t, err)
	require.Equal(t, []int{1}, s.Shape())
	require.True(t, s.SameShape(MustVector(t, 7)))
}

func TestNewDense_Validation(t *testing.T) {
	tests := []struct {
		name    string
		r, c    int
		data    []float64
		wantErr error
	}{
		{"zero rows", 0, 2, nil, matrix.ErrBadShape},
		{"negative cols", 2, -1, nil, matrix.ErrBadShape},
		{"short data", 2, 2, []float64{1, 2, 3}, matrix.ErrBadShape},
		{"NaN", 1, 2, []float64{1, math.NaN()}, matrix.ErrNaNInf},
		{"Inf", 1, 2, []float64{math.Inf(-1), 1}, matrix.ErrNaNInf},
		{"zeros", 2, 3, nil, nil},
		{"filled", 2, 2, []float64{1, 2, 3, 4}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.r, tc.c, tc.data)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []int{tc.r, tc.c}, m.Shape())
		})
	}
}

func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, m.Shape())
	require.Equal(t, 6.0, MustAt(t, m, 2, 1))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2, nil)

	require.NoError(t, m.Set(9, 1, 0))
	require.Equal(t, 9.0, MustAt(t, m, 1, 0))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0) // wrong index count for rank 2
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(1, -1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(math.NaN(), 0, 0), matrix.ErrNaNInf)
}

func TestDense_VectorVsRowMatrixShapesDiffer(t *testing.T) {
	v := MustVector(t, 1, 2, 3)
	row := MustDense(t, 1, 3, []float64{1, 2, 3})
	require.False(t, v.SameShape(row))

	r, c := v.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 1, c)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := MustDense(t, 1, 2, []float64{1, 2})
	cp := m.Clone()
	require.NoError(t, cp.Set(5, 0, 0))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDense_String(t *testing.T) {
	require.Equal(t, "[1, 2.5]", MustVector(t, 1, 2.5).String())
	require.Equal(t, "[1, 2]\n[3, 4]", MustDense(t, 2, 2, []float64{1, 2, 3, 4}).String())
}
