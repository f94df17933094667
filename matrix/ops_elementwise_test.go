// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsvdparity/matrix"
)

// --- Abs ----------------------------------------------------------------------

func TestAbs_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 2, 2, []float64{-1, 2, -3, 0})
	got, err := matrix.Abs(X)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 0}, got.Data())
	require.Equal(t, []float64{-1, 2, -3, 0}, X.Data())
	require.Equal(t, X.Shape(), got.Shape())
}

func TestAbs_Nil(t *testing.T) {
	t.Parallel()
	_, err := matrix.Abs(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- Sub ----------------------------------------------------------------------

func TestSub(t *testing.T) {
	t.Parallel()

	a := MustVector(t, 5, 7)
	b := MustVector(t, 1, 10)
	got, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, -3}, got.Data())

	_, err = matrix.Sub(a, MustVector(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// --- MeanSquaredError ---------------------------------------------------------

func TestMeanSquaredError_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *matrix.Dense
		want float64
	}{
		{
			name: "identical",
			a:    MustVector(t, 1, 2, 3),
			b:    MustVector(t, 1, 2, 3),
			want: 0,
		},
		{
			name: "sign flipped",
			a:    MustVector(t, 1, -2, 3),
			b:    MustVector(t, -1, 2, -3),
			want: 56.0 / 3.0,
		},
		{
			name: "2x2 tiny drift",
			a:    MustDense(t, 2, 2, []float64{1, 2, 3, 4}),
			b:    MustDense(t, 2, 2, []float64{1, 2, 3, 4.0001}),
			want: 0.0001 * 0.0001 / 4,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.MeanSquaredError(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestMeanSquaredError_ShapeMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *matrix.Dense
	}{
		{"length", MustVector(t, 1, 2), MustVector(t, 1, 2, 3)},
		{"rank", MustVector(t, 1, 2), MustDense(t, 1, 2, []float64{1, 2})},
		{"transposed", MustDense(t, 2, 3, nil), MustDense(t, 3, 2, nil)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.MeanSquaredError(tc.a, tc.b)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
		})
	}
}

func TestMeanSquaredError_Nil(t *testing.T) {
	t.Parallel()
	_, err := matrix.MeanSquaredError(nil, MustVector(t, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- MaxAbsDiff ---------------------------------------------------------------

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()

	got, err := matrix.MaxAbsDiff(MustVector(t, 1, 5, -2), MustVector(t, 1.5, 5, 2))
	require.NoError(t, err)
	require.Equal(t, 4.0, got)
}

// --- AllClose -----------------------------------------------------------------

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustVector(t, 1, 2, 3)
	b := MustVector(t, 1, 2, 3.001)

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.False(t, ok)

	// negative tolerances are normalized
	ok, err = matrix.AllClose(a, b, -1e-3, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
