// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tsvdparity/matrix"
)

func TestFromGonum_RoundTrip(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	d, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, d.Shape())
	require.Equal(t, 6.0, MustAt(t, d, 1, 2))

	back := d.Gonum()
	require.True(t, mat.Equal(g, back))
}

func TestFromGonum_TransposeView(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	d, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, d.Shape())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, d.Data())
}

func TestFromGonum_RejectsNaN(t *testing.T) {
	g := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err := matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestFromGonumVector(t *testing.T) {
	d, err := matrix.FromGonumVector(mat.NewVecDense(3, []float64{3, 2, 1}))
	require.NoError(t, err)
	require.Equal(t, []int{3}, d.Shape())
	require.Equal(t, []float64{3, 2, 1}, d.Data())

	g := d.Gonum()
	r, c := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 1, c)
}

func TestFromGonum_TypedNil(t *testing.T) {
	_, err := matrix.FromGonum((*mat.Dense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonumVector((*mat.VecDense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
