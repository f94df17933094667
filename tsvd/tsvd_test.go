// SPDX-License-Identifier: MIT

package tsvd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsvdparity/artifact"
	"github.com/katalvlaran/tsvdparity/compare"
	"github.com/katalvlaran/tsvdparity/dataset"
	"github.com/katalvlaran/tsvdparity/matrix"
	"github.com/katalvlaran/tsvdparity/tsvd"
)

func providers() []tsvd.Decomposer {
	return []tsvd.Decomposer{tsvd.SVD{}, tsvd.Gram{}}
}

func mustNormalize(t *testing.T, a artifact.Artifact) *matrix.Dense {
	t.Helper()
	d, err := artifact.Normalize(a)
	require.NoError(t, err)
	return d
}

func TestFitTransform_Shapes(t *testing.T) {
	X, err := dataset.Generate(dataset.Spec{Rows: 25, Cols: 7, Rank: 7, Noise: 0.1, Seed: 1})
	require.NoError(t, err)

	for _, p := range providers() {
		t.Run(p.Name(), func(t *testing.T) {
			fit, err := p.FitTransform(context.Background(), X, 3)
			require.NoError(t, err)
			assert.Equal(t, []int{3}, mustNormalize(t, fit.SingularValues).Shape())
			assert.Equal(t, []int{3, 7}, mustNormalize(t, fit.Components).Shape())
			assert.Equal(t, []int{25, 3}, mustNormalize(t, fit.Transformed).Shape())
		})
	}
}

func TestFitTransform_KnownSpectrum(t *testing.T) {
	X, err := matrix.NewFromRows([][]float64{{3, 0}, {0, -4}, {0, 0}})
	require.NoError(t, err)

	for _, p := range providers() {
		t.Run(p.Name(), func(t *testing.T) {
			fit, err := p.FitTransform(context.Background(), X, 2)
			require.NoError(t, err)
			sv := mustNormalize(t, fit.SingularValues).Data()
			assert.InDelta(t, 4, sv[0], 1e-12)
			assert.InDelta(t, 3, sv[1], 1e-12)

			comps := mustNormalize(t, fit.Components)
			want, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})
			abs, err := matrix.Abs(comps)
			require.NoError(t, err)
			ok, err := matrix.AllClose(abs, want, 0, 1e-12)
			require.NoError(t, err)
			assert.True(t, ok, "components %v", comps)
		})
	}
}

func TestProvidersAgree(t *testing.T) {
	X, err := dataset.Generate(dataset.Spec{Rows: 60, Cols: 12, Rank: 12, Noise: 0.5, Seed: 7})
	require.NoError(t, err)

	ref, err := tsvd.SVD{}.FitTransform(context.Background(), X, 5)
	require.NoError(t, err)
	cand, err := tsvd.Gram{}.FitTransform(context.Background(), X, 5)
	require.NoError(t, err)

	assert.Equal(t, artifact.KindDense, ref.Components.Kind())
	assert.Equal(t, artifact.KindDevice, cand.Components.Kind())

	for _, attr := range tsvd.Attributes() {
		a, ok := ref.Attribute(attr)
		require.True(t, ok)
		b, ok := cand.Attribute(attr)
		require.True(t, ok)

		opts := []compare.Option{compare.WithThreshold(1e-8)}
		if attr != tsvd.AttrSingularValues {
			opts = append(opts, compare.WithoutSign())
		}
		res, err := compare.Check(a, b, opts...)
		require.NoError(t, err)
		assert.Truef(t, res.Equal, "%s: mse=%g", attr, res.MSE)
	}
}

func TestFitTransform_Errors(t *testing.T) {
	X, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	v, err := matrix.NewVector([]float64{1, 2, 3})
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for _, p := range providers() {
		t.Run(p.Name(), func(t *testing.T) {
			_, err := p.FitTransform(context.Background(), X, 0)
			require.ErrorIs(t, err, tsvd.ErrBadRank)
			_, err = p.FitTransform(context.Background(), X, 3)
			require.ErrorIs(t, err, tsvd.ErrBadRank)
			_, err = p.FitTransform(context.Background(), v, 1)
			require.ErrorIs(t, err, matrix.ErrBadShape)
			_, err = p.FitTransform(context.Background(), nil, 1)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = p.FitTransform(cancelled, X, 1)
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestLookup(t *testing.T) {
	p, err := tsvd.Lookup(" SVD ")
	require.NoError(t, err)
	assert.Equal(t, "svd", p.Name())

	p, err = tsvd.Lookup("gram")
	require.NoError(t, err)
	assert.Equal(t, "gram", p.Name())

	_, err = tsvd.Lookup("cuml")
	require.ErrorIs(t, err, tsvd.ErrUnknownProvider)
	assert.Equal(t, []string{"gram", "svd"}, tsvd.Providers())
}

func TestFit_Attribute(t *testing.T) {
	var f tsvd.Fit
	_, ok := f.Attribute("explained_variance")
	assert.False(t, ok)
}
