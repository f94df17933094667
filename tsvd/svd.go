// SPDX-License-Identifier: MIT

package tsvd

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tsvdparity/artifact"
	"github.com/katalvlaran/tsvdparity/matrix"
)

const opSVD = "tsvd: SVD"

// SVD is the CPU reference: a direct thin singular value decomposition
// (gonum, LAPACK dgesvd) truncated to k components. Outputs are host-resident
// DenseArray artifacts.
type SVD struct{}

// Name implements Decomposer.
func (SVD) Name() string { return "svd" }

// FitTransform implements Decomposer.
//
// Implementation:
//   - Stage 1: validate X and k; honor ctx.
//   - Stage 2: X = U·Σ·Vᵀ (thin).
//   - Stage 3: keep σ₁..σ_k, the first k rows of Vᵀ and X·V_k.
//
// Complexity: O(rows·cols·min(rows, cols)).
func (SVD) FitTransform(ctx context.Context, X *matrix.Dense, k int) (*Fit, error) {
	start := time.Now()
	_, cols, err := validateInput(opSVD, X, k)
	if err != nil {
		return nil, err
	}
	if err = checkCtx(ctx, opSVD); err != nil {
		return nil, err
	}

	g := X.Gonum()
	var svd mat.SVD
	if !svd.Factorize(g, mat.SVDThinV) {
		return nil, tsvdErrorf(opSVD, ErrNoConvergence)
	}

	var v mat.Dense
	svd.VTo(&v) // cols×min(rows, cols)
	vk := mat.DenseCopyOf(v.Slice(0, cols, 0, k))

	var comps mat.Dense
	comps.CloneFrom(vk.T())

	var xt mat.Dense
	xt.Mul(g, vk)

	sv, err := matrix.NewVector(svd.Values(nil)[:k])
	if err != nil {
		return nil, tsvdErrorf(opSVD, err)
	}
	c, err := matrix.FromGonum(&comps)
	if err != nil {
		return nil, tsvdErrorf(opSVD, err)
	}
	t, err := matrix.FromGonum(&xt)
	if err != nil {
		return nil, tsvdErrorf(opSVD, err)
	}

	return &Fit{
		SingularValues: artifact.Dense(sv),
		Components:     artifact.Dense(c),
		Transformed:    artifact.Dense(t),
		Elapsed:        time.Since(start),
	}, nil
}
