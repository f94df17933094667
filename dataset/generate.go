// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tsvdparity/matrix"
)

const opGenerate = "dataset: Generate"

// Spec describes a synthetic low-rank matrix X = L·R + noise, with L rows×Rank
// and R Rank×Cols drawn from a standard normal.
type Spec struct {
	Rows  int     `yaml:"rows"`
	Cols  int     `yaml:"cols"`
	Rank  int     `yaml:"rank"`  // latent rank, 1..min(Rows, Cols)
	Noise float64 `yaml:"noise"` // standard deviation of additive noise
	Seed  uint64  `yaml:"seed"`
}

// Validate checks Spec bounds.
func (s Spec) Validate() error {
	switch {
	case s.Rows <= 0 || s.Cols <= 0:
		return fmt.Errorf("%w: shape %dx%d", ErrBadSpec, s.Rows, s.Cols)
	case s.Rank <= 0 || s.Rank > min(s.Rows, s.Cols):
		return fmt.Errorf("%w: rank %d for %dx%d", ErrBadSpec, s.Rank, s.Rows, s.Cols)
	case s.Noise < 0 || math.IsNaN(s.Noise) || math.IsInf(s.Noise, 0):
		return fmt.Errorf("%w: noise %v", ErrBadSpec, s.Noise)
	}
	return nil
}

// Generate builds the matrix described by s. Equal specs give equal output.
func Generate(s Spec) (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opGenerate, err)
	}
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))

	left := mat.NewDense(s.Rows, s.Rank, normals(rng, s.Rows*s.Rank, 1))
	right := mat.NewDense(s.Rank, s.Cols, normals(rng, s.Rank*s.Cols, 1))

	var x mat.Dense
	x.Mul(left, right)
	if s.Noise > 0 {
		x.Add(&x, mat.NewDense(s.Rows, s.Cols, normals(rng, s.Rows*s.Cols, s.Noise)))
	}

	d, err := matrix.FromGonum(&x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGenerate, err)
	}
	return d, nil
}

func normals(rng *rand.Rand, n int, sigma float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}
