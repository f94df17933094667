// SPDX-License-Identifier: MIT

package tsvd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/tsvdparity/artifact"
	"github.com/katalvlaran/tsvdparity/matrix"
)

// Decomposer computes a truncated SVD of a dense matrix.
type Decomposer interface {
	// Name identifies the provider in reports and logs.
	Name() string
	// FitTransform factorizes X (rows×cols) and keeps the top k components.
	FitTransform(ctx context.Context, X *matrix.Dense, k int) (*Fit, error)
}

// Fit holds the attributes of a truncated decomposition X ≈ U·Σ·Vᵀ, laid out
// the way scikit-learn's TruncatedSVD exposes them.
type Fit struct {
	SingularValues artifact.Artifact // σ₁ ≥ … ≥ σ_k, shape [k]
	Components     artifact.Artifact // rows of Vᵀ, shape [k, cols]
	Transformed    artifact.Artifact // X·V_k, shape [rows, k]
	Elapsed        time.Duration     // wall time of FitTransform
}

// Attribute returns the artifact stored under a report name
// ("singular_values", "components", "transformed").
func (f *Fit) Attribute(name string) (artifact.Artifact, bool) {
	switch name {
	case AttrSingularValues:
		return f.SingularValues, true
	case AttrComponents:
		return f.Components, true
	case AttrTransformed:
		return f.Transformed, true
	}
	return nil, false
}

// Attribute names, in report order.
const (
	AttrSingularValues = "singular_values"
	AttrComponents     = "components"
	AttrTransformed    = "transformed"
)

// Attributes lists the comparable Fit attributes in report order.
func Attributes() []string {
	return []string{AttrSingularValues, AttrComponents, AttrTransformed}
}

// validateInput checks that X is a matrix and k is in 1..min(rows, cols).
func validateInput(tag string, X *matrix.Dense, k int) (rows, cols int, err error) {
	if err = matrix.ValidateRank(X, 2); err != nil {
		return 0, 0, tsvdErrorf(tag, err)
	}
	rows, cols = X.Dims()
	if k < 1 || k > min(rows, cols) {
		return 0, 0, tsvdErrorf(tag, fmt.Errorf("%w: k=%d for %dx%d", ErrBadRank, k, rows, cols))
	}
	return rows, cols, nil
}

// checkCtx reports cancellation before a blocking stage.
func checkCtx(ctx context.Context, tag string) error {
	if err := ctx.Err(); err != nil {
		return tsvdErrorf(tag, err)
	}
	return nil
}

var providers = map[string]func() Decomposer{
	"svd":  func() Decomposer { return SVD{} },
	"gram": func() Decomposer { return Gram{} },
}

// Lookup returns the provider registered under name (case-insensitive).
func Lookup(name string) (Decomposer, error) {
	mk, ok := providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("tsvd: Lookup: %w: %q (have %s)", ErrUnknownProvider, name, strings.Join(Providers(), ", "))
	}
	return mk(), nil
}

// Providers lists registered provider names, sorted.
func Providers() []string {
	out := make([]string, 0, len(providers))
	for name := range providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
