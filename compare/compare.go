// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/katalvlaran/tsvdparity/artifact"
	"github.com/katalvlaran/tsvdparity/matrix"
)

const opCheck = "compare: Check"

// Result is the outcome of one comparison.
type Result struct {
	Equal      bool    // MSE < Threshold
	MSE        float64 // mean squared error over all elements
	MaxAbsDiff float64 // worst single element, for diagnostics
	Shape      []int   // common normalized shape
	Threshold  float64
	WithSign   bool
}

// Verdict returns "equal" or "NOT equal".
func (r Result) Verdict() string {
	if r.Equal {
		return "equal"
	}
	return "NOT equal"
}

// Check decides whether two artifacts are close enough to be equivalent.
//
// Implementation:
//   - Stage 1: normalize a and b (one device transfer each at most).
//   - Stage 2: without sign, replace both by their element-wise |·|.
//   - Stage 3: require identical shapes; MSE over all elements.
//   - Stage 4: Equal iff MSE < threshold (strict).
//
// Errors:
//   - artifact.ErrUnsupportedType / artifact.ErrTransfer from normalization.
//   - matrix.ErrShapeMismatch when the normalized shapes differ. Shapes are
//     never broadcast or truncated.
//
// Check is pure: inputs are not mutated and no state is shared between calls.
func Check(a, b artifact.Artifact, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	da, err := artifact.Normalize(a)
	if err != nil {
		return Result{}, fmt.Errorf("%s: a: %w", opCheck, err)
	}
	db, err := artifact.Normalize(b)
	if err != nil {
		return Result{}, fmt.Errorf("%s: b: %w", opCheck, err)
	}
	if !o.withSign {
		if da, err = matrix.Abs(da); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opCheck, err)
		}
		if db, err = matrix.Abs(db); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opCheck, err)
		}
	}

	mse, err := matrix.MeanSquaredError(da, db)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCheck, err)
	}
	worst, err := matrix.MaxAbsDiff(da, db)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCheck, err)
	}

	return Result{
		Equal:      mse < o.threshold,
		MSE:        mse,
		MaxAbsDiff: worst,
		Shape:      da.Shape(),
		Threshold:  o.threshold,
		WithSign:   o.withSign,
	}, nil
}

// Equal is Check reduced to a boolean; any error counts as not equal.
func Equal(a, b artifact.Artifact, opts ...Option) bool {
	r, err := Check(a, b, opts...)
	return err == nil && r.Equal
}

// Values is Check for untyped Go values (see artifact.From).
func Values(a, b any, opts ...Option) (Result, error) {
	aa, err := artifact.From(a)
	if err != nil {
		return Result{}, fmt.Errorf("%s: a: %w", opCheck, err)
	}
	ab, err := artifact.From(b)
	if err != nil {
		return Result{}, fmt.Errorf("%s: b: %w", opCheck, err)
	}
	return Check(aa, ab, opts...)
}
