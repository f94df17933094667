// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/tsvdparity/artifact"
	"github.com/katalvlaran/tsvdparity/compare"
	"github.com/katalvlaran/tsvdparity/matrix"
	"github.com/katalvlaran/tsvdparity/tsvd"
)

var (
	// ErrNoProvider indicates a Runner without Reference or Candidate.
	ErrNoProvider = errors.New("bench: reference and candidate are required")

	// ErrNoChecks indicates a Runner with an empty, non-nil check list.
	ErrNoChecks = errors.New("bench: no checks to run")

	// ErrUnknownAttribute indicates a check on an attribute Fit does not carry.
	ErrUnknownAttribute = errors.New("bench: unknown attribute")
)

// Stage identifies a step of Run for progress reporting.
type Stage string

const (
	StageReference Stage = "fit reference"
	StageCandidate Stage = "fit candidate"
	StageCompare   Stage = "compare"
)

// ProgressFunc is called after each step; done counts from 1 to total.
type ProgressFunc func(stage Stage, done, total int)

// Check configures the comparison of one Fit attribute.
type Check struct {
	Attribute string
	Options   []compare.Option
}

// DefaultChecks compares singular values with sign, components and the
// transformed input without sign, all against threshold.
func DefaultChecks(threshold float64) []Check {
	return []Check{
		{Attribute: tsvd.AttrSingularValues, Options: []compare.Option{compare.WithThreshold(threshold), compare.WithSign(true)}},
		{Attribute: tsvd.AttrComponents, Options: []compare.Option{compare.WithThreshold(threshold), compare.WithoutSign()}},
		{Attribute: tsvd.AttrTransformed, Options: []compare.Option{compare.WithThreshold(threshold), compare.WithoutSign()}},
	}
}

// Runner fits the same input with two providers and compares the results.
type Runner struct {
	Reference  tsvd.Decomposer
	Candidate  tsvd.Decomposer
	Components int     // k
	Checks     []Check // nil means DefaultChecks(compare.DefaultThreshold); empty is an error
	Logger     *slog.Logger
	Progress   ProgressFunc
}

// Summary is the outcome of Run.
type Summary struct {
	Reference        string
	Candidate        string
	Shape            []int
	Components       int
	Report           compare.Report
	ReferenceElapsed time.Duration
	CandidateElapsed time.Duration
}

// OK reports whether every attribute compared equal.
func (s Summary) OK() bool { return s.Report.OK() }

// Speedup is ReferenceElapsed / CandidateElapsed (0 when either is unknown).
func (s Summary) Speedup() float64 {
	if s.ReferenceElapsed <= 0 || s.CandidateElapsed <= 0 {
		return 0
	}
	return float64(s.ReferenceElapsed) / float64(s.CandidateElapsed)
}

// Run fits X with Reference then Candidate and compares every checked
// attribute. A fit failure aborts the run; comparison failures are recorded
// in the report and do not.
func (r *Runner) Run(ctx context.Context, X *matrix.Dense) (Summary, error) {
	if r.Reference == nil || r.Candidate == nil {
		return Summary{}, ErrNoProvider
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return Summary{}, fmt.Errorf("bench: Run: %w", err)
	}
	checks := r.Checks
	if checks == nil {
		checks = DefaultChecks(compare.DefaultThreshold)
	}
	if len(checks) == 0 {
		return Summary{}, ErrNoChecks
	}
	log := r.logger().With("reference", r.Reference.Name(), "candidate", r.Candidate.Name())
	total := 2 + len(checks)

	sum := Summary{
		Reference:  r.Reference.Name(),
		Candidate:  r.Candidate.Name(),
		Shape:      X.Shape(),
		Components: r.Components,
	}
	log.Info("fit start", "shape", sum.Shape, "k", r.Components)

	ref, err := r.Reference.FitTransform(ctx, X, r.Components)
	if err != nil {
		return sum, fmt.Errorf("bench: reference %s: %w", r.Reference.Name(), err)
	}
	sum.ReferenceElapsed = ref.Elapsed
	log.Debug("reference fitted", "elapsed", ref.Elapsed)
	r.progress(StageReference, 1, total)

	cand, err := r.Candidate.FitTransform(ctx, X, r.Components)
	if err != nil {
		return sum, fmt.Errorf("bench: candidate %s: %w", r.Candidate.Name(), err)
	}
	sum.CandidateElapsed = cand.Elapsed
	log.Debug("candidate fitted", "elapsed", cand.Elapsed)
	r.progress(StageCandidate, 2, total)

	type pair struct{ a, b artifact.Artifact }
	pairs := make([]pair, len(checks))
	for i, c := range checks {
		a, okA := ref.Attribute(c.Attribute)
		b, okB := cand.Attribute(c.Attribute)
		if !okA || !okB {
			return sum, fmt.Errorf("bench: %w: %q", ErrUnknownAttribute, c.Attribute)
		}
		pairs[i] = pair{a, b}
	}

	sum.Report.Outcomes = make([]compare.Outcome, 0, len(checks))
	for i, c := range checks {
		res, err := compare.Check(pairs[i].a, pairs[i].b, c.Options...)
		o := compare.Outcome{Name: c.Attribute, Result: res, Err: err}
		sum.Report.Outcomes = append(sum.Report.Outcomes, o)
		switch {
		case o.Err != nil:
			log.Error("compare failed", "attribute", o.Name, "err", o.Err)
		case !o.Result.Equal:
			log.Warn("attribute differs", "attribute", o.Name, "mse", o.Result.MSE, "threshold", o.Result.Threshold, "max_abs_diff", o.Result.MaxAbsDiff)
		default:
			log.Debug("attribute equal", "attribute", o.Name, "mse", o.Result.MSE)
		}
		r.progress(StageCompare, 3+i, total)
	}

	log.Info("run done", "ok", sum.OK(), "reference_elapsed", sum.ReferenceElapsed, "candidate_elapsed", sum.CandidateElapsed)
	return sum, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r *Runner) progress(s Stage, done, total int) {
	if r.Progress != nil {
		r.Progress(s, done, total)
	}
}
