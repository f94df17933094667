// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tsvdparity/artifact"
)

// Pair names two artifacts to be compared and carries per-pair options,
// applied after the options passed to CheckAll.
type Pair struct {
	Name    string
	A, B    artifact.Artifact
	Options []Option
}

// Outcome is the result of one named comparison.
type Outcome struct {
	Name   string
	Result Result
	Err    error
}

// Report collects outcomes in the order the pairs were given.
type Report struct {
	Outcomes []Outcome
}

// CheckAll compares every pair. A failing pair does not stop the others:
// its error is recorded in the outcome.
func CheckAll(pairs []Pair, opts ...Option) Report {
	rep := Report{Outcomes: make([]Outcome, 0, len(pairs))}
	for _, p := range pairs {
		merged := make([]Option, 0, len(opts)+len(p.Options))
		merged = append(merged, opts...)
		merged = append(merged, p.Options...)
		res, err := Check(p.A, p.B, merged...)
		rep.Outcomes = append(rep.Outcomes, Outcome{Name: p.Name, Result: res, Err: err})
	}
	return rep
}

// OK reports whether every outcome is error-free and equal.
func (r Report) OK() bool {
	for _, o := range r.Outcomes {
		if o.Err != nil || !o.Result.Equal {
			return false
		}
	}
	return true
}

// Failed returns the names of outcomes that errored or were not equal.
func (r Report) Failed() []string {
	var out []string
	for _, o := range r.Outcomes {
		if o.Err != nil || !o.Result.Equal {
			out = append(out, o.Name)
		}
	}
	return out
}

// String renders one line per outcome:
//
//	singular_values: equal (mse=1.2e-09, max=3e-05)
//	components: NOT equal (mse=0.02, max=0.4)
//	transformed: error: compare: Check: ...
func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: error: %v", o.Name, o.Err)
	}
	return fmt.Sprintf("%s: %s (mse=%.3g, max=%.3g)", o.Name, o.Result.Verdict(), o.Result.MSE, o.Result.MaxAbsDiff)
}

func (r Report) String() string {
	lines := make([]string, len(r.Outcomes))
	for i, o := range r.Outcomes {
		lines[i] = o.String()
	}
	return strings.Join(lines, "\n")
}
