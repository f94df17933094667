// SPDX-License-Identifier: MIT

// Package compare: functional configuration for the equivalence checker.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on data.
package compare

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the largest mean squared error that still counts as
	// equal (exclusive).
	DefaultThreshold = 5e-3

	// DefaultWithSign compares raw values. Turn it off for singular vectors,
	// whose sign is arbitrary.
	DefaultWithSign = true
)

const panicThresholdInvalid = "compare: WithThreshold: threshold must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	threshold float64
	withSign  bool
}

// WithThreshold sets the exclusive MSE bound.
// Panics when t is NaN, ±Inf or negative.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) { o.threshold = t }
}

// WithSign selects whether values are compared as-is (true) or by absolute
// value (false).
func WithSign(on bool) Option {
	return func(o *Options) { o.withSign = on }
}

// WithoutSign is WithSign(false).
func WithoutSign() Option { return WithSign(false) }

// DefaultOptions returns Options with documented defaults.
func DefaultOptions() Options {
	return Options{threshold: DefaultThreshold, withSign: DefaultWithSign}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Threshold returns the configured bound.
func (o Options) Threshold() float64 { return o.threshold }

// Signed reports whether signs are kept.
func (o Options) Signed() bool { return o.withSign }
