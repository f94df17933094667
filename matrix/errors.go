// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with a call-site tag and
// tests check them via errors.Is. No kernel panics on user-triggered errors.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with matrixErrorf(tag, ErrX) at the detection site; callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> NaN/Inf -> index.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil array")

	// ErrBadShape is returned when a requested shape is invalid: rank other
	// than 1 or 2, a non-positive extent, or a data length that does not
	// match the product of the extents.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates two operands whose shapes differ. Shapes are
	// compared exactly: [n] and [1 n] are different shapes. No kernel ever
	// broadcasts or truncates to resolve it.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that an index is outside valid bounds or that
	// the number of indices does not match the rank.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps err with a call-site tag: "<tag>: <err>".
// The result still matches the wrapped sentinel via errors.Is.
// Callers must not pass a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
