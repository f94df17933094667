// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil(a) → NotNil(b) → SameShape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape ensures a and b have identical extents.
// Assumes a and b are not nil. The error names both shapes so that a failed
// comparison can be diagnosed from the message alone.
// Complexity: O(rank).
func ValidateSameShape(a, b *Dense) error {
	if !a.SameShape(b) {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %v vs %v", a.shape, b.shape),
			ErrShapeMismatch,
		)
	}
	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateRank ensures m is non-nil and has the wanted rank.
// A wrong rank is a shape violation and reports ErrBadShape.
func ValidateRank(m *Dense, want int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRank", err)
	}
	if m.Rank() != want {
		return validatorErrorf(fmt.Sprintf("ValidateRank: want %d, got %d", want, m.Rank()), ErrBadShape)
	}
	return nil
}
