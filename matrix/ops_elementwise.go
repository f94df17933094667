// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small element-wise kernels (ew*) shared by the public comparison
//     surface (Abs, Sub, MeanSquaredError, MaxAbsDiff, AllClose).
//   - Keep all loops deterministic: one flat pass 0..n-1 over row-major buffers.
//
// Determinism & Performance:
//   - Inputs are never mutated; every transform allocates exactly one output.
//   - Reductions accumulate in index order, so identical inputs give
//     bit-identical results.

package matrix

import "math"

const (
	opAbs        = "Abs"
	opSub        = "Sub"
	opMSE        = "MeanSquaredError"
	opMaxAbsDiff = "MaxAbsDiff"
	opAllClose   = "AllClose"
)

// ewMap returns a new array with out[i] = f(X[i]).
// Time: O(n). Space: O(n).
func ewMap(X *Dense, f func(float64) float64) *Dense {
	out := &Dense{shape: X.Shape(), data: make([]float64, len(X.data))}
	for i, v := range X.data {
		out.data[i] = f(v)
	}
	return out
}

// ewReduce2 folds fn over element pairs of two same-shape arrays.
// Shapes are validated by the caller.
func ewReduce2(a, b *Dense, acc float64, fn func(acc, x, y float64) float64) float64 {
	for i := range a.data {
		acc = fn(acc, a.data[i], b.data[i])
	}
	return acc
}

// Abs returns |X| element-wise. Used to drop the arbitrary sign of singular
// vectors before comparison.
// Errors: ErrNilMatrix.
func Abs(X *Dense) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opAbs, err)
	}
	return ewMap(X, math.Abs), nil
}

// Sub returns a − b element-wise for identical shapes.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := &Dense{shape: a.Shape(), data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out, nil
}

// MeanSquaredError returns (1/n)·Σ (a[i] − b[i])².
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); shapes must match exactly.
//   - Stage 2: single flat pass accumulating squared differences in index order.
//   - Stage 3: divide by the element count (always > 0 for a valid *Dense).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch. Never broadcasts or truncates.
//
// Complexity:
//   - Time O(n), Space O(1).
func MeanSquaredError(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMSE, err)
	}
	sum := ewReduce2(a, b, 0, func(acc, x, y float64) float64 {
		d := x - y
		return acc + d*d
	})

	return sum / float64(len(a.data)), nil
}

// MaxAbsDiff returns max_i |a[i] − b[i]|. It localizes the worst element
// that MeanSquaredError averages away.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	return ewReduce2(a, b, 0, func(acc, x, y float64) float64 {
		return math.Max(acc, math.Abs(x-y))
	}), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(n). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a.data {
		// early-exit on first violation
		if math.Abs(a.data[i]-b.data[i]) > atol+rtol*math.Abs(b.data[i]) {
			return false, nil
		}
	}
	return true, nil
}
