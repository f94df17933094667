// Package matrix is the canonical dense form of a numeric artifact.
//
// Every value that takes part in a comparison (a vector of singular values,
// a components matrix, a transformed sample matrix) is brought into a *Dense
// first: a rank-1 or rank-2 array of finite float64 values stored row-major
// in one flat buffer.
//
// The package provides:
//
//   - Constructors (NewVector, NewScalar, NewDense, NewFromRows) that copy
//     caller data and enforce the finite-value policy.
//   - Validators (ValidateNotNil, ValidateSameShape, ValidateRank) returning
//     package sentinels.
//   - Element-wise kernels: Abs, Sub, MeanSquaredError, MaxAbsDiff, AllClose.
//   - Converters to and from gonum's mat package.
//
// Shapes are compared exactly. Nothing in this package broadcasts.
package matrix
