// SPDX-License-Identifier: MIT
// Package matrix: converters between *Dense and gonum's mat types.
// Decomposition providers work on gonum matrices; everything they return is
// brought back into *Dense before it is compared.

package matrix

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromGonum = "FromGonum"
	ctxFromVec   = "FromVector"
)

// isNilInterface reports whether x is nil or holds a nil pointer.
func isNilInterface(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// FromGonum copies any gonum matrix into a rank-2 *Dense.
// Errors: ErrNilMatrix for nil (including a typed nil pointer), ErrBadShape
// for an empty matrix, ErrNaNInf for non-finite values.
// Complexity: O(r*c).
func FromGonum(m mat.Matrix) (*Dense, error) {
	if isNilInterface(m) {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(ctxFromGonum, ErrBadShape)
	}
	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			flat = append(flat, m.At(i, j))
		}
	}
	out, err := NewDense(r, c, flat)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}
	return out, nil
}

// FromGonumVector copies a gonum vector into a rank-1 *Dense.
func FromGonumVector(v mat.Vector) (*Dense, error) {
	if isNilInterface(v) {
		return nil, matrixErrorf(ctxFromVec, ErrNilMatrix)
	}
	n := v.Len()
	flat := make([]float64, n)
	for i := 0; i < n; i++ {
		flat[i] = v.AtVec(i)
	}
	out, err := NewVector(flat)
	if err != nil {
		return nil, matrixErrorf(ctxFromVec, err)
	}
	return out, nil
}

// Gonum returns a gonum copy of m. A rank-1 array becomes an n×1 column.
func (m *Dense) Gonum() *mat.Dense {
	r, c := m.Dims()
	return mat.NewDense(r, c, m.Data())
}
