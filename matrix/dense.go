// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide the canonical dense form of a numeric artifact: a rank-1 vector
//     (shape [n]) or a rank-2 matrix (shape [r c]) over a flat row-major buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the finite-value policy (NaN/Inf rejected) from a single place.
//
// Notes:
//   - Constructors copy caller data; a *Dense never aliases a caller slice.
//   - Kernels in this package read d.data directly (flat loop 0..n-1).
//
// Complexity quicksheet:
//   - NewVector/NewDense: O(n) copy + scan; At/Set: O(1); Clone: O(n).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewVector = "NewVector"
	ctxNewDense  = "NewDense"
	ctxAt        = "At"
	ctxSet       = "Set"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
)

// Dense is a rank-1 or rank-2 array of finite float64 values.
//   - shape holds the extents: [n] or [rows cols]; every extent is > 0.
//   - data is a flat buffer of len == product(shape), row-major for rank 2.
type Dense struct {
	shape []int     // extents; len(shape) ∈ {1, 2}
	data  []float64 // contiguous row-major storage
}

var _ fmt.Stringer = (*Dense)(nil)

// NewVector returns a rank-1 array holding a copy of data.
// Errors: ErrBadShape when data is empty, ErrNaNInf on any non-finite value.
// Complexity: O(n).
func NewVector(data []float64) (*Dense, error) {
	if len(data) == 0 {
		return nil, matrixErrorf(ctxNewVector, ErrBadShape)
	}
	if err := checkFinite(data); err != nil {
		return nil, matrixErrorf(ctxNewVector, err)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{shape: []int{len(data)}, data: buf}, nil
}

// NewScalar returns the rank-1 array [v]. A scalar has no shape of its own;
// its canonical form is the single-element vector.
func NewScalar(v float64) (*Dense, error) {
	return NewVector([]float64{v})
}

// NewDense returns a rows×cols array.
// When data is nil the array is zero-filled; otherwise len(data) must equal
// rows*cols and the values are copied in row-major order.
//
// Errors:
//   - ErrBadShape for non-positive extents or a data length mismatch.
//   - ErrNaNInf on any non-finite value.
//
// Complexity: O(rows*cols).
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNewDense, ErrBadShape)
	}
	n := rows * cols
	buf := make([]float64, n) // zero-filled by the runtime
	if data != nil {
		if len(data) != n {
			return nil, matrixErrorf(ctxNewDense, ErrBadShape)
		}
		if err := checkFinite(data); err != nil {
			return nil, matrixErrorf(ctxNewDense, err)
		}
		copy(buf, data)
	}

	return &Dense{shape: []int{rows, cols}, data: buf}, nil
}

// NewFromRows builds a rank-2 array from a slice of equal-length rows.
// Ragged or empty input yields ErrBadShape.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxNewDense, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxNewDense, ErrBadShape) // ragged
		}
		flat = append(flat, row...)
	}

	return NewDense(r, c, flat)
}

// checkFinite returns ErrNaNInf at the first NaN or ±Inf in data.
func checkFinite(data []float64) error {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}
	return nil
}

// Shape returns a copy of the extents.
func (m *Dense) Shape() []int {
	out := make([]int, len(m.shape))
	copy(out, m.shape)
	return out
}

// Rank returns the number of extents (1 or 2).
func (m *Dense) Rank() int { return len(m.shape) }

// Len returns the total number of elements.
func (m *Dense) Len() int { return len(m.data) }

// Dims returns (rows, cols) of a rank-2 array. A rank-1 array of length n
// reports (n, 1), its column-vector view; use Rank to tell them apart.
func (m *Dense) Dims() (rows, cols int) {
	if len(m.shape) == 1 {
		return m.shape[0], 1
	}
	return m.shape[0], m.shape[1]
}

// SameShape reports whether m and o have identical extents.
func (m *Dense) SameShape(o *Dense) bool {
	if len(m.shape) != len(o.shape) {
		return false
	}
	for i := range m.shape {
		if m.shape[i] != o.shape[i] {
			return false
		}
	}
	return true
}

// offset bounds-checks idx against the shape and returns the flat offset.
func (m *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(m.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= m.shape[k] {
			return 0, ErrOutOfRange
		}
		off = off*m.shape[k] + i // row-major: i*c + j
	}
	return off, nil
}

// At returns the element at idx (one index per extent) or ErrOutOfRange.
func (m *Dense) At(idx ...int) (float64, error) {
	off, err := m.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s%v: %w", ctxAt, idx, err)
	}
	return m.data[off], nil
}

// Set stores a finite v at idx.
// Errors: ErrOutOfRange for bad indices; ErrNaNInf for non-finite v.
func (m *Dense) Set(v float64, idx ...int) error {
	off, err := m.offset(idx)
	if err != nil {
		return fmt.Errorf("Dense.%s%v: %w", ctxSet, idx, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.%s%v: %w", ctxSet, idx, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Data returns a copy of the flat row-major buffer.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy with an independent buffer.
func (m *Dense) Clone() *Dense {
	return &Dense{shape: m.Shape(), data: m.Data()}
}

// String renders the array for diagnostics: "[1, 2]" for vectors and one
// bracketed row per line for matrices. Not intended for hot paths.
func (m *Dense) String() string {
	var sb strings.Builder
	rows, cols := m.Dims()
	if m.Rank() == 1 {
		rows, cols = 1, m.shape[0]
	}
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*cols+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
