// SPDX-License-Identifier: MIT

// Package artifact defines the representations a numeric artifact can arrive
// in and the single conversion that brings each of them into *matrix.Dense.
package artifact

import (
	"errors"

	"github.com/katalvlaran/tsvdparity/matrix"
)

var (
	// ErrUnsupportedType indicates an artifact whose representation is not one
	// of the recognized variants, or whose content is not a finite numeric
	// array (ragged frame, buffer length mismatch, NaN/Inf).
	ErrUnsupportedType = errors.New("artifact: unsupported type")

	// ErrTransfer indicates that a device-to-host copy failed.
	ErrTransfer = errors.New("artifact: device transfer failed")
)

// Kind names a variant of Artifact.
type Kind int

const (
	// KindDense is an in-memory dense array.
	KindDense Kind = iota
	// KindFrame is a CPU-resident tabular frame.
	KindFrame
	// KindDevice is a device-resident frame or single-column series.
	KindDevice
	// KindScalar is a single float64.
	KindScalar
)

var kindNames = [...]string{"dense", "frame", "device", "scalar"}

// String returns the lower-case variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Artifact is a numeric decomposition output in one of a closed set of
// representations: DenseArray, Frame, DeviceFrame or Scalar. The set is
// sealed by the unexported method; Normalize handles every member.
type Artifact interface {
	Kind() Kind
	sealed()
}

// DenseArray wraps an array that is already in canonical form.
type DenseArray struct {
	Array *matrix.Dense
}

// Column is one named column of a Frame.
type Column struct {
	Name   string
	Values []float64
}

// Frame is a CPU-resident table of equal-length float64 columns.
// Row i of its dense form holds the i-th value of every column in order.
type Frame struct {
	Columns []Column
}

// Buffer is device memory holding Len() float64 values. Columns are laid out
// back to back (columnar order). CopyToHost is a blocking transfer of the
// whole buffer into dst, which must have length Len().
type Buffer interface {
	Len() int
	CopyToHost(dst []float64) error
}

// DeviceFrame is a device-resident frame of Rows×Cols values, or a
// single-column series of Rows values when Series is set.
type DeviceFrame struct {
	Rows   int
	Cols   int
	Series bool
	Buffer Buffer
}

// Scalar is a single value; its canonical form is the vector [v].
type Scalar float64

func (DenseArray) Kind() Kind  { return KindDense }
func (Frame) Kind() Kind       { return KindFrame }
func (DeviceFrame) Kind() Kind { return KindDevice }
func (Scalar) Kind() Kind      { return KindScalar }

func (DenseArray) sealed()  {}
func (Frame) sealed()       {}
func (DeviceFrame) sealed() {}
func (Scalar) sealed()      {}

// Dense wraps m as an Artifact.
func Dense(m *matrix.Dense) DenseArray { return DenseArray{Array: m} }

// NewDeviceSeries describes a device-resident series of n values.
func NewDeviceSeries(n int, buf Buffer) DeviceFrame {
	return DeviceFrame{Rows: n, Cols: 1, Series: true, Buffer: buf}
}

// Shape returns the extents the frame normalizes to: [Rows] for a series,
// [Rows Cols] otherwise.
func (f DeviceFrame) Shape() []int {
	if f.Series {
		return []int{f.Rows}
	}
	return []int{f.Rows, f.Cols}
}
