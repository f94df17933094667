// SPDX-License-Identifier: MIT

package artifact

import (
	"fmt"

	"github.com/katalvlaran/tsvdparity/matrix"
)

// unsupportedf tags ErrUnsupportedType with the variant and, when present,
// the underlying cause.
func unsupportedf(what string, cause error) error {
	if cause == nil {
		return fmt.Errorf("artifact: normalize %s: %w", what, ErrUnsupportedType)
	}
	return fmt.Errorf("artifact: normalize %s: %w: %w", what, ErrUnsupportedType, cause)
}

// Normalize converts any Artifact into a fresh *matrix.Dense.
//
// Implementation:
//   - DenseArray: deep copy of the wrapped array.
//   - Frame: columns are interleaved into a rows×cols row-major array.
//   - DeviceFrame: exactly one Buffer.CopyToHost call, then the columnar host
//     copy is laid out row-major (a series becomes a vector).
//   - Scalar: the single-element vector [v].
//
// Errors:
//   - ErrUnsupportedType for nil, an unknown representation, or content that
//     is not a finite rectangular numeric array. Nothing passes through
//     unconverted.
//   - ErrTransfer when the device copy fails.
//
// The result never aliases the input; inputs are not mutated.
func Normalize(a Artifact) (*matrix.Dense, error) {
	switch v := a.(type) {
	case DenseArray:
		return normalizeDense(v)
	case *DenseArray:
		if v == nil {
			return nil, unsupportedf("nil *DenseArray", nil)
		}
		return normalizeDense(*v)
	case Frame:
		return normalizeFrame(v)
	case *Frame:
		if v == nil {
			return nil, unsupportedf("nil *Frame", nil)
		}
		return normalizeFrame(*v)
	case DeviceFrame:
		return normalizeDevice(v)
	case *DeviceFrame:
		if v == nil {
			return nil, unsupportedf("nil *DeviceFrame", nil)
		}
		return normalizeDevice(*v)
	case Scalar:
		d, err := matrix.NewScalar(float64(v))
		if err != nil {
			return nil, unsupportedf(KindScalar.String(), err)
		}
		return d, nil
	case nil:
		return nil, unsupportedf("nil artifact", nil)
	default:
		return nil, unsupportedf(fmt.Sprintf("%T", a), nil)
	}
}

func normalizeDense(v DenseArray) (*matrix.Dense, error) {
	if v.Array == nil {
		return nil, unsupportedf(KindDense.String(), matrix.ErrNilMatrix)
	}
	return v.Array.Clone(), nil
}

func normalizeFrame(f Frame) (*matrix.Dense, error) {
	cols := len(f.Columns)
	if cols == 0 {
		return nil, unsupportedf("frame without columns", nil)
	}
	rows := len(f.Columns[0].Values)
	flat := make([]float64, 0, rows*cols)
	for _, c := range f.Columns {
		if len(c.Values) != rows {
			return nil, unsupportedf(fmt.Sprintf("frame column %q", c.Name), matrix.ErrBadShape)
		}
		flat = append(flat, c.Values...)
	}

	return fromColumnar(KindFrame, rows, cols, false, flat)
}

func normalizeDevice(f DeviceFrame) (*matrix.Dense, error) {
	if f.Buffer == nil {
		return nil, unsupportedf("device frame without buffer", nil)
	}
	if hb, ok := f.Buffer.(*HostBuffer); ok && hb == nil {
		return nil, unsupportedf("device frame with nil *HostBuffer", matrix.ErrNilMatrix)
	}
	if f.Series && f.Cols != 1 {
		return nil, unsupportedf("device series", matrix.ErrBadShape)
	}
	if f.Rows <= 0 || f.Cols <= 0 || f.Buffer.Len() != f.Rows*f.Cols {
		return nil, unsupportedf(fmt.Sprintf("device frame %dx%d (buffer %d)", f.Rows, f.Cols, f.Buffer.Len()), matrix.ErrBadShape)
	}

	// Single blocking device-to-host transfer for this artifact.
	host := make([]float64, f.Rows*f.Cols)
	if err := f.Buffer.CopyToHost(host); err != nil {
		return nil, fmt.Errorf("artifact: normalize device frame: %w: %w", ErrTransfer, err)
	}

	return fromColumnar(KindDevice, f.Rows, f.Cols, f.Series, host)
}

// fromColumnar lays a column-major buffer out as a row-major *matrix.Dense.
func fromColumnar(kind Kind, rows, cols int, series bool, colMajor []float64) (*matrix.Dense, error) {
	if rows == 0 {
		return nil, unsupportedf(kind.String(), matrix.ErrBadShape)
	}
	if series {
		d, err := matrix.NewVector(colMajor)
		if err != nil {
			return nil, unsupportedf(kind.String(), err)
		}
		return d, nil
	}
	rowMajor := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		base := j * rows // start of column j
		for i := 0; i < rows; i++ {
			rowMajor[i*cols+j] = colMajor[base+i]
		}
	}
	d, err := matrix.NewDense(rows, cols, rowMajor)
	if err != nil {
		return nil, unsupportedf(kind.String(), err)
	}
	return d, nil
}
