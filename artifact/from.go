// SPDX-License-Identifier: MIT

package artifact

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tsvdparity/matrix"
)

// From classifies an untyped Go value as an Artifact. It is the only place
// that inspects runtime types; everything past it works on the closed set.
//
// Accepted: any Artifact, float64, []float64, [][]float64, *matrix.Dense,
// mat.Vector and mat.Matrix (vectors are checked first, since a gonum vector
// is also a matrix). Anything else yields ErrUnsupportedType.
func From(v any) (Artifact, error) {
	switch x := v.(type) {
	case Artifact:
		return x, nil
	case float64:
		return Scalar(x), nil
	case []float64:
		d, err := matrix.NewVector(x)
		if err != nil {
			return nil, fromErrorf(v, err)
		}
		return Dense(d), nil
	case [][]float64:
		d, err := matrix.NewFromRows(x)
		if err != nil {
			return nil, fromErrorf(v, err)
		}
		return Dense(d), nil
	case *matrix.Dense:
		if x == nil {
			return nil, fromErrorf(v, matrix.ErrNilMatrix)
		}
		return Dense(x), nil
	case mat.Vector:
		d, err := matrix.FromGonumVector(x)
		if err != nil {
			return nil, fromErrorf(v, err)
		}
		return Dense(d), nil
	case mat.Matrix:
		d, err := matrix.FromGonum(x)
		if err != nil {
			return nil, fromErrorf(v, err)
		}
		return Dense(d), nil
	default:
		return nil, fromErrorf(v, nil)
	}
}

func fromErrorf(v any, cause error) error {
	if cause == nil {
		return fmt.Errorf("artifact: from %T: %w", v, ErrUnsupportedType)
	}
	return fmt.Errorf("artifact: from %T: %w: %w", v, ErrUnsupportedType, cause)
}

// FrameFromDense builds a CPU frame with columns named name_0..name_{c-1}.
// A rank-1 array becomes a single-column frame.
func FrameFromDense(name string, d *matrix.Dense) Frame {
	rows, cols := d.Dims()
	data := d.Data()
	f := Frame{Columns: make([]Column, cols)}
	for j := 0; j < cols; j++ {
		vals := make([]float64, rows)
		for i := 0; i < rows; i++ {
			vals[i] = data[i*cols+j]
		}
		f.Columns[j] = Column{Name: fmt.Sprintf("%s_%d", name, j), Values: vals}
	}
	return f
}
