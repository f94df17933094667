// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep all data finite so the numeric policy never interferes by accident.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tsvdparity/matrix"
)

// MustVector builds a rank-1 array or fails the test.
func MustVector(t *testing.T, data ...float64) *matrix.Dense {
	t.Helper()
	v, err := matrix.NewVector(data)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", data, err)
	}
	return v
}

// MustDense builds a rows×cols array from row-major data or fails the test.
func MustDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, data)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	return m
}

// MustAt reads one element or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, idx ...int) float64 {
	t.Helper()
	v, err := m.At(idx...)
	if err != nil {
		t.Fatalf("At%v: %v", idx, err)
	}
	return v
}
