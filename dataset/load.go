// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sbinet/npyio/npy"
	"github.com/sbinet/npyio/npz"

	"github.com/katalvlaran/tsvdparity/artifact"
	"github.com/katalvlaran/tsvdparity/matrix"
)

const (
	opLoad = "dataset: Load"
	opKeys = "dataset: Keys"
)

// Supported element types, little-endian as written by numpy.savez.
const (
	dtypeFloat64 = "<f8"
	dtypeFloat32 = "<f4"
)

// Load reads one array from a NumPy .npz archive.
//
// key selects the array; an empty key picks the only array, or the first in
// lexicographic order when the archive holds several. Float32 data is
// widened to float64 and Fortran-ordered arrays are returned row-major.
//
// Errors:
//   - ErrDatasetNotFound naming path when the file does not exist.
//   - ErrBadArchive when the file exists but is not a readable .npz archive.
//   - ErrArrayNotFound when key names no array in the archive.
//   - artifact.ErrUnsupportedType for an element type other than float32 or
//     float64, a rank other than 1 or 2, or non-finite values.
//
// Load never substitutes synthetic data for a missing file.
func Load(path, key string) (*matrix.Dense, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, notFoundf(opLoad, path, err)
	}
	r, err := npz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %q: %w", opLoad, ErrBadArchive, path, err)
	}
	defer r.Close()

	name, entry, err := pickKey(r.Keys(), key)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opLoad, path, err)
	}
	hdr := r.Header(entry)
	if hdr == nil {
		return nil, fmt.Errorf("%s: %s: %w: %q", opLoad, path, ErrArrayNotFound, name)
	}

	shape := hdr.Descr.Shape
	if len(shape) != 1 && len(shape) != 2 {
		return nil, fmt.Errorf("%s: %s[%s]: rank %d: %w", opLoad, path, name, len(shape), artifact.ErrUnsupportedType)
	}

	flat, err := readFloats(r, entry, hdr)
	if err != nil {
		return nil, fmt.Errorf("%s: %s[%s]: %w", opLoad, path, name, err)
	}

	d, err := build(shape, hdr.Descr.Fortran, flat)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) || errors.Is(err, matrix.ErrBadShape) {
			return nil, fmt.Errorf("%s: %s[%s]: %w: %w", opLoad, path, name, artifact.ErrUnsupportedType, err)
		}
		return nil, fmt.Errorf("%s: %s[%s]: %w", opLoad, path, name, err)
	}
	return d, nil
}

// Keys lists the array names stored in the archive at path, sorted.
func Keys(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, notFoundf(opKeys, path, err)
	}
	r, err := npz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %q: %w", opKeys, ErrBadArchive, path, err)
	}
	defer r.Close()
	keys, _ := entryNames(r.Keys())
	return keys, nil
}

// entryNames maps archive entries to array names. numpy.savez stores
// "X.npy" while other writers store "X"; both are addressed as "X", and the
// raw entry name is kept for reading.
func entryNames(raw []string) (keys []string, entries map[string]string) {
	entries = make(map[string]string, len(raw))
	for _, e := range raw {
		k := strings.TrimSuffix(e, ".npy")
		if _, dup := entries[k]; !dup {
			keys = append(keys, k)
		}
		entries[k] = e
	}
	sort.Strings(keys)
	return keys, entries
}

// pickKey returns the array name and the raw archive entry holding it.
func pickKey(raw []string, key string) (name, entry string, err error) {
	keys, entries := entryNames(raw)
	if len(keys) == 0 {
		return "", "", fmt.Errorf("%w: archive is empty", ErrArrayNotFound)
	}
	if key == "" {
		return keys[0], entries[keys[0]], nil
	}
	want := strings.TrimSuffix(key, ".npy")
	entry, ok := entries[want]
	if !ok {
		return "", "", fmt.Errorf("%w: %q (have %s)", ErrArrayNotFound, want, strings.Join(keys, ", "))
	}
	return want, entry, nil
}

func readFloats(r *npz.Reader, name string, hdr *npy.Header) ([]float64, error) {
	switch hdr.Descr.Type {
	case dtypeFloat64:
		var v []float64
		if err := r.Read(name, &v); err != nil {
			return nil, err
		}
		return v, nil
	case dtypeFloat32:
		var v []float32
		if err := r.Read(name, &v); err != nil {
			return nil, err
		}
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("dtype %q: %w", hdr.Descr.Type, artifact.ErrUnsupportedType)
	}
}

// build shapes flat file-order data into a row-major array.
func build(shape []int, fortran bool, flat []float64) (*matrix.Dense, error) {
	if len(shape) == 1 {
		return matrix.NewVector(flat)
	}
	rows, cols := shape[0], shape[1]
	if rows*cols != len(flat) {
		return nil, fmt.Errorf("%d values for shape %v: %w", len(flat), shape, matrix.ErrBadShape)
	}
	if fortran {
		rowMajor := make([]float64, len(flat))
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				rowMajor[i*cols+j] = flat[j*rows+i]
			}
		}
		flat = rowMajor
	}
	return matrix.NewDense(rows, cols, flat)
}
