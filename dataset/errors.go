// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrDatasetNotFound indicates that the dataset path or pattern names no
	// readable file. The wrapped message always carries the path.
	ErrDatasetNotFound = errors.New("dataset: dataset not found")

	// ErrArrayNotFound indicates that the archive exists but holds no array
	// under the requested key.
	ErrArrayNotFound = errors.New("dataset: array not found")

	// ErrBadArchive indicates a file that exists but cannot be read as a
	// NumPy .npz archive.
	ErrBadArchive = errors.New("dataset: not a readable .npz archive")

	// ErrBadSpec indicates invalid Generate parameters.
	ErrBadSpec = errors.New("dataset: invalid generator spec")
)

// notFoundf binds ErrDatasetNotFound to the offending path.
func notFoundf(op, path string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w: %q", op, ErrDatasetNotFound, path)
	}
	return fmt.Errorf("%s: %w: %q: %w", op, ErrDatasetNotFound, path, cause)
}
