// SPDX-License-Identifier: MIT

package tsvd

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRank indicates k outside 1..min(rows, cols).
	ErrBadRank = errors.New("tsvd: number of components out of range")

	// ErrUnknownProvider indicates a Lookup miss.
	ErrUnknownProvider = errors.New("tsvd: unknown provider")

	// ErrNoConvergence indicates the underlying factorization failed.
	ErrNoConvergence = errors.New("tsvd: factorization did not converge")
)

func tsvdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
