// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/sbinet/npyio/npz"

	"github.com/katalvlaran/tsvdparity/matrix"
)

const opSave = "dataset: Save"

// Save writes arrays to a new .npz archive at path, replacing any existing
// file. Vectors are stored with shape (n,), matrices with shape (rows, cols).
func Save(path string, arrays map[string]*matrix.Dense) error {
	if len(arrays) == 0 {
		return fmt.Errorf("%s: %s: no arrays", opSave, path)
	}
	w, err := npz.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", opSave, err)
	}

	for _, key := range slices.Sorted(maps.Keys(arrays)) {
		d := arrays[key]
		if err := matrix.ValidateNotNil(d); err != nil {
			return errors.Join(fmt.Errorf("%s: %s: %w", opSave, key, err), w.Close())
		}
		var v any = d.Data()
		if d.Rank() == 2 {
			v = d.Gonum()
		}
		if err := w.Write(key, v); err != nil {
			return errors.Join(fmt.Errorf("%s: %s: %w", opSave, key, err), w.Close())
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: %w", opSave, err)
	}
	return nil
}
