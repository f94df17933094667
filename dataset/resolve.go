// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const opResolve = "dataset: Resolve"

// globMeta lists the characters that turn a path into a doublestar pattern.
const globMeta = "*?[{"

// Resolve turns a dataset path or pattern into one existing file.
//
// A plain path must name a regular file. A pattern ("data/**/*.npz") is
// expanded with doublestar and the lexicographically first match wins, so the
// choice is stable across runs.
//
// Errors: ErrDatasetNotFound naming pattern when nothing matches or the match
// is a directory.
func Resolve(pattern string) (string, error) {
	if pattern == "" {
		return "", notFoundf(opResolve, pattern, nil)
	}
	if !strings.ContainsAny(pattern, globMeta) {
		if err := requireFile(pattern); err != nil {
			return "", notFoundf(opResolve, pattern, err)
		}
		return pattern, nil
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", notFoundf(opResolve, pattern, err)
	}
	if len(matches) == 0 {
		return "", notFoundf(opResolve, pattern, nil)
	}
	sort.Strings(matches)
	return matches[0], nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	if !info.Mode().IsRegular() {
		return fs.ErrInvalid
	}
	return nil
}
