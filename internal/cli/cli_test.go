// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsvdparity/config"
	"github.com/katalvlaran/tsvdparity/dataset"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "gen", "--dir", dir, "-o", "data/x.npz", "--key", "X",
		"--rows", "40", "--cols", "8", "--rank", "3", "--noise", "0.01", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "40x8")

	X, err := dataset.Load(filepath.Join(dir, "data", "x.npz"), "X")
	require.NoError(t, err)
	assert.Equal(t, []int{40, 8}, X.Shape())

	out, err = execute(t, "run", "--dir", dir, "--dataset", "data/*.npz", "--key", "X",
		"-n", "2", "--no-progress", "--threshold", "1e-6")
	require.NoError(t, err)
	assert.Contains(t, out, "singular_values: equal")
	assert.Contains(t, out, "components: equal")
	assert.Contains(t, out, "transformed: equal")

	// Nothing is strictly below a zero threshold.
	out, err = execute(t, "run", "--dir", dir, "--dataset", "data/x.npz", "--key", "X",
		"-n", "2", "--no-progress", "--threshold", "0")
	require.ErrorIs(t, err, ErrNotEqual)
	assert.Contains(t, out, "NOT equal")

	out, err = execute(t, "compare", "--dir", dir, "data/x.npz", "data/x.npz", "-k", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "equal (shape [40 8]")

	_, err = execute(t, "run", "--dir", dir, "--dataset", "missing/*.npz", "--key", "X", "--no-progress")
	require.ErrorIs(t, err, dataset.ErrDatasetNotFound)

	_, err = execute(t, "compare", "--dir", dir, "data/x.npz", "data/nope.npz", "-k", "X")
	require.ErrorIs(t, err, dataset.ErrDatasetNotFound)
}

func TestChecksFromConfig(t *testing.T) {
	checks := checksFromConfig(config.DefaultConfig().Compare)
	require.Len(t, checks, 3)
	assert.Equal(t, "singular_values", checks[0].Attribute)
	assert.Len(t, checks[0].Options, 2)
}

func TestRun_EmptyAttributeConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("compare:\n  attributes: []\n"), 0o644))

	_, err := execute(t, "run", "--dir", dir, "--dataset", "x.npz", "--no-progress")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestInRoot(t *testing.T) {
	saved := rootDir
	t.Cleanup(func() { rootDir = saved })
	rootDir = filepath.Join("base", "dir")

	assert.Equal(t, filepath.Join("base", "dir", "data", "x.npz"), inRoot(filepath.Join("data", "x.npz")))
	abs := filepath.Join(string(filepath.Separator), "abs", "x.npz")
	assert.Equal(t, abs, inRoot(abs))
	assert.Equal(t, "", inRoot(""))
}
