// SPDX-License-Identifier: MIT

package compare_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsvdparity/compare"
	"github.com/katalvlaran/tsvdparity/matrix"
)

func TestCheckAll(t *testing.T) {
	pairs := []compare.Pair{
		{Name: "singular_values", A: vec(t, 3, 1), B: vec(t, 3, 1.0001)},
		{Name: "components", A: vec(t, 1, -1), B: vec(t, -1, 1), Options: []compare.Option{compare.WithoutSign()}},
		{Name: "transformed", A: vec(t, 1, 2), B: vec(t, 1, 2, 3)},
		{Name: "drift", A: vec(t, 0), B: vec(t, 0.1)},
	}

	rep := compare.CheckAll(pairs, compare.WithThreshold(1e-3))
	require.Len(t, rep.Outcomes, 4)

	assert.True(t, rep.Outcomes[0].Result.Equal)
	assert.True(t, rep.Outcomes[1].Result.Equal)
	assert.False(t, rep.Outcomes[1].Result.WithSign)
	assert.ErrorIs(t, rep.Outcomes[2].Err, matrix.ErrShapeMismatch)
	assert.False(t, rep.Outcomes[3].Result.Equal)
	assert.Equal(t, 1e-3, rep.Outcomes[3].Result.Threshold)

	assert.False(t, rep.OK())
	assert.Equal(t, []string{"transformed", "drift"}, rep.Failed())
}

func TestCheckAll_PairOptionsOverrideGlobal(t *testing.T) {
	pairs := []compare.Pair{
		{Name: "x", A: vec(t, 0), B: vec(t, 0.1), Options: []compare.Option{compare.WithThreshold(1)}},
	}
	rep := compare.CheckAll(pairs, compare.WithThreshold(1e-6))
	require.True(t, rep.OK())
	require.Empty(t, rep.Failed())
	require.Equal(t, 1.0, rep.Outcomes[0].Result.Threshold)
}

func TestCheckAll_Empty(t *testing.T) {
	rep := compare.CheckAll(nil)
	require.Empty(t, rep.Outcomes)
	require.True(t, rep.OK())
	require.Equal(t, "", rep.String())
}

func TestReport_String(t *testing.T) {
	rep := compare.CheckAll([]compare.Pair{
		{Name: "singular_values", A: vec(t, 1, 2), B: vec(t, 1, 2)},
		{Name: "components", A: vec(t, 1), B: vec(t, 3)},
		{Name: "transformed", A: vec(t, 1), B: nil},
	})

	lines := strings.Split(rep.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "singular_values: equal (mse=0, max=0)", lines[0])
	assert.Equal(t, "components: NOT equal (mse=4, max=2)", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "transformed: error: compare: Check: b:"), lines[2])
}
