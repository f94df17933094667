// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsvdparity/artifact"
	"github.com/katalvlaran/tsvdparity/compare"
	"github.com/katalvlaran/tsvdparity/dataset"
)

var (
	cmpKey       string
	cmpKeyB      string
	cmpThreshold float64
	cmpNoSign    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <a.npz> <b.npz>",
	Short: "Compare two stored arrays",
	Long: `Load one array from each archive and check them for approximate equality.
Exits non-zero when they are NOT equal or cannot be compared.

Examples:
  tsvdparity compare ref.npz cand.npz -k components --no-sign
  tsvdparity compare ref.npz cand.npz -k sv --key-b singular_values --threshold 1e-6`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&cmpKey, "key", "k", "", "array name in both archives (default: first array)")
	compareCmd.Flags().StringVar(&cmpKeyB, "key-b", "", "array name in the second archive (default: --key)")
	compareCmd.Flags().Float64Var(&cmpThreshold, "threshold", compare.DefaultThreshold, "exclusive MSE threshold")
	compareCmd.Flags().BoolVar(&cmpNoSign, "no-sign", false, "compare absolute values")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if cmpThreshold < 0 || math.IsNaN(cmpThreshold) || math.IsInf(cmpThreshold, 0) {
		return fmt.Errorf("threshold must be finite and >= 0, got %v", cmpThreshold)
	}
	keyB := cmpKeyB
	if keyB == "" {
		keyB = cmpKey
	}

	a, err := dataset.Load(inRoot(args[0]), cmpKey)
	if err != nil {
		return err
	}
	b, err := dataset.Load(inRoot(args[1]), keyB)
	if err != nil {
		return err
	}

	res, err := compare.Check(artifact.Dense(a), artifact.Dense(b),
		compare.WithThreshold(cmpThreshold), compare.WithSign(!cmpNoSign))
	if err != nil {
		return err
	}
	logger.Debug("compared", "a", args[0], "b", args[1], "mse", res.MSE, "threshold", res.Threshold, "with_sign", res.WithSign)

	fmt.Fprintf(cmd.OutOrStdout(), "%s (shape %v, mse=%.3g, max=%.3g, threshold=%g, with_sign=%t)\n",
		res.Verdict(), res.Shape, res.MSE, res.MaxAbsDiff, res.Threshold, res.WithSign)
	if !res.Equal {
		return ErrNotEqual
	}
	return nil
}
