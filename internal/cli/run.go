// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsvdparity/bench"
	"github.com/katalvlaran/tsvdparity/compare"
	"github.com/katalvlaran/tsvdparity/config"
	"github.com/katalvlaran/tsvdparity/dataset"
	"github.com/katalvlaran/tsvdparity/tsvd"
)

var (
	runDataset    string
	runKey        string
	runComponents int
	runReference  string
	runCandidate  string
	runThreshold  float64
	runNoProgress bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fit the dataset with both providers and compare the results",
	Long: `Load the dataset, fit it with the reference and candidate providers and
compare singular_values (with sign), components and transformed (without
sign). Flags override the config file.

Exits non-zero when any attribute is NOT equal.

Examples:
  tsvdparity run --dataset data/x.npz -n 10
  tsvdparity run --dataset 'runs/**/*.npz' --threshold 1e-6`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runDataset, "dataset", "", "dataset file or doublestar pattern (overrides config)")
	runCmd.Flags().StringVarP(&runKey, "key", "k", "", "array name inside the archive (overrides config)")
	runCmd.Flags().IntVarP(&runComponents, "components", "n", 0, "number of components (overrides config)")
	runCmd.Flags().StringVar(&runReference, "reference", "", "reference provider (overrides config)")
	runCmd.Flags().StringVar(&runCandidate, "candidate", "", "candidate provider (overrides config)")
	runCmd.Flags().Float64Var(&runThreshold, "threshold", 0, "MSE threshold for every attribute (overrides config)")
	runCmd.Flags().BoolVar(&runNoProgress, "no-progress", false, "disable the progress bar")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	c := *GetConfig()
	applyRunFlags(cmd, &c)
	if err := c.Validate(); err != nil {
		return err
	}

	path, err := dataset.Resolve(inRoot(c.Dataset.Path))
	if err != nil {
		return err
	}
	X, err := dataset.Load(path, c.Dataset.Key)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", path, "key", c.Dataset.Key, "shape", X.Shape())

	ref, err := tsvd.Lookup(c.Decomposition.Reference)
	if err != nil {
		return err
	}
	cand, err := tsvd.Lookup(c.Decomposition.Candidate)
	if err != nil {
		return err
	}

	r := &bench.Runner{
		Reference:  ref,
		Candidate:  cand,
		Components: c.Decomposition.Components,
		Checks:     checksFromConfig(c.Compare),
		Logger:     logger,
	}
	if !runNoProgress {
		r.Progress = stageBar(cmd)
	}

	sum, err := r.Run(cmd.Context(), X)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nDataset:    %s (%v)\n", path, sum.Shape)
	fmt.Fprintf(out, "Components: %d\n", sum.Components)
	fmt.Fprintf(out, "Reference:  %-6s %s\n", sum.Reference, sum.ReferenceElapsed)
	fmt.Fprintf(out, "Candidate:  %-6s %s\n", sum.Candidate, sum.CandidateElapsed)
	if s := sum.Speedup(); s > 0 {
		fmt.Fprintf(out, "Speedup:    %.2fx\n", s)
	}
	fmt.Fprintf(out, "\n%s\n", sum.Report.String())

	if !sum.OK() {
		return fmt.Errorf("%w: %v", ErrNotEqual, sum.Report.Failed())
	}
	return nil
}

func applyRunFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dataset") {
		c.Dataset.Path = runDataset
	}
	if flags.Changed("key") {
		c.Dataset.Key = runKey
	}
	if flags.Changed("components") {
		c.Decomposition.Components = runComponents
	}
	if flags.Changed("reference") {
		c.Decomposition.Reference = runReference
	}
	if flags.Changed("candidate") {
		c.Decomposition.Candidate = runCandidate
	}
	if flags.Changed("threshold") {
		c.Compare.Threshold = runThreshold
		attrs := make([]config.AttributeConfig, len(c.Compare.Attributes))
		for i, a := range c.Compare.Attributes {
			a.Threshold = 0
			attrs[i] = a
		}
		c.Compare.Attributes = attrs
	}
}

// checksFromConfig maps validated attribute settings to bench checks.
func checksFromConfig(cc config.CompareConfig) []bench.Check {
	checks := make([]bench.Check, 0, len(cc.Attributes))
	for _, a := range cc.Attributes {
		checks = append(checks, bench.Check{
			Attribute: a.Name,
			Options:   []compare.Option{compare.WithThreshold(cc.ThresholdFor(a)), compare.WithSign(a.WithSign)},
		})
	}
	return checks
}

// stageBar renders bench progress on stderr; the bar is created on the first
// callback, once the total is known.
func stageBar(cmd *cobra.Command) bench.ProgressFunc {
	var (
		bar *progressbar.ProgressBar
		mu  sync.Mutex
	)
	return func(stage bench.Stage, done, total int) {
		mu.Lock()
		defer mu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Fitting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}
		bar.Describe(fmt.Sprintf("[cyan]%s[reset]", stage))
		_ = bar.Set(done)
	}
}
