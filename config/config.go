// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsvdparity/compare"
	"github.com/katalvlaran/tsvdparity/dataset"
	"github.com/katalvlaran/tsvdparity/tsvd"
)

// FileName is the config file LoadFromDir looks for.
const FileName = "tsvdparity.yaml"

// ErrInvalid indicates a config that fails Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds all configuration for tsvdparity.
type Config struct {
	Dataset       DatasetConfig       `yaml:"dataset"`
	Decomposition DecompositionConfig `yaml:"decomposition"`
	Compare       CompareConfig       `yaml:"compare"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// DatasetConfig selects the input matrix.
type DatasetConfig struct {
	Path     string       `yaml:"path"` // file or doublestar pattern
	Key      string       `yaml:"key"`  // array name inside the archive; empty picks the first
	Generate dataset.Spec `yaml:"generate"`
}

// DecompositionConfig names the two providers and the truncation rank.
type DecompositionConfig struct {
	Reference  string `yaml:"reference"`
	Candidate  string `yaml:"candidate"`
	Components int    `yaml:"components"`
}

// CompareConfig holds the equivalence thresholds.
type CompareConfig struct {
	Threshold  float64           `yaml:"threshold"`
	Attributes []AttributeConfig `yaml:"attributes"`
}

// AttributeConfig configures the check of one fitted attribute.
type AttributeConfig struct {
	Name      string  `yaml:"name"`
	WithSign  bool    `yaml:"with_sign"`
	Threshold float64 `yaml:"threshold,omitempty"` // 0 inherits CompareConfig.Threshold
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: "data/**/*.npz",
			Key:  "X",
			Generate: dataset.Spec{
				Rows:  1000,
				Cols:  50,
				Rank:  10,
				Noise: 0.01,
				Seed:  1,
			},
		},
		Decomposition: DecompositionConfig{
			Reference:  "svd",
			Candidate:  "gram",
			Components: 5,
		},
		Compare: CompareConfig{
			Threshold: compare.DefaultThreshold,
			Attributes: []AttributeConfig{
				{Name: tsvd.AttrSingularValues, WithSign: true},
				{Name: tsvd.AttrComponents, WithSign: false},
				{Name: tsvd.AttrTransformed, WithSign: false},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads dir/tsvdparity.yaml, or defaults when absent.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Decomposition.Components < 1 {
		bad("decomposition.components must be >= 1, got %d", c.Decomposition.Components)
	}
	for _, name := range []string{c.Decomposition.Reference, c.Decomposition.Candidate} {
		if _, err := tsvd.Lookup(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: decomposition: %w", ErrInvalid, err))
		}
	}

	if !validThreshold(c.Compare.Threshold) {
		bad("compare.threshold must be finite and >= 0, got %v", c.Compare.Threshold)
	}
	known := make(map[string]bool)
	for _, a := range tsvd.Attributes() {
		known[a] = true
	}
	if len(c.Compare.Attributes) == 0 {
		bad("compare.attributes must not be empty")
	}
	seen := make(map[string]bool)
	for _, a := range c.Compare.Attributes {
		switch {
		case !known[a.Name]:
			bad("compare.attributes: unknown attribute %q", a.Name)
		case seen[a.Name]:
			bad("compare.attributes: duplicate attribute %q", a.Name)
		case !validThreshold(a.Threshold):
			bad("compare.attributes[%s].threshold must be finite and >= 0, got %v", a.Name, a.Threshold)
		}
		seen[a.Name] = true
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		bad("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return errors.Join(errs...)
}

// ThresholdFor returns the effective threshold of attribute a.
func (c *CompareConfig) ThresholdFor(a AttributeConfig) float64 {
	if a.Threshold > 0 {
		return a.Threshold
	}
	return c.Threshold
}

func validThreshold(t float64) bool {
	return t >= 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

// NewLogger builds the slog logger described by l, writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
