// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"ccheck-core/fitted"
)

// EnvPrefix prefixes every environment override, e.g. CCHECK_MIN_STRONG.
const EnvPrefix = "CCHECK"

// Config is the effective configuration of one run.
type Config struct {
	Reference     string `mapstructure:"reference" yaml:"reference"`
	Target        string `mapstructure:"target" yaml:"target"`
	Contig        string `mapstructure:"contig" yaml:"contig"`
	Ancient       bool   `mapstructure:"ancient" yaml:"ancient"`
	Transversions bool   `mapstructure:"transversions" yaml:"transversions"`
	Span          string `mapstructure:"span" yaml:"span"` // "M-N", 1-based inclusive
	NumPos        int    `mapstructure:"numpos" yaml:"numpos"`
	MaxD          int    `mapstructure:"maxd" yaml:"maxd"` // 0 = 10% of the longer consensus
	MinStrong     int    `mapstructure:"min-strong" yaml:"min-strong"`
	Foot          bool   `mapstructure:"foot" yaml:"foot"`
	Force         bool   `mapstructure:"force" yaml:"force"`

	Output   string `mapstructure:"output" yaml:"output"`
	Table    bool   `mapstructure:"table" yaml:"table"`
	Verbose  int    `mapstructure:"verbose" yaml:"verbose"`
	Progress bool   `mapstructure:"progress" yaml:"progress"`

	Confidence float64 `mapstructure:"confidence" yaml:"confidence"`
	Threads    int     `mapstructure:"threads" yaml:"threads"`

	Matrix fitted.Scores `mapstructure:"matrix" yaml:"matrix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NumPos:     1,
		MinStrong:  40,
		Output:     "text",
		Confidence: 0.95,
		Matrix:     fitted.DefaultScores(),
	}
}

// SetDefaults registers Default with v, so that every key is known to
// viper (and hence to AutomaticEnv) even when no flag is bound to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("reference", d.Reference)
	v.SetDefault("target", d.Target)
	v.SetDefault("contig", d.Contig)
	v.SetDefault("ancient", d.Ancient)
	v.SetDefault("transversions", d.Transversions)
	v.SetDefault("span", d.Span)
	v.SetDefault("numpos", d.NumPos)
	v.SetDefault("maxd", d.MaxD)
	v.SetDefault("min-strong", d.MinStrong)
	v.SetDefault("foot", d.Foot)
	v.SetDefault("force", d.Force)
	v.SetDefault("output", d.Output)
	v.SetDefault("table", d.Table)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("progress", d.Progress)
	v.SetDefault("confidence", d.Confidence)
	v.SetDefault("threads", d.Threads)
	v.SetDefault("matrix.match", d.Matrix.Match)
	v.SetDefault("matrix.mismatch", d.Matrix.Mismatch)
	v.SetDefault("matrix.n", d.Matrix.N)
	v.SetDefault("matrix.gap_open", d.Matrix.GapOpen)
	v.SetDefault("matrix.gap_extend", d.Matrix.GapExtend)
}

// DefaultPath is $HOME/.ccheck/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error finding home directory: %w", err)
	}
	return filepath.Join(home, ".ccheck", "config.yaml"), nil
}

// Init sets up v to read file (or the default location when file is
// empty) and the environment. A missing default file is not an error; a
// missing explicit one is. It returns the config file actually read.
func Init(v *viper.Viper, file string) (string, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", nil
		}
		v.AddConfigPath(filepath.Join(home, ".ccheck"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load unmarshals the effective configuration from v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if c.Table {
		c.Output = "table"
	}
	return c, nil
}

// Validate checks ranges and cross-field constraints.
func (c Config) Validate() error {
	if c.Reference == "" {
		return errors.New("a contaminant reference is required (--reference)")
	}
	switch c.Output {
	case "text", "table", "json":
	default:
		return fmt.Errorf("invalid --output %q (text | table | json)", c.Output)
	}
	if c.NumPos < 1 {
		return errors.New("--numpos must be ≥ 1")
	}
	if c.MaxD < 0 {
		return errors.New("--maxd must be ≥ 0")
	}
	if c.MinStrong < 0 {
		return errors.New("--min-strong must be ≥ 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("--confidence must lie strictly between 0 and 1, got %g", c.Confidence)
	}
	if _, _, err := ParseSpan(c.Span); err != nil {
		return err
	}
	if err := c.Matrix.Validate(); err != nil {
		return fmt.Errorf("matrix: %w", err)
	}
	return nil
}

// SpanRange returns the span as a half-open range of 0-based assembly
// coordinates; to < 0 means unbounded.
func (c Config) SpanRange() (from, to int) {
	from, to, _ = ParseSpan(c.Span)
	return from, to
}

// ParseSpan reads "M-N" (1-based, inclusive) as [M-1, N). Either bound
// may be left out; the empty string is the whole assembly.
func ParseSpan(s string) (from, to int, err error) {
	if s == "" {
		return 0, -1, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --span %q (want M-N)", s)
	}
	from, to = 0, -1
	if lo != "" {
		m, err := strconv.Atoi(lo)
		if err != nil || m < 0 {
			return 0, 0, fmt.Errorf("invalid --span start %q", lo)
		}
		if m > 0 {
			m--
		}
		from = m
	}
	if hi != "" {
		n, err := strconv.Atoi(hi)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("invalid --span end %q", hi)
		}
		to = n
	}
	if to >= 0 && to < from {
		return 0, 0, fmt.Errorf("invalid --span %q: end before start", s)
	}
	return from, to, nil
}
