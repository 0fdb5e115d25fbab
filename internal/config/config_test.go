package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestParseSpan(t *testing.T) {
	tests := []struct {
		in       string
		from, to int
		wantErr  bool
	}{
		{"", 0, -1, false},
		{"1-100", 0, 100, false},
		{"0-100", 0, 100, false},
		{"16024-16569", 16023, 16569, false},
		{"50-", 49, -1, false},
		{"-20", 0, 20, false},
		{"100", 0, 0, true},
		{"a-b", 0, 0, true},
		{"20-10", 0, 0, true},
	}
	for _, tc := range tests {
		from, to, err := ParseSpan(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSpan(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && (from != tc.from || to != tc.to) {
			t.Errorf("ParseSpan(%q) = [%d,%d), want [%d,%d)", tc.in, from, to, tc.from, tc.to)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v := viper.New()
	used, err := Init(v, "")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if used != "" {
		t.Errorf("config file %q read from an empty home", used)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := Default()
	if c.NumPos != d.NumPos || c.MinStrong != d.MinStrong || c.Output != d.Output || c.Confidence != d.Confidence || c.Matrix != d.Matrix {
		t.Fatalf("Load() = %+v, want defaults %+v", c, d)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".ccheck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "reference: mt.fa\nmin-strong: 10\nmatrix:\n  match: 5\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CCHECK_MIN_STRONG", "7")
	t.Setenv("CCHECK_TABLE", "true")

	v := viper.New()
	used, err := Init(v, "")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if used == "" {
		t.Fatalf("default config file not read")
	}
	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Reference != "mt.fa" {
		t.Errorf("reference = %q, want mt.fa", c.Reference)
	}
	if c.MinStrong != 7 {
		t.Errorf("min-strong = %d, want the environment's 7", c.MinStrong)
	}
	if c.Matrix.Match != 5 || c.Matrix.Mismatch != Default().Matrix.Mismatch {
		t.Errorf("matrix = %+v", c.Matrix)
	}
	if c.Output != "table" {
		t.Errorf("output = %q, want table", c.Output)
	}
}

func TestInitMissingExplicitFile(t *testing.T) {
	if _, err := Init(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for a missing --config file")
	}
}

func TestValidate(t *testing.T) {
	ok := Default()
	ok.Reference = "mt.fa"
	if err := ok.Validate(); err != nil {
		t.Fatalf("defaults with a reference: %v", err)
	}
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"no reference", func(c *Config) { c.Reference = "" }},
		{"bad output", func(c *Config) { c.Output = "fasta" }},
		{"numpos", func(c *Config) { c.NumPos = 0 }},
		{"maxd", func(c *Config) { c.MaxD = -1 }},
		{"threads", func(c *Config) { c.Threads = -2 }},
		{"confidence", func(c *Config) { c.Confidence = 1 }},
		{"span", func(c *Config) { c.Span = "x" }},
		{"matrix", func(c *Config) { c.Matrix.Match = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := ok
			tc.mod(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}
