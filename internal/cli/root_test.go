package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/viper"

	"ccheck/internal/config"
)

func execute(t *testing.T, argv ...string) (config.Config, []string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var got config.Config
	var files []string
	cmd := NewRootCommand(viper.New(), func(_ context.Context, cfg config.Config, in []string) error {
		got, files = cfg, in
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(argv)
	err := cmd.Execute()
	return got, files, err
}

func TestFlagsReachConfig(t *testing.T) {
	cfg, files, err := execute(t,
		"-r", "mt.fa", "-a", "-t", "-s", "10-20", "-n", "3", "-d", "50",
		"--min-strong", "5", "--shoot", "-f", "-T", "-vvv", "--threads", "2",
		"a.sam", "b.sam")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(files) != 2 || files[0] != "a.sam" {
		t.Errorf("files = %v", files)
	}
	if cfg.Reference != "mt.fa" || !cfg.Ancient || !cfg.Transversions || !cfg.Foot || !cfg.Force {
		t.Errorf("config = %+v", cfg)
	}
	if from, to := cfg.SpanRange(); from != 9 || to != 20 {
		t.Errorf("span = [%d,%d), want [9,20)", from, to)
	}
	if cfg.NumPos != 3 || cfg.MaxD != 50 || cfg.MinStrong != 5 || cfg.Threads != 2 {
		t.Errorf("numbers = %+v", cfg)
	}
	if cfg.Verbose != 3 {
		t.Errorf("verbose = %d, want 3", cfg.Verbose)
	}
	if cfg.Output != "table" {
		t.Errorf("output = %q, want table", cfg.Output)
	}
}

func TestDefaultsReachConfig(t *testing.T) {
	cfg, _, err := execute(t, "-r", "mt.fa", "a.sam")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if cfg.Output != "text" || cfg.MinStrong != 40 || cfg.NumPos != 1 || cfg.Confidence != 0.95 || cfg.Foot {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestUsageErrorsAreTyped(t *testing.T) {
	for _, argv := range [][]string{
		{"a.sam"},
		{"-r", "mt.fa"},
		{"--bogus", "a.sam"},
		{"-r", "mt.fa", "-n", "0", "a.sam"},
	} {
		_, _, err := execute(t, argv...)
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Errorf("%v: err = %v, want a UsageError", argv, err)
		}
	}
}

func TestRunnerErrorPassesThrough(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	boom := errors.New("boom")
	cmd := NewRootCommand(viper.New(), func(context.Context, config.Config, []string) error { return boom })
	cmd.SetArgs([]string{"-r", "mt.fa", "a.sam"})
	if err := cmd.Execute(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
