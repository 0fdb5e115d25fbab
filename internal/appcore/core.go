// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ccheck-core/engine"
	"ccheck-core/fasta"
	"ccheck-core/fitted"
	"ccheck/internal/assembly"
	"ccheck/internal/cmdutil"
	"ccheck/internal/config"
	"ccheck/internal/pretty"
	"ccheck/internal/progress"
	"ccheck/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitFailed    = 1 // an input could not be analysed
	ExitUsage     = 2
	ExitWrite     = 3
	ExitCancelled = 130
)

// Run analyses every file against the configured reference and writes one
// report per file to stdout. A file that cannot be analysed is reported on
// stderr and skipped; the exit code then says so.
func Run(parent context.Context, stdout, stderr io.Writer, cfg config.Config, files []string) int {
	log := cmdutil.NewLogger(stderr, cfg.Verbose)

	rec, err := fasta.LoadReference(parent, cfg.Reference)
	if err != nil {
		return fail(parent, stderr, err)
	}
	ref := &engine.Reference{Name: rec.ID, Seq: rec.Seq}

	var target []byte
	if cfg.Target != "" {
		recs, err := fasta.ReadFile(parent, cfg.Target)
		if err != nil {
			return fail(parent, stderr, err)
		}
		if t, ok := fasta.Find(recs, cfg.Contig); ok {
			target = t.Seq
		} else {
			log.Warnf("%s: no record named %q; uncovered columns become N", cfg.Target, cfg.Contig)
		}
	}

	aligner, err := fitted.New(cfg.Matrix)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	ec := engine.DefaultConfig()
	ec.Ancient = cfg.Ancient
	ec.Transversions = cfg.Transversions
	ec.SpanFrom, ec.SpanTo = cfg.SpanRange()
	ec.MinDiag = cfg.NumPos
	ec.MaxEditDistance = cfg.MaxD
	ec.MinStrong = cfg.MinStrong
	ec.Unsafe = cfg.Foot
	ec.Confidence = cfg.Confidence
	ec.Threads = cfg.Threads
	ec.Aligner = aligner
	ec.Log = log
	if cfg.Progress {
		ec.Progress = progress.New(stderr)
	}
	eng := engine.New(ec)

	rw, err := writers.NewReport(cfg.Output, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	failed := 0
	for _, file := range files {
		path := file
		if !cfg.Force {
			path = assembly.Latest(file)
			if path != file {
				log.Debugf(1, "%s: using %s", file, path)
			}
		}
		res, err := analyse(parent, eng, ref, path, cfg, target, log)
		if err != nil {
			if parent.Err() != nil {
				return ExitCancelled
			}
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		if log.Enabled(6) {
			_ = pretty.Alignment(stderr, res.Pair)
		}
		if err := rw.Write(path, res); err != nil {
			return writeFailure(stderr, err)
		}
	}
	if err := rw.Close(); err != nil {
		return writeFailure(stderr, err)
	}
	if failed > 0 {
		return ExitFailed
	}
	return ExitOK
}

func analyse(ctx context.Context, eng *engine.Engine, ref *engine.Reference, path string, cfg config.Config, target []byte, log *cmdutil.Logger) (*engine.Result, error) {
	asm, err := assembly.Load(ctx, path, assembly.Options{Contig: cfg.Contig, Target: target, Log: log})
	if err != nil {
		return nil, err
	}
	return eng.Run(ctx, ref, asm)
}

func fail(ctx context.Context, stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return ExitCancelled
	}
	fmt.Fprintln(stderr, err)
	return ExitFailed
}

func writeFailure(stderr io.Writer, err error) int {
	if writers.IsBrokenPipe(err) {
		return ExitOK
	}
	fmt.Fprintln(stderr, err)
	return ExitWrite
}
