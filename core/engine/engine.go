// core/engine/engine.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"ccheck-core/classify"
	"ccheck-core/diag"
	"ccheck-core/frag"
	"ccheck-core/iupac"
	"ccheck-core/myers"
	"ccheck-core/realign"
	"ccheck-core/stats"
)

// Reference is the consensus of the suspected contaminant.
type Reference struct {
	Name string
	Seq  []byte

	rcOnce sync.Once
	rc     []byte
}

// RevComp returns the reverse complement, computed on first use.
func (r *Reference) RevComp() []byte {
	r.rcOnce.Do(func() { r.rc = iupac.RevComp(r.Seq) })
	return r.rc
}

// Assembly is a set of fragments placed on an assembly consensus.
type Assembly struct {
	Name      string
	Consensus []byte
	Fragments []frag.Fragment
}

// Config holds the analysis parameters.
type Config struct {
	Ancient       bool // allow deamination (C→T, G→A) in fragments
	Transversions bool // keep only transversion positions after pruning

	SpanFrom int // first assembly coordinate considered
	SpanTo   int // end of the span (exclusive); < 0 means unbounded

	MinDiag         int // positions a fragment must overlap to be classified
	MaxEditDistance int // global alignment bound; 0 = 10% of the longer consensus
	MinStrong       int // safety floor on strongly diagnostic positions
	Unsafe          bool
	Confidence      float64 // Wilson interval level; 0 = 0.95
	Threads         int     // realignment workers; 0 = all CPUs

	Aligner  realign.LocalAligner
	Log      Logger
	Progress Progress
}

// DefaultMinStrong is the safety floor when none is configured.
const DefaultMinStrong = 40

// DefaultConfig returns the defaults; Aligner still has to be set.
func DefaultConfig() Config {
	return Config{SpanTo: -1, MinDiag: 1, MinStrong: DefaultMinStrong, Confidence: 0.95}
}

// Engine classifies the fragments of assemblies against one reference.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine {
	if c.Log == nil {
		c.Log = nopLogger{}
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		c.Confidence = 0.95
	}
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	return &Engine{cfg: c}
}

// maxEditDistance resolves the configured bound for two sequence lengths.
func (c Config) maxEditDistance(a, b int) int {
	if c.MaxEditDistance > 0 {
		return c.MaxEditDistance
	}
	return max(a, b) / 10
}

// Run analyses one assembly.
func (e *Engine) Run(ctx context.Context, ref *Reference, asm *Assembly) (*Result, error) {
	cfg := e.cfg
	log := cfg.Log
	if cfg.Aligner == nil {
		return nil, errors.New("engine: no local aligner configured")
	}
	if err := iupac.Validate(ref.Seq); err != nil {
		return nil, fmt.Errorf("%w: reference %s: %v", ErrInvalidSequence, ref.Name, err)
	}
	if err := iupac.Validate(asm.Consensus); err != nil {
		return nil, fmt.Errorf("%w: assembly %s: %v", ErrInvalidSequence, asm.Name, err)
	}

	/* ---------------------------- global alignment ---------------------------- */
	maxd := cfg.maxEditDistance(len(ref.Seq), len(asm.Consensus))
	pair, d, err := myers.Align(ref.Seq, asm.Consensus, maxd)
	if err != nil {
		if !errors.Is(err, myers.ErrTooDivergent) {
			return nil, err
		}
		hint := ""
		if _, _, rerr := myers.Align(ref.RevComp(), asm.Consensus, maxd); rerr == nil {
			hint = "; the reverse complement of the reference does align, check the strand"
			log.Warnf("%s: reference aligns to the reverse strand of the assembly", asm.Name)
		}
		return nil, fmt.Errorf("%w with up to %d differences (raise --maxd above %d only if you know what you are doing)%s",
			ErrTooDivergent, maxd, maxd, hint)
	}
	res := &Result{Reference: ref.Name, Assembly: asm.Name, Distance: d, Pair: pair, SpanFrom: cfg.SpanFrom, SpanTo: cfg.SpanTo}

	/* ------------------------------- index ------------------------------- */
	idx := diag.Build(pair, cfg.SpanFrom, cfg.SpanTo)
	res.Differences = idx.Len()
	res.Weak, _, res.StrongBefore = idx.Counts()
	log.Debugf(3, "diagnostic positions: %v", positionList(idx.Positions()))
	if res.StrongBefore < cfg.MinStrong && !cfg.Unsafe {
		return nil, fmt.Errorf("%w: %d found, %d required (lift the floor with --foot if you are sure)",
			ErrTooFewStrong, res.StrongBefore, cfg.MinStrong)
	}

	/* ------------------------------ realignment ------------------------------ */
	frags := asm.Fragments
	valid := make([]bool, len(frags))
	total := 0
	for i := range frags {
		if err := frags[i].Validate(); err != nil {
			log.Warnf("%v; skipped", err)
			continue
		}
		valid[i] = true
		if idx.Count(frags[i].Start, frags[i].End) > 0 {
			total++
		}
	}
	store := realign.NewStore()
	defer store.Flush()

	opt := realign.Options{
		Threads: cfg.Threads,
		Want: func(i int) bool {
			return valid[i] && idx.Count(frags[i].Start, frags[i].End) > 0
		},
		OnError: func(i int, err error) {
			log.Warnf("%v; fragment skipped", err)
			res.Skipped++
		},
	}
	if cfg.Progress != nil {
		cfg.Progress.Start(total)
		opt.OnDone = cfg.Progress.Increment
	}
	err = realign.RealignAll(ctx, cfg.Aligner, pair, frags, opt, store)
	if cfg.Progress != nil {
		cfg.Progress.Finish()
	}
	if err != nil {
		return nil, err
	}
	res.Realigned = store.Len()

	cls := &classify.Classifier{
		Pair:     pair,
		Assembly: string(asm.Consensus),
		Index:    idx,
		Ancient:  cfg.Ancient,
		SpanFrom: cfg.SpanFrom,
		SpanTo:   cfg.SpanTo,
		MinDiag:  cfg.MinDiag,
		Log:      log,
	}

	/* -------------------------------- pass one -------------------------------- */
	log.Debugf(2, "Pass one: finding actually diagnostic positions.")
	for i := range frags {
		if a, ok := store.Get(i); ok {
			log.Debugf(5, "%s/%v raw:  %s", frags[i].ID, frags[i].Role, frags[i].Seq)
			log.Debugf(5, "%s/%v ref:  %s", frags[i].ID, frags[i].Role, a.RefRow())
			log.Debugf(5, "%s/%v read: %s", frags[i].ID, frags[i].Role, a.FragRow())
			res.Upgraded += cls.Discover(&frags[i], a)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Pruned = idx.Prune()
	if cfg.Transversions {
		res.Pruned += idx.Filter(func(p *diag.Position) bool {
			return iupac.Transversion(p.ContaminantBase(), p.Assembly)
		})
	}
	_, res.Effective, res.Strong = idx.Counts()
	res.Transversions = idx.Transversions()
	positions := idx.Positions()
	res.Positions = make([]diag.Position, len(positions))
	for i, p := range positions {
		res.Positions[i] = *p
	}
	log.Debugf(3, "effective positions: %v", positionList(positions))

	/* -------------------------------- pass two -------------------------------- */
	log.Debugf(2, "Pass two: classifying fragments.")
	pairer := classify.NewPairer(log)
	res.Fragments = make([]FragmentResult, 0, len(frags))
	for i := range frags {
		f := &frags[i]
		var ap *realign.Alignment
		if a, ok := store.Get(i); ok && valid[i] {
			ap = &a
		}
		v := cls.Classify(f, ap)
		final, counted := pairer.Add(f, v)
		res.Fragments = append(res.Fragments, FragmentResult{
			ID:        f.ID,
			Role:      f.Role,
			Start:     f.Start,
			End:       f.End,
			Positions: idx.Count(f.Start, f.End),
			Verdict:   v,
			Final:     final,
			Counted:   counted,
		})
	}
	for _, id := range pairer.Orphans() {
		log.Warnf("%s/b is missing its front", id)
	}
	res.Orphans = pairer.Orphans()
	res.StrongOnly = pairer.Strong
	res.Combined = pairer.Combined
	res.StrongRate = rate(pairer.Strong, cfg.Confidence)
	res.CombinedRate = rate(pairer.Combined, cfg.Confidence)
	return res, nil
}

func rate(t classify.Tally, confidence float64) stats.Interval {
	k := t[classify.Contaminant]
	return stats.Wilson(k, k+t[classify.Clean], confidence)
}
