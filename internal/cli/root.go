// internal/cli/root.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ccheck/internal/cliutil"
	"ccheck/internal/config"
)

// Runner analyses the input files under the effective configuration.
type Runner func(ctx context.Context, cfg config.Config, files []string) error

// NewRootCommand builds the ccheck command tree. Flags are bound to v, so
// the usual precedence applies: flags, then CCHECK_* variables, then the
// config file, then the defaults.
func NewRootCommand(v *viper.Viper, run Runner) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "ccheck [flags] <assembly.sam|bam>...",
		Short: "Quantify contamination in assemblies of ancient DNA",
		Long: `ccheck reads one or more assemblies (fragments mapped onto a consensus, as
SAM or BAM) and tries to quantify contained contamination.

The assembly consensus is aligned to the consensus of the suspected
contaminant. Where the two differ, each covering fragment tells which of
them it agrees with; fragments are counted as clean, contaminant,
conflicting or nonsensical, and the contamination rate is given with a
Wilson confidence interval.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("at least one assembly file is required")
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			used, err := config.Init(v, cfgFile)
			if err != nil {
				return &UsageError{Err: err}
			}
			if used != "" && v.GetInt("verbose") > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", used)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return &UsageError{Err: err}
			}
			if err := cfg.Validate(); err != nil {
				return &UsageError{Err: err}
			}
			files, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return &UsageError{Err: err}
			}
			return run(cmd.Context(), cfg, files)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &UsageError{Err: err} })
	root.SetGlobalNormalizationFunc(normalize)
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.ccheck/config.yaml)")

	f := root.Flags()
	f.SortFlags = false

	// Input
	f.StringP("reference", "r", "", "contaminant reference FASTA (required)")
	f.String("target", "", "FASTA of the mapping reference; fills columns no read covers")
	f.String("contig", "", "reference sequence the reads are placed on (default: first in header)")
	f.BoolP("force", "f", false, "use the named file, not the highest-numbered iteration next to it")

	// Analysis
	f.BoolP("ancient", "a", false, "treat fragments as ancient: allow C→T and G→A deamination")
	f.BoolP("transversions", "t", false, "use only transversion positions")
	f.StringP("span", "s", "", "restrict to assembly positions M-N (1-based, inclusive)")
	f.IntP("numpos", "n", 1, "diagnostic positions a fragment must cover to be classified")
	f.IntP("maxd", "d", 0, "maximum edit distance of the global alignment (0 = 10% of the longer consensus)")
	f.Int("min-strong", 40, "minimum number of strongly diagnostic positions")
	f.BoolP("foot", "F", false, "lift the --min-strong safety floor (alias --shoot)")
	f.Float64("confidence", 0.95, "confidence level of the rate interval")

	// Performance
	f.Int("threads", 0, "realignment workers (0 = all CPUs)")

	// Output
	f.StringP("output", "o", "text", "output format: text | table | json")
	f.BoolP("table", "T", false, "same as --output table")
	f.CountP("verbose", "v", "more diagnostics on stderr (repeatable, up to -vvvvvv)")
	f.Bool("progress", false, "show a progress bar while realigning")

	_ = v.BindPFlags(f)

	root.AddCommand(newVersionCommand(), newConfigCommand(v, &cfgFile))
	return root
}

// normalize maps flag aliases onto their canonical names.
func normalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "shoot" {
		name = "foot"
	}
	return pflag.NormalizedName(name)
}
