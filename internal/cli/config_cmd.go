// internal/cli/config_cmd.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"ccheck/internal/config"
)

const hierarchy = `Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (CCHECK_*, e.g. CCHECK_MIN_STRONG)
  3. Config file (~/.ccheck/config.yaml or --config)
  4. Defaults`

func newConfigCommand(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ccheck configuration",
		Long:  "Manage ccheck configuration files and settings.\n\n" + hierarchy,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if used := v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n", used)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "No configuration file found (using defaults)")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long:  "Create a configuration file holding every option at its default,\nat ~/.ccheck/config.yaml or the path given by --config.",
		Args:  cobra.NoArgs,
		// The file may not exist yet, so nothing is read before running.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			path := *cfgFile
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s\nUse 'ccheck config show' to view it, or delete it first to recreate", path)
			}
			data, err := yaml.Marshal(config.Default())
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("error creating config directory: %w", err)
			}
			header := "# ccheck configuration file\n#\n"
			for _, l := range strings.Split(hierarchy, "\n") {
				header += "# " + l + "\n"
			}
			if err := os.WriteFile(path, append([]byte(header+"\n"), data...), 0o644); err != nil {
				return fmt.Errorf("error writing config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.AddCommand(showCmd, initCmd)
	return cmd
}
