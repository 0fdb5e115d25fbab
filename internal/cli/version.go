// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ccheck/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ccheck version %s\n", version.Version)
		},
	}
}
