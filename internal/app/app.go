// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"ccheck/internal/appcore"
	"ccheck/internal/cli"
	"ccheck/internal/config"
	"ccheck/internal/writers"
)

// exitError carries the exit code of a finished analysis through cobra.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	cmd := cli.NewRootCommand(viper.New(), func(ctx context.Context, cfg config.Config, files []string) error {
		if code := appcore.Run(ctx, outw, stderr, cfg, files); code != appcore.ExitOK {
			return &exitError{code: code}
		}
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	code := appcore.ExitOK
	if err := cmd.ExecuteContext(parent); err != nil {
		var ee *exitError
		switch {
		case errors.As(err, &ee):
			code = ee.code
		case errors.Is(err, context.Canceled):
			code = appcore.ExitCancelled
		default:
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(stderr, "Run 'ccheck --help' for usage.")
			code = appcore.ExitUsage
		}
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitWrite
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
