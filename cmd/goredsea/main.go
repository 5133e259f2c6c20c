package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goredsea/internal/app"
	"goredsea/internal/logging"
	"goredsea/internal/options"
)

// exitError carries a non-zero exit code out of RunE
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goredsea [OPTIONS]",
		Short: "RDS decoder",
		Long: `RDS decoder for FM multiplex signals, hex dumps and ASCII bit streams.

Reads a raw 16-bit MPX signal from stdin (or a wave file with --file),
demodulates the RDS subcarrier and prints decoded groups as JSON or hex.

Example usage:
  rtl_fm -M fm -l 0 -A std -p 0 -s 171k -g 20 -F 9 -f 87.9M | goredsea -r 171k`,
		// The option table owns the whole flag surface, including --help
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewDiagnostics(cmd.ErrOrStderr(), logging.VerboseFromEnv())

			opts := options.Parse(args, logger)
			application := app.NewApplication(opts, logger)
			if code := application.Run(cmd.OutOrStdout(), cmd.ErrOrStderr()); code != app.ExitCodeSuccess {
				return &exitError{code: code}
			}
			return nil
		},
	}
}

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if exit, ok := err.(*exitError); ok {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
