package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/gitauth/pkg/gitutil"
)

// Exit codes for different error types
const (
	ExitSuccess         = 0 // Successful execution
	ExitGenericError    = 1 // Generic error
	ExitConfigError     = 2 // Configuration error
	ExitValidationError = 3 // Input validation error
	ExitURLError        = 4 // Repository URL could not be parsed or built
)

// Build information, set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

// run executes the CLI with the given arguments and environment and returns
// the process exit code.
func run(args []string, stdout, stderr io.Writer, lookup gitutil.LookupFunc) int {
	rootCmd := newRootCommand(&app{lookup: lookup})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// Handle structured errors with appropriate exit codes
		var cliErr *CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(stderr, "gitauth: %s\n", cliErr.Message)
			if cliErr.Cause != nil {
				fmt.Fprintf(stderr, "  Cause: %v\n", cliErr.Cause)
			}
			return cliErr.ExitCode()
		}

		fmt.Fprintf(stderr, "gitauth: %v\n", err)
		return ExitGenericError
	}

	return ExitSuccess
}
