// Package config defines the command-line configuration of the sequence tool
// and its parsing from flags and FIBSEQ_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable the tool reads.
const EnvPrefix = "FIBSEQ_"

// SupportedShells lists the shells accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the number of terms to generate when provided up front.
	N int
	// HasN reports whether N came from a flag or the environment. When
	// false, the count is read interactively from standard input.
	HasN bool
	// Quiet suppresses the prompt and the heading, printing only the values.
	Quiet bool
	// Verbose enables debug-level diagnostics on standard error.
	Verbose bool
	// NoColor disables ANSI colors in diagnostics and the TUI.
	NoColor bool
	// TUI launches the interactive terminal interface.
	TUI bool
	// Progress shows a spinner on standard error while generating.
	Progress bool
	// Metrics dumps Prometheus metrics to standard error after the run.
	Metrics bool
	// Completion names a shell to print a completion script for.
	Completion string
	// Version requests version information.
	Version bool
}

// Validate checks the configuration for inconsistencies.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for --completion (supported: %v)", c.Completion, SupportedShells)
	}
	if c.HasN && c.N > fibonacci.MaxTerms {
		return apperrors.NewConfigError("term count %d exceeds the maximum of %d", c.N, fibonacci.MaxTerms)
	}
	if c.TUI && c.Quiet {
		return apperrors.NewConfigError("--tui and --quiet cannot be combined")
	}
	return nil
}

// ParseConfig parses command-line arguments, applies environment overrides
// for flags that were not set explicitly, and validates the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: Command-line arguments without the program name.
//   - errorWriter: Destination for flag parsing errors and usage.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a flag parsing error, or a
//     ConfigError from validation.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	var config AppConfig

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errorWriter, "Prints the first n terms of the Fibonacci sequence. Without -n the count\n")
		fmt.Fprintf(errorWriter, "is read from standard input after a prompt.\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEnvironment variables (%s prefix) apply when the flag is not set:\n", EnvPrefix)
		fmt.Fprintf(errorWriter, "  N, QUIET, VERBOSE, NO_COLOR, TUI, PROGRESS, METRICS\n")
	}

	fs.IntVar(&config.N, "n", 0, "Number of terms to generate (skips the prompt).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the values line.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug diagnostics on standard error.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored diagnostics.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive terminal interface.")
	fs.BoolVar(&config.Progress, "progress", false, "Show a spinner on standard error while generating.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Dump Prometheus metrics to standard error after the run.")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish).")
	fs.BoolVar(&config.Version, "version", false, "Show version information.")
	fs.BoolVar(&config.Version, "V", false, "Shorthand for --version.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	config.HasN = isFlagSet(fs, "n")
	applyEnvOverrides(&config, fs)

	err := config.Validate()
	if fs.NArg() > 0 {
		err = apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}
	if err != nil {
		fmt.Fprintf(errorWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return config, nil
}
