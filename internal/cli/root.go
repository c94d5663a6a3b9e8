package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cargolint/internal/config"
	"github.com/roach88/cargolint/internal/verify"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// RootOptions holds the flags of the root command.
type RootOptions struct {
	Verbose bool
	Config  string // optional YAML config file

	// Flags holds the check options as given on the command line. Only
	// flags the user actually set override the config file.
	Flags config.Options

	// Verifier replaces cargo verify-project (for testing).
	// If nil, defaults to verify.NewCargo.
	Verifier verify.Verifier
}

// NewRootCommand creates the cargolint command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	opts.Flags = config.Defaults()

	cmd := &cobra.Command{
		Use:   "cargolint [flags] <target>",
		Short: "A Cargo.toml linter",
		Long: `Lint a Cargo.toml manifest for structural conventions.

Checks, in order:
  - cargo verify-project accepts the manifest
  - [dependencies] and [dev-dependencies] are sorted
  - [[test]] entries are sorted by name
  - repeated [[array]] blocks are written contiguously
  - the file ends with exactly one newline

The first failing check is reported and the command exits non-zero.

Example:
  cargolint Cargo.toml
  cargolint --no-cargo-verify -D section -T n Cargo.toml
  cargolint --config cargolint.yaml Cargo.toml`,
		Version:       Version,
		Args:          exactTarget,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(opts, args[0], cmd)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Flags.SkipVerify, config.KeySkipVerify, false, "skip cargo-based verification")
	f.VarP(&opts.Flags.SortDependencies, config.KeySortDependencies, "D",
		"require sorted dependency list (none|section|strict)")
	f.VarP(&opts.Flags.SortTests, config.KeySortTests, "T",
		"require [[test]] entries to be sorted by name (enabled|disabled)")
	f.VarP(&opts.Flags.ContiguousArrays, config.KeyContiguousArrays, "A",
		"require arrays of objects ([[foo]]) to be placed contiguously (enabled|disabled)")
	f.VarP(&opts.Flags.SingleEndOfLine, config.KeySingleEndOfLine, "N",
		"require exactly one end-of-line at end of file (enabled|disabled)")
	f.StringVarP(&opts.Config, "config", "c", "", "YAML config file with default options")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log each check to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "", err)
	})

	return cmd
}

func exactTarget(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return WrapExitError(ExitCommandError, "", err)
	}
	return nil
}

// Run executes the command line and returns the process exit code. On
// failure a single "Error: ..." line is written to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return run(ctx, &RootOptions{}, args, stdout, stderr)
}

func run(ctx context.Context, opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(stderr, "Error: %s\n", strings.TrimRight(err.Error(), "\r\n"))
	return GetExitCode(err)
}
