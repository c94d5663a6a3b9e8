package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/cargolint/internal/check"
	"github.com/roach88/cargolint/internal/config"
	"github.com/roach88/cargolint/internal/lint"
	"github.com/roach88/cargolint/internal/verify"
)

func runLint(opts *RootOptions, target string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose).With("run", uuid.NewString())

	resolved, err := resolveOptions(opts, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "", err)
	}
	logger.Debug("options resolved",
		"skip_verify", resolved.SkipVerify,
		"sort_dependencies", resolved.SortDependencies,
		"sort_tests", resolved.SortTests,
		"contiguous_object_arrays", resolved.ContiguousArrays,
		"single_end_of_line", resolved.SingleEndOfLine,
	)

	lintOpts := []lint.Option{lint.WithLogger(logger)}
	if opts.Verifier != nil {
		lintOpts = append(lintOpts, lint.WithVerifier(opts.Verifier))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := lint.New(resolved, lintOpts...).LintFile(ctx, target); err != nil {
		return WrapExitError(exitCodeFor(err), "", err)
	}
	return nil
}

// resolveOptions layers defaults, the config file and explicitly set flags.
func resolveOptions(opts *RootOptions, cmd *cobra.Command) (config.Options, error) {
	resolved := config.Defaults()

	if opts.Config != "" {
		f, err := config.LoadFile(opts.Config)
		if err != nil {
			return resolved, err
		}
		if err := f.Apply(&resolved); err != nil {
			return resolved, &config.FileError{Path: opts.Config, Err: err}
		}
	}

	flags := cmd.Flags()
	if flags.Changed(config.KeySkipVerify) {
		resolved.SkipVerify = opts.Flags.SkipVerify
	}
	if flags.Changed(config.KeySortDependencies) {
		resolved.SortDependencies = opts.Flags.SortDependencies
	}
	if flags.Changed(config.KeySortTests) {
		resolved.SortTests = opts.Flags.SortTests
	}
	if flags.Changed(config.KeyContiguousArrays) {
		resolved.ContiguousArrays = opts.Flags.ContiguousArrays
	}
	if flags.Changed(config.KeySingleEndOfLine) {
		resolved.SingleEndOfLine = opts.Flags.SingleEndOfLine
	}
	return resolved, nil
}

// exitCodeFor classifies a lint error. Problems with the manifest itself
// are failures; problems running the command are command errors.
func exitCodeFor(err error) int {
	var (
		violation *check.Violation
		parseErr  *lint.ParseError
		verifyErr *verify.Error
	)
	switch {
	case errors.As(err, &violation), errors.As(err, &parseErr), errors.As(err, &verifyErr):
		return ExitFailure
	default:
		return ExitCommandError
	}
}

// newLogger logs to w; only warnings unless verbose, so a normal run
// prints nothing but the final error line.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
