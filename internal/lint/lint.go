package lint

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/roach88/cargolint/internal/check"
	"github.com/roach88/cargolint/internal/config"
	"github.com/roach88/cargolint/internal/manifest"
	"github.com/roach88/cargolint/internal/verify"
)

// Stage names, in execution order.
const (
	StageVerify           = "verify"
	StageSortDependencies = config.KeySortDependencies
	StageSortTests        = config.KeySortTests
	StageContiguousArrays = config.KeyContiguousArrays
	StageSingleEndOfLine  = config.KeySingleEndOfLine
)

// ReadError reports a target that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Could not read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a target that is not valid TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Could not parse %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Linter checks manifests according to its options.
type Linter struct {
	opts     config.Options
	verifier verify.Verifier
	logger   *slog.Logger
}

// Option configures a Linter.
type Option func(*Linter)

// WithVerifier replaces the cargo verifier.
func WithVerifier(v verify.Verifier) Option {
	return func(l *Linter) { l.verifier = v }
}

// WithLogger sets the logger used for stage progress.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) { l.logger = logger }
}

// New creates a Linter. Without options it verifies with cargo and logs
// through slog.Default.
func New(opts config.Options, options ...Option) *Linter {
	l := &Linter{
		opts:     opts,
		verifier: verify.NewCargo(),
		logger:   slog.Default(),
	}
	for _, o := range options {
		o(l)
	}
	return l
}

// LintFile reads the manifest at path and lints it.
func (l *Linter) LintFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &ReadError{Path: path, Err: err}
	}
	return l.Lint(ctx, path, raw)
}

// Lint checks raw, the contents of the manifest at path. The path is only
// used in messages and for the external verifier.
func (l *Linter) Lint(ctx context.Context, path string, raw []byte) error {
	log := l.logger.With("path", path)

	doc, err := manifest.Parse(raw)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return &ParseError{Path: path, Err: err}
	}

	for _, s := range l.stages(path, raw, doc) {
		if !s.enabled {
			log.Debug("stage skipped", "stage", s.name)
			continue
		}
		log.Debug("stage started", "stage", s.name)
		if err := s.run(ctx); err != nil {
			log.Debug("stage failed", "stage", s.name, "error", err)
			return err
		}
	}

	log.Debug("manifest ok")
	return nil
}

type stage struct {
	name    string
	enabled bool
	run     func(ctx context.Context) error
}

func (l *Linter) stages(path string, raw []byte, doc *manifest.Document) []stage {
	return []stage{
		{
			name:    StageVerify,
			enabled: !l.opts.SkipVerify,
			run: func(ctx context.Context) error {
				return l.verifier.Verify(ctx, path)
			},
		},
		{
			name:    StageSortDependencies,
			enabled: l.opts.SortDependencies != config.SortNone,
			run: func(context.Context) error {
				return check.Dependencies(raw, doc, l.opts.SortDependencies)
			},
		},
		{
			name:    StageSortTests,
			enabled: l.opts.SortTests.On(),
			run: func(context.Context) error {
				return check.TestsSorted(doc)
			},
		},
		{
			name:    StageContiguousArrays,
			enabled: l.opts.ContiguousArrays.On(),
			run: func(context.Context) error {
				return check.ContiguousArrays(raw)
			},
		},
		{
			name:    StageSingleEndOfLine,
			enabled: l.opts.SingleEndOfLine.On(),
			run: func(context.Context) error {
				return check.SingleEndOfLine(raw)
			},
		},
	}
}
