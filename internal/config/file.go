package config

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// Flag names, shared by the CLI and the config file keys.
const (
	KeySkipVerify       = "no-cargo-verify"
	KeySortDependencies = "sort-dependencies"
	KeySortTests        = "sort-tests"
	KeyContiguousArrays = "contiguous-object-arrays"
	KeySingleEndOfLine  = "single-end-of-line"
)

const schemaSource = `
#Toggle: "enabled" | "e" | "y" | "disabled" | "d" | "n"

#Config: {
	"no-cargo-verify"?:          bool
	"sort-dependencies"?:        "none" | "n" | "d" | "section" | "strict"
	"sort-tests"?:               #Toggle
	"contiguous-object-arrays"?: #Toggle
	"single-end-of-line"?:       #Toggle
}
`

// FileError reports a config file that could not be read or is invalid.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// File is the decoded config file. Nil fields were not set.
type File struct {
	SkipVerify       *bool   `yaml:"no-cargo-verify"`
	SortDependencies *string `yaml:"sort-dependencies"`
	SortTests        *string `yaml:"sort-tests"`
	ContiguousArrays *string `yaml:"contiguous-object-arrays"`
	SingleEndOfLine  *string `yaml:"single-end-of-line"`
}

// LoadFile reads, validates and decodes the config file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return f, nil
}

// ParseFile validates and decodes config file contents.
func ParseFile(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if len(raw) == 0 {
		return &File{}, nil
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &f, nil
}

// validate unifies raw with the schema and reports the first error.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	v := schema.Unify(ctx.Encode(raw))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		if errs := cueerrors.Errors(err); len(errs) > 0 {
			return errors.New(errs[0].Error())
		}
		return err
	}
	return nil
}

// Apply overlays the fields set in f onto opts.
func (f *File) Apply(opts *Options) error {
	if f.SkipVerify != nil {
		opts.SkipVerify = *f.SkipVerify
	}
	if f.SortDependencies != nil {
		if err := opts.SortDependencies.Set(*f.SortDependencies); err != nil {
			return fmt.Errorf("%s: %w", KeySortDependencies, err)
		}
	}
	toggles := []struct {
		key string
		val *string
		dst *Toggle
	}{
		{KeySortTests, f.SortTests, &opts.SortTests},
		{KeyContiguousArrays, f.ContiguousArrays, &opts.ContiguousArrays},
		{KeySingleEndOfLine, f.SingleEndOfLine, &opts.SingleEndOfLine},
	}
	for _, t := range toggles {
		if t.val == nil {
			continue
		}
		if err := t.dst.Set(*t.val); err != nil {
			return fmt.Errorf("%s: %w", t.key, err)
		}
	}
	return nil
}
