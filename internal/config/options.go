package config

import (
	"fmt"
	"strings"
)

// DependencySorting selects how dependency sections are ordered.
// Levels are ordered: SortNone < SortSection < SortStrict.
type DependencySorting int

const (
	// SortNone disables dependency ordering.
	SortNone DependencySorting = iota
	// SortSection checks raw-text order inside each section, ignoring
	// comments and blank lines.
	SortSection
	// SortStrict checks key order in the parsed table.
	SortStrict
)

// ParseDependencySorting decodes a level name or alias.
func ParseDependencySorting(s string) (DependencySorting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "n", "d":
		return SortNone, nil
	case "section":
		return SortSection, nil
	case "strict":
		return SortStrict, nil
	}
	return 0, fmt.Errorf("invalid dependency sorting %q: must be one of none, section, strict", s)
}

func (d DependencySorting) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortSection:
		return "section"
	case SortStrict:
		return "strict"
	default:
		return fmt.Sprintf("DependencySorting(%d)", int(d))
	}
}

// Set implements pflag.Value.
func (d *DependencySorting) Set(s string) error {
	v, err := ParseDependencySorting(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Type implements pflag.Value.
func (d *DependencySorting) Type() string { return "sorting" }

// Toggle switches a check on or off.
type Toggle int

const (
	Disabled Toggle = iota
	Enabled
)

// ParseToggle decodes enabled/disabled or one of their aliases
// (y, e for enabled; n, d for disabled).
func ParseToggle(s string) (Toggle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enabled", "y", "e":
		return Enabled, nil
	case "disabled", "n", "d":
		return Disabled, nil
	}
	return 0, fmt.Errorf("invalid toggle %q: must be one of enabled, disabled", s)
}

func (t Toggle) String() string {
	if t == Enabled {
		return "enabled"
	}
	return "disabled"
}

// On reports whether the toggle is enabled.
func (t Toggle) On() bool { return t == Enabled }

// Set implements pflag.Value.
func (t *Toggle) Set(s string) error {
	v, err := ParseToggle(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Type implements pflag.Value.
func (t *Toggle) Type() string { return "toggle" }

// Options selects which checks run and how strictly.
type Options struct {
	SkipVerify       bool
	SortDependencies DependencySorting
	SortTests        Toggle
	ContiguousArrays Toggle
	SingleEndOfLine  Toggle
}

// Defaults returns every check enabled at its strictest level.
func Defaults() Options {
	return Options{
		SkipVerify:       false,
		SortDependencies: SortStrict,
		SortTests:        Enabled,
		ContiguousArrays: Enabled,
		SingleEndOfLine:  Enabled,
	}
}
