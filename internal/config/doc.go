// Package config holds the linter options and their sources.
//
// Options start from Defaults, are overlaid by an optional YAML file and
// finally by command-line flags. The YAML file uses the flag names as keys:
//
//	no-cargo-verify: true
//	sort-dependencies: section
//	sort-tests: enabled
//	contiguous-object-arrays: y
//	single-end-of-line: disabled
//
// The file is checked against an embedded CUE schema before it is decoded,
// so unknown keys and misspelled values are rejected with a position.
package config
