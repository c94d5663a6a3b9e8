// Package lint runs the manifest checks in their fixed order.
//
// A run reads the target once, parses it, and then executes the enabled
// stages:
//
//	verify → sort-dependencies → sort-tests → contiguous-object-arrays → single-end-of-line
//
// Disabled stages are skipped, not run and ignored. The first failing stage
// ends the run and its error is the only one reported. Parsing always
// happens first: a file that is not valid TOML fails before any check,
// including the checks that only look at raw text.
package lint
