// Package check implements the structural manifest checks.
//
// Each check is independent and returns nil or a *Violation describing the
// first problem it finds. Checks never modify their inputs.
//
// Two kinds of input are used:
//   - raw bytes, for questions about textual layout (section ordering that
//     tolerates comments and blank lines, array-of-tables contiguity, the
//     trailing newline), scanned with package lines;
//   - the parsed document, for questions about structure (strict key order,
//     the [[test]] array).
//
// The two are kept separate on purpose: section ordering must see comments
// and blank lines to ignore them, which the parsed tree cannot provide.
package check
