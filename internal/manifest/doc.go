// Package manifest parses package manifests into an ordered document tree.
//
// Parsing is delegated to github.com/BurntSushi/toml. The decoder produces
// plain Go maps, so key order is recovered from the decoder metadata: a key
// sorts by the first position at which it, or any key nested under it,
// appears in the source. This is the insertion order of the table.
//
// The tree has four node kinds:
//
//	*Table   string keys to nodes, in document order
//	*Array   sequence of nodes (inline arrays and arrays of tables)
//	String   string values
//	Scalar   integers, floats, booleans and datetimes
//
// The document is read-only once parsed.
package manifest
