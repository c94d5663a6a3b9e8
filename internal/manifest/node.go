package manifest

import "fmt"

// Kind identifies a node type.
type Kind int

const (
	KindTable Kind = iota
	KindArray
	KindString
	KindScalar
)

// String returns the TOML name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Node is a value in the document tree.
type Node interface {
	Kind() Kind
}

// Table is a mapping that preserves the order keys were written in.
type Table struct {
	keys   []string
	values map[string]Node
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]Node)}
}

func (*Table) Kind() Kind { return KindTable }

// Set adds or replaces key. A new key goes to the end of the order.
func (t *Table) Set(key string, n Node) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = n
}

// Get returns the node stored at key.
func (t *Table) Get(key string) (Node, bool) {
	n, ok := t.values[key]
	return n, ok
}

// Keys returns a copy of the keys in document order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of keys.
func (t *Table) Len() int { return len(t.keys) }

// Array is an ordered sequence of nodes.
type Array struct {
	Elems []Node
}

func (*Array) Kind() Kind { return KindArray }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.Elems) }

// String is a string value.
type String string

func (String) Kind() Kind { return KindString }

// Scalar holds any non-string leaf value as decoded.
type Scalar struct {
	Value any
}

func (Scalar) Kind() Kind { return KindScalar }

func (s Scalar) String() string { return fmt.Sprint(s.Value) }

// Document is a parsed manifest.
type Document struct {
	Root *Table
}

// Get looks up a top-level key.
func (d *Document) Get(key string) (Node, bool) {
	if d == nil || d.Root == nil {
		return nil, false
	}
	return d.Root.Get(key)
}
