package manifest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Sentinel errors.
var (
	ErrNilInput = errors.New("nil input")
	ErrNilValue = errors.New("nil value")
)

// ParseError reports input that is not valid TOML.
type ParseError struct {
	Line int // 1-based, 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes raw into an ordered document.
func Parse(raw []byte) (*Document, error) {
	if raw == nil {
		return nil, ErrNilInput
	}

	var values map[string]any
	md, err := toml.Decode(string(raw), &values)
	if err != nil {
		perr := &ParseError{Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
		}
		return nil, perr
	}

	b := builder{order: keyOrder(md.Keys())}
	root, err := b.table(nil, values)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

// keyOrder maps every key path prefix to the position it first appears at.
func keyOrder(keys []toml.Key) map[string]int {
	order := make(map[string]int, len(keys))
	for i, k := range keys {
		for n := 1; n <= len(k); n++ {
			p := joinPath(k[:n])
			if _, ok := order[p]; !ok {
				order[p] = i
			}
		}
	}
	return order
}

// joinPath uses a separator that cannot appear in a decoded key.
func joinPath(path []string) string {
	return strings.Join(path, "\x00")
}

type builder struct {
	order map[string]int
}

func (b builder) position(path []string) (int, bool) {
	i, ok := b.order[joinPath(path)]
	return i, ok
}

func (b builder) table(path []string, m map[string]any) (*Table, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Keys the metadata does not know about go last, bytewise, so the
	// result is deterministic.
	sort.SliceStable(keys, func(i, j int) bool {
		pi, oki := b.position(append(path[:len(path):len(path)], keys[i]))
		pj, okj := b.position(append(path[:len(path):len(path)], keys[j]))
		switch {
		case oki && okj && pi != pj:
			return pi < pj
		case oki != okj:
			return oki
		default:
			return keys[i] < keys[j]
		}
	})

	t := NewTable()
	for _, k := range keys {
		child := append(path[:len(path):len(path)], k)
		n, err := b.node(child, m[k])
		if err != nil {
			return nil, err
		}
		t.Set(k, n)
	}
	return t, nil
}

// node converts a decoded value. Elements of an array share the array's
// path, matching how the decoder reports keys inside arrays of tables.
func (b builder) node(path []string, v any) (Node, error) {
	switch val := v.(type) {
	case map[string]any:
		return b.table(path, val)
	case []map[string]any:
		arr := &Array{Elems: make([]Node, 0, len(val))}
		for _, e := range val {
			n, err := b.table(path, e)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, n)
		}
		return arr, nil
	case []any:
		arr := &Array{Elems: make([]Node, 0, len(val))}
		for _, e := range val {
			n, err := b.node(path, e)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, n)
		}
		return arr, nil
	case string:
		return String(val), nil
	case nil:
		return nil, fmt.Errorf("key %q: %w", strings.Join(path, "."), ErrNilValue)
	default:
		return Scalar{Value: val}, nil
	}
}
