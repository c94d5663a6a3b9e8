package check

import (
	"fmt"

	"github.com/roach88/cargolint/internal/manifest"
)

// TestsSorted checks that the top-level [[test]] array is ordered by name.
// A manifest without tests passes.
func TestsSorted(doc *manifest.Document) error {
	const header = "[[test]]"

	n, ok := doc.Get("test")
	if !ok {
		return nil
	}
	arr, ok := n.(*manifest.Array)
	if !ok {
		return &Violation{Code: CodeWrongType, Section: header, Message: "should be an array"}
	}
	return in(header, SortedByString(arr.Elems, "name"))
}

// SortedByString checks that items are tables whose string field key is
// non-decreasing across the sequence. No other field is considered.
func SortedByString(items []manifest.Node, key string) error {
	var prev string
	for i, item := range items {
		tbl, ok := item.(*manifest.Table)
		if !ok {
			return &Violation{Code: CodeWrongType, Message: fmt.Sprintf("item at %d is not a table", i)}
		}
		v, ok := tbl.Get(key)
		if !ok {
			return &Violation{Code: CodeMissingKey, Message: fmt.Sprintf("item at %d is missing key %s", i, key)}
		}
		s, ok := v.(manifest.String)
		if !ok {
			return &Violation{
				Code:    CodeNonStringValue,
				Message: fmt.Sprintf("item at %d: key %s has a non-string value", i, key),
			}
		}
		if i > 0 && prev > string(s) {
			return &Violation{
				Code: CodeUnsorted,
				Message: fmt.Sprintf("not sorted correctly: item at index %d with %s=%s is specified after %s=%s",
					i, key, s, key, prev),
			}
		}
		prev = string(s)
	}
	return nil
}
