package check

import (
	"fmt"

	"github.com/roach88/cargolint/internal/config"
	"github.com/roach88/cargolint/internal/lines"
	"github.com/roach88/cargolint/internal/manifest"
)

// DependencySections are the sections ordered by Dependencies, in check order.
var DependencySections = []string{"dependencies", "dev-dependencies"}

// Dependencies checks the ordering of every dependency section with the
// given strictness. The first unsorted section wins.
func Dependencies(raw []byte, doc *manifest.Document, mode config.DependencySorting) error {
	switch mode {
	case config.SortSection:
		for _, name := range DependencySections {
			header := "[" + name + "]"
			if err := SectionSorted(raw, header); err != nil {
				return in(header, err)
			}
		}
	case config.SortStrict:
		for _, name := range DependencySections {
			header := "[" + name + "]"
			n, ok := doc.Get(name)
			if !ok {
				continue
			}
			tbl, ok := n.(*manifest.Table)
			if !ok {
				return &Violation{Code: CodeWrongType, Section: header, Message: "should be a table"}
			}
			if err := TableSorted(tbl); err != nil {
				return in(header, err)
			}
		}
	}
	return nil
}

// SectionSorted checks that the entries written under header are in
// non-decreasing order. Only the raw text is consulted: blank lines and
// comments are skipped, and an entry's key is whatever precedes its first
// '='. The section ends at the next line starting with '['.
func SectionSorted(raw []byte, header string) error {
	inSection := false
	var prev string
	havePrev := false

	for _, l := range lines.NonEmpty(raw) {
		if !inSection {
			inSection = l.HasPrefix(header)
			continue
		}
		if l.StartsSection() {
			break
		}
		if l.Comment() {
			continue
		}

		key := l.Key()
		if havePrev && prev > key {
			return &Violation{
				Code:    CodeUnsorted,
				Message: fmt.Sprintf("not sorted correctly: %s is specified after %s", key, prev),
				Line:    l.Number,
			}
		}
		prev, havePrev = key, true
	}
	return nil
}

// TableSorted checks that the keys of t, in document order, are
// non-decreasing. Comments and layout play no part.
func TableSorted(t *manifest.Table) error {
	keys := t.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			return &Violation{
				Code:    CodeUnsorted,
				Message: fmt.Sprintf("not sorted correctly (strict): %s is specified after %s", keys[i], keys[i-1]),
			}
		}
	}
	return nil
}
