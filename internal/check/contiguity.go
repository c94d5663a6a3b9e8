package check

import (
	"fmt"

	"github.com/roach88/cargolint/internal/lines"
)

// ContiguousArrays checks that all blocks of a repeated array-of-tables
// header are written back to back.
//
// Every distinct header seen so far is remembered in order. A repeated
// [[header]] must be the most recently remembered one; otherwise another
// header came between its blocks and the most recently remembered header
// is reported. Distinct arrays may follow each other freely.
func ContiguousArrays(raw []byte) error {
	var seen []string

	for _, l := range lines.NonEmpty(raw) {
		kind := l.Header()
		if kind == lines.NotHeader {
			continue
		}
		header := l.String()

		if kind == lines.ArrayHeader {
			if i := indexOf(seen, header); i >= 0 {
				if i != len(seen)-1 {
					return &Violation{
						Code: CodeNotContiguous,
						Message: fmt.Sprintf("Items of %s are separated by other headers, for instance %s",
							header, seen[len(seen)-1]),
						Line: l.Number,
					}
				}
				continue
			}
		}
		seen = append(seen, header)
	}
	return nil
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
