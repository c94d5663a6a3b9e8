// Package lines splits raw manifest bytes into logical lines.
//
// A logical line is one newline-separated line with every ASCII whitespace
// byte removed. Checks that care about textual layout (section ordering,
// array-of-tables contiguity) work on logical lines because the parsed
// document does not keep comments, blank lines or header placement.
package lines

import "bytes"

// HeaderKind classifies a logical line as a section header.
type HeaderKind int

const (
	// NotHeader is any line that is not bracketed.
	NotHeader HeaderKind = iota
	// TableHeader is a single-bracket header such as [dependencies].
	TableHeader
	// ArrayHeader is a double-bracket header such as [[test]].
	ArrayHeader
)

// Line is a whitespace-stripped line of the source.
type Line struct {
	Number int    // 1-based line number in the source
	Text   []byte // line content without whitespace
}

// Split returns every line of raw, including empty ones, in source order.
// Lines are separated by '\n' only; a '\r' before it is stripped as whitespace.
func Split(raw []byte) []Line {
	parts := bytes.Split(raw, []byte{'\n'})
	out := make([]Line, 0, len(parts))
	for i, p := range parts {
		out = append(out, Line{Number: i + 1, Text: strip(p)})
	}
	return out
}

// NonEmpty returns the lines of raw that have content after stripping.
func NonEmpty(raw []byte) []Line {
	all := Split(raw)
	out := all[:0]
	for _, l := range all {
		if !l.Empty() {
			out = append(out, l)
		}
	}
	return out
}

func strip(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if !isSpace(c) {
			out = append(out, c)
		}
	}
	return out
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// Empty reports whether the line had only whitespace.
func (l Line) Empty() bool { return len(l.Text) == 0 }

// Comment reports whether the line is a TOML comment.
func (l Line) Comment() bool { return bytes.HasPrefix(l.Text, []byte{'#'}) }

// StartsSection reports whether the line opens any bracketed header.
func (l Line) StartsSection() bool { return bytes.HasPrefix(l.Text, []byte{'['}) }

// HasPrefix reports whether the stripped text starts with prefix.
func (l Line) HasPrefix(prefix string) bool { return bytes.HasPrefix(l.Text, []byte(prefix)) }

// Header classifies the line. Double-bracket wins over single-bracket.
func (l Line) Header() HeaderKind {
	switch {
	case bytes.HasPrefix(l.Text, []byte("[[")) && bytes.HasSuffix(l.Text, []byte("]]")):
		return ArrayHeader
	case bytes.HasPrefix(l.Text, []byte("[")) && bytes.HasSuffix(l.Text, []byte("]")):
		return TableHeader
	}
	return NotHeader
}

// Key returns the text before the first '=' (the whole line if there is none).
func (l Line) Key() string {
	if i := bytes.IndexByte(l.Text, '='); i >= 0 {
		return string(l.Text[:i])
	}
	return string(l.Text)
}

// String returns the stripped text.
func (l Line) String() string { return string(l.Text) }
