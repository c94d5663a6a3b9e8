package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cargolint/internal/config"
	"github.com/roach88/cargolint/internal/manifest"
)

func mustParse(t *testing.T, src string) *manifest.Document {
	t.Helper()
	doc, err := manifest.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

const sortedDeps = `[package]
name = "demo"

[dependencies]
# serialization
anyhow = "1"

serde = { version = "1", features = ["derive"] }
# runtime
tokio = "1"

[dev-dependencies]
assert_cmd = "2"
predicates = "3"
`

func TestSectionSorted(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		header  string
		wantMsg string
	}{
		{
			name:   "sorted with comments and blanks",
			src:    sortedDeps,
			header: "[dependencies]",
		},
		{
			name:   "missing section",
			src:    "[package]\nname = \"x\"\n",
			header: "[dependencies]",
		},
		{
			name:    "unsorted",
			src:     "[dependencies]\nc = \"1\"\nb = \"1\"\n",
			header:  "[dependencies]",
			wantMsg: "not sorted correctly: b is specified after c",
		},
		{
			name:    "comment does not reset order",
			src:     "[dependencies]\nc = \"1\"\n# group two\n\nb = \"1\"\n",
			header:  "[dependencies]",
			wantMsg: "not sorted correctly: b is specified after c",
		},
		{
			name:   "next header ends the section",
			src:    "[dependencies]\na = \"1\"\n[features]\nz = []\nb = []\n",
			header: "[dependencies]",
		},
		{
			name:   "dotted sub-table is a different section",
			src:    "[dependencies]\na = \"1\"\n\n[dependencies.c]\nversion = \"1\"\n\n[dev-dependencies]\nb = \"1\"\n",
			header: "[dependencies]",
		},
		{
			name:    "dev-dependencies checked on their own",
			src:     sortedDeps + "aaa = \"1\"\n",
			header:  "[dev-dependencies]",
			wantMsg: "not sorted correctly: aaa is specified after predicates",
		},
		{
			name:   "whitespace in header ignored",
			src:    "[ dependencies ]\na = \"1\"\nb = \"1\"\n",
			header: "[dependencies]",
		},
		{
			name:   "equal keys are not a violation",
			src:    "[dependencies]\na = \"1\"\na = \"2\"\n",
			header: "[dependencies]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SectionSorted([]byte(tt.src), tt.header)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestSectionSortedReportsLine(t *testing.T) {
	err := SectionSorted([]byte("[dependencies]\nc = \"1\"\nb = \"1\"\n"), "[dependencies]")

	var v *Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, CodeUnsorted, v.Code)
	assert.Equal(t, 3, v.Line)
}

func TestTableSorted(t *testing.T) {
	doc := mustParse(t, sortedDeps)
	n, _ := doc.Get("dependencies")
	assert.NoError(t, TableSorted(n.(*manifest.Table)))

	doc = mustParse(t, "[dependencies]\nc = \"1\"\nb = \"1\"\n")
	n, _ = doc.Get("dependencies")
	err := TableSorted(n.(*manifest.Table))
	require.Error(t, err)
	assert.Equal(t, "not sorted correctly (strict): b is specified after c", err.Error())
}

func TestDependencies(t *testing.T) {
	unsorted := "[dependencies]\nc = \"1\"\nb = \"1\"\n"

	tests := []struct {
		name    string
		src     string
		mode    config.DependencySorting
		wantMsg string
	}{
		{"sorted none", sortedDeps, config.SortNone, ""},
		{"sorted section", sortedDeps, config.SortSection, ""},
		{"sorted strict", sortedDeps, config.SortStrict, ""},
		{"unsorted none", unsorted, config.SortNone, ""},
		{"unsorted section", unsorted, config.SortSection, "[dependencies] not sorted correctly: b is specified after c"},
		{"unsorted strict", unsorted, config.SortStrict, "[dependencies] not sorted correctly (strict): b is specified after c"},
		{
			name:    "dev section prefix",
			src:     "[dev-dependencies]\nz = \"1\"\ny = \"1\"\n",
			mode:    config.SortStrict,
			wantMsg: "[dev-dependencies] not sorted correctly (strict): y is specified after z",
		},
		{
			name:    "dependencies checked before dev-dependencies",
			src:     "[dev-dependencies]\nz = \"1\"\ny = \"1\"\n\n[dependencies]\nc = \"1\"\nb = \"1\"\n",
			mode:    config.SortSection,
			wantMsg: "[dependencies] not sorted correctly: b is specified after c",
		},
		{
			name:    "not a table",
			src:     "dependencies = 5\n",
			mode:    config.SortStrict,
			wantMsg: "[dependencies] should be a table",
		},
		{
			name:    "array is not a table",
			src:     "dev-dependencies = [\"a\"]\n",
			mode:    config.SortStrict,
			wantMsg: "[dev-dependencies] should be a table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Dependencies([]byte(tt.src), mustParse(t, tt.src), tt.mode)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

// Section mode only sees the literal [dependencies] block; strict mode sees
// every key of the table, wherever it was written.
func TestSectionAndStrictDisagree(t *testing.T) {
	src := `[dependencies]
a = "1"
d = "1"

[dependencies.c]
version = "1"
`
	doc := mustParse(t, src)

	assert.NoError(t, Dependencies([]byte(src), doc, config.SortSection))

	err := Dependencies([]byte(src), doc, config.SortStrict)
	require.Error(t, err)
	assert.Equal(t, "[dependencies] not sorted correctly (strict): c is specified after d", err.Error())
}

// A dotted key sorts by its full text in section mode but only by its first
// segment in strict mode.
func TestStrictAcceptsWhatSectionRejects(t *testing.T) {
	src := "[dependencies]\nb.version = \"1\"\nb-sys = \"1\"\n"
	doc := mustParse(t, src)

	err := Dependencies([]byte(src), doc, config.SortSection)
	require.Error(t, err)
	assert.Equal(t, "[dependencies] not sorted correctly: b-sys is specified after b.version", err.Error())

	assert.NoError(t, Dependencies([]byte(src), doc, config.SortStrict))
}
