package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDependencySorting(t *testing.T) {
	tests := []struct {
		in      string
		want    DependencySorting
		wantErr bool
	}{
		{"none", SortNone, false},
		{"n", SortNone, false},
		{"d", SortNone, false},
		{"section", SortSection, false},
		{"strict", SortStrict, false},
		{"Strict", SortStrict, false},
		{"s", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDependencySorting(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDependencySortingOrder(t *testing.T) {
	assert.True(t, SortNone < SortSection)
	assert.True(t, SortSection < SortStrict)
}

func TestParseToggle(t *testing.T) {
	for _, s := range []string{"enabled", "y", "e", "E"} {
		got, err := ParseToggle(s)
		require.NoError(t, err, s)
		assert.Equal(t, Enabled, got, s)
	}
	for _, s := range []string{"disabled", "n", "d"} {
		got, err := ParseToggle(s)
		require.NoError(t, err, s)
		assert.Equal(t, Disabled, got, s)
	}
	_, err := ParseToggle("maybe")
	assert.ErrorContains(t, err, "invalid toggle")
}

func TestFlagValueInterface(t *testing.T) {
	var d DependencySorting
	require.NoError(t, d.Set("section"))
	assert.Equal(t, "section", d.String())
	assert.Equal(t, "sorting", d.Type())
	assert.Error(t, d.Set("bogus"))
	assert.Equal(t, SortSection, d, "failed Set leaves the value untouched")

	var tg Toggle
	require.NoError(t, tg.Set("y"))
	assert.Equal(t, "enabled", tg.String())
	assert.True(t, tg.On())
	assert.Equal(t, "toggle", tg.Type())
}

func TestDefaults(t *testing.T) {
	opts := Defaults()
	assert.False(t, opts.SkipVerify)
	assert.Equal(t, SortStrict, opts.SortDependencies)
	assert.Equal(t, Enabled, opts.SortTests)
	assert.Equal(t, Enabled, opts.ContiguousArrays)
	assert.Equal(t, Enabled, opts.SingleEndOfLine)
}
