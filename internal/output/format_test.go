package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatJSON, true},
		{FormatYAML, true},
		{FormatCue, true},
		{FormatTable, true},
		{FormatPlan, true},
		{OutputFormat("dir"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"", FormatTable},
		{"TABLE", FormatTable},
		{"json", FormatJSON},
		{"yml", FormatYAML},
		{" cue ", FormatCue},
		{"plan", FormatPlan},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOutputFormatUnknown(t *testing.T) {
	_, err := ParseOutputFormat("xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "table, json, yaml, cue, plan")
}
