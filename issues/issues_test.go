package issues

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptorHasFatalErrors(t *testing.T) {
	acc := NewAcceptor()
	assert.False(t, acc.HasFatalErrors())

	acc.Add(Warn, 3, "Foo", "UNKNOWN_COLUMN_NAME", "Unable to create CueParser for column.")
	acc.Add(Error, 4, "x", "INVALID_CHANNEL", "The channel must be an integer value")
	assert.False(t, acc.HasFatalErrors())

	acc.Add(Fatal, WholeFile, "", "MISSING_HEADER_COLUMN", "Missing ID column : QLab")
	assert.True(t, acc.HasFatalErrors())
	assert.Equal(t, 3, acc.Len())
	assert.Equal(t, []string{"UNKNOWN_COLUMN_NAME", "INVALID_CHANNEL", "MISSING_HEADER_COLUMN"}, acc.Codes())
}

func TestAcceptorCountAndMax(t *testing.T) {
	var acc Acceptor

	_, ok := acc.Max()
	assert.False(t, ok, "empty acceptor has no max severity")

	acc.Add(Warn, 1, "", "A", "")
	acc.Add(Warn, 2, "", "B", "")
	acc.Add(Error, 3, "", "C", "")

	assert.Equal(t, 2, acc.Count(Warn))
	assert.Equal(t, 1, acc.Count(Error))
	assert.Equal(t, 0, acc.Count(Fatal))

	highest, ok := acc.Max()
	require.True(t, ok)
	assert.Equal(t, Error, highest)
}

func TestAcceptorIssuesIsACopy(t *testing.T) {
	acc := NewAcceptor()
	acc.Add(Info, 1, "", "NOTE", "note")

	got := acc.Issues()
	got[0].Code = "CHANGED"

	assert.Equal(t, "NOTE", acc.Issues()[0].Code)
}

func TestAcceptorMerge(t *testing.T) {
	a := NewAcceptor()
	a.Add(Warn, 1, "", "A", "")
	b := NewAcceptor()
	b.Add(Fatal, 2, "", "B", "")

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, []string{"A", "B"}, a.Codes())
	assert.True(t, a.HasFatalErrors())
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "row issue with cause",
			issue: Issue{Severity: Error, Line: 7, Cause: "x", Code: "INVALID_CHANNEL", Details: "The channel must be an integer value"},
			want:  "ERROR line 7 INVALID_CHANNEL: The channel must be an integer value (x)",
		},
		{
			name:  "whole file issue",
			issue: Issue{Severity: Fatal, Line: WholeFile, Code: "EMPTY_FILE", Details: "The file is empty"},
			want:  "FATAL EMPTY_FILE: The file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []Severity{Info, Warn, Error, Fatal} {
		got, err := ParseSeverity(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseSeverity("warning")
	require.NoError(t, err)
	assert.Equal(t, Warn, got)

	_, err = ParseSeverity("loud")
	assert.Error(t, err)
}

func TestAcceptorLog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	acc := NewAcceptor()
	acc.Add(Warn, 2, "Foo", "UNKNOWN_COLUMN_NAME", "Unable to create CueParser for column.")
	acc.Add(Fatal, WholeFile, "", "EMPTY_FILE", "The file is empty")
	acc.Log(logger)

	out := buf.String()
	assert.Contains(t, out, "UNKNOWN_COLUMN_NAME")
	assert.Contains(t, out, "Unable to create CueParser for column.")
	assert.Contains(t, out, "EMPTY_FILE")
}
