// Package templates describes how the columns of a plot turn into cues.
//
// A Template names the special columns (cue number, page, comment) and maps
// every other column it understands to a CueParser. Templates are built once
// and never changed afterwards.
package templates

import (
	"strings"

	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/issues"
)

// CueParser turns the tokens of one non-empty cell into cues. It records
// problems in acc against line and returns no cues when the cell is unusable.
type CueParser func(parts []string, preWait float64, acc *issues.Acceptor, line int) []cues.Cue

// Template represents the column layout of a plot
type Template struct {
	IDColumn      string // required; holds the cue number
	PageColumn    string // optional, "" if not used
	CommentColumn string // optional, "" if not used

	// Split breaks a cell into tokens. Empty tokens are dropped afterwards.
	Split func(cell string) []string

	// WrapSingleProducerRows decides what happens to a row where exactly one
	// column produced exactly one cue: wrap it in a group like every other
	// row (true), or hand back the bare cue carrying the row's number (false).
	WrapSingleProducerRows bool

	parsers map[string]CueParser
}

// New returns a template. parsers is copied.
func New(idColumn, pageColumn, commentColumn string, parsers map[string]CueParser) *Template {
	copied := make(map[string]CueParser, len(parsers))
	for column, parser := range parsers {
		copied[column] = parser
	}
	return &Template{
		IDColumn:      idColumn,
		PageColumn:    pageColumn,
		CommentColumn: commentColumn,
		Split:         strings.Fields,
		parsers:       copied,
	}
}

// Parser returns the parser for column.
func (t *Template) Parser(column string) (CueParser, bool) {
	p, ok := t.parsers[column]
	return p, ok
}

// Columns returns the names of the producing columns, in no particular order.
func (t *Template) Columns() []string {
	columns := make([]string, 0, len(t.parsers))
	for column := range t.parsers {
		columns = append(columns, column)
	}
	return columns
}

// IsSpecial reports whether column is the id, page or comment column.
func (t *Template) IsSpecial(column string) bool {
	if column == "" {
		return false
	}
	return column == t.IDColumn || column == t.PageColumn || column == t.CommentColumn
}

// Tokens splits a cell into its non-empty tokens.
func (t *Template) Tokens(cell string) []string {
	split := t.Split
	if split == nil {
		split = strings.Fields
	}
	var tokens []string
	for _, token := range split(cell) {
		if strings.TrimSpace(token) != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Validate warns about headers the template will ignore. Blank header names
// (a trailing comma, say) are not reported.
func (t *Template) Validate(headers []string, acc *issues.Acceptor) {
	for _, h := range headers {
		if strings.TrimSpace(h) == "" || t.IsSpecial(h) {
			continue
		}
		if _, ok := t.parsers[h]; !ok {
			acc.Add(issues.Warn, 1, h, "UNKNOWN_COLUMN_NAME", "Unable to create CueParser for column.")
		}
	}
}
