// Package compile turns the rows of a parsed plot into cues using a template.
package compile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/zenibako/qlab-csv/csvfile"
	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/issues"
	"github.com/zenibako/qlab-csv/templates"
)

// RowParser compiles the rows of a plot against one template.
type RowParser struct {
	template *templates.Template
}

// NewRowParser returns a RowParser for tmpl.
func NewRowParser(tmpl *templates.Template) *RowParser {
	return &RowParser{template: tmpl}
}

// Load compiles every row of file, in file order. Each row gives at most one
// cue: a group holding everything the row produced, or, when the template
// allows it, the single cue of a single-column row. Rows producing nothing
// are skipped.
//
// A missing id column is FATAL and nothing is returned. Everything else is
// recorded in acc against the row's line and the row is compiled as far as
// possible.
func (p *RowParser) Load(file *csvfile.File, acc *issues.Acceptor) []cues.Cue {
	t := p.template
	if !file.HasHeader(t.IDColumn) {
		acc.Add(issues.Fatal, 1, t.IDColumn, "MISSING_HEADER_COLUMN", "Missing ID column : "+t.IDColumn)
		return nil
	}

	columns := p.producingColumns(file)
	firstLine := make(map[string]int)

	var out []cues.Cue
	for _, row := range file.Rows {
		c := p.loadRow(file, row, columns, acc)
		if c == nil {
			continue
		}

		if number := c.Number(); strings.TrimSpace(number) != "" {
			if line, seen := firstLine[number]; seen {
				acc.Add(issues.Warn, row.Line, number, "DUPLICATE_CUE_NUMBER",
					fmt.Sprintf("Cue number already used on line %d", line))
			} else {
				firstLine[number] = row.Line
			}
		}

		log.Debug("Compiled row", "line", row.Line, "cue", c.Description())
		out = append(out, c)
	}

	log.Debug("Compiled plot", "rows", len(file.Rows), "cues", len(out))
	return out
}

// producingColumns returns the headers that have a parser, in header order.
func (p *RowParser) producingColumns(file *csvfile.File) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, h := range file.Headers {
		if seen[h] || p.template.IsSpecial(h) {
			continue
		}
		seen[h] = true
		if _, ok := p.template.Parser(h); ok {
			columns = append(columns, h)
		}
	}
	return columns
}

func (p *RowParser) loadRow(file *csvfile.File, row csvfile.Row, columns []string, acc *issues.Acceptor) cues.Cue {
	t := p.template
	const preWait = 0.0

	var produced []cues.Cue
	producers := 0
	for _, column := range columns {
		parts := t.Tokens(file.Cell(row, column))
		if len(parts) == 0 {
			continue
		}
		parser, _ := t.Parser(column)
		cs := parser(parts, preWait, acc, row.Line)
		if len(cs) > 0 {
			producers++
			produced = append(produced, cs...)
		}
	}
	if len(produced) == 0 {
		return nil
	}

	number := file.Cell(row, t.IDColumn)
	if strings.TrimSpace(number) == "" {
		acc.Add(issues.Warn, row.Line, "", "MISSING_CUE_NUMBER", "The row produced cues but has no cue number")
	}
	var comment, page string
	if t.CommentColumn != "" {
		comment = file.Cell(row, t.CommentColumn)
	}
	if t.PageColumn != "" {
		page = file.Cell(row, t.PageColumn)
	}

	if !t.WrapSingleProducerRows && producers == 1 && len(produced) == 1 {
		return cues.Identify(produced[0], number, comment)
	}
	return cues.NewGroup(number, comment, page, produced)
}
