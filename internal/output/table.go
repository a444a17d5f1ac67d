package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/issues"
	"github.com/zenibako/qlab-csv/qlab"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderColor is the color for borders.
	BorderColor lipgloss.Color

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("240"),
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of rows added.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// RenderIssueTable renders one row per issue.
func RenderIssueTable(is []issues.Issue) string {
	t := NewTable("SEVERITY", "LINE", "CODE", "DETAILS", "CAUSE")

	for _, i := range is {
		line := "-"
		if i.Line > 0 {
			line = strconv.Itoa(i.Line)
		}
		t.Row(i.Severity.String(), line, i.Code, i.Details, i.Cause)
	}

	return t.String()
}

// RenderCueTable renders the cue tree, children indented under their group.
func RenderCueTable(cs []cues.Cue) string {
	t := NewTable("NUMBER", "NAME", "DESCRIPTION", "PRE-WAIT")

	cues.Walk(cs, func(c cues.Cue, depth int) bool {
		t.Row(c.Number(), strings.Repeat("  ", depth)+c.Name(), c.Description(), strconv.FormatFloat(c.PreWait(), 'g', -1, 64))
		return true
	})

	return t.String()
}

// RenderPlanTable renders the steps of a creation plan.
func RenderPlanTable(plan []qlab.PlannedCue) string {
	t := NewTable("STEP", "PARENT", "TYPE", "NUMBER", "NAME", "DETAIL")

	for _, p := range plan {
		parent := "-"
		if p.Parent >= 0 {
			parent = strconv.Itoa(p.Parent)
		}
		t.Row(strconv.Itoa(p.Step), parent, p.Type, p.Number, strings.Repeat("  ", p.Depth)+p.Name, p.Detail)
	}

	return t.String()
}
