// Package csvfile holds the parsed form of a cue plot spreadsheet and the
// parsers that build it from CSV text or an .xlsx workbook.
package csvfile

import "strings"

// Row is one data row with the line it came from.
type Row struct {
	Fields []string
	Line   int // 1-based line (or spreadsheet row) in the source
}

// File is a parsed spreadsheet: a header row followed by data rows.
// Rows may be shorter or longer than the header; Cell hides the difference.
type File struct {
	Headers []string
	Rows    []Row

	index map[string]int
}

// NewFile builds a File. The first occurrence of a duplicated header wins.
func NewFile(headers []string, rows []Row) *File {
	f := &File{
		Headers: headers,
		Rows:    rows,
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		if _, exists := f.index[h]; !exists {
			f.index[h] = i
		}
	}
	return f
}

// HasHeader reports whether name is one of the headers (case-sensitive).
func (f *File) HasHeader(name string) bool {
	_, ok := f.HeaderIndex(name)
	return ok
}

// HeaderIndex returns the position of the named header.
func (f *File) HeaderIndex(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// Cell returns the field under column in row, or "" if either is missing.
func (f *File) Cell(row Row, column string) string {
	i, ok := f.HeaderIndex(column)
	if !ok || i >= len(row.Fields) {
		return ""
	}
	return row.Fields[i]
}

// IsBlank reports whether every field of the row is empty or whitespace.
func (r Row) IsBlank() bool {
	for _, field := range r.Fields {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
