package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/zenibako/qlab-csv/issues"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse reads the plot at path, choosing the reader by file extension.
// sheet is only used for .xlsx workbooks; empty means the first sheet.
func Parse(path, sheet string, acc *issues.Acceptor) *File {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ParseXLSX(path, sheet, acc)
	}
	return ParseFile(path, acc)
}

// ParseFile reads a comma separated file with a header row.
// It returns nil after recording a FATAL issue when the file can't be used.
func ParseFile(path string, acc *issues.Acceptor) *File {
	content, err := os.ReadFile(path)
	if err != nil {
		acc.Add(issues.Fatal, issues.WholeFile, path, "FILE_UNREADABLE", fmt.Sprintf("Unable to read file: %v", err))
		return nil
	}
	log.Debug("Read CSV file", "path", path, "bytes", len(content))
	return parseBytes(content, acc)
}

// ParseString parses CSV text held in memory.
func ParseString(text string, acc *issues.Acceptor) *File {
	return ParseReader(strings.NewReader(text), acc)
}

// ParseReader parses CSV text from r.
func ParseReader(r io.Reader, acc *issues.Acceptor) *File {
	content, err := io.ReadAll(r)
	if err != nil {
		acc.Add(issues.Fatal, issues.WholeFile, "", "FILE_UNREADABLE", fmt.Sprintf("Unable to read input: %v", err))
		return nil
	}
	return parseBytes(content, acc)
}

func parseBytes(content []byte, acc *issues.Acceptor) *File {
	content = bytes.TrimPrefix(content, utf8BOM)
	if len(bytes.TrimSpace(content)) == 0 {
		acc.Add(issues.Fatal, issues.WholeFile, "", "EMPTY_FILE", "The file is empty")
		return nil
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if err != nil {
		acc.Add(issues.Fatal, 1, "", "MALFORMED_CSV", fmt.Sprintf("Unable to read header row: %v", err))
		return nil
	}
	if !hasName(headers) {
		acc.Add(issues.Fatal, 1, "", "EMPTY_HEADER_ROW", "The header row has no column names")
		return nil
	}
	checkHeaders(headers, 1, acc)

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				acc.Add(issues.Error, parseErr.StartLine, "", "MALFORMED_ROW", parseErr.Err.Error())
				continue
			}
			acc.Add(issues.Fatal, issues.WholeFile, "", "MALFORMED_CSV", err.Error())
			return nil
		}

		line, _ := r.FieldPos(0)
		if len(record) != len(headers) {
			acc.Add(issues.Warn, line, "", "INCONSISTENT_COLUMN_COUNT",
				fmt.Sprintf("Expected %d fields but found %d", len(headers), len(record)))
		}
		rows = append(rows, Row{Fields: record, Line: line})
	}

	log.Debug("Parsed CSV", "headers", len(headers), "rows", len(rows))
	return NewFile(headers, rows)
}

func hasName(headers []string) bool {
	for _, h := range headers {
		if strings.TrimSpace(h) != "" {
			return true
		}
	}
	return false
}

func checkHeaders(headers []string, line int, acc *issues.Acceptor) {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		if h == "" {
			continue
		}
		if seen[h] {
			acc.Add(issues.Warn, line, h, "DUPLICATE_HEADER_COLUMN", "Only the first column with this name is used")
		}
		seen[h] = true
	}
}
