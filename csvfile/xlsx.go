package csvfile

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"github.com/zenibako/qlab-csv/issues"
)

// ParseXLSX reads one sheet of a workbook as if it were a CSV file.
// Row 1 is the header row and line numbers are spreadsheet row numbers.
func ParseXLSX(path, sheet string, acc *issues.Acceptor) *File {
	f, err := excelize.OpenFile(path)
	if err != nil {
		acc.Add(issues.Fatal, issues.WholeFile, path, "FILE_UNREADABLE", fmt.Sprintf("Unable to open workbook: %v", err))
		return nil
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn("Failed to close workbook", "path", path, "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			acc.Add(issues.Fatal, issues.WholeFile, path, "MISSING_SHEET", "The workbook has no sheets")
			return nil
		}
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		acc.Add(issues.Fatal, issues.WholeFile, sheet, "MISSING_SHEET", "The workbook has no sheet with this name")
		return nil
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		acc.Add(issues.Fatal, issues.WholeFile, sheet, "FILE_UNREADABLE", fmt.Sprintf("Unable to read sheet: %v", err))
		return nil
	}
	if len(records) == 0 {
		acc.Add(issues.Fatal, issues.WholeFile, sheet, "EMPTY_FILE", "The sheet is empty")
		return nil
	}

	headers := records[0]
	if !hasName(headers) {
		acc.Add(issues.Fatal, 1, "", "EMPTY_HEADER_ROW", "The header row has no column names")
		return nil
	}
	checkHeaders(headers, 1, acc)

	// excelize drops trailing empty cells, so short rows are normal here and
	// are not reported the way they are for CSV.
	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		if len(record) > len(headers) {
			acc.Add(issues.Warn, line, "", "INCONSISTENT_COLUMN_COUNT",
				fmt.Sprintf("Expected %d fields but found %d", len(headers), len(record)))
		}
		rows = append(rows, Row{Fields: record, Line: line})
	}

	log.Debug("Parsed workbook", "path", path, "sheet", sheet, "rows", len(rows))
	return NewFile(headers, rows)
}
