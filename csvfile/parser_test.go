package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zenibako/qlab-csv/issues"
)

func TestParseStringKeepsLinesAndFields(t *testing.T) {
	acc := issues.NewAcceptor()
	f := ParseString("QLab,Page,Comment,LX\n1,3, Opening ,12\n\n2,4,,13 L2\n", acc)

	require.NotNil(t, f)
	assert.Equal(t, 0, acc.Len())
	assert.Equal(t, []string{"QLab", "Page", "Comment", "LX"}, f.Headers)
	require.Len(t, f.Rows, 2)

	assert.Equal(t, 2, f.Rows[0].Line)
	assert.Equal(t, " Opening ", f.Cell(f.Rows[0], "Comment"), "field text is not trimmed")
	assert.Equal(t, 4, f.Rows[1].Line, "blank lines still count towards line numbers")
	assert.Equal(t, "13 L2", f.Cell(f.Rows[1], "LX"))
}

func TestParseStringRaggedRows(t *testing.T) {
	acc := issues.NewAcceptor()
	f := ParseString("QLab,Sound,Video\n1,5\n2,6,7,8\n", acc)

	require.NotNil(t, f)
	assert.False(t, acc.HasFatalErrors())
	assert.Equal(t, []string{"INCONSISTENT_COLUMN_COUNT", "INCONSISTENT_COLUMN_COUNT"}, acc.Codes())

	assert.Equal(t, "", f.Cell(f.Rows[0], "Video"), "short rows read as empty trailing fields")
	assert.Equal(t, "7", f.Cell(f.Rows[1], "Video"))
	assert.Equal(t, "", f.Cell(f.Rows[1], "Missing"))
}

func TestParseStringQuotedFields(t *testing.T) {
	acc := issues.NewAcceptor()
	f := ParseString("QLab,Comment\n\"1.5\",\"Blackout, then\nhouse lights\"\n3,x\n", acc)

	require.NotNil(t, f)
	require.Len(t, f.Rows, 2)
	assert.Equal(t, "Blackout, then\nhouse lights", f.Cell(f.Rows[0], "Comment"))
	assert.Equal(t, 2, f.Rows[0].Line)
	assert.Equal(t, 4, f.Rows[1].Line)
}

func TestParseStringStripsBOM(t *testing.T) {
	acc := issues.NewAcceptor()
	f := ParseString("\xef\xbb\xbfQLab,LX\n1,2\n", acc)

	require.NotNil(t, f)
	assert.True(t, f.HasHeader("QLab"))
}

func TestParseStringFatal(t *testing.T) {
	tests := []struct {
		name string
		text string
		code string
	}{
		{"empty", "", "EMPTY_FILE"},
		{"whitespace only", " \n\n", "EMPTY_FILE"},
		{"blank header row", ",,\n1,2,3\n", "EMPTY_HEADER_ROW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := issues.NewAcceptor()
			f := ParseString(tt.text, acc)

			assert.Nil(t, f)
			assert.True(t, acc.HasFatalErrors())
			assert.Equal(t, []string{tt.code}, acc.Codes())
		})
	}
}

func TestParseStringDuplicateHeader(t *testing.T) {
	acc := issues.NewAcceptor()
	f := ParseString("QLab,LX,LX\n1,2,3\n", acc)

	require.NotNil(t, f)
	assert.Equal(t, []string{"DUPLICATE_HEADER_COLUMN"}, acc.Codes())
	assert.Equal(t, "2", f.Cell(f.Rows[0], "LX"), "first column with the name wins")
}

func TestFileHeaderIndex(t *testing.T) {
	f := NewFile([]string{"QLab", "LX", "LX"}, []Row{{Fields: []string{"1", "2"}, Line: 2}})

	i, ok := f.HeaderIndex("LX")
	assert.True(t, ok)
	assert.Equal(t, 1, i, "the first duplicate wins")

	_, ok = f.HeaderIndex("Sound")
	assert.False(t, ok)
	assert.False(t, f.HasHeader("Sound"))

	assert.Equal(t, "2", f.Cell(f.Rows[0], "LX"))
	assert.Equal(t, "", f.Cell(f.Rows[0], "Sound"))
}

func TestParseFileUnreadable(t *testing.T) {
	acc := issues.NewAcceptor()
	f := ParseFile(filepath.Join(t.TempDir(), "missing.csv"), acc)

	assert.Nil(t, f)
	assert.Equal(t, []string{"FILE_UNREADABLE"}, acc.Codes())
	assert.True(t, acc.HasFatalErrors())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cues.csv")
	require.NoError(t, os.WriteFile(path, []byte("QLab,Sound\r\n1,4\r\n"), 0o644))

	acc := issues.NewAcceptor()
	f := Parse(path, "", acc)

	require.NotNil(t, f)
	assert.Equal(t, 0, acc.Len())
	assert.Equal(t, "4", f.Cell(f.Rows[0], "Sound"))
}

func TestRowIsBlank(t *testing.T) {
	assert.True(t, Row{Fields: []string{"", " ", "\t"}}.IsBlank())
	assert.True(t, Row{}.IsBlank())
	assert.False(t, Row{Fields: []string{"", "1"}}.IsBlank())
}

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "plot.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestParseXLSX(t *testing.T) {
	path := writeWorkbook(t, "Plot", [][]any{
		{"QLab", "Comment", "Mute", "DCA1"},
		{"1", "Top of show", "3", ""},
		{},
		{"2", "", "", "Band 1+2"},
	})

	acc := issues.NewAcceptor()
	f := Parse(path, "", acc)

	require.NotNil(t, f)
	assert.False(t, acc.HasFatalErrors())
	assert.Equal(t, []string{"QLab", "Comment", "Mute", "DCA1"}, f.Headers)
	require.Len(t, f.Rows, 3)
	assert.Equal(t, 2, f.Rows[0].Line)
	assert.True(t, f.Rows[1].IsBlank())
	assert.Equal(t, 4, f.Rows[2].Line)
	assert.Equal(t, "Band 1+2", f.Cell(f.Rows[2], "DCA1"))
}

func TestParseXLSXMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{{"QLab"}})

	acc := issues.NewAcceptor()
	f := ParseXLSX(path, "Nope", acc)

	assert.Nil(t, f)
	assert.Equal(t, []string{"MISSING_SHEET"}, acc.Codes())
}

func TestParseXLSXUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	acc := issues.NewAcceptor()
	f := ParseXLSX(path, "", acc)

	assert.Nil(t, f)
	assert.Equal(t, []string{"FILE_UNREADABLE"}, acc.Codes())
}
