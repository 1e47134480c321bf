// pkg/dataset/excel.go
package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads an .xlsx workbook. Exactly one of Path or Reader must be
// set. The first sheet containing at least a header row and one data row is
// used; workbooks exported from the changeover system carry the dataset on
// the first sheet, but template sheets occasionally precede it.
type ExcelSource struct {
	Path   string
	Reader io.Reader
}

// Read implements Source.
func (s *ExcelSource) Read() (*Table, error) {
	f, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if table := tableFromRows(rows); table != nil {
			return table, nil
		}
	}

	return nil, errors.New("workbook contains no sheet with tabular data")
}

func (s *ExcelSource) open() (*excelize.File, error) {
	if s.Reader != nil {
		return excelize.OpenReader(s.Reader)
	}
	return excelize.OpenFile(s.Path)
}

// tableFromRows turns raw sheet rows into a Table, skipping leading blank
// rows and padding short rows out to the header width. Returns nil when the
// sheet has no header or no data.
func tableFromRows(rows [][]string) *Table {
	start := 0
	for start < len(rows) && isBlankRow(rows[start]) {
		start++
	}
	if start >= len(rows)-1 {
		return nil
	}

	headers := rows[start]
	table := &Table{Headers: headers}
	for _, row := range rows[start+1:] {
		if isBlankRow(row) {
			continue
		}
		padded := make([]string, len(headers))
		copy(padded, row)
		table.Rows = append(table.Rows, padded)
	}
	if len(table.Rows) == 0 {
		return nil
	}
	return table
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
