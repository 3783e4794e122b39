// Package workbook reads spreadsheet data into an in-memory grid and
// coerces its loosely typed cell values.
package workbook

import (
	"jadwal/payroll-processor/service/arabic"
)

// Sheet is a rectangular grid of cell values. A cell is a string, a
// float64 or nil; absent cells read as nil.
type Sheet struct {
	Name  string
	cells [][]interface{}
	cols  int
}

func NewSheet(name string, cells [][]interface{}) *Sheet {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}

	return &Sheet{
		Name:  name,
		cells: cells,
		cols:  cols,
	}
}

// Rows returns the number of rows in the sheet's bounding range.
func (s *Sheet) Rows() int {
	return len(s.cells)
}

// Cols returns the number of columns in the sheet's bounding range.
func (s *Sheet) Cols() int {
	return s.cols
}

// Value returns the cell at (row, col), or nil when out of range.
func (s *Sheet) Value(row, col int) interface{} {
	if row < 0 || row >= len(s.cells) {
		return nil
	}
	if col < 0 || col >= len(s.cells[row]) {
		return nil
	}
	return s.cells[row][col]
}

// Row returns the ordered cell values of a row, padded with nil to the
// sheet width. Out-of-range rows yield nil.
func (s *Sheet) Row(row int) []interface{} {
	if row < 0 || row >= len(s.cells) {
		return nil
	}

	values := make([]interface{}, s.cols)
	copy(values, s.cells[row])
	return values
}

// Column returns the ordered cell values of a column, one per row.
func (s *Sheet) Column(col int) []interface{} {
	if col < 0 || col >= s.cols {
		return nil
	}

	values := make([]interface{}, len(s.cells))
	for i := range s.cells {
		values[i] = s.Value(i, col)
	}
	return values
}

// FindCell scans the sheet in row-major order and returns the position
// of the first cell whose normalized text equals the normalized search
// text.
func (s *Sheet) FindCell(text string) (row, col int, found bool) {
	want := arabic.Normalize(text)

	for i := range s.cells {
		for j := range s.cells[i] {
			value, ok := s.cells[i][j].(string)
			if !ok {
				continue
			}
			if arabic.Normalize(value) == want {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}
