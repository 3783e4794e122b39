package workbook

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load opens an .xlsx workbook and reads one worksheet into a Sheet.
// An empty sheetName selects the workbook's first sheet. Raw cell values
// are requested so numbers and date serials arrive unformatted.
func Load(path string, sheetName string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return readSheet(f, sheetName)
}

// LoadReader reads a workbook from a stream, for files fetched remotely.
func LoadReader(r io.Reader, sheetName string) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readSheet(f, sheetName)
}

func readSheet(f *excelize.File, sheetName string) (*Sheet, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}

	cells := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells[i] = make([]interface{}, len(row))
		for j, raw := range row {
			cells[i][j] = typedCell(raw)
		}
	}

	return NewSheet(sheetName, cells), nil
}

// typedCell maps a raw cell string onto the sheet value model: nil for
// blanks, float64 for plain numbers, string otherwise.
func typedCell(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	// text like "007" keeps its leading zeros; only plain numbers
	// become float64
	if len(trimmed) > 1 && trimmed[0] == '0' && trimmed[1] != '.' {
		return raw
	}

	if val, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return val
	}

	return raw
}
