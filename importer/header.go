package importer

import (
	"errors"

	"jadwal/payroll-processor/service/workbook"
)

// ErrHeaderNotFound means the full-name anchor label is missing from the
// sheet. Nothing can be imported without it.
var ErrHeaderNotFound = errors.New("header row not found: missing full-name column")

// Header describes the located employee header row.
type Header struct {
	Row     int
	Headers []string
	Mapping map[int]string
}

// BuildHeaders flattens a header row's cells into strings, filling the
// blanks that merged header cells leave behind: the last non-empty value
// propagates rightward into empty slots.
func BuildHeaders(cells []interface{}) []string {
	headers := make([]string, len(cells))

	last := ""
	for i, cell := range cells {
		value := workbook.CoerceString(cell)
		if value == "" {
			value = last
		} else {
			last = value
		}
		headers[i] = value
	}

	return headers
}

// MapColumns resolves each header label to a canonical key. The first
// successful mapping wins per column; unmapped columns are dropped. The
// identity keys are guarded against duplicate headers so a repeated
// name or number column cannot overwrite the first.
func MapColumns(headers []string) map[int]string {
	mapping := make(map[int]string)
	seen := make(map[string]bool)

	for col, label := range headers {
		key, ok := MapHeader(label)
		if !ok {
			continue
		}

		if key == KeyFullName || key == KeyEmployeeNo {
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		mapping[col] = key
	}

	return mapping
}

// LocateHeader finds the employee header row by searching for the
// full-name anchor label, then builds the column mapping for it.
func LocateHeader(sheet *workbook.Sheet) (*Header, error) {
	row, _, found := sheet.FindCell(anchorFullName)
	if !found {
		return nil, ErrHeaderNotFound
	}

	headers := BuildHeaders(sheet.Row(row))

	return &Header{
		Row:     row,
		Headers: headers,
		Mapping: MapColumns(headers),
	}, nil
}
