package workbook

import (
	"math"
	"strconv"
	"strings"
	"time"

	"jadwal/payroll-processor/service/arabic"
)

// Excel counts date serials from this epoch (the -2 absorbs the
// fictitious 1900-02-29).
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

const identifierMinWidth = 2

// dayFirstLayouts are tried in order against string dates. Ambiguous
// slash/dash dates are read day-first; sources mixing both conventions
// will misparse and need domain confirmation before this order changes.
// The unpadded variants follow their padded counterparts because a
// zero-padded layout digit makes time.Parse demand exactly two digits.
var dayFirstLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006-1-2",
	"2/1/2006",
	"2-1-2006",
}

// fallbackLayouts catch the stragglers after the day-first pass.
var fallbackLayouts = []string{
	"2006/01/02",
	"2006-01-02T15:04:05",
	"02/01/2006 15:04:05",
	"02.01.2006",
}

// CoerceNumber converts a heterogeneous cell value into a float64.
// Strings are normalized, stripped of thousand separators and any other
// non-numeric characters, then parsed. Non-parsable input yields 0.
func CoerceNumber(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		return parseNumber(v)
	default:
		return 0
	}
}

func parseNumber(raw string) float64 {
	cleaned := arabic.Normalize(raw)
	cleaned = strings.ReplaceAll(cleaned, "٫", ".") // arabic decimal separator

	var b strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}

	val, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// CoerceDate converts a cell value into an ISO date string. Numeric
// values are treated as spreadsheet date serials; strings are tried
// against the day-first layouts and then the fallbacks. Unparseable
// input returns "".
func CoerceDate(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return serialToDate(v)
	case int:
		return serialToDate(float64(v))
	case string:
		return parseDate(v)
	default:
		return ""
	}
}

func serialToDate(serial float64) string {
	if serial <= 0 {
		return ""
	}
	return serialEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
}

func parseDate(raw string) string {
	cleaned := arabic.Normalize(raw)
	if cleaned == "" {
		return ""
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02")
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return ""
}

// PreserveIdentifier keeps identifiers stable across numeric spreadsheet
// storage: purely numeric values are left-padded back to a minimum width
// so leading zeros survive, anything else passes through trimmed.
func PreserveIdentifier(value interface{}) string {
	var raw string

	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		raw = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		raw = arabic.Normalize(v)
	default:
		return ""
	}

	if raw == "" {
		return ""
	}

	for _, r := range raw {
		if r < '0' || r > '9' {
			return raw
		}
	}

	for len(raw) < identifierMinWidth {
		raw = "0" + raw
	}
	return raw
}

// CoerceString flattens a cell value into trimmed display text.
func CoerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
