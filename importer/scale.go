package importer

import (
	"jadwal/payroll-processor/models"
	"jadwal/payroll-processor/service/workbook"
)

// scaleAnchorMaxDelta is how many rows apart the level and base-pay
// anchors may sit and still describe the same grid.
const scaleAnchorMaxDelta = 2

// ExtractScale locates the salary-scale grid — a second header region
// independent of the employee table — and builds the level → defaults
// lookup. A nil result means no grid was found, which only reduces the
// defaults available to row parsing; it never fails the import.
func ExtractScale(sheet *workbook.Sheet) models.SalaryScale {
	levelRow, levelCol, found := findScaleLevelAnchor(sheet)
	if !found {
		return nil
	}

	baseRow, _, found := sheet.FindCell(anchorScaleBasePay)
	if !found {
		return nil
	}

	if delta := levelRow - baseRow; delta > scaleAnchorMaxDelta || delta < -scaleAnchorMaxDelta {
		return nil
	}

	headers := BuildHeaders(sheet.Row(levelRow))
	mapping := MapColumns(headers)

	scale := make(models.SalaryScale)
	for row := levelRow + 1; row < sheet.Rows(); row++ {
		level := workbook.PreserveIdentifier(sheet.Value(row, levelCol))
		if level == "" {
			break
		}

		scale[level] = scaleEntry(sheet.Row(row), mapping)
	}

	return scale
}

func findScaleLevelAnchor(sheet *workbook.Sheet) (row, col int, found bool) {
	for _, label := range anchorScaleLevels {
		if row, col, found = sheet.FindCell(label); found {
			return row, col, true
		}
	}
	return 0, 0, false
}

func scaleEntry(values []interface{}, mapping map[int]string) models.ScaleDefaults {
	var entry models.ScaleDefaults

	for col := 0; col < len(values); col++ {
		key, ok := mapping[col]
		if !ok {
			continue
		}

		switch key {
		case KeyBasePay:
			entry.BasePay = workbook.CoerceNumber(values[col])
		case KeyAdminAllowance:
			entry.AdminAllowance = workbook.CoerceNumber(values[col])
		case KeyEducationAllowance:
			entry.EducationAllowance = workbook.CoerceNumber(values[col])
		case KeyExperienceRate, KeyExperienceAllowance:
			entry.ExperienceRate = workbook.CoerceNumber(values[col])
		}
	}

	return entry
}
