package importer

import (
	"fmt"
	"strings"

	"jadwal/payroll-processor/models"
	"jadwal/payroll-processor/service/arabic"
	"jadwal/payroll-processor/service/workbook"
)

// Policy constants for derived pay. These are fixed business rules, not
// per-import configuration.
const (
	daysPerMonth       = 30.0
	hoursPerDay        = 8.0
	overtimeMultiplier = 1.25
)

// ParseRow turns one data row into a fully derived employee snapshot.
// A row without a name returns (nil, nil) — blank rows are the caller's
// end-of-data signal, not a fault. A row with a name but no employee
// number is excluded with an error; the batch continues.
func ParseRow(values []interface{}, mapping map[int]string, scale models.SalaryScale, rowNumber int) (*models.ParsedEmployee, error) {
	raw := extractRaw(values, mapping)

	fullName := workbook.CoerceString(raw[KeyFullName])
	if fullName == "" {
		return nil, nil
	}

	employeeNo := workbook.PreserveIdentifier(raw[KeyEmployeeNo])
	if employeeNo == "" {
		return nil, fmt.Errorf("row %d (%s): missing employee number", rowNumber, fullName)
	}

	emp := &models.ParsedEmployee{
		RowNumber:  rowNumber,
		EmployeeNo: employeeNo,
		FullName:   fullName,
		HireDate:   workbook.CoerceDate(raw[KeyHireDate]),
		JobTitle:   workbook.CoerceString(raw[KeyJobTitle]),
		Level:      workbook.PreserveIdentifier(raw[KeyLevel]),
		Currency:   parseCurrency(workbook.CoerceString(raw[KeyCurrency])),
	}

	defaults := scale.Lookup(emp.Level)

	emp.BasePay = resolveBasePay(raw[KeyBasePay], defaults)
	emp.AdminAllowance = resolveAllowance(raw[KeyAdminAllowance], defaults.AdminAllowance)
	emp.EducationAllowance = resolveAllowance(raw[KeyEducationAllowance], defaults.EducationAllowance)
	emp.YearsOfExperience = workbook.CoerceNumber(raw[KeyExperienceYears])
	emp.ExperienceRate = resolveAllowance(raw[KeyExperienceRate], defaults.ExperienceRate)
	emp.ExperienceAllowance = resolveExperienceAllowance(raw[KeyExperienceAllowance], emp.YearsOfExperience, emp.ExperienceRate)
	emp.HousingAllowance = workbook.CoerceNumber(raw[KeyHousingAllowance])
	emp.TransportAllowance = workbook.CoerceNumber(raw[KeyTransportAllowance])
	emp.CostOfLiving = workbook.CoerceNumber(raw[KeyCostOfLiving])
	emp.ChildrenAllowance = workbook.CoerceNumber(raw[KeyChildrenAllowance])
	emp.SpecialAllowance = workbook.CoerceNumber(raw[KeySpecialAllowance])
	emp.FuelAllowance = workbook.CoerceNumber(raw[KeyFuelAllowance])
	emp.OvertimeHours = workbook.CoerceNumber(raw[KeyOvertimeHours])
	emp.Deductions = workbook.CoerceNumber(raw[KeyDeductions])

	if raw[KeyHireDate] != nil && emp.HireDate == "" {
		emp.AddError(fmt.Sprintf("unparseable hire date %v", raw[KeyHireDate]))
	}
	if emp.Level != "" && scale != nil {
		if _, ok := scale[emp.Level]; !ok {
			emp.AddError(fmt.Sprintf("level %s not in salary scale", emp.Level))
		}
	}

	emp.TotalAllowances = emp.AdminAllowance + emp.EducationAllowance + emp.ExperienceAllowance +
		emp.HousingAllowance + emp.TransportAllowance + emp.CostOfLiving +
		emp.ChildrenAllowance + emp.SpecialAllowance + emp.FuelAllowance
	emp.Gross = emp.BasePay + emp.TotalAllowances
	emp.DailyRate = emp.BasePay / daysPerMonth
	emp.HourlyRate = emp.DailyRate / hoursPerDay
	emp.OvertimeValue = emp.OvertimeHours * emp.HourlyRate * overtimeMultiplier
	emp.Net = emp.Gross + emp.OvertimeValue - emp.Deductions

	return emp, nil
}

// extractRaw applies the column mapping in column order, so when a
// duplicate header maps two columns onto one key the rightmost value
// wins.
func extractRaw(values []interface{}, mapping map[int]string) map[string]interface{} {
	raw := make(map[string]interface{})

	for col := 0; col < len(values); col++ {
		key, ok := mapping[col]
		if !ok || values[col] == nil {
			continue
		}
		raw[key] = values[col]
	}

	return raw
}

// resolveBasePay resolves the base-pay default chain: the row's explicit
// value, then the level's scale default, then zero.
func resolveBasePay(explicit interface{}, defaults models.ScaleDefaults) float64 {
	if explicit != nil {
		return workbook.CoerceNumber(explicit)
	}
	return defaults.BasePay
}

// resolveAllowance resolves an allowance default chain: the row's
// explicit value, then the scale default, then zero.
func resolveAllowance(explicit interface{}, fallback float64) float64 {
	if explicit != nil {
		return workbook.CoerceNumber(explicit)
	}
	return fallback
}

// resolveExperienceAllowance resolves the experience-allowance default
// chain: the row's explicit value, then years × per-year rate.
func resolveExperienceAllowance(explicit interface{}, years, ratePerYear float64) float64 {
	if explicit != nil {
		return workbook.CoerceNumber(explicit)
	}
	return years * ratePerYear
}

func parseCurrency(value string) models.Currency {
	normalized := strings.ToLower(arabic.Normalize(value))

	if strings.Contains(normalized, "دولار") || strings.Contains(normalized, "usd") || strings.Contains(normalized, "$") {
		return models.CurrencyUSD
	}
	return models.CurrencyLocal
}
