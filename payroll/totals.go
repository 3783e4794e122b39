// Package payroll aggregates payroll headers and lines into per-currency
// totals and exports run reports.
package payroll

import (
	"strings"

	"jadwal/payroll-processor/models"
	"jadwal/payroll-processor/service/arabic"
)

// indemnityMonths spreads the end-of-service accrual over a year.
const indemnityMonths = 12.0

// Totals is the per-currency aggregation of one payroll header and its
// lines. Amounts in different currencies are never added together.
type Totals struct {
	TotalAllowances  models.Money
	IndemnityMonthly models.Money
	Gross            models.Money
	TotalDeductions  models.Money
	Net              models.Money

	AdminLines       []models.PayrollLine
	EducationLines   []models.PayrollLine
	DynamicLines     []models.PayrollLine
	ExceptionalLines []models.PayrollLine
	CashLines        []models.PayrollLine
	IndemnityLines   []models.PayrollLine
	DeductionLines   []models.PayrollLine
}

// ComputeTotals runs the fixed aggregation sequence: base pay counts as
// a synthetic allowance, the experience allowance is rate × years, the
// monthly indemnity accrual is total allowances over twelve and is
// included in gross but excluded again from net — it is a provision
// shown for information, not a disbursed amount. No rounding happens
// here; display code rounds.
func ComputeTotals(header models.PayrollHeader, lines []models.PayrollLine, legacyExperienceRate float64) Totals {
	var t Totals

	t.TotalAllowances = t.TotalAllowances.AddIn(header.BaseCurrency, header.BasePay)

	rate := header.ExperienceRate
	if rate == 0 {
		rate = legacyExperienceRate
	}
	t.TotalAllowances = t.TotalAllowances.AddIn(header.ExperienceRateCurrency, rate*header.YearsOfExperience)

	for _, line := range lines {
		switch line.Category {
		case models.LineAllowance:
			// admin/education-labeled allowances and dynamic ones all
			// count the same way; the label split below is for display.
			t.TotalAllowances = t.TotalAllowances.AddIn(line.Currency, line.Amount)
		case models.LineException:
			t.ExceptionalLines = append(t.ExceptionalLines, line)
			t.TotalAllowances = t.TotalAllowances.AddIn(line.Currency, line.Amount)
		case models.LineDeduction:
			t.DeductionLines = append(t.DeductionLines, line)
			t.TotalDeductions = t.TotalDeductions.AddIn(line.Currency, line.Amount)
		case models.LineCash:
			t.CashLines = append(t.CashLines, line)
		case models.LineIndemnity:
			t.IndemnityLines = append(t.IndemnityLines, line)
		}
	}

	t.AdminLines, t.EducationLines, t.DynamicLines = SplitAllowances(lines)

	t.IndemnityMonthly = t.TotalAllowances.Div(indemnityMonths)
	t.Gross = t.TotalAllowances.Add(t.IndemnityMonthly)
	t.Net = t.Gross.Sub(t.TotalDeductions).Sub(t.IndemnityMonthly)

	return t
}

// SplitAllowances partitions allowance lines into administrative,
// education and dynamic groups by their labels.
func SplitAllowances(lines []models.PayrollLine) (admin, education, dynamic []models.PayrollLine) {
	for _, line := range lines {
		if line.Category != models.LineAllowance {
			continue
		}

		label := arabic.Normalize(line.Label)
		switch {
		case strings.Contains(label, "إداري") || strings.Contains(label, "اداري"):
			admin = append(admin, line)
		case strings.Contains(label, "تعليم"):
			education = append(education, line)
		default:
			dynamic = append(dynamic, line)
		}
	}

	return admin, education, dynamic
}
