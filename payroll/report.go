package payroll

import (
	"io"

	"github.com/gocarina/gocsv"

	"jadwal/payroll-processor/models"
)

// ReportRow is one line of the Arabic-labeled error report.
type ReportRow struct {
	RowNumber  int    `csv:"رقم الصف"`
	EmployeeNo string `csv:"رقم الموظف"`
	FullName   string `csv:"اسم الموظف"`
	Status     string `csv:"الحالة"`
	Error      string `csv:"الخطأ"`
}

type ReportRows []ReportRow

func (rows ReportRows) ToCSV(w io.Writer) error {
	return gocsv.Marshal(rows, w)
}

// BuildErrorReport collects the rows that did not import cleanly, one
// report line per error or skip outcome.
func BuildErrorReport(result *models.ImportResult) ReportRows {
	var rows ReportRows

	for _, emp := range result.Employees {
		if emp.Outcome != models.OutcomeError && emp.Outcome != models.OutcomeSkipped {
			continue
		}

		rows = append(rows, ReportRow{
			RowNumber:  emp.RowNumber,
			EmployeeNo: emp.EmployeeNo,
			FullName:   emp.FullName,
			Status:     statusLabel(emp.Outcome),
			Error:      emp.Error,
		})
	}

	return rows
}

func statusLabel(outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeAdded:
		return "مضاف"
	case models.OutcomeUpdated:
		return "محدث"
	case models.OutcomeSkipped:
		return "متجاوز"
	case models.OutcomeError:
		return "خطأ"
	}
	return string(outcome)
}
