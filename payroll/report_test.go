package payroll

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadwal/payroll-processor/models"
)

func TestBuildErrorReport(t *testing.T) {
	result := &models.ImportResult{
		Employees: []models.ImportedEmployee{
			{RowNumber: 6, EmployeeNo: "07", FullName: "أحمد", Outcome: models.OutcomeAdded},
			{RowNumber: 7, EmployeeNo: "07", FullName: "أحمد", Outcome: models.OutcomeSkipped, Error: "duplicate employee number 07 in batch"},
			{RowNumber: 8, EmployeeNo: "09", FullName: "سمير", Outcome: models.OutcomeError, Error: "connection reset"},
		},
	}

	rows := BuildErrorReport(result)
	require.Len(t, rows, 2)

	assert.Equal(t, 7, rows[0].RowNumber)
	assert.Equal(t, "متجاوز", rows[0].Status)
	assert.Equal(t, "خطأ", rows[1].Status)
}

func TestReportToCSV(t *testing.T) {
	rows := ReportRows{
		{RowNumber: 7, EmployeeNo: "07", FullName: "أحمد", Status: "خطأ", Error: "connection reset"},
	}

	var b strings.Builder
	require.NoError(t, rows.ToCSV(&b))

	out := b.String()
	assert.Contains(t, out, "رقم الصف")
	assert.Contains(t, out, "اسم الموظف")
	assert.Contains(t, out, "connection reset")
}

func TestBuildErrorReportCleanRun(t *testing.T) {
	result := &models.ImportResult{
		Employees: []models.ImportedEmployee{
			{RowNumber: 6, EmployeeNo: "07", Outcome: models.OutcomeAdded},
		},
	}

	assert.Empty(t, BuildErrorReport(result))
}
