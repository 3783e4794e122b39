// Package importer turns loosely structured Arabic payroll spreadsheets
// into normalized employee and payroll records.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"jadwal/payroll-processor/models"
	"jadwal/payroll-processor/payroll"
	"jadwal/payroll-processor/service/workbook"
)

const previewRows = 10

// Store is the persistence interface the import consumes. It is the
// pipeline's only write boundary; the pipeline does not own storage.
type Store interface {
	FindEmployeeByNumber(ctx context.Context, employeeNo string) (*models.Employee, error)
	UpsertEmployeeByNumber(ctx context.Context, employee *models.Employee) (uint, error)
	UpsertPayrollHeader(ctx context.Context, header *models.PayrollHeader) (uint, error)
	ReplacePayrollLines(ctx context.Context, headerID uint, lines []models.PayrollLine) error
}

// Options tune one import run.
type Options struct {
	// Period is the payroll period the headers are written under,
	// formatted YYYY-MM.
	Period string
	// LegacyExperienceRate backs the experience allowance when a header
	// carries no explicit per-year rate.
	LegacyExperienceRate float64
}

type Importer struct {
	store Store
}

func New(store Store) *Importer {
	return &Importer{store: store}
}

// parseOutcome is everything the parsing stage produces before any
// persistence happens.
type parseOutcome struct {
	header     *Header
	scale      models.SalaryScale
	employees  []*models.ParsedEmployee
	errors     []string
	totalRows  int
	scaleFound bool
}

// parseSheet runs header location, scale extraction and row parsing in
// document order. Only a missing header anchor is fatal.
func parseSheet(sheet *workbook.Sheet) (*parseOutcome, error) {
	header, err := LocateHeader(sheet)
	if err != nil {
		return nil, err
	}
	log.Debugf("header row located at sheet row %d with %d mapped columns", header.Row+1, len(header.Mapping))

	scale := ExtractScale(sheet)
	if scale == nil {
		log.Warn("salary scale not found; level defaults fall back to zero")
	} else {
		log.Debugf("salary scale extracted with %d levels", len(scale))
	}

	outcome := &parseOutcome{
		header:     header,
		scale:      scale,
		scaleFound: scale != nil,
	}

	emptyRun := 0
	for row := header.Row + 1; row < sheet.Rows(); row++ {
		emp, rowErr := ParseRow(sheet.Row(row), header.Mapping, scale, row+1)
		if rowErr != nil {
			outcome.errors = append(outcome.errors, rowErr.Error())
			outcome.totalRows++
			emptyRun = 0
			continue
		}

		if emp == nil {
			emptyRun++
			if emptyRun >= 2 {
				break
			}
			continue
		}

		emptyRun = 0
		outcome.totalRows++
		outcome.employees = append(outcome.employees, emp)
	}

	return outcome, nil
}

// Preview parses the sheet without touching the store and returns the
// first rows plus a summary, for a caller to render before committing.
func Preview(sheet *workbook.Sheet) (*models.PreviewResult, error) {
	outcome, err := parseSheet(sheet)
	if err != nil {
		return nil, err
	}

	preview := make([]models.ParsedEmployee, 0, previewRows)
	for _, emp := range outcome.employees {
		if len(preview) == previewRows {
			break
		}
		preview = append(preview, *emp)
	}

	return &models.PreviewResult{
		Preview: preview,
		Summary: models.PreviewSummary{
			TotalRows:  outcome.totalRows,
			ValidRows:  len(outcome.employees),
			HeaderRow:  outcome.header.Row + 1,
			ScaleFound: outcome.scaleFound,
		},
		Errors: append(outcome.errors, validationErrors(outcome.employees)...),
	}, nil
}

// validationErrors flattens the row-degraded validation messages parsed
// rows carry. They are reported alongside the row-fatal errors but the
// rows themselves stay in the batch.
func validationErrors(employees []*models.ParsedEmployee) []string {
	var msgs []string
	for _, emp := range employees {
		for _, msg := range emp.Errors {
			msgs = append(msgs, fmt.Sprintf("row %d (%s): %s", emp.RowNumber, emp.FullName, msg))
		}
	}
	return msgs
}

// Run imports the sheet: parse, detect in-batch duplicates, then upsert
// each row through the store strictly in document order. Per-row store
// failures are recorded and the batch continues; only the missing header
// anchor aborts the run.
func (i *Importer) Run(ctx context.Context, sheet *workbook.Sheet, opts Options) (*models.ImportResult, error) {
	outcome, err := parseSheet(sheet)
	if err != nil {
		return nil, err
	}

	result := &models.ImportResult{
		BatchID:    uuid.New().String(),
		ScaleFound: outcome.scaleFound,
		Errors:     append(outcome.errors, validationErrors(outcome.employees)...),
	}
	result.Summary.TotalRows = outcome.totalRows
	result.Summary.Errors = len(outcome.errors)

	log.Infof("import batch %s: %d parsed rows, period %s", result.BatchID, len(outcome.employees), opts.Period)

	seen := make(map[string]bool)
	for _, emp := range outcome.employees {
		imported := i.importEmployee(ctx, emp, seen, opts, result.BatchID)
		result.Employees = append(result.Employees, imported)

		switch imported.Outcome {
		case models.OutcomeAdded:
			result.Summary.Added++
		case models.OutcomeUpdated:
			result.Summary.Updated++
		case models.OutcomeSkipped:
			result.Summary.Skipped++
		case models.OutcomeError:
			result.Summary.Errors++
			result.Errors = append(result.Errors, imported.Error)
		}
	}

	result.Success = result.Summary.Errors == 0 ||
		result.Summary.Added+result.Summary.Updated > 0

	log.Infof("import batch %s finished: %d added, %d updated, %d skipped, %d errors",
		result.BatchID, result.Summary.Added, result.Summary.Updated, result.Summary.Skipped, result.Summary.Errors)

	return result, nil
}

func (i *Importer) importEmployee(ctx context.Context, emp *models.ParsedEmployee, seen map[string]bool, opts Options, batchID string) models.ImportedEmployee {
	imported := models.ImportedEmployee{
		RowNumber:  emp.RowNumber,
		EmployeeNo: emp.EmployeeNo,
		FullName:   emp.FullName,
	}

	if seen[emp.EmployeeNo] {
		imported.Outcome = models.OutcomeSkipped
		imported.Error = fmt.Sprintf("duplicate employee number %s in batch", emp.EmployeeNo)
		return imported
	}
	seen[emp.EmployeeNo] = true

	existing, err := i.store.FindEmployeeByNumber(ctx, emp.EmployeeNo)
	if err != nil {
		imported.Outcome = models.OutcomeError
		imported.Error = fmt.Sprintf("row %d: find employee %s: %v", emp.RowNumber, emp.EmployeeNo, err)
		return imported
	}

	record := &models.Employee{
		EmployeeNo: emp.EmployeeNo,
		FullName:   emp.FullName,
		HireDate:   parseHireDate(emp.HireDate),
		JobTitle:   emp.JobTitle,
		Level:      emp.Level,
	}

	employeeID, err := i.store.UpsertEmployeeByNumber(ctx, record)
	if err != nil {
		imported.Outcome = models.OutcomeError
		imported.Error = fmt.Sprintf("row %d: upsert employee %s: %v", emp.RowNumber, emp.EmployeeNo, err)
		return imported
	}

	header, lines := buildPayroll(emp, employeeID, opts.Period, batchID)

	headerID, err := i.store.UpsertPayrollHeader(ctx, header)
	if err != nil {
		imported.Outcome = models.OutcomeError
		imported.Error = fmt.Sprintf("row %d: upsert payroll header for %s: %v", emp.RowNumber, emp.EmployeeNo, err)
		return imported
	}

	if err := i.store.ReplacePayrollLines(ctx, headerID, lines); err != nil {
		imported.Outcome = models.OutcomeError
		imported.Error = fmt.Sprintf("row %d: replace payroll lines for %s: %v", emp.RowNumber, emp.EmployeeNo, err)
		return imported
	}

	totals := payroll.ComputeTotals(*header, lines, opts.LegacyExperienceRate)
	imported.Net = totals.Net

	if existing == nil {
		imported.Outcome = models.OutcomeAdded
	} else {
		imported.Outcome = models.OutcomeUpdated
	}

	return imported
}

// buildPayroll maps a parsed row onto the persisted header and line
// records. The experience allowance rides on the header as rate × years
// when the numbers agree; an explicit sheet value that disagrees is kept
// verbatim as its own line instead.
func buildPayroll(emp *models.ParsedEmployee, employeeID uint, period, batchID string) (*models.PayrollHeader, []models.PayrollLine) {
	header := &models.PayrollHeader{
		EmployeeID:             employeeID,
		Period:                 period,
		BasePay:                emp.BasePay,
		BaseCurrency:           emp.Currency,
		YearsOfExperience:      emp.YearsOfExperience,
		ExperienceRate:         emp.ExperienceRate,
		ExperienceRateCurrency: emp.Currency,
		JobTitle:               emp.JobTitle,
		BatchID:                batchID,
	}

	components := []struct {
		label  string
		amount float64
	}{
		{"بدل إداري", emp.AdminAllowance},
		{"بدل تعليم", emp.EducationAllowance},
		{"بدل سكن", emp.HousingAllowance},
		{"بدل نقل", emp.TransportAllowance},
		{"غلاء معيشة", emp.CostOfLiving},
		{"بدل أولاد", emp.ChildrenAllowance},
		{"بدل خاص", emp.SpecialAllowance},
		{"بدل وقود", emp.FuelAllowance},
	}

	var lines []models.PayrollLine
	for _, c := range components {
		if c.amount == 0 {
			continue
		}
		lines = append(lines, models.PayrollLine{
			Category: models.LineAllowance,
			Label:    c.label,
			Currency: emp.Currency,
			Amount:   c.amount,
		})
	}

	if emp.ExperienceAllowance != emp.YearsOfExperience*emp.ExperienceRate {
		header.ExperienceRate = 0
		lines = append(lines, models.PayrollLine{
			Category: models.LineAllowance,
			Label:    "بدل خبرة",
			Currency: emp.Currency,
			Amount:   emp.ExperienceAllowance,
		})
	}

	if emp.OvertimeValue != 0 {
		lines = append(lines, models.PayrollLine{
			Category: models.LineException,
			Label:    "ساعات إضافية",
			Currency: emp.Currency,
			Amount:   emp.OvertimeValue,
		})
	}

	if emp.Deductions != 0 {
		lines = append(lines, models.PayrollLine{
			Category: models.LineDeduction,
			Label:    "حسميات",
			Currency: emp.Currency,
			Amount:   emp.Deductions,
		})
	}

	return header, lines
}

func parseHireDate(iso string) *time.Time {
	if iso == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return nil
	}
	return &t
}
