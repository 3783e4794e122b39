package models

type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
	OutcomeError   Outcome = "error"
	OutcomeSkipped Outcome = "skipped"
)

// ImportedEmployee is the per-row outcome of an import run.
type ImportedEmployee struct {
	RowNumber  int
	EmployeeNo string
	FullName   string
	Outcome    Outcome
	Error      string
	Net        Money
}

type ImportSummary struct {
	TotalRows int
	Added     int
	Updated   int
	Errors    int
	Skipped   int
}

// ImportResult is the batch-level outcome handed back to the caller. It
// is always returned as a value, even on partial failure, so a UI can
// render a per-row outcome table.
type ImportResult struct {
	BatchID    string
	Success    bool
	Summary    ImportSummary
	Employees  []ImportedEmployee
	Errors     []string
	ScaleFound bool
}

type PreviewSummary struct {
	TotalRows  int
	ValidRows  int
	HeaderRow  int
	ScaleFound bool
}

type PreviewResult struct {
	Preview []ParsedEmployee
	Summary PreviewSummary
	Errors  []string
}
