package models

// ParsedEmployee is one sheet row's fully derived snapshot. All amounts
// are plain numbers in the sheet's native currency; nothing here is
// persisted directly.
type ParsedEmployee struct {
	RowNumber  int
	EmployeeNo string
	FullName   string
	HireDate   string
	JobTitle   string
	Level      string
	Currency   Currency

	BasePay             float64
	AdminAllowance      float64
	EducationAllowance  float64
	ExperienceAllowance float64
	HousingAllowance    float64
	TransportAllowance  float64
	CostOfLiving        float64
	ChildrenAllowance   float64
	SpecialAllowance    float64
	FuelAllowance       float64

	YearsOfExperience float64
	ExperienceRate    float64
	OvertimeHours     float64
	Deductions        float64

	TotalAllowances float64
	Gross           float64
	DailyRate       float64
	HourlyRate      float64
	OvertimeValue   float64
	Net             float64

	Errors []string
}

func (p *ParsedEmployee) AddError(msg string) {
	p.Errors = append(p.Errors, msg)
}
