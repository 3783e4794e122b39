package models

import (
	"gorm.io/gorm"
)

type LineCategory string

const (
	LineAllowance LineCategory = "allowance"
	LineException LineCategory = "exception"
	LineDeduction LineCategory = "deduction"
	LineCash      LineCategory = "cash"
	LineIndemnity LineCategory = "indemnity"
)

// PayrollHeader is one payroll record per employee and period.
type PayrollHeader struct {
	gorm.Model
	EmployeeID             uint   `gorm:"uniqueIndex:compositeEmployeePeriod;not null"`
	Period                 string `gorm:"uniqueIndex:compositeEmployeePeriod;not null"`
	BasePay                float64
	BaseCurrency           Currency
	YearsOfExperience      float64
	ExperienceRate         float64
	ExperienceRateCurrency Currency
	JobTitle               string
	Notes                  string
	BatchID                string
}

// PayrollLine belongs to exactly one header. Lines are replaced as a set
// on every save; there are no partial line updates.
type PayrollLine struct {
	gorm.Model
	HeaderID uint         `gorm:"index;not null"`
	Category LineCategory `gorm:"not null"`
	Label    string
	Currency Currency
	Amount   float64
}
