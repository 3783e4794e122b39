package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	EmployeeNo string `gorm:"uniqueIndex;not null"`
	FullName   string `gorm:"not null"`
	HireDate   *time.Time
	JobTitle   string
	Level      string
}
