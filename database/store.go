package database

import (
	"context"

	"gorm.io/gorm"

	"jadwal/payroll-processor/models"
)

// Store persists employees and payroll records through gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindEmployeeByNumber(ctx context.Context, employeeNo string) (*models.Employee, error) {
	var employee models.Employee

	tx := s.db.WithContext(ctx).Where(models.Employee{EmployeeNo: employeeNo}).Limit(1).Find(&employee)
	if tx.Error != nil {
		return nil, tx.Error
	}

	if tx.RowsAffected == 0 {
		return nil, nil
	}

	return &employee, nil
}

func (s *Store) UpsertEmployeeByNumber(ctx context.Context, employee *models.Employee) (uint, error) {
	existing, err := s.FindEmployeeByNumber(ctx, employee.EmployeeNo)
	if err != nil {
		return 0, err
	}

	if existing == nil {
		if tx := s.db.WithContext(ctx).Create(employee); tx.Error != nil {
			return 0, tx.Error
		}
		return employee.ID, nil
	}

	existing.FullName = employee.FullName
	existing.JobTitle = employee.JobTitle
	existing.Level = employee.Level
	if employee.HireDate != nil {
		existing.HireDate = employee.HireDate
	}

	if tx := s.db.WithContext(ctx).Save(existing); tx.Error != nil {
		return 0, tx.Error
	}

	return existing.ID, nil
}

func (s *Store) UpsertPayrollHeader(ctx context.Context, header *models.PayrollHeader) (uint, error) {
	var existing models.PayrollHeader

	tx := s.db.WithContext(ctx).
		Where(models.PayrollHeader{EmployeeID: header.EmployeeID, Period: header.Period}).
		Limit(1).
		Find(&existing)
	if tx.Error != nil {
		return 0, tx.Error
	}

	if tx.RowsAffected == 0 {
		if tx := s.db.WithContext(ctx).Create(header); tx.Error != nil {
			return 0, tx.Error
		}
		return header.ID, nil
	}

	header.ID = existing.ID
	header.CreatedAt = existing.CreatedAt
	if tx := s.db.WithContext(ctx).Save(header); tx.Error != nil {
		return 0, tx.Error
	}

	return header.ID, nil
}

// ReplacePayrollLines swaps a header's lines as a set; there are no
// partial line updates.
func (s *Store) ReplacePayrollLines(ctx context.Context, headerID uint, lines []models.PayrollLine) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("header_id = ?", headerID).Delete(&models.PayrollLine{}).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].HeaderID = headerID
		}

		if len(lines) == 0 {
			return nil
		}

		return tx.Create(&lines).Error
	})
}
