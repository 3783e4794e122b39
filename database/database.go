// Package database provides the Postgres-backed implementation of the
// import pipeline's persistence interface.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jadwal/payroll-processor/models"
)

// Connect opens the database and migrates the persisted models. The
// handle is returned to the caller; nothing here keeps package state.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Employee{}, &models.PayrollHeader{}, &models.PayrollLine{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
