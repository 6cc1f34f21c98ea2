package services

import (
	"strings"
	"time"

	"truckops-backend/internal/models"
)

// NewEmployeeService builds the employee CRUD service. Employee names
// are the natural key and are whitespace-trimmed before every compare,
// so "John Doe " and "John Doe" address the same record.
func NewEmployeeService(store Store[models.Employee]) *Resource[models.Employee] {
	return NewResource(store, Descriptor[models.Employee]{
		Name:         "Employee",
		KeyField:     "name",
		Key:          func(e *models.Employee) string { return e.Name },
		SetKey:       func(e *models.Employee, key string) { e.Name = key },
		NormalizeKey: strings.TrimSpace,
		Timestamps: func(e *models.Employee) (*time.Time, *time.Time) {
			return &e.CreatedAt, &e.UpdatedAt
		},
	})
}
