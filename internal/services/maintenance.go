package services

import (
	"time"

	"truckops-backend/internal/models"
)

// NewMaintenanceService builds the maintenance CRUD service. The stored
// total is always the sum of the payment-method amounts plus VAT.
func NewMaintenanceService(store Store[models.Maintenance]) *Resource[models.Maintenance] {
	return NewResource(store, Descriptor[models.Maintenance]{
		Name:      "Maintenance record",
		Sequenced: true,
		RecordID:  func(m *models.Maintenance) *int { return &m.RecordID },
		Prepare:   func(m *models.Maintenance) { m.Recalculate() },
		Timestamps: func(m *models.Maintenance) (*time.Time, *time.Time) {
			return &m.CreatedAt, &m.UpdatedAt
		},
	})
}
