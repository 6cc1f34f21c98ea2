package services

import (
	"time"

	"truckops-backend/internal/models"
)

// NewTIRService builds the TIR CRUD service. Sale profit is recomputed
// from the buy and sell prices on every write.
func NewTIRService(store Store[models.TIR]) *Resource[models.TIR] {
	return NewResource(store, Descriptor[models.TIR]{
		Name:      "TIR",
		Sequenced: true,
		RecordID:  func(t *models.TIR) *int { return &t.RecordID },
		Prepare:   func(t *models.TIR) { t.Recalculate() },
		Timestamps: func(t *models.TIR) (*time.Time, *time.Time) {
			return &t.CreatedAt, &t.UpdatedAt
		},
	})
}
