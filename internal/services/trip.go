package services

import (
	"time"

	"truckops-backend/internal/models"
)

// NewTripService builds the trip CRUD service. Expense totals and truck
// revenue are recomputed on every create and replace.
func NewTripService(store Store[models.Trip]) *Resource[models.Trip] {
	return NewResource(store, Descriptor[models.Trip]{
		Name:      "Trip",
		Sequenced: true,
		RecordID:  func(t *models.Trip) *int { return &t.RecordID },
		Prepare:   func(t *models.Trip) { t.Recalculate() },
		Timestamps: func(t *models.Trip) (*time.Time, *time.Time) {
			return &t.CreatedAt, &t.UpdatedAt
		},
	})
}
