package services

import (
	"time"

	"truckops-backend/internal/models"
)

func NewFineService(store Store[models.Fine]) *Resource[models.Fine] {
	return NewResource(store, Descriptor[models.Fine]{
		Name:      "Fine",
		Sequenced: true,
		RecordID:  func(f *models.Fine) *int { return &f.RecordID },
		Prepare: func(f *models.Fine) {
			if f.Status == "" {
				f.Status = models.FineStatusPending
			}
		},
		Timestamps: func(f *models.Fine) (*time.Time, *time.Time) {
			return &f.CreatedAt, &f.UpdatedAt
		},
	})
}
