package services

import (
	"time"

	"truckops-backend/internal/models"
)

func NewPartService(store Store[models.Part]) *Resource[models.Part] {
	return NewResource(store, Descriptor[models.Part]{
		Name:      "Part",
		Sequenced: true,
		RecordID:  func(p *models.Part) *int { return &p.RecordID },
		Timestamps: func(p *models.Part) (*time.Time, *time.Time) {
			return &p.CreatedAt, &p.UpdatedAt
		},
	})
}
