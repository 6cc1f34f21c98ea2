package services

import (
	"time"

	"truckops-backend/internal/models"
)

func NewInsuranceService(store Store[models.Insurance]) *Resource[models.Insurance] {
	return NewResource(store, Descriptor[models.Insurance]{
		Name:      "Insurance",
		Sequenced: true,
		RecordID:  func(i *models.Insurance) *int { return &i.RecordID },
		Timestamps: func(i *models.Insurance) (*time.Time, *time.Time) {
			return &i.CreatedAt, &i.UpdatedAt
		},
	})
}
