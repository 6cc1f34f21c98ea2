package services

import (
	"time"

	"truckops-backend/internal/models"
)

// NewVisaService builds the visa CRUD service. A record without a
// sponsor company falls back to the house company; the outstanding
// balance starts at zero rather than null.
func NewVisaService(store Store[models.Visa]) *Resource[models.Visa] {
	return NewResource(store, Descriptor[models.Visa]{
		Name:      "Visa",
		Sequenced: true,
		RecordID:  func(v *models.Visa) *int { return &v.RecordID },
		Prepare: func(v *models.Visa) {
			if v.Company == "" {
				v.Company = models.DefaultVisaCompany
			}
		},
		Timestamps: func(v *models.Visa) (*time.Time, *time.Time) {
			return &v.CreatedAt, &v.UpdatedAt
		},
	})
}
