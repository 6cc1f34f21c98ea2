package services

import (
	"time"

	"truckops-backend/internal/models"
)

func NewAccountService(store Store[models.AccountEntry]) *Resource[models.AccountEntry] {
	return NewResource(store, Descriptor[models.AccountEntry]{
		Name:      "Account entry",
		Sequenced: true,
		RecordID:  func(a *models.AccountEntry) *int { return &a.RecordID },
		Prepare:   func(a *models.AccountEntry) { a.Recalculate() },
		Timestamps: func(a *models.AccountEntry) (*time.Time, *time.Time) {
			return &a.CreatedAt, &a.UpdatedAt
		},
	})
}
