package services

import (
	"time"

	"truckops-backend/internal/models"
)

func NewTrailerService(store Store[models.Trailer]) *Resource[models.Trailer] {
	return NewResource(store, Descriptor[models.Trailer]{
		Name:     "Trailer",
		KeyField: "number",
		Key:      func(t *models.Trailer) string { return t.Number },
		SetKey:   func(t *models.Trailer, key string) { t.Number = key },
		Timestamps: func(t *models.Trailer) (*time.Time, *time.Time) {
			return &t.CreatedAt, &t.UpdatedAt
		},
	})
}
