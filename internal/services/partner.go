package services

import (
	"time"

	"truckops-backend/internal/models"
)

func NewClientService(store Store[models.Client]) *Resource[models.Client] {
	return NewResource(store, Descriptor[models.Client]{
		Name:     "Client",
		KeyField: "name",
		Key:      func(c *models.Client) string { return c.Name },
		SetKey:   func(c *models.Client, key string) { c.Name = key },
		Timestamps: func(c *models.Client) (*time.Time, *time.Time) {
			return &c.CreatedAt, &c.UpdatedAt
		},
	})
}

func NewSupplierService(store Store[models.Supplier]) *Resource[models.Supplier] {
	return NewResource(store, Descriptor[models.Supplier]{
		Name:     "Supplier",
		KeyField: "name",
		Key:      func(s *models.Supplier) string { return s.Name },
		SetKey:   func(s *models.Supplier, key string) { s.Name = key },
		Timestamps: func(s *models.Supplier) (*time.Time, *time.Time) {
			return &s.CreatedAt, &s.UpdatedAt
		},
	})
}
