package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Truck struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number          string             `bson:"number" json:"number" validate:"required"`
	Year            int                `bson:"year" json:"year" validate:"required,min=1980,max=2035"`
	Company         string             `bson:"company" json:"company" validate:"required"`
	Country         string             `bson:"country" json:"country" validate:"required"`
	Make            string             `bson:"make" json:"make"`
	Model           string             `bson:"model" json:"model"`
	Driver          string             `bson:"driver" json:"driver"`
	MulkiyaExpiry   *time.Time         `bson:"mulkiya_expiry,omitempty" json:"mulkiyaExpiry,omitempty"`
	InsuranceExpiry *time.Time         `bson:"insurance_expiry,omitempty" json:"insuranceExpiry,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Trailer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number        string             `bson:"number" json:"number" validate:"required"`
	Year          int                `bson:"year" json:"year" validate:"required,min=1980,max=2035"`
	Company       string             `bson:"company" json:"company" validate:"required"`
	Country       string             `bson:"country" json:"country"`
	MulkiyaExpiry *time.Time         `bson:"mulkiya_expiry,omitempty" json:"mulkiyaExpiry,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
