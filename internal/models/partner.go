package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client and Supplier share the same contact-card shape; they live in
// separate collections because their names are independent key spaces.

type Client struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	ContactPerson string             `bson:"contact_person" json:"contactPerson"`
	Phone         string             `bson:"phone" json:"phone"`
	Email         string             `bson:"email" json:"email" validate:"omitempty,email"`
	Address       string             `bson:"address" json:"address"`
	TRN           string             `bson:"trn" json:"trn"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Supplier struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	ContactPerson string             `bson:"contact_person" json:"contactPerson"`
	Phone         string             `bson:"phone" json:"phone"`
	Email         string             `bson:"email" json:"email" validate:"omitempty,email"`
	Address       string             `bson:"address" json:"address"`
	TRN           string             `bson:"trn" json:"trn"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
