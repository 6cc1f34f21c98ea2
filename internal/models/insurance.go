package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Insurance struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID     int                `bson:"record_id" json:"recordId"`
	TruckNumber  string             `bson:"truck_number" json:"truckNumber" validate:"required"`
	PolicyNumber string             `bson:"policy_number" json:"policyNumber" validate:"required"`
	Provider     string             `bson:"provider" json:"provider"`
	StartDate    *time.Time         `bson:"start_date,omitempty" json:"startDate,omitempty"`
	ExpiryDate   *time.Time         `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	Premium      *float64           `bson:"premium,omitempty" json:"premium,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
