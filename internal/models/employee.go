package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name" validate:"required"`
	Alias            string             `bson:"alias" json:"alias" validate:"required"`
	Designation      string             `bson:"designation" json:"designation" validate:"required"`
	Salary           float64            `bson:"salary" json:"salary" validate:"required"`
	Phone            string             `bson:"phone" json:"phone"`
	Nationality      string             `bson:"nationality" json:"nationality"`
	PassportExpiry   *time.Time         `bson:"passport_expiry,omitempty" json:"passportExpiry,omitempty"`
	VisaExpiry       *time.Time         `bson:"visa_expiry,omitempty" json:"visaExpiry,omitempty"`
	JoinedDate       *time.Time         `bson:"joined_date,omitempty" json:"joinedDate,omitempty"`
	AdvanceAvailable float64            `bson:"advance_available" json:"advanceAvailable"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
