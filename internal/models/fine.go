package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FineStatusPending = "pending"
	FineStatusPaid    = "paid"
	FineStatusWaived  = "waived"
)

type Fine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID    int                `bson:"record_id" json:"recordId"`
	TruckNumber string             `bson:"truck_number" json:"truckNumber" validate:"required"`
	Driver      string             `bson:"driver" json:"driver"`
	Amount      float64            `bson:"amount" json:"amount" validate:"required"`
	Authority   string             `bson:"authority" json:"authority"`
	Status      string             `bson:"status" json:"status" validate:"omitempty,oneof=pending paid waived"`
	TripID      *int               `bson:"trip_id,omitempty" json:"tripId,omitempty"`
	Date        *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
