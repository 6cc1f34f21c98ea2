package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Part is an inventory spare-part line.
type Part struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID    int                `bson:"record_id" json:"recordId"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Quantity    int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	UnitPrice   *float64           `bson:"unit_price,omitempty" json:"unitPrice,omitempty"`
	Supplier    string             `bson:"supplier" json:"supplier"`
	TruckNumber string             `bson:"truck_number" json:"truckNumber"`
	Notes       string             `bson:"notes" json:"notes"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
