package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TIR is a transit customs document bought for a truck and sold on
// completion of the trip.
type TIR struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID    int                `bson:"record_id" json:"recordId"`
	TruckNumber string             `bson:"truck_number" json:"truckNumber" validate:"required"`
	TIRNumber   string             `bson:"tir_number" json:"tirNumber"`
	BuyPrice    float64            `bson:"buy_price" json:"buyPrice" validate:"required"`
	SellPrice   float64            `bson:"sell_price" json:"sellPrice" validate:"required"`
	Profit      float64            `bson:"profit" json:"profit"`
	Date        *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (t *TIR) Recalculate() {
	t.Profit = t.SellPrice - t.BuyPrice
}
