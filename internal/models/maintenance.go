package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Maintenance is a workshop bill split across payment methods.
type Maintenance struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID      int                `bson:"record_id" json:"recordId"`
	TruckNumber   string             `bson:"truck_number" json:"truckNumber" validate:"required"`
	Description   string             `bson:"description" json:"description" validate:"required"`
	ServiceCenter string             `bson:"service_center" json:"serviceCenter"`
	Date          *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	CreditCard    *float64           `bson:"credit_card,omitempty" json:"creditCard,omitempty"`
	Bank          *float64           `bson:"bank,omitempty" json:"bank,omitempty"`
	Cash          *float64           `bson:"cash,omitempty" json:"cash,omitempty"`
	VAT           *float64           `bson:"vat,omitempty" json:"vat,omitempty"`
	Total         float64            `bson:"total" json:"total"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (m *Maintenance) Recalculate() {
	m.Total = amountOf(m.CreditCard) + amountOf(m.Bank) + amountOf(m.Cash) + amountOf(m.VAT)
}
