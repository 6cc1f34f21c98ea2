package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountEntry is a miscellaneous accounting line outside the other
// entity families, split across payment methods like a maintenance bill.
type AccountEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID    int                `bson:"record_id" json:"recordId"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Date        *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	CreditCard  *float64           `bson:"credit_card,omitempty" json:"creditCard,omitempty"`
	Bank        *float64           `bson:"bank,omitempty" json:"bank,omitempty"`
	Cash        *float64           `bson:"cash,omitempty" json:"cash,omitempty"`
	VAT         *float64           `bson:"vat,omitempty" json:"vat,omitempty"`
	Total       float64            `bson:"total" json:"total"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (a *AccountEntry) Recalculate() {
	a.Total = amountOf(a.CreditCard) + amountOf(a.Bank) + amountOf(a.Cash) + amountOf(a.VAT)
}
