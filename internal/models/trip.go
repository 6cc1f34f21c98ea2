package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Trip struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID        int                `bson:"record_id" json:"recordId"`
	TruckNumber     string             `bson:"truck_number" json:"truckNumber" validate:"required"`
	Driver          string             `bson:"driver" json:"driver"`
	Origin          string             `bson:"origin" json:"origin" validate:"required"`
	Destination     string             `bson:"destination" json:"destination" validate:"required"`
	Date            *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	TripRate        float64            `bson:"trip_rate" json:"tripRate" validate:"required"`
	DieselCost      *float64           `bson:"diesel_cost,omitempty" json:"dieselCost,omitempty"`
	GPToll          *float64           `bson:"gp_toll,omitempty" json:"gpToll,omitempty"`
	AdvanceExpenses *float64           `bson:"advance_expenses,omitempty" json:"advanceExpenses,omitempty"`
	OtherExpenses   *float64           `bson:"other_expenses,omitempty" json:"otherExpenses,omitempty"`
	TotalExpenses   float64            `bson:"total_expenses" json:"totalExpenses"`
	TruckRevenue    float64            `bson:"truck_revenue" json:"truckRevenue"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Recalculate refreshes the derived expense totals. Absent optional
// amounts count as zero without being stored as zero.
func (t *Trip) Recalculate() {
	t.TotalExpenses = amountOf(t.DieselCost) + amountOf(t.GPToll) +
		amountOf(t.AdvanceExpenses) + amountOf(t.OtherExpenses)
	t.TruckRevenue = t.TripRate - t.TotalExpenses
}

func amountOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
