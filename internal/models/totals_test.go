package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestTripRecalculate(t *testing.T) {
	trip := &Trip{
		TripRate:        500,
		DieselCost:      f(50),
		GPToll:          f(20),
		AdvanceExpenses: f(0),
		OtherExpenses:   f(0),
	}
	trip.Recalculate()

	assert.Equal(t, 70.0, trip.TotalExpenses)
	assert.Equal(t, 430.0, trip.TruckRevenue)
}

func TestTripRecalculate_MissingOptionalAmounts(t *testing.T) {
	trip := &Trip{TripRate: 1200, DieselCost: f(300)}
	trip.Recalculate()

	assert.Equal(t, 300.0, trip.TotalExpenses)
	assert.Equal(t, 900.0, trip.TruckRevenue)
	assert.Nil(t, trip.GPToll, "absent amounts stay null, they are not zero-filled")
}

func TestMaintenanceRecalculate(t *testing.T) {
	m := &Maintenance{
		CreditCard: f(100),
		Bank:       f(210),
		Cash:       f(50),
		VAT:        f(18),
	}
	m.Recalculate()

	assert.Equal(t, 378.0, m.Total)
}

func TestAccountEntryRecalculate(t *testing.T) {
	entry := &AccountEntry{Bank: f(1000), VAT: f(50)}
	entry.Recalculate()

	assert.Equal(t, 1050.0, entry.Total)
}

func TestTIRRecalculate(t *testing.T) {
	tir := &TIR{BuyPrice: 1000, SellPrice: 1500}
	tir.Recalculate()

	assert.Equal(t, 500.0, tir.Profit)
}
