package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultVisaCompany is the sponsor used when a visa record does not
// name one.
const DefaultVisaCompany = "Jawhara Transport"

type Visa struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID           int                `bson:"record_id" json:"recordId"`
	EmployeeName       string             `bson:"employee_name" json:"employeeName" validate:"required"`
	VisaNumber         string             `bson:"visa_number" json:"visaNumber" validate:"required"`
	Company            string             `bson:"company" json:"company"`
	IssueDate          *time.Time         `bson:"issue_date,omitempty" json:"issueDate,omitempty"`
	ExpiryDate         *time.Time         `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	OutstandingBalance float64            `bson:"outstanding_balance" json:"outstandingBalance"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}
