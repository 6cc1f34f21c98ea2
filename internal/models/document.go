package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parent kinds a document can be attached to.
const (
	DocumentParentEmployee = "employee"
	DocumentParentTruck    = "truck"
	DocumentParentTrailer  = "trailer"
)

// Document is uploaded-file metadata attached to an employee, truck or
// trailer. Vehicle documents keep at most one record per (parent, type);
// employee documents are append-only.
type Document struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID   int                `bson:"record_id" json:"recordId"`
	ParentType string             `bson:"parent_type" json:"parentType"`
	ParentKey  string             `bson:"parent_key" json:"parentKey"`
	Type       string             `bson:"type" json:"type" validate:"required"`
	FileName   string             `bson:"file_name" json:"fileName" validate:"required"`
	URL        string             `bson:"url" json:"url"`
	UploadDate time.Time          `bson:"upload_date" json:"uploadDate"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}
