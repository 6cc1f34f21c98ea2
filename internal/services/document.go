package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"truckops-backend/internal/models"
	"truckops-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentService manages uploaded-file metadata attached to employees,
// trucks and trailers. Parent keys match case-insensitively. Vehicle
// documents keep one record per (parent, type); employee documents are
// append-only.
type DocumentService struct {
	store Store[models.Document]
}

func NewDocumentService(store Store[models.Document]) *DocumentService {
	return &DocumentService{store: store}
}

func (s *DocumentService) ListForParent(parentType, parentKey string) ([]*models.Document, error) {
	return s.store.Find(parentFilter(parentType, parentKey))
}

// AttachVehicleDocument stores document metadata for a truck or trailer.
// A second document of the same type for the same parent replaces the
// first, last write wins per type. The returned flag reports whether an
// existing record was replaced.
func (s *DocumentService) AttachVehicleDocument(parentType, parentKey string, doc *models.Document) (*models.Document, bool, error) {
	doc.ParentType = parentType
	doc.ParentKey = parentKey

	filter := parentFilter(parentType, parentKey)
	filter["type"] = doc.Type

	existing, err := s.store.FindOne(filter)
	if err != nil && err != repository.ErrNotFound {
		return nil, false, err
	}

	now := time.Now()
	doc.UploadDate = now
	doc.UpdatedAt = now

	if existing != nil {
		doc.RecordID = existing.RecordID
		doc.CreatedAt = existing.CreatedAt
		replaced, err := s.store.Replace(filter, doc)
		return replaced, true, err
	}

	id, err := s.store.NextRecordID()
	if err != nil {
		return nil, false, err
	}
	doc.RecordID = id
	doc.CreatedAt = now

	created, err := s.store.Insert(doc)
	return created, false, err
}

// AppendEmployeeDocument always appends; an employee may hold several
// documents of the same type.
func (s *DocumentService) AppendEmployeeDocument(employeeName string, doc *models.Document) (*models.Document, error) {
	doc.ParentType = models.DocumentParentEmployee
	doc.ParentKey = strings.TrimSpace(employeeName)

	id, err := s.store.NextRecordID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc.RecordID = id
	doc.UploadDate = now
	doc.CreatedAt = now
	doc.UpdatedAt = now

	return s.store.Insert(doc)
}

// Remove deletes the first document matching the given type or id for
// the parent. Exactly one of docType and id must be set.
func (s *DocumentService) Remove(parentType, parentKey, docType, id string) error {
	filter := parentFilter(parentType, parentKey)

	switch {
	case id != "":
		recordID, err := strconv.Atoi(id)
		if err != nil {
			return repository.ErrInvalidKey
		}
		filter["record_id"] = recordID
	case docType != "":
		filter["type"] = docType
	default:
		return repository.ErrInvalidKey
	}

	return s.store.Delete(filter)
}

func parentFilter(parentType, parentKey string) bson.M {
	pattern := "^" + regexp.QuoteMeta(strings.TrimSpace(parentKey)) + "$"
	return bson.M{
		"parent_type": parentType,
		"parent_key":  primitive.Regex{Pattern: pattern, Options: "i"},
	}
}
