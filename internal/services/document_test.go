package services

import (
	"regexp"
	"testing"

	"truckops-backend/internal/models"
	"truckops-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDocumentFake() *fakeStore[models.Document] {
	return &fakeStore[models.Document]{
		match:    matchDocument,
		recordID: func(d *models.Document) int { return d.RecordID },
	}
}

// matchDocument interprets the filters DocumentService builds: parent
// type, a case-insensitive parent key regex, and optionally type or id.
func matchDocument(d *models.Document, filter bson.M) bool {
	if parentType, ok := filter["parent_type"].(string); ok && d.ParentType != parentType {
		return false
	}
	if rx, ok := filter["parent_key"].(primitive.Regex); ok {
		matched, err := regexp.MatchString("(?i)"+rx.Pattern, d.ParentKey)
		if err != nil || !matched {
			return false
		}
	}
	if docType, ok := filter["type"].(string); ok && d.Type != docType {
		return false
	}
	if id, ok := filter["record_id"].(int); ok && d.RecordID != id {
		return false
	}
	return true
}

func TestVehicleDocumentReplaceOnType(t *testing.T) {
	store := newDocumentFake()
	service := NewDocumentService(store)

	first, replaced, err := service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{
		Type:     "mulkiya",
		FileName: "mulkiya-2025.pdf",
		URL:      "/files/mulkiya-2025.pdf",
	})
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Equal(t, 1, first.RecordID)

	second, replaced, err := service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{
		Type:     "mulkiya",
		FileName: "mulkiya-2026.pdf",
		URL:      "/files/mulkiya-2026.pdf",
	})
	require.NoError(t, err)
	assert.True(t, replaced, "a second document of the same type replaces the first")
	assert.Equal(t, first.RecordID, second.RecordID)

	docs, err := service.ListForParent(models.DocumentParentTruck, "T-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "mulkiya-2026.pdf", docs[0].FileName)
}

func TestVehicleDocumentDifferentTypesCoexist(t *testing.T) {
	service := NewDocumentService(newDocumentFake())

	_, _, err := service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{Type: "mulkiya", FileName: "a.pdf"})
	require.NoError(t, err)
	_, _, err = service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{Type: "insurance", FileName: "b.pdf"})
	require.NoError(t, err)

	docs, err := service.ListForParent(models.DocumentParentTruck, "T-1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestVehicleDocumentParentsAreIsolated(t *testing.T) {
	service := NewDocumentService(newDocumentFake())

	_, _, err := service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{Type: "mulkiya", FileName: "a.pdf"})
	require.NoError(t, err)
	_, replaced, err := service.AttachVehicleDocument(models.DocumentParentTrailer, "T-1", &models.Document{Type: "mulkiya", FileName: "b.pdf"})
	require.NoError(t, err)
	assert.False(t, replaced, "a trailer with the same key is a different parent")
}

func TestDocumentListIsCaseInsensitiveOnParent(t *testing.T) {
	service := NewDocumentService(newDocumentFake())

	_, _, err := service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{Type: "mulkiya", FileName: "a.pdf"})
	require.NoError(t, err)

	docs, err := service.ListForParent(models.DocumentParentTruck, "t-1")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestEmployeeDocumentsAppend(t *testing.T) {
	service := NewDocumentService(newDocumentFake())

	_, err := service.AppendEmployeeDocument("John Doe", &models.Document{Type: "passport", FileName: "passport-old.pdf"})
	require.NoError(t, err)
	_, err = service.AppendEmployeeDocument("John Doe", &models.Document{Type: "passport", FileName: "passport-new.pdf"})
	require.NoError(t, err)

	docs, err := service.ListForParent(models.DocumentParentEmployee, "John Doe")
	require.NoError(t, err)
	assert.Len(t, docs, 2, "employee documents of the same type accumulate")
}

func TestDocumentRemoveByType(t *testing.T) {
	service := NewDocumentService(newDocumentFake())

	_, _, err := service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{Type: "mulkiya", FileName: "a.pdf"})
	require.NoError(t, err)

	require.NoError(t, service.Remove(models.DocumentParentTruck, "T-1", "mulkiya", ""))

	docs, err := service.ListForParent(models.DocumentParentTruck, "T-1")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentRemoveByID(t *testing.T) {
	service := newDocumentServiceWithTwo(t)

	require.NoError(t, service.Remove(models.DocumentParentTruck, "T-1", "", "1"))

	docs, err := service.ListForParent(models.DocumentParentTruck, "T-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 2, docs[0].RecordID)
}

func newDocumentServiceWithTwo(t *testing.T) *DocumentService {
	t.Helper()
	service := NewDocumentService(newDocumentFake())
	_, _, err := service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{Type: "mulkiya", FileName: "a.pdf"})
	require.NoError(t, err)
	_, _, err = service.AttachVehicleDocument(models.DocumentParentTruck, "T-1", &models.Document{Type: "insurance", FileName: "b.pdf"})
	require.NoError(t, err)
	return service
}

func TestDocumentRemoveRequiresSelector(t *testing.T) {
	service := NewDocumentService(newDocumentFake())

	err := service.Remove(models.DocumentParentTruck, "T-1", "", "")
	assert.ErrorIs(t, err, repository.ErrInvalidKey)
}

func TestDocumentRemoveMissing(t *testing.T) {
	service := NewDocumentService(newDocumentFake())

	err := service.Remove(models.DocumentParentTruck, "T-1", "mulkiya", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
