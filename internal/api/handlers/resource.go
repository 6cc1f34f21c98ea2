package handlers

import (
	"errors"
	"net/http"
	"strings"

	"truckops-backend/internal/repository"
	"truckops-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ResourceService is the CRUD contract every entity service exposes.
type ResourceService[T any] interface {
	List() ([]*T, error)
	Get(key string) (*T, error)
	Create(record *T) (*T, error)
	Replace(key string, record *T) (*T, error)
	Delete(key string) error
}

// ResourceHandler serves the collection and item routes for one entity:
// GET list, POST create, GET/PUT/DELETE by key.
type ResourceHandler[T any] struct {
	service   ResourceService[T]
	validator *validator.Validate
	name      string
	plural    string
}

func NewResourceHandler[T any](service ResourceService[T], name, plural string) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		service:   service,
		validator: validator.New(),
		name:      name,
		plural:    plural,
	}
}

// Register wires the handler's routes onto the given group.
func (h *ResourceHandler[T]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:key", h.Get)
	group.PUT("/:key", h.Update)
	group.DELETE("/:key", h.Delete)
}

// List retrieves all records; an empty store yields an empty array, not
// an error.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	records, err := h.service.List()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve "+strings.ToLower(h.plural), err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, h.plural+" retrieved successfully", records)
}

// Get retrieves a single record by key.
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, h.name+" key is required", nil)
		return
	}

	record, err := h.service.Get(key)
	if err != nil {
		h.writeError(c, err, "Failed to retrieve "+strings.ToLower(h.name))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, h.name+" retrieved successfully", record)
}

// Create validates and inserts a new record.
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	if err := h.validator.Struct(&record); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	created, err := h.service.Create(&record)
	if err != nil {
		h.writeError(c, err, "Failed to create "+strings.ToLower(h.name))
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, h.name+" created successfully", created)
}

// Update replaces the record at the path key with the request body. The
// body is the complete new state; the path key is authoritative.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, h.name+" key is required", nil)
		return
	}

	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	if err := h.validator.Struct(&record); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	updated, err := h.service.Replace(key, &record)
	if err != nil {
		h.writeError(c, err, "Failed to update "+strings.ToLower(h.name))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, h.name+" updated successfully", updated)
}

// Delete removes the record at the path key.
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, h.name+" key is required", nil)
		return
	}

	if err := h.service.Delete(key); err != nil {
		h.writeError(c, err, "Failed to delete "+strings.ToLower(h.name))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, h.name+" deleted successfully", nil)
}

func (h *ResourceHandler[T]) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, h.name+" not found", nil)
	case errors.Is(err, repository.ErrDuplicateKey):
		utils.ErrorResponse(c, http.StatusBadRequest, h.name+" already exists", nil)
	case errors.Is(err, repository.ErrInvalidKey):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+strings.ToLower(h.name)+" key", nil)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback, err)
	}
}
