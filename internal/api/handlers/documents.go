package handlers

import (
	"errors"
	"net/http"
	"path"

	"truckops-backend/internal/models"
	"truckops-backend/internal/repository"
	"truckops-backend/internal/services"
	"truckops-backend/pkg/upload"
	"truckops-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// VehicleDocumentHandler serves the nested document routes for trucks
// and trailers. Posting a second document of the same type replaces the
// first one.
type VehicleDocumentHandler struct {
	service    *services.DocumentService
	validator  *validator.Validate
	parentType string
}

func NewVehicleDocumentHandler(service *services.DocumentService, parentType string) *VehicleDocumentHandler {
	return &VehicleDocumentHandler{
		service:    service,
		validator:  validator.New(),
		parentType: parentType,
	}
}

func (h *VehicleDocumentHandler) Register(group *gin.RouterGroup) {
	group.GET("/:key/documents", h.List)
	group.POST("/:key/documents", h.Attach)
	group.DELETE("/:key/documents", h.Remove)
}

func (h *VehicleDocumentHandler) List(c *gin.Context) {
	documents, err := h.service.ListForParent(h.parentType, c.Param("key"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve documents", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Documents retrieved successfully", documents)
}

func (h *VehicleDocumentHandler) Attach(c *gin.Context) {
	var document models.Document
	if err := c.ShouldBindJSON(&document); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	if err := h.validator.Struct(&document); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	stored, replaced, err := h.service.AttachVehicleDocument(h.parentType, c.Param("key"), &document)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store document", err)
		return
	}

	if replaced {
		utils.SuccessResponse(c, http.StatusOK, "Document updated successfully", stored)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Document added successfully", stored)
}

// Remove deletes the first document matching the type or id query
// parameter for this parent.
func (h *VehicleDocumentHandler) Remove(c *gin.Context) {
	err := h.service.Remove(h.parentType, c.Param("key"), c.Query("type"), c.Query("id"))
	switch {
	case errors.Is(err, repository.ErrInvalidKey):
		utils.ErrorResponse(c, http.StatusBadRequest, "A type or id query parameter is required", nil)
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Document not found", nil)
	case err != nil:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete document", err)
	default:
		utils.SuccessResponse(c, http.StatusOK, "Document deleted successfully", nil)
	}
}

// EmployeeDocumentHandler serves the employee document routes: an
// append-only metadata list plus a real multipart upload that writes the
// file to disk.
type EmployeeDocumentHandler struct {
	service   *services.DocumentService
	saver     *upload.Saver
	validator *validator.Validate
}

func NewEmployeeDocumentHandler(service *services.DocumentService, saver *upload.Saver) *EmployeeDocumentHandler {
	return &EmployeeDocumentHandler{
		service:   service,
		saver:     saver,
		validator: validator.New(),
	}
}

func (h *EmployeeDocumentHandler) Register(group *gin.RouterGroup) {
	group.GET("/:key/documents", h.List)
	group.POST("/:key/documents", h.Append)
	group.POST("/:key/documents/upload", h.Upload)
}

func (h *EmployeeDocumentHandler) List(c *gin.Context) {
	documents, err := h.service.ListForParent(models.DocumentParentEmployee, c.Param("key"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve documents", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Documents retrieved successfully", documents)
}

func (h *EmployeeDocumentHandler) Append(c *gin.Context) {
	var document models.Document
	if err := c.ShouldBindJSON(&document); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	if err := h.validator.Struct(&document); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	stored, err := h.service.AppendEmployeeDocument(c.Param("key"), &document)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store document", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Document added successfully", stored)
}

// Upload accepts a multipart form with fields "file" and "type", writes
// the file under the upload directory and appends a document record
// pointing at it.
func (h *EmployeeDocumentHandler) Upload(c *gin.Context) {
	docType := c.PostForm("type")
	if docType == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "type is required", nil)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required", err)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	storedPath, err := h.saver.Save(c.Param("key"), docType, header.Filename, file, header.Size)
	switch {
	case errors.Is(err, upload.ErrFileTooLarge), errors.Is(err, upload.ErrUnsupportedType):
		utils.ErrorResponse(c, http.StatusBadRequest, "Upload rejected", err)
		return
	case err != nil:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store uploaded file", err)
		return
	}

	document := models.Document{
		Type:     docType,
		FileName: header.Filename,
		URL:      path.Join("/uploads", storedPath),
	}

	stored, err := h.service.AppendEmployeeDocument(c.Param("key"), &document)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store document", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Document uploaded successfully", stored)
}
