package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"truckops-backend/internal/models"
	"truckops-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTruckService implements ResourceService in memory with the same
// error contract as the real services.
type fakeTruckService struct {
	trucks map[string]*models.Truck
}

func newFakeTruckService() *fakeTruckService {
	return &fakeTruckService{trucks: make(map[string]*models.Truck)}
}

func (s *fakeTruckService) List() ([]*models.Truck, error) {
	trucks := []*models.Truck{}
	for _, truck := range s.trucks {
		trucks = append(trucks, truck)
	}
	return trucks, nil
}

func (s *fakeTruckService) Get(key string) (*models.Truck, error) {
	truck, ok := s.trucks[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return truck, nil
}

func (s *fakeTruckService) Create(truck *models.Truck) (*models.Truck, error) {
	if _, ok := s.trucks[truck.Number]; ok {
		return nil, repository.ErrDuplicateKey
	}
	s.trucks[truck.Number] = truck
	return truck, nil
}

func (s *fakeTruckService) Replace(key string, truck *models.Truck) (*models.Truck, error) {
	if _, ok := s.trucks[key]; !ok {
		return nil, repository.ErrNotFound
	}
	truck.Number = key
	s.trucks[key] = truck
	return truck, nil
}

func (s *fakeTruckService) Delete(key string) error {
	if _, ok := s.trucks[key]; !ok {
		return repository.ErrNotFound
	}
	delete(s.trucks, key)
	return nil
}

func newTruckRouter(service *fakeTruckService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewResourceHandler[models.Truck](service, "Truck", "Trucks").Register(router.Group("/api/v1/trucks"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const validTruck = `{"number":"T-1021","year":2021,"company":"Jawhara Transport","country":"UAE"}`

func TestCreateTruck(t *testing.T) {
	service := newFakeTruckService()
	router := newTruckRouter(service)

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/trucks", validTruck)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, service.trucks, 1)
}

func TestCreateTruckMissingFieldsAreNamed(t *testing.T) {
	service := newFakeTruckService()
	router := newTruckRouter(service)

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/trucks", `{"number":"T-1"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Year is required")
	assert.Contains(t, body, "Company is required")
	assert.Contains(t, body, "Country is required")
	assert.Empty(t, service.trucks, "a rejected create must not insert a record")
}

func TestCreateTruckDuplicate(t *testing.T) {
	service := newFakeTruckService()
	router := newTruckRouter(service)

	first := doJSON(t, router, http.MethodPost, "/api/v1/trucks", validTruck)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/v1/trucks", validTruck)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "already exists")
	assert.Len(t, service.trucks, 1)
}

func TestCreateTruckRejectsNonNumericYear(t *testing.T) {
	router := newTruckRouter(newFakeTruckService())

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/trucks",
		`{"number":"T-1","year":"twenty-one","company":"Jawhara Transport","country":"UAE"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "year must be a number")
}

func TestListTrucksEmpty(t *testing.T) {
	router := newTruckRouter(newFakeTruckService())

	recorder := doJSON(t, router, http.MethodGet, "/api/v1/trucks", "")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "[]", strings.TrimSpace(string(response.Data)), "no records is an empty array, not an error")
}

func TestGetTruckNotFound(t *testing.T) {
	router := newTruckRouter(newFakeTruckService())

	recorder := doJSON(t, router, http.MethodGet, "/api/v1/trucks/T-404", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Truck not found")
}

func TestUpdateTruckNotFound(t *testing.T) {
	router := newTruckRouter(newFakeTruckService())

	recorder := doJSON(t, router, http.MethodPut, "/api/v1/trucks/T-404", validTruck)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateTruckReplaces(t *testing.T) {
	service := newFakeTruckService()
	router := newTruckRouter(service)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/trucks", validTruck).Code)

	recorder := doJSON(t, router, http.MethodPut, "/api/v1/trucks/T-1021",
		`{"number":"ignored","year":2022,"company":"Desert Star","country":"UAE"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, service.trucks, 1)
	assert.Equal(t, "Desert Star", service.trucks["T-1021"].Company)
	assert.Equal(t, "T-1021", service.trucks["T-1021"].Number, "the path key is authoritative")
}

func TestDeleteTruckThenGet(t *testing.T) {
	service := newFakeTruckService()
	router := newTruckRouter(service)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/trucks", validTruck).Code)

	deleted := doJSON(t, router, http.MethodDelete, "/api/v1/trucks/T-1021", "")
	assert.Equal(t, http.StatusOK, deleted.Code)
	assert.Contains(t, deleted.Body.String(), "Truck deleted successfully")

	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/api/v1/trucks/T-1021", "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodDelete, "/api/v1/trucks/T-1021", "").Code)
}
