package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/service"
)

func TestCreateCity(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{}})

	body := `{"name":"Paris","additional_info":"Capital of France"}`
	req := httptest.NewRequest(http.MethodPost, "/cities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var city domain.City
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &city))
	assert.Equal(t, int64(1), city.ID)
	assert.Equal(t, "Paris", city.Name)
	require.NotNil(t, city.AdditionalInfo)
	assert.Equal(t, "Capital of France", *city.AdditionalInfo)
}

func TestCreateCityDuplicateName(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{err: domain.ErrDuplicateEntry}})

	req := httptest.NewRequest(http.MethodPost, "/cities", strings.NewReader(`{"name":"Paris"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody ErrorStruct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, ErrorCode(CityAlreadyExistsCode), errBody.ErrorCode)
}

func TestCreateCityMissingName(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{}})

	req := httptest.NewRequest(http.MethodPost, "/cities", strings.NewReader(`{"additional_info":"no name"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCitiesReturnsStoreOrder(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{cities: []domain.City{
		{ID: 1, Name: "Paris"},
		{ID: 2, Name: "Lyon"},
	}}})

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cities []domain.City
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	require.Len(t, cities, 2)
	assert.Equal(t, int64(1), cities[0].ID)
	assert.Equal(t, int64(2), cities[1].ID)
}

func TestGetCityNotFound(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{}})

	req := httptest.NewRequest(http.MethodGet, "/cities/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var errBody ErrorStruct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, ErrorCode(CityNotFoundCode), errBody.ErrorCode)
}

func TestUpdateCityRenameCollision(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{err: domain.ErrDuplicateEntry}})

	req := httptest.NewRequest(http.MethodPut, "/cities/1", strings.NewReader(`{"name":"Lyon"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCity(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{cities: []domain.City{{ID: 1, Name: "Paris"}}}})

	req := httptest.NewRequest(http.MethodDelete, "/cities/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestDeleteCityNotFound(t *testing.T) {
	router := setupRouter(&service.Services{Cities: &stubCities{}})

	req := httptest.NewRequest(http.MethodDelete, "/cities/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
