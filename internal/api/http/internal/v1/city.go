package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/service"
	"github.com/vburkalo/city-temperature-api/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	cities := api.Group("/cities")
	{
		cities.POST("", h.createCity)
		cities.GET("", h.getCities)
		cities.GET("/:id", h.getCityByID)
		cities.PUT("/:id", h.updateCity)
		cities.DELETE("/:id", h.deleteCity)
	}
}

type createCityRequest struct {
	Name           string  `json:"name" binding:"required"`
	AdditionalInfo *string `json:"additional_info"`
}

type updateCityRequest struct {
	Name           *string `json:"name"`
	AdditionalInfo *string `json:"additional_info"`
}

// @Summary Create City
// @Tags Cities
// @Description Create a city with a unique name
// @ModuleID createCity
// @Accept  json
// @Produce  json
// @Param input body createCityRequest true "city payload"
// @Success 201 {object} domain.City
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities [post]
func (h *Handler) createCity(c *gin.Context) {
	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.Create(c.Request.Context(), req.Name, req.AdditionalInfo)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			errorResponse(c, http.StatusBadRequest, CityAlreadyExistsCode)
			return
		}
		logger.Error("create city failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, city)
}

// @Summary Get Cities
// @Tags Cities
// @Description Get all cities in ascending id order
// @ModuleID getCities
// @Accept  json
// @Produce  json
// @Success 200 {object} []domain.City
// @Failure 500 {object} ErrorStruct
// @Router /cities [get]
func (h *Handler) getCities(c *gin.Context) {
	cities, err := h.services.Cities.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get cities failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary Get City
// @Tags Cities
// @Description Get one city by id
// @ModuleID getCityByID
// @Accept  json
// @Produce  json
// @Param id path int true "city id"
// @Success 200 {object} domain.City
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{id} [get]
func (h *Handler) getCityByID(c *gin.Context) {
	id, ok := parseCityID(c)
	if !ok {
		return
	}

	city, err := h.services.Cities.GetOneByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("get city by id failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, city)
}

// @Summary Update City
// @Tags Cities
// @Description Partially update a city; only supplied fields change
// @ModuleID updateCity
// @Accept  json
// @Produce  json
// @Param id path int true "city id"
// @Param input body updateCityRequest true "fields to change"
// @Success 200 {object} domain.City
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{id} [put]
func (h *Handler) updateCity(c *gin.Context) {
	id, ok := parseCityID(c)
	if !ok {
		return
	}

	var req updateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.Update(c.Request.Context(), id, service.CityUpdateInput{
		Name:           req.Name,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		case errors.Is(err, domain.ErrDuplicateEntry):
			errorResponse(c, http.StatusBadRequest, CityAlreadyExistsCode)
		default:
			logger.Error("update city failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, city)
}

// @Summary Delete City
// @Tags Cities
// @Description Delete a city and all of its temperature readings
// @ModuleID deleteCity
// @Accept  json
// @Produce  json
// @Param id path int true "city id"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{id} [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	id, ok := parseCityID(c)
	if !ok {
		return
	}

	if err := h.services.Cities.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("delete city failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseCityID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return 0, false
	}
	return id, true
}
