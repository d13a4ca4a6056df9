package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initTemperaturesRoutes(api *gin.RouterGroup) {
	temperatures := api.Group("/temperatures")
	{
		temperatures.GET("", h.getTemperatures)
		temperatures.POST("/update", h.updateTemperatures)
	}
}

type temperatureHistoryResponse struct {
	Records []domain.Temperature `json:"records"`
	Total   int                  `json:"total"`
}

type temperatureUpdateResponse struct {
	Inserted int    `json:"inserted"`
	Failed   int    `json:"failed"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// @Summary Get Temperatures
// @Tags Temperatures
// @Description List temperature readings, most recent first, optionally filtered by city
// @ModuleID getTemperatures
// @Accept  json
// @Produce  json
// @Param city_id query int false "filter by city id"
// @Success 200 {object} temperatureHistoryResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /temperatures [get]
func (h *Handler) getTemperatures(c *gin.Context) {
	var cityID *int64
	if raw := c.Query("city_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		cityID = &parsed
	}

	records, err := h.services.Temperatures.List(c.Request.Context(), cityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("get temperatures failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, temperatureHistoryResponse{
		Records: records,
		Total:   len(records),
	})
}

// @Summary Refresh Temperatures
// @Tags Temperatures
// @Description Fetch a fresh reading for every known city and persist the batch
// @ModuleID updateTemperatures
// @Accept  json
// @Produce  json
// @Success 200 {object} temperatureUpdateResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /temperatures/update [post]
func (h *Handler) updateTemperatures(c *gin.Context) {
	summary, err := h.services.Temperatures.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoCities) {
			errorResponse(c, http.StatusBadRequest, NoCitiesToUpdateCode)
			return
		}
		logger.Error("refresh temperatures failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, temperatureUpdateResponse{
		Inserted: summary.Inserted,
		Failed:   summary.Failed,
		Skipped:  summary.Skipped,
		Message:  summary.Message,
	})
}
