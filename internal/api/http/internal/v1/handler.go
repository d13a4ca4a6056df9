package v1

import (
	"github.com/vburkalo/city-temperature-api/internal/config"
	"github.com/vburkalo/city-temperature-api/internal/service"

	"github.com/gin-gonic/gin"
)

// @title City Temperature Management API
// @version 1.0
// @description CRUD for cities plus a concurrent temperature refresh workflow

// @BasePath /

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(root *gin.RouterGroup) {
	h.initCitiesRoutes(root)
	h.initTemperaturesRoutes(root)
}
