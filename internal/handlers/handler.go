package handlers

import (
	"temperature_prediction/internal/logger"
	"temperature_prediction/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	dates    DateRules
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, dates DateRules) *Handler {
	return &Handler{services: services, log: log, dates: dates}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware, h.accessLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// state stream on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerPredictionRoutes(api)
	}
}

func (h *Handler) registerPredictionRoutes(api *gin.RouterGroup) {
	predictions := api.Group("/predictions")
	{
		// Body example: {"date":"2025-03-10"}
		predictions.POST("", h.dispatchPrediction)
		predictions.GET("/state", h.getState)
		predictions.DELETE("/state", h.resetState)
	}
}
