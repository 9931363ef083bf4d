package handlers

import (
	"hvac_hub/internal/logger"
	"hvac_hub/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hvac_hub/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.accessLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerReadingRoutes(api)
		h.registerHvacRoutes(api)
		h.registerScheduleRoutes(api)
	}

	return router
}

// Device-facing paths are fixed by the firmware.
func (h *Handler) registerReadingRoutes(api *gin.RouterGroup) {
	api.POST("/data", h.ingestReading)
	api.GET("/current", h.currentReading)
	api.GET("/history", h.history)
}

func (h *Handler) registerHvacRoutes(api *gin.RouterGroup) {
	hvac := api.Group("/hvac")
	{
		hvac.GET("", h.getHvac)
		hvac.POST("/update", h.updateHvac)
		hvac.GET("/command", h.hvacCommand)
	}
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	sched := api.Group("/schedule")
	{
		sched.GET("", h.getSchedule)
		sched.POST("/update", h.updateSchedule)
		sched.GET("/status", h.scheduleStatus)
	}
}
