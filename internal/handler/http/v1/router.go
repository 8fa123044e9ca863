package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/metrics"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(metrics.Middleware())

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	incidents := protected.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
	}

	sensors := protected.Group("/sensors")
	{
		sensors.GET("", h.listSensors)
		sensors.GET("/selected", h.getSelectedSensor)
		sensors.POST("/:id/select", h.selectSensor)
	}

	protected.GET("/cameras", h.listCameras)
	protected.GET("/map/markers", h.getMapMarkers)
	protected.GET("/dashboard/summary", h.getSummary)
	protected.POST("/reload", h.reload)
}
