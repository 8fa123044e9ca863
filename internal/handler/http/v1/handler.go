package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/config"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP-статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		log.WithError(err).Warn("Rejected invalid argument")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrNormalization), errors.Is(err, models.ErrCollaborator):
		log.WithError(err).Error("Upstream data source failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream data source error"})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get dashboard summary
// @Description Get KPI counters and the most recent incidents. Requires API key.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /dashboard/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, SummaryToResponse(h.dashboardService.Summary()))
}

// @Summary Get map markers
// @Description Get the composed marker layer: active incidents, online sensors and online cameras. Requires API key.
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param layer query string false "Map layer" Enums(all, incidents, sensors, cameras)
// @Success 200 {object} MapResponse
// @Failure 400 {object} map[string]string "Unknown layer"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/markers [get]
func (h *Handler) getMapMarkers(c *gin.Context) {
	log := h.logger.WithField("method", "getMapMarkers")

	view, err := h.dashboardService.MapMarkers(c.Query("layer"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MapViewToResponse(view))
}

// @Summary Reload collections
// @Description Reload one collection from the data store, or all of them when kind is empty. Requires API key.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Param kind query string false "Collection kind" Enums(incident, sensor, camera)
// @Success 200 {object} ReloadResponse
// @Failure 400 {object} map[string]string "Unknown kind"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Data store error"
// @Router /reload [post]
func (h *Handler) reload(c *gin.Context) {
	kind := c.Query("kind")
	log := h.logger.WithField("method", "reload").WithField("kind", kind)

	if err := h.dashboardService.Reload(c.Request.Context(), models.Kind(kind)); err != nil {
		h.respondError(c, log, err)
		return
	}
	if kind == "" {
		kind = "all"
	}
	c.JSON(http.StatusOK, ReloadResponse{Status: "ok", Kind: kind})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
