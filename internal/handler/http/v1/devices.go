package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/filter"
)

// @Summary Get a list of sensors
// @Description Get sensors filtered by free text and type tab, with type and status counts and the selected sensor. Requires API key.
// @Tags Sensors
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "Search in name and type"
// @Param type query string false "Type tab" Enums(all, air_quality, traffic, noise, water, weather)
// @Success 200 {object} SensorListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sensors [get]
func (h *Handler) listSensors(c *gin.Context) {
	view := h.dashboardService.SensorView(filter.Criteria{
		Text:     c.Query("q"),
		Category: c.Query("type"),
	})
	c.JSON(http.StatusOK, SensorViewToResponse(view))
}

// @Summary Select a sensor
// @Description Make a sensor the selected one and load its recent metric history. Requires API key.
// @Tags Sensors
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Sensor ID"
// @Param limit query int false "History size, at most 50" default(50)
// @Success 200 {object} SensorResponse
// @Failure 400 {object} map[string]string "Invalid sensor ID or limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sensor not found"
// @Failure 502 {object} map[string]string "Data store error"
// @Router /sensors/{id}/select [post]
func (h *Handler) selectSensor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	log := h.logger.WithField("method", "selectSensor").WithField("id", id)

	sensor, err := h.dashboardService.SelectSensor(c.Request.Context(), id, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSensorResponse(sensor))
}

// @Summary Get the selected sensor
// @Description Get the currently selected sensor with its metric history. Requires API key.
// @Tags Sensors
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SensorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No sensor selected"
// @Router /sensors/selected [get]
func (h *Handler) getSelectedSensor(c *gin.Context) {
	sensor, ok := h.dashboardService.SelectedSensor()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no sensor selected"})
		return
	}
	c.JSON(http.StatusOK, ModelToSensorResponse(sensor))
}

// @Summary Get a list of cameras
// @Description Get CCTV cameras filtered by free text and status tab, with per-status counts. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "Search in name and address"
// @Param status query string false "Status tab" Enums(all, online, offline, maintenance)
// @Success 200 {object} CameraListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	view := h.dashboardService.CameraView(filter.Criteria{
		Text:     c.Query("q"),
		Category: c.Query("status"),
	})
	c.JSON(http.StatusOK, CameraViewToResponse(view))
}
