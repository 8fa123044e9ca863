package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/aggregate"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/config"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/filter"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/handler/http/v1/mocks"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testIncident(status models.IncidentStatus) *models.Incident {
	return &models.Incident{
		ID:          uuid.New(),
		Title:       "Test Incident",
		Description: "Description",
		Status:      status,
		Severity:    models.SeverityHigh,
		Type:        "fire",
		Location:    models.Location{Lat: 10, Lng: 20, Address: "Main St"},
		ReportedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Tags:        []string{},
	}
}

func TestHealthCheck_NoAPIKeyRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutes_RequireAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().IncidentView(gomock.Any()).Times(0)

	missing := makeRequest(router, "GET", "/api/v1/incidents", nil)
	invalid := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Contains(t, missing.Body.String(), "API key required")
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "Invalid API key")
}

func TestProtectedRoutes_AcceptBearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Summary().Return(service.Summary{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/summary", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_PassesCriteria(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := testIncident(models.IncidentStatusActive)

	mockService.EXPECT().
		IncidentView(filter.Criteria{Text: "fire", Category: "active"}).
		Return(service.IncidentView{
			Items:  []models.Incident{*incident},
			Counts: aggregate.Counts{"all": 5, "active": 3, "investigating": 0, "resolved": 2, "closed": 0},
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?q=fire&status=active", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, incident.ID, resp.Items[0].ID)
	assert.Equal(t, 5, resp.Counts["all"])
	assert.Equal(t, 0, resp.Counts["closed"])
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Title:       "Test Incident",
		Description: "Description",
		Severity:    "high",
		Type:        "fire",
		Location:    LocationDTO{Lat: 10, Lng: 20, Address: "Main St"},
	}
	expectedIncident := testIncident(models.IncidentStatusActive)

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.NewIncident) (*models.Incident, error) {
			assert.Equal(t, reqBody.Title, in.Title)
			assert.Equal(t, models.SeverityHigh, in.Severity)
			assert.Equal(t, models.Location{Lat: 10, Lng: 20, Address: "Main St"}, in.Location)
			return expectedIncident, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKey)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedIncident.ID, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, []string{}, resp.Tags)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Неизвестная критичность
		Title:    "Test Incident",
		Severity: "apocalyptic",
		Type:     "fire",
	}

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'oneof' tag")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{Title: "Test Incident", Severity: "low", Type: "noise"}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not create incident: %w", models.ErrCollaborator)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKey)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "upstream data source error")
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := testIncident(models.IncidentStatusInvestigating)

	mockService.EXPECT().GetIncident(gomock.Any(), incident.ID).Return(incident, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incident.ID.String(), nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "investigating", resp.Status)
	assert.Equal(t, "Main St", resp.Location.Address)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-uuid", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		GetIncident(gomock.Any(), id).
		Return(nil, fmt.Errorf("service: could not get incident: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+id.String(), nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := testIncident(models.IncidentStatusResolved)
	resolvedAt := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	incident.ResolvedAt = &resolvedAt

	mockService.EXPECT().
		UpdateIncidentStatus(gomock.Any(), incident.ID, models.IncidentStatusResolved).
		Return(incident, nil).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+incident.ID.String()+"/status",
		bytes.NewBufferString(`{"status":"resolved"}`), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ResolvedAt)
	assert.True(t, resolvedAt.Equal(*resp.ResolvedAt))
}

func TestUpdateIncidentStatus_InvalidStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+uuid.NewString()+"/status",
		bytes.NewBufferString(`{"status":"inactive"}`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'oneof' tag")
}

func TestUpdateIncidentStatus_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		UpdateIncidentStatus(gomock.Any(), id, models.IncidentStatusClosed).
		Return(nil, models.ErrNotFound).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+id.String()+"/status",
		bytes.NewBufferString(`{"status":"closed"}`), apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateIncident_PartialPatch(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := testIncident(models.IncidentStatusActive)
	incident.Severity = models.SeverityCritical

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, patch models.IncidentPatch) (*models.Incident, error) {
			require.NotNil(t, patch.Severity)
			assert.Equal(t, models.SeverityCritical, *patch.Severity)
			assert.Nil(t, patch.Title)
			assert.Nil(t, patch.Status)
			assert.Nil(t, patch.Location)
			return incident, nil
		}).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+incident.ID.String(),
		bytes.NewBufferString(`{"severity":"critical"}`), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateIncident_StatusResolvedPassesThroughService(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := testIncident(models.IncidentStatusResolved)
	resolvedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	incident.ResolvedAt = &resolvedAt

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, patch models.IncidentPatch) (*models.Incident, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.IncidentStatusResolved, *patch.Status)
			assert.Nil(t, patch.ResolvedAt)
			return incident, nil
		}).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+incident.ID.String(),
		bytes.NewBufferString(`{"status":"resolved"}`), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resolved", resp.Status)
	require.NotNil(t, resp.ResolvedAt)
	assert.True(t, resolvedAt.Equal(*resp.ResolvedAt))
}

func TestListSensors_WithSelection(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	selected := models.Sensor{
		ID:      uuid.New(),
		Name:    "Air 1",
		Type:    models.SensorTypeAirQuality,
		Status:  models.DeviceStatusOnline,
		Metrics: []models.MetricPoint{{Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), Value: 42}},
	}

	mockService.EXPECT().
		SensorView(filter.Criteria{Category: "air_quality"}).
		Return(service.SensorView{
			Items:        []models.Sensor{selected},
			TypeCounts:   aggregate.Counts{"all": 1, "air_quality": 1},
			StatusCounts: aggregate.Counts{"all": 1, "online": 1},
			Selected:     &selected,
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/sensors?type=air_quality", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SensorListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Selected)
	assert.Equal(t, selected.ID, resp.Selected.ID)
	assert.Len(t, resp.Selected.Metrics, 1)
	assert.Equal(t, 1, resp.TypeCounts["air_quality"])
}

func TestSelectSensor_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sensor := &models.Sensor{ID: uuid.New(), Name: "Noise 1", Type: models.SensorTypeNoise, Status: models.DeviceStatusOnline, Metrics: []models.MetricPoint{}}

	mockService.EXPECT().SelectSensor(gomock.Any(), sensor.ID, 20).Return(sensor, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sensors/"+sensor.ID.String()+"/select?limit=20", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"metrics":[]`)
}

func TestSelectSensor_InvalidLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SelectSensor(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/sensors/"+uuid.NewString()+"/select?limit=abc", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSelectedSensor_NoneSelected(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SelectedSensor().Return(nil, false).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sensors/selected", nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCameras_FiltersByStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CameraView(filter.Criteria{Text: "gate", Category: "offline"}).
		Return(service.CameraView{Items: []models.Camera{}, Counts: aggregate.Counts{"all": 0}}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/cameras?q=gate&status=offline", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"counts":{"all":0}}`, w.Body.String())
}

func TestGetMapMarkers_UnknownLayer(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		MapMarkers("satellites").
		Return(service.MapView{}, fmt.Errorf("unknown map layer %q: %w", "satellites", models.ErrInvalidArgument)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/markers?layer=satellites", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown map layer")
}

func TestGetMapMarkers_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	markerID := uuid.New()

	mockService.EXPECT().
		MapMarkers("").
		Return(service.MapView{
			Markers: []models.Marker{{ID: markerID, Kind: models.KindCamera, Title: "Gate", Description: "CCTV Camera", Status: "online"}},
			Counts:  aggregate.Counts{"all": 1, "incidents": 0, "sensors": 0, "cameras": 1},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/markers", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Markers, 1)
	assert.Equal(t, "camera", resp.Markers[0].Kind)
	assert.Equal(t, 1, resp.Counts["cameras"])
}

func TestReload_AllKinds(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Reload(gomock.Any(), models.Kind("")).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/reload", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","kind":"all"}`, w.Body.String())
}

func TestReload_NormalizationErrorIsBadGateway(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Reload(gomock.Any(), models.KindSensor).
		Return(errors.Join(fmt.Errorf("service: could not reload sensors: %w", models.ErrNormalization))).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/reload?kind=sensor", nil, apiKey)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetSummary(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := testIncident(models.IncidentStatusActive)

	mockService.EXPECT().
		Summary().
		Return(service.Summary{
			ActiveIncidents: 3,
			TotalIncidents:  5,
			OnlineSensors:   2,
			TotalSensors:    4,
			OnlineCameras:   1,
			TotalCameras:    1,
			RecentIncidents: []models.Incident{*incident},
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/summary", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.ActiveIncidents)
	assert.Equal(t, 5, resp.TotalIncidents)
	require.Len(t, resp.RecentIncidents, 1)
	assert.Equal(t, incident.ID, resp.RecentIncidents[0].ID)
}
