package service

import (
	"testing"

	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/aggregate"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/filter"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIncidentView_CountsComeFromUnfilteredCollection(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	seedIncidents(t, svc, repoMock,
		rawIncident("Warehouse fire", "active"),
		rawIncident("Road flood", "active"),
		rawIncident("Power outage", "active"),
		rawIncident("Kitchen fire", "resolved"),
		rawIncident("Gas leak", "resolved"),
	)
	expectedCounts := aggregate.Counts{"all": 5, "active": 3, "investigating": 0, "resolved": 2, "closed": 0}

	// Действие
	all := svc.IncidentView(filter.Criteria{})
	fire := svc.IncidentView(filter.Criteria{Text: "FIRE"})
	activeFire := svc.IncidentView(filter.Criteria{Text: "fire", Category: "active"})

	// Проверки
	assert.Len(t, all.Items, 5)
	assert.Len(t, fire.Items, 2)
	require.Len(t, activeFire.Items, 1)
	assert.Equal(t, "Warehouse fire", activeFire.Items[0].Title)
	assert.Equal(t, expectedCounts, all.Counts)
	assert.Equal(t, expectedCounts, activeFire.Counts)
}

func TestSensorView_IncludesCountsAndSelection(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	seedSensors(t, svc, repoMock,
		rawSensor("Air 1", "air_quality", "online"),
		rawSensor("Air 2", "air_quality", "offline"),
		rawSensor("Noise 1", "noise", "maintenance"),
	)

	// Действие
	view := svc.SensorView(filter.Criteria{Category: "air_quality"})

	// Проверки
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.TypeCounts["air_quality"])
	assert.Equal(t, 0, view.TypeCounts["weather"])
	assert.Equal(t, 3, view.TypeCounts.All())
	assert.Equal(t, 1, view.StatusCounts["maintenance"])
	require.NotNil(t, view.Selected)
	assert.Equal(t, "Air 1", view.Selected.Name)
}

func TestCameraView_FiltersByStatusAndAddress(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	cameras := []models.RawCamera{rawCamera("North gate", "online"), rawCamera("South gate", "offline")}
	repoMock.EXPECT().ListCameras(gomock.Any()).Return(cameras, nil).Times(1)
	require.NoError(t, svc.ReloadCameras(t.Context()))

	// Действие
	byAddress := svc.CameraView(filter.Criteria{Text: "bridge"})
	offline := svc.CameraView(filter.Criteria{Category: "offline"})

	// Проверки
	assert.Len(t, byAddress.Items, 2)
	require.Len(t, offline.Items, 1)
	assert.Equal(t, "South gate", offline.Items[0].Name)
	assert.Equal(t, aggregate.Counts{"all": 2, "online": 1, "offline": 1, "maintenance": 0}, offline.Counts)
}

func TestMapMarkers_ScopedCollections(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	seedIncidents(t, svc, repoMock,
		rawIncident("Fire", "active"),
		rawIncident("Flood", "resolved"),
	)
	seedSensors(t, svc, repoMock,
		rawSensor("Air 1", "air_quality", "online"),
		rawSensor("Air 2", "air_quality", "offline"),
	)
	cameras := []models.RawCamera{rawCamera("Gate", "online")}
	repoMock.EXPECT().ListCameras(gomock.Any()).Return(cameras, nil).Times(1)
	require.NoError(t, svc.ReloadCameras(t.Context()))

	// Действие
	all, err := svc.MapMarkers("")
	require.NoError(t, err)
	sensorsOnly, err := svc.MapMarkers("sensors")
	require.NoError(t, err)

	// Проверки
	require.Len(t, all.Markers, 3)
	assert.Equal(t, models.KindIncident, all.Markers[0].Kind)
	assert.Equal(t, "high", all.Markers[0].Status)
	assert.Equal(t, models.KindSensor, all.Markers[1].Kind)
	assert.Equal(t, "air_quality sensor", all.Markers[1].Description)
	assert.Equal(t, models.KindCamera, all.Markers[2].Kind)
	assert.Equal(t, "CCTV Camera", all.Markers[2].Description)
	assert.Equal(t, aggregate.Counts{"all": 3, "incidents": 1, "sensors": 1, "cameras": 1}, all.Counts)

	require.Len(t, sensorsOnly.Markers, 1)
	assert.Equal(t, "Air 1", sensorsOnly.Markers[0].Title)
	assert.Equal(t, all.Counts, sensorsOnly.Counts)
}

func TestMapMarkers_UnknownLayer(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestDashboardService(t)

	// Действие
	_, err := svc.MapMarkers("satellites")

	// Проверки
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestSummary_CountsAndRecentIncidents(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	svc.cfg.RecentIncidentsLimit = 2
	seedIncidents(t, svc, repoMock,
		rawIncident("Newest", "active"),
		rawIncident("Middle", "investigating"),
		rawIncident("Oldest", "active"),
	)
	seedSensors(t, svc, repoMock,
		rawSensor("Air 1", "air_quality", "online"),
		rawSensor("Air 2", "air_quality", "offline"),
	)

	// Действие
	summary := svc.Summary()

	// Проверки
	assert.Equal(t, 2, summary.ActiveIncidents)
	assert.Equal(t, 3, summary.TotalIncidents)
	assert.Equal(t, 1, summary.OnlineSensors)
	assert.Equal(t, 2, summary.TotalSensors)
	assert.Equal(t, 0, summary.TotalCameras)
	require.Len(t, summary.RecentIncidents, 2)
	assert.Equal(t, "Newest", summary.RecentIncidents[0].Title)
	assert.Equal(t, "Middle", summary.RecentIncidents[1].Title)
}
