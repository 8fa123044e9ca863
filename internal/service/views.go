package service

import (
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/aggregate"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/filter"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/marker"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

// IncidentView - отфильтрованные инциденты и счетчики по статусам всей коллекции
type IncidentView struct {
	Items  []models.Incident
	Counts aggregate.Counts
}

type SensorView struct {
	Items        []models.Sensor
	TypeCounts   aggregate.Counts
	StatusCounts aggregate.Counts
	Selected     *models.Sensor
}

type CameraView struct {
	Items  []models.Camera
	Counts aggregate.Counts
}

// MapView - слой маркеров и счетчики для вкладок карты.
// Counts считаются по ограниченным коллекциям (активные инциденты, сенсоры и камеры онлайн)
type MapView struct {
	Markers []models.Marker
	Counts  aggregate.Counts
}

type Summary struct {
	ActiveIncidents int
	TotalIncidents  int
	OnlineSensors   int
	TotalSensors    int
	OnlineCameras   int
	TotalCameras    int
	RecentIncidents []models.Incident
}

// IncidentView фильтрует инциденты. Счетчики всегда считаются по нефильтрованной коллекции
func (s *dashboardService) IncidentView(criteria filter.Criteria) IncidentView {
	items := s.store.Incidents()
	return IncidentView{
		Items:  filter.Incidents(items, criteria),
		Counts: aggregate.IncidentStatuses(items),
	}
}

func (s *dashboardService) SensorView(criteria filter.Criteria) SensorView {
	items := s.store.Sensors()
	view := SensorView{
		Items:        filter.Sensors(items, criteria),
		TypeCounts:   aggregate.SensorTypes(items),
		StatusCounts: aggregate.SensorStatuses(items),
	}
	view.Selected, _ = s.SelectedSensor()
	return view
}

func (s *dashboardService) CameraView(criteria filter.Criteria) CameraView {
	items := s.store.Cameras()
	return CameraView{
		Items:  filter.Cameras(items, criteria),
		Counts: aggregate.CameraStatuses(items),
	}
}

// MapMarkers собирает слой карты из активных инцидентов и устройств онлайн
func (s *dashboardService) MapMarkers(layer string) (MapView, error) {
	enabled, err := marker.ParseLayer(layer)
	if err != nil {
		return MapView{}, err
	}

	snapshot := s.store.Snapshot()
	src := marker.Sources{
		Incidents: filter.Incidents(snapshot.Incidents, filter.Criteria{Category: string(models.IncidentStatusActive)}),
		Sensors:   filter.SensorsWithStatus(snapshot.Sensors, models.DeviceStatusOnline),
		Cameras:   filter.Cameras(snapshot.Cameras, filter.Criteria{Category: string(models.DeviceStatusOnline)}),
	}

	counts := aggregate.Counts{
		string(marker.LayerIncidents): len(src.Incidents),
		string(marker.LayerSensors):   len(src.Sensors),
		string(marker.LayerCameras):   len(src.Cameras),
	}
	counts[aggregate.AllKey] = len(src.Incidents) + len(src.Sensors) + len(src.Cameras)

	return MapView{
		Markers: marker.Compose(src, enabled),
		Counts:  counts,
	}, nil
}

// Summary считает показатели главной панели. Коллекция инцидентов уже упорядочена
// от новых к старым, поэтому последние инциденты - это ее начало
func (s *dashboardService) Summary() Summary {
	snapshot := s.store.Snapshot()

	recentLimit := s.cfg.RecentIncidentsLimit
	if recentLimit <= 0 {
		recentLimit = 5
	}
	recent := snapshot.Incidents
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	incidentCounts := aggregate.IncidentStatuses(snapshot.Incidents)
	sensorCounts := aggregate.SensorStatuses(snapshot.Sensors)
	cameraCounts := aggregate.CameraStatuses(snapshot.Cameras)

	return Summary{
		ActiveIncidents: incidentCounts[string(models.IncidentStatusActive)],
		TotalIncidents:  incidentCounts.All(),
		OnlineSensors:   sensorCounts[string(models.DeviceStatusOnline)],
		TotalSensors:    sensorCounts.All(),
		OnlineCameras:   cameraCounts[string(models.DeviceStatusOnline)],
		TotalCameras:    cameraCounts.All(),
		RecentIncidents: append([]models.Incident{}, recent...),
	}
}
