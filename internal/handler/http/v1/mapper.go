package v1

import (
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/aggregate"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/service"
)

func locationToDTO(l models.Location) LocationDTO {
	return LocationDTO{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

func dtoToLocation(l LocationDTO) models.Location {
	return models.Location{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

// CreateRequestToModel преобразует DTO создания в данные нового инцидента
func CreateRequestToModel(dto CreateIncidentRequest) models.NewIncident {
	return models.NewIncident{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      models.IncidentStatus(dto.Status),
		Severity:    models.Severity(dto.Severity),
		Type:        dto.Type,
		Location:    dtoToLocation(dto.Location),
		AssignedTo:  dto.AssignedTo,
		Tags:        dto.Tags,
	}
}

// UpdateRequestToPatch преобразует DTO обновления в патч: nil-поля не меняются
func UpdateRequestToPatch(dto UpdateIncidentRequest) models.IncidentPatch {
	patch := models.IncidentPatch{
		Title:       dto.Title,
		Description: dto.Description,
		Type:        dto.Type,
		AssignedTo:  dto.AssignedTo,
		Tags:        dto.Tags,
	}
	if dto.Status != nil {
		status := models.IncidentStatus(*dto.Status)
		patch.Status = &status
	}
	if dto.Severity != nil {
		severity := models.Severity(*dto.Severity)
		patch.Severity = &severity
	}
	if dto.Location != nil {
		location := dtoToLocation(*dto.Location)
		patch.Location = &location
	}
	return patch
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) IncidentResponse {
	tags := model.Tags
	if tags == nil {
		tags = []string{}
	}
	return IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Status:      string(model.Status),
		Severity:    string(model.Severity),
		Type:        model.Type,
		Location:    locationToDTO(model.Location),
		ReportedAt:  model.ReportedAt,
		ResolvedAt:  model.ResolvedAt,
		AssignedTo:  model.AssignedTo,
		Tags:        tags,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(items []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(items))
	for i := range items {
		responses[i] = ModelToIncidentResponse(&items[i])
	}
	return responses
}

func countsToMap(c aggregate.Counts) map[string]int {
	out := make(map[string]int, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func IncidentViewToResponse(view service.IncidentView) IncidentListResponse {
	return IncidentListResponse{
		Items:  ModelsToIncidentResponses(view.Items),
		Counts: countsToMap(view.Counts),
	}
}

func ModelToSensorResponse(model *models.Sensor) SensorResponse {
	resp := SensorResponse{
		ID:       model.ID,
		Name:     model.Name,
		Type:     string(model.Type),
		Status:   string(model.Status),
		Location: locationToDTO(model.Location),
		Metrics:  make([]MetricPointResponse, len(model.Metrics)),
	}
	if model.LastReading != nil {
		resp.LastReading = &ReadingResponse{
			Value:     model.LastReading.Value,
			Unit:      model.LastReading.Unit,
			Timestamp: model.LastReading.Timestamp,
		}
	}
	for i, p := range model.Metrics {
		resp.Metrics[i] = MetricPointResponse{Timestamp: p.Timestamp, Value: p.Value}
	}
	return resp
}

func SensorViewToResponse(view service.SensorView) SensorListResponse {
	items := make([]SensorResponse, len(view.Items))
	for i := range view.Items {
		items[i] = ModelToSensorResponse(&view.Items[i])
	}
	resp := SensorListResponse{
		Items:        items,
		TypeCounts:   countsToMap(view.TypeCounts),
		StatusCounts: countsToMap(view.StatusCounts),
	}
	if view.Selected != nil {
		selected := ModelToSensorResponse(view.Selected)
		resp.Selected = &selected
	}
	return resp
}

func ModelToCameraResponse(model *models.Camera) CameraResponse {
	return CameraResponse{
		ID:               model.ID,
		Name:             model.Name,
		Location:         locationToDTO(model.Location),
		Status:           string(model.Status),
		StreamURL:        model.StreamURL,
		LastSnapshot:     model.LastSnapshot,
		RecordingEnabled: model.RecordingEnabled,
	}
}

func CameraViewToResponse(view service.CameraView) CameraListResponse {
	items := make([]CameraResponse, len(view.Items))
	for i := range view.Items {
		items[i] = ModelToCameraResponse(&view.Items[i])
	}
	return CameraListResponse{Items: items, Counts: countsToMap(view.Counts)}
}

func MapViewToResponse(view service.MapView) MapResponse {
	markers := make([]MarkerResponse, len(view.Markers))
	for i, m := range view.Markers {
		markers[i] = MarkerResponse{
			ID:          m.ID,
			Kind:        string(m.Kind),
			Lat:         m.Lat,
			Lng:         m.Lng,
			Title:       m.Title,
			Description: m.Description,
			Status:      m.Status,
		}
	}
	return MapResponse{Markers: markers, Counts: countsToMap(view.Counts)}
}

func SummaryToResponse(s service.Summary) SummaryResponse {
	return SummaryResponse{
		ActiveIncidents: s.ActiveIncidents,
		TotalIncidents:  s.TotalIncidents,
		OnlineSensors:   s.OnlineSensors,
		TotalSensors:    s.TotalSensors,
		OnlineCameras:   s.OnlineCameras,
		TotalCameras:    s.TotalCameras,
		RecentIncidents: ModelsToIncidentResponses(s.RecentIncidents),
	}
}
