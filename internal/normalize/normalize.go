// Package normalize приводит сырые записи хранилища к каноническим моделям.
package normalize

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

// FieldError описывает запись, не прошедшую нормализацию
type FieldError struct {
	Kind  models.Kind
	ID    string
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: invalid %s %q", e.Kind, e.ID, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return models.ErrNormalization
}

func parseID(kind models.Kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &FieldError{Kind: kind, ID: raw, Field: "id", Value: raw}
	}
	return id, nil
}

// Incident нормализует одну запись инцидента
func Incident(raw models.RawIncident) (models.Incident, error) {
	id, err := parseID(models.KindIncident, raw.ID)
	if err != nil {
		return models.Incident{}, err
	}
	status := models.IncidentStatus(raw.Status)
	if !status.Valid() {
		return models.Incident{}, &FieldError{Kind: models.KindIncident, ID: raw.ID, Field: "status", Value: raw.Status}
	}
	severity := models.Severity(raw.Severity)
	if !severity.Valid() {
		return models.Incident{}, &FieldError{Kind: models.KindIncident, ID: raw.ID, Field: "severity", Value: raw.Severity}
	}

	tags := make([]string, len(raw.Tags))
	copy(tags, raw.Tags)

	return models.Incident{
		ID:          id,
		Title:       raw.Title,
		Description: raw.Description,
		Status:      status,
		Severity:    severity,
		Type:        raw.Type,
		Location:    raw.Location,
		ReportedAt:  raw.ReportedAt,
		ResolvedAt:  raw.ResolvedAt,
		AssignedTo:  raw.AssignedTo,
		Tags:        tags,
	}, nil
}

// Sensor нормализует запись сенсора. История метрик всегда пустая:
// она заполняется только при выборе сенсора
func Sensor(raw models.RawSensor) (models.Sensor, error) {
	id, err := parseID(models.KindSensor, raw.ID)
	if err != nil {
		return models.Sensor{}, err
	}
	sensorType := models.SensorType(raw.Type)
	if !sensorType.Valid() {
		return models.Sensor{}, &FieldError{Kind: models.KindSensor, ID: raw.ID, Field: "type", Value: raw.Type}
	}
	status := models.DeviceStatus(raw.Status)
	if !status.Valid() {
		return models.Sensor{}, &FieldError{Kind: models.KindSensor, ID: raw.ID, Field: "status", Value: raw.Status}
	}

	var last *models.Reading
	if raw.LastReading != nil {
		last = &models.Reading{
			Value:     raw.LastReading.Value,
			Unit:      raw.LastReading.Unit,
			Timestamp: raw.LastReading.Timestamp,
		}
	}

	return models.Sensor{
		ID:          id,
		Name:        raw.Name,
		Type:        sensorType,
		Status:      status,
		Location:    raw.Location,
		LastReading: last,
		Metrics:     []models.MetricPoint{},
	}, nil
}

func Camera(raw models.RawCamera) (models.Camera, error) {
	id, err := parseID(models.KindCamera, raw.ID)
	if err != nil {
		return models.Camera{}, err
	}
	status := models.DeviceStatus(raw.Status)
	if !status.Valid() {
		return models.Camera{}, &FieldError{Kind: models.KindCamera, ID: raw.ID, Field: "status", Value: raw.Status}
	}
	return models.Camera{
		ID:               id,
		Name:             raw.Name,
		Location:         raw.Location,
		Status:           status,
		StreamURL:        raw.StreamURL,
		LastSnapshot:     raw.LastSnapshot,
		RecordingEnabled: raw.RecordingEnabled,
	}, nil
}

// Incidents нормализует коллекцию целиком: первая невалидная запись прерывает всю загрузку
func Incidents(raws []models.RawIncident) ([]models.Incident, error) {
	return all(raws, Incident)
}

func Sensors(raws []models.RawSensor) ([]models.Sensor, error) {
	return all(raws, Sensor)
}

func Cameras(raws []models.RawCamera) ([]models.Camera, error) {
	return all(raws, Camera)
}

func all[R, T any](raws []R, one func(R) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		item, err := one(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Readings переводит показания в точки истории, сохраняя порядок источника
func Readings(raws []models.RawSensorReading, limit int) []models.MetricPoint {
	if limit <= 0 || limit > models.MaxMetricHistory {
		limit = models.MaxMetricHistory
	}
	if len(raws) > limit {
		raws = raws[:limit]
	}
	points := make([]models.MetricPoint, len(raws))
	for i, r := range raws {
		points[i] = models.MetricPoint{Timestamp: r.Timestamp, Value: r.Value}
	}
	return points
}
