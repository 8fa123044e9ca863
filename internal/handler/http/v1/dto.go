package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationDTO - координаты и адрес объекта
// @Description Координаты и адрес объекта
type LocationDTO struct {
	Lat     float64 `json:"lat" validate:"latitude"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Address string  `json:"address,omitempty" validate:"max=500"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title       string      `json:"title" validate:"required,min=2,max=255"`
	Description string      `json:"description,omitempty"`
	Status      string      `json:"status,omitempty" validate:"omitempty,oneof=active investigating resolved closed"`
	Severity    string      `json:"severity" validate:"required,oneof=low medium high critical"`
	Type        string      `json:"type" validate:"required,max=100"`
	Location    LocationDTO `json:"location"`
	AssignedTo  *string     `json:"assigned_to,omitempty"`
	Tags        []string    `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента. Отсутствующие поля не меняются
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Title       *string      `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string      `json:"description,omitempty"`
	Status      *string      `json:"status,omitempty" validate:"omitempty,oneof=active investigating resolved closed"`
	Severity    *string      `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Type        *string      `json:"type,omitempty" validate:"omitempty,max=100"`
	Location    *LocationDTO `json:"location,omitempty" validate:"omitempty"`
	AssignedTo  *string      `json:"assigned_to,omitempty"`
	Tags        []string     `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active investigating resolved closed"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Severity    string      `json:"severity"`
	Type        string      `json:"type"`
	Location    LocationDTO `json:"location"`
	ReportedAt  time.Time   `json:"reported_at"`
	ResolvedAt  *time.Time  `json:"resolved_at,omitempty"`
	AssignedTo  *string     `json:"assigned_to,omitempty"`
	Tags        []string    `json:"tags"`
}

// IncidentListResponse - отфильтрованные инциденты и счетчики вкладок
// @Description Отфильтрованные инциденты и счетчики вкладок
type IncidentListResponse struct {
	Items  []IncidentResponse `json:"items"`
	Counts map[string]int     `json:"counts"`
}

type ReadingResponse struct {
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
}

type MetricPointResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// SensorResponse DTO сенсора. Metrics заполнены только у выбранного сенсора
// @Description DTO сенсора
type SensorResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Status      string                `json:"status"`
	Location    LocationDTO           `json:"location"`
	LastReading *ReadingResponse      `json:"last_reading,omitempty"`
	Metrics     []MetricPointResponse `json:"metrics"`
}

// @Description Отфильтрованные сенсоры, счетчики и выбранный сенсор
type SensorListResponse struct {
	Items        []SensorResponse `json:"items"`
	TypeCounts   map[string]int   `json:"type_counts"`
	StatusCounts map[string]int   `json:"status_counts"`
	Selected     *SensorResponse  `json:"selected,omitempty"`
}

// @Description DTO камеры видеонаблюдения
type CameraResponse struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Location         LocationDTO `json:"location"`
	Status           string      `json:"status"`
	StreamURL        string      `json:"stream_url"`
	LastSnapshot     *string     `json:"last_snapshot,omitempty"`
	RecordingEnabled bool        `json:"recording_enabled"`
}

type CameraListResponse struct {
	Items  []CameraResponse `json:"items"`
	Counts map[string]int   `json:"counts"`
}

// MarkerResponse - маркер карты
// @Description Маркер карты
type MarkerResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

type MapResponse struct {
	Markers []MarkerResponse `json:"markers"`
	Counts  map[string]int   `json:"counts"`
}

// SummaryResponse DTO для ответа с показателями главной панели
// @Description DTO для ответа с показателями главной панели
type SummaryResponse struct {
	ActiveIncidents int                `json:"active_incidents"`
	TotalIncidents  int                `json:"total_incidents"`
	OnlineSensors   int                `json:"online_sensors"`
	TotalSensors    int                `json:"total_sensors"`
	OnlineCameras   int                `json:"online_cameras"`
	TotalCameras    int                `json:"total_cameras"`
	RecentIncidents []IncidentResponse `json:"recent_incidents"`
}

type ReloadResponse struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
}
