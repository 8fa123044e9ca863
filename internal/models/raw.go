package models

import "time"

// RawIncident - строка таблицы incidents в том виде, в каком ее отдает хранилище
type RawIncident struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Severity    string     `json:"severity"`
	Type        string     `json:"type"`
	Location    Location   `json:"location"`
	ReportedAt  time.Time  `json:"reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	Tags        []string   `json:"tags"`
}

type RawReading struct {
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
}

type RawSensor struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	Location    Location    `json:"location"`
	LastReading *RawReading `json:"last_reading,omitempty"`
}

type RawSensorReading struct {
	SensorID  string    `json:"sensor_id"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

type RawCamera struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Location         Location `json:"location"`
	Status           string   `json:"status"`
	StreamURL        string   `json:"stream_url"`
	LastSnapshot     *string  `json:"last_snapshot,omitempty"`
	RecordingEnabled bool     `json:"recording_enabled"`
}
