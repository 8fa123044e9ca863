package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxMetricHistory - сколько последних показаний хранится у выбранного сенсора
const MaxMetricHistory = 50

type SensorType string

const (
	SensorTypeAirQuality SensorType = "air_quality"
	SensorTypeTraffic    SensorType = "traffic"
	SensorTypeNoise      SensorType = "noise"
	SensorTypeWater      SensorType = "water"
	SensorTypeWeather    SensorType = "weather"
)

func SensorTypes() []SensorType {
	return []SensorType{
		SensorTypeAirQuality,
		SensorTypeTraffic,
		SensorTypeNoise,
		SensorTypeWater,
		SensorTypeWeather,
	}
}

func (t SensorType) Valid() bool {
	switch t {
	case SensorTypeAirQuality, SensorTypeTraffic, SensorTypeNoise, SensorTypeWater, SensorTypeWeather:
		return true
	}
	return false
}

// DeviceStatus - рабочее состояние сенсора или камеры
type DeviceStatus string

const (
	DeviceStatusOnline      DeviceStatus = "online"
	DeviceStatusOffline     DeviceStatus = "offline"
	DeviceStatusMaintenance DeviceStatus = "maintenance"
)

func DeviceStatuses() []DeviceStatus {
	return []DeviceStatus{DeviceStatusOnline, DeviceStatusOffline, DeviceStatusMaintenance}
}

func (s DeviceStatus) Valid() bool {
	switch s {
	case DeviceStatusOnline, DeviceStatusOffline, DeviceStatusMaintenance:
		return true
	}
	return false
}

type Reading struct {
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
}

type MetricPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

type Sensor struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Type        SensorType    `json:"type"`
	Status      DeviceStatus  `json:"status"`
	Location    Location      `json:"location"`
	LastReading *Reading      `json:"last_reading,omitempty"`
	Metrics     []MetricPoint `json:"metrics"`
}
