package models

import "github.com/google/uuid"

// Kind - тип сущности, из которой построен маркер
type Kind string

const (
	KindIncident Kind = "incident"
	KindSensor   Kind = "sensor"
	KindCamera   Kind = "camera"
)

// Marker - точка общего слоя карты. Не хранится, живет до следующей перезагрузки коллекций
type Marker struct {
	ID          uuid.UUID `json:"id"`
	Kind        Kind      `json:"kind"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}
