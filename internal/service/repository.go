package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository определяет контракт доступа к хранилищу инцидентов, сенсоров и камер
type Repository interface {
	ListIncidents(ctx context.Context) ([]models.RawIncident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.RawIncident, error)
	CreateIncident(ctx context.Context, incident models.NewIncident) (*models.RawIncident, error)
	UpdateIncident(ctx context.Context, id uuid.UUID, patch models.IncidentPatch) (*models.RawIncident, error)
	ListSensors(ctx context.Context) ([]models.RawSensor, error)
	ListSensorReadings(ctx context.Context, sensorID uuid.UUID, limit int) ([]models.RawSensorReading, error)
	ListCameras(ctx context.Context) ([]models.RawCamera, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.RawIncident, error)
	SetIncidentCache(ctx context.Context, incident *models.RawIncident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}
