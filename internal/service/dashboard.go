package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/config"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/filter"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/metrics"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/normalize"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/store"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=dashboard.go -destination=../handler/http/v1/mocks/mock_service.go -package=mocks

// DashboardService определяет контракт движка агрегации и представлений
type DashboardService interface {
	Reload(ctx context.Context, kind models.Kind) error
	ReloadAll(ctx context.Context) error
	ReloadIncidents(ctx context.Context) error
	ReloadSensors(ctx context.Context) error
	ReloadCameras(ctx context.Context) error

	IncidentView(criteria filter.Criteria) IncidentView
	SensorView(criteria filter.Criteria) SensorView
	CameraView(criteria filter.Criteria) CameraView
	MapMarkers(layer string) (MapView, error)
	Summary() Summary

	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	CreateIncident(ctx context.Context, incident models.NewIncident) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id uuid.UUID, patch models.IncidentPatch) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) (*models.Incident, error)

	SelectSensor(ctx context.Context, id uuid.UUID, limit int) (*models.Sensor, error)
	LoadMetrics(ctx context.Context, id uuid.UUID, limit int) error
	SelectedSensor() (*models.Sensor, bool)
}

type dashboardService struct {
	repo      Repository
	store     *store.Store
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	now       func() time.Time
}

func NewDashboardService(repo Repository, st *store.Store, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) DashboardService {
	return &dashboardService{
		repo:      repo,
		store:     st,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// collaboratorErr помечает ошибку хранилища как ошибку внешнего источника, NotFound остается NotFound
func collaboratorErr(err error) error {
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrCollaborator) {
		return err
	}
	return fmt.Errorf("%w: %w", models.ErrCollaborator, err)
}

// Reload перезагружает одну коллекцию, пустой kind перезагружает все три
func (s *dashboardService) Reload(ctx context.Context, kind models.Kind) error {
	switch kind {
	case "":
		return s.ReloadAll(ctx)
	case models.KindIncident:
		return s.ReloadIncidents(ctx)
	case models.KindSensor:
		return s.ReloadSensors(ctx)
	case models.KindCamera:
		return s.ReloadCameras(ctx)
	}
	return fmt.Errorf("service: unknown collection kind %q: %w", kind, models.ErrInvalidArgument)
}

// ReloadAll перезагружает три коллекции параллельно. Каждая перезагрузка меняет только свою коллекцию,
// ошибка одной не влияет на остальные
func (s *dashboardService) ReloadAll(ctx context.Context) error {
	var g errgroup.Group
	errs := make([]error, 3)
	g.Go(func() error { errs[0] = s.ReloadIncidents(ctx); return nil })
	g.Go(func() error { errs[1] = s.ReloadSensors(ctx); return nil })
	g.Go(func() error { errs[2] = s.ReloadCameras(ctx); return nil })
	_ = g.Wait()
	return errors.Join(errs...)
}

// ReloadIncidents заменяет коллекцию инцидентов снимком из хранилища
func (s *dashboardService) ReloadIncidents(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ReloadIncidents",
	})
	log.Info("Reloading incidents")

	raws, err := s.repo.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		metrics.ObserveReload(models.KindIncident, 0, err)
		return fmt.Errorf("service: could not reload incidents: %w", collaboratorErr(err))
	}

	items, err := normalize.Incidents(raws)
	if err != nil {
		log.WithError(err).Error("Failed to normalize incidents, keeping previous snapshot")
		metrics.ObserveReload(models.KindIncident, 0, err)
		return fmt.Errorf("service: could not reload incidents: %w", err)
	}

	s.store.ReplaceIncidents(items)
	metrics.ObserveReload(models.KindIncident, len(items), nil)
	log.WithField("count", len(items)).Info("Incidents reloaded successfully")
	return nil
}

// ReloadSensors заменяет коллекцию сенсоров. Если выбранного сенсора нет, выбирается первый
// и для него загружаются метрики
func (s *dashboardService) ReloadSensors(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ReloadSensors",
	})
	log.Info("Reloading sensors")

	raws, err := s.repo.ListSensors(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list sensors from repository")
		metrics.ObserveReload(models.KindSensor, 0, err)
		return fmt.Errorf("service: could not reload sensors: %w", collaboratorErr(err))
	}

	items, err := normalize.Sensors(raws)
	if err != nil {
		log.WithError(err).Error("Failed to normalize sensors, keeping previous snapshot")
		metrics.ObserveReload(models.KindSensor, 0, err)
		return fmt.Errorf("service: could not reload sensors: %w", err)
	}

	kept := s.store.ReplaceSensors(items)
	metrics.ObserveReload(models.KindSensor, len(items), nil)
	log.WithFields(logrus.Fields{"count": len(items), "selection_kept": kept}).Info("Sensors reloaded successfully")

	if kept || len(items) == 0 {
		return nil
	}

	first := items[0].ID
	generation, err := s.store.SelectSensor(first)
	if err != nil {
		log.WithError(err).Warn("Failed to auto-select first sensor")
		return nil
	}
	if err := s.loadMetrics(ctx, first, generation, 0); err != nil {
		// Коллекция уже обновлена, история выбранного сенсора просто остается пустой
		log.WithError(err).WithField("sensor_id", first).Warn("Failed to load metrics for auto-selected sensor")
	}
	return nil
}

func (s *dashboardService) ReloadCameras(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ReloadCameras",
	})
	log.Info("Reloading cameras")

	raws, err := s.repo.ListCameras(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list cameras from repository")
		metrics.ObserveReload(models.KindCamera, 0, err)
		return fmt.Errorf("service: could not reload cameras: %w", collaboratorErr(err))
	}

	items, err := normalize.Cameras(raws)
	if err != nil {
		log.WithError(err).Error("Failed to normalize cameras, keeping previous snapshot")
		metrics.ObserveReload(models.KindCamera, 0, err)
		return fmt.Errorf("service: could not reload cameras: %w", err)
	}

	s.store.ReplaceCameras(items)
	metrics.ObserveReload(models.KindCamera, len(items), nil)
	log.WithField("count", len(items)).Info("Cameras reloaded successfully")
	return nil
}
