package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/metrics"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/normalize"
	"github.com/sirupsen/logrus"
)

// SelectSensor делает сенсор выбранным и загружает его историю метрик.
// Если за время загрузки выбран другой сенсор, результат отбрасывается
func (s *dashboardService) SelectSensor(ctx context.Context, id uuid.UUID, limit int) (*models.Sensor, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dashboard",
		"method":    "SelectSensor",
		"sensor_id": id,
	})
	log.Info("Selecting sensor")

	generation, err := s.store.SelectSensor(id)
	if err != nil {
		log.WithError(err).Warn("Attempted to select a non-existent sensor")
		return nil, fmt.Errorf("service: could not select sensor: %w", err)
	}

	if err := s.loadMetrics(ctx, id, generation, limit); err != nil {
		return nil, err
	}

	selected, ok := s.store.SelectedSensor()
	if !ok || selected.ID != id {
		// Выбор уже перешел к другому сенсору, отдаем его текущее состояние из снимка
		for _, sensor := range s.store.Sensors() {
			if sensor.ID == id {
				return &sensor, nil
			}
		}
		return nil, fmt.Errorf("service: sensor %s no longer present: %w", id, models.ErrNotFound)
	}

	log.WithField("points", len(selected.Metrics)).Info("Sensor selected successfully")
	return &selected, nil
}

// LoadMetrics перезагружает историю уже выбранного сенсора
func (s *dashboardService) LoadMetrics(ctx context.Context, id uuid.UUID, limit int) error {
	selection := s.store.Selection()
	if !selection.Valid || selection.SensorID != id {
		return fmt.Errorf("service: sensor %s is not selected: %w", id, models.ErrNotFound)
	}
	return s.loadMetrics(ctx, id, selection.Generation, limit)
}

func (s *dashboardService) SelectedSensor() (*models.Sensor, bool) {
	selected, ok := s.store.SelectedSensor()
	if !ok {
		return nil, false
	}
	return &selected, true
}

// loadMetrics запрашивает показания и записывает их, только если поколение выбора не изменилось
func (s *dashboardService) loadMetrics(ctx context.Context, id uuid.UUID, generation uint64, limit int) error {
	if limit <= 0 {
		limit = s.cfg.MetricsHistoryLimit
	}
	if limit <= 0 || limit > models.MaxMetricHistory {
		limit = models.MaxMetricHistory
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "loadMetrics",
		"sensor_id":  id,
		"generation": generation,
		"limit":      limit,
	})

	readings, err := s.repo.ListSensorReadings(ctx, id, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list sensor readings from repository")
		return fmt.Errorf("service: could not load sensor metrics: %w", collaboratorErr(err))
	}

	points := normalize.Readings(readings, limit)
	if !s.store.SetSensorMetrics(id, generation, points) {
		metrics.ObserveStaleMetricLoad()
		log.Debug("Selection changed while loading metrics, result discarded")
		return nil
	}

	log.WithField("points", len(points)).Info("Sensor metrics loaded")
	return nil
}
