package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/normalize"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/webhook"
	"github.com/sirupsen/logrus"
)

// GetIncident получает инцидент по ID: сначала из кеша, затем из хранилища
func (s *dashboardService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	raw, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if raw != nil {
		incident, err := normalize.Incident(*raw)
		if err == nil {
			log.Debug("Incident served from cache")
			return &incident, nil
		}
		log.WithError(err).Warn("Cached incident is malformed, falling back to repository")
	}

	raw, err = s.repo.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", collaboratorErr(err))
	}

	incident, err := normalize.Incident(*raw)
	if err != nil {
		log.WithError(err).Error("Failed to normalize incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, raw); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return &incident, nil
}

// CreateIncident сохраняет новый инцидент и перезагружает коллекцию инцидентов
func (s *dashboardService) CreateIncident(ctx context.Context, in models.NewIncident) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "CreateIncident",
		"title":   in.Title,
	})
	log.Info("Attempting to create a new incident")

	if in.Status == "" {
		in.Status = models.IncidentStatusActive
	}
	if !in.Status.Valid() || !in.Severity.Valid() {
		log.Warn("Rejected incident with invalid status or severity")
		return nil, fmt.Errorf("service: invalid status %q or severity %q: %w", in.Status, in.Severity, models.ErrInvalidArgument)
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.ReportedAt.IsZero() {
		in.ReportedAt = s.now()
	}
	if in.Status == models.IncidentStatusResolved && in.ResolvedAt == nil {
		resolvedAt := in.ReportedAt
		in.ResolvedAt = &resolvedAt
	}

	raw, err := s.repo.CreateIncident(ctx, in)
	if err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", collaboratorErr(err))
	}

	incident, err := normalize.Incident(*raw)
	if err != nil {
		log.WithError(err).Error("Repository returned malformed incident")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	// Коллекция обновляется полной перезагрузкой, а не вставкой в текущий снимок
	if err := s.ReloadIncidents(ctx); err != nil {
		log.WithError(err).Warn("Incident created but collection reload failed")
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return &incident, nil
}

// UpdateIncident применяет частичное обновление к инциденту из текущей коллекции.
// Инцидент, которого нет в коллекции, не обновляется: возвращается ErrNotFound.
// Смена статуса через патч подчиняется тем же правилам, что и UpdateIncidentStatus
func (s *dashboardService) UpdateIncident(ctx context.Context, id uuid.UUID, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	updated, err := s.updateIncident(ctx, log, id, patch)
	if err != nil {
		return nil, err
	}

	log.Info("Incident updated successfully")
	return updated, nil
}

// UpdateIncidentStatus меняет статус инцидента
func (s *dashboardService) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to change incident status")

	updated, err := s.updateIncident(ctx, log, id, models.IncidentPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	log.Info("Incident status changed successfully")
	return updated, nil
}

// updateIncident проверяет патч, применяет правило смены статуса и публикует событие,
// если патч задает статус
func (s *dashboardService) updateIncident(ctx context.Context, log *logrus.Entry, id uuid.UUID, patch models.IncidentPatch) (*models.Incident, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		log.Warn("Rejected unknown incident status")
		return nil, fmt.Errorf("service: invalid status %q: %w", *patch.Status, models.ErrInvalidArgument)
	}
	if patch.Severity != nil && !patch.Severity.Valid() {
		return nil, fmt.Errorf("service: invalid severity %q: %w", *patch.Severity, models.ErrInvalidArgument)
	}

	current, ok := s.findIncident(id)
	if !ok {
		log.Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for update: %w", id, models.ErrNotFound)
	}

	patch = s.withStatusTransition(patch)

	updated, err := s.applyUpdate(ctx, log, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		s.publishStatusChange(ctx, log, current.Status, updated)
	}
	return updated, nil
}

// withStatusTransition дополняет патч правилом смены статуса. Переход в resolved выставляет
// ResolvedAt в том же обновлении. Любой другой статус оставляет ResolvedAt как есть: повторное
// открытие инцидента не стирает время решения. Это намеренная политика.
func (s *dashboardService) withStatusTransition(patch models.IncidentPatch) models.IncidentPatch {
	if patch.Status != nil && *patch.Status == models.IncidentStatusResolved {
		now := s.now()
		patch.ResolvedAt = &now
	}
	return patch
}

func (s *dashboardService) publishStatusChange(ctx context.Context, log *logrus.Entry, previous models.IncidentStatus, updated *models.Incident) {
	event := webhook.WebhookEvent{
		IncidentID:     updated.ID,
		Title:          updated.Title,
		Severity:       updated.Severity,
		PreviousStatus: previous,
		Status:         updated.Status,
		ResolvedAt:     updated.ResolvedAt,
		Timestamp:      s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish status change event")
		return
	}
	log.WithField("previous_status", previous).Debug("Status change event published")
}

// applyUpdate сохраняет патч в хранилище, переносит сохраненную запись в коллекцию и сбрасывает кеш.
// Если хранилище вернуло непригодную запись, патч применяется к коллекции локально
func (s *dashboardService) applyUpdate(ctx context.Context, log *logrus.Entry, id uuid.UUID, patch models.IncidentPatch) (*models.Incident, error) {
	raw, err := s.repo.UpdateIncident(ctx, id, patch)
	if err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", collaboratorErr(err))
	}

	var updated models.Incident
	stored, err := storedIncident(id, raw)
	if err == nil {
		updated, err = s.store.SetIncident(stored)
	} else {
		log.WithError(err).Warn("Repository returned unusable incident, applying patch locally")
		updated, err = s.store.UpdateIncident(id, patch)
	}
	if err != nil {
		// Коллекцию успели перезагрузить без этого инцидента
		log.WithError(err).Warn("Incident disappeared from collection during update")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	return &updated, nil
}

// storedIncident нормализует запись, которую вернуло хранилище после обновления
func storedIncident(id uuid.UUID, raw *models.RawIncident) (models.Incident, error) {
	if raw == nil {
		return models.Incident{}, fmt.Errorf("no incident returned for %s: %w", id, models.ErrNormalization)
	}
	incident, err := normalize.Incident(*raw)
	if err != nil {
		return models.Incident{}, err
	}
	if incident.ID != id {
		return models.Incident{}, fmt.Errorf("returned incident %s does not match %s: %w", incident.ID, id, models.ErrNormalization)
	}
	return incident, nil
}

func (s *dashboardService) findIncident(id uuid.UUID) (models.Incident, bool) {
	for _, incident := range s.store.Incidents() {
		if incident.ID == id {
			return incident, true
		}
	}
	return models.Incident{}, false
}
