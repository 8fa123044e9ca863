package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/redis/go-redis/v9"
)

func incidentCacheKey(id string) string {
	return fmt.Sprintf("incident:%s", id)
}

// GetIncidentFromCache пытается получить инцидент из Redis. Промах кеша - это (nil, nil)
func (r *Repository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.RawIncident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id.String())).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.RawIncident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *Repository) SetIncidentCache(ctx context.Context, incident *models.RawIncident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *Repository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id.String())).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
