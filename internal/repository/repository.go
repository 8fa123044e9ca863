package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/service"
	"github.com/redis/go-redis/v9"
)

// Repository читает инциденты, сенсоры и камеры из PostgreSQL и кеширует карточки инцидентов в Redis
type Repository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.Repository {
	return &Repository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}
