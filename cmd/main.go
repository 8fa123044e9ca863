package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/config"
	v1 "github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/handler/http/v1"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/repository"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/service"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/store"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/webhook"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/pkg/logger"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/pkg/postgres"
	redisclient "github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Urban Operations Command Center API
// @version 1.0
// @description Aggregated incidents, sensors and CCTV cameras for the city operations dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.WithField("source", cfg.MigrationsPath).Info("Running database migrations...")

	if err := postgres.Migrate(cfg); err != nil {
		return err
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозитория и хранилища коллекций
	repo := repository.NewRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	collections := store.New()

	// Инициализация сервиса
	dashboardService := service.NewDashboardService(repo, collections, log, cfg, webhookPublisher)

	// Первичная загрузка коллекций. Ошибка одной коллекции не мешает запуску,
	// ее можно перезагрузить позже через POST /api/v1/reload
	if err := dashboardService.ReloadAll(ctx); err != nil {
		log.WithError(err).Warn("Initial reload finished with errors")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
