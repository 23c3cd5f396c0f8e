package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/crisis_relief_coordinator/internal/config"
	v1 "github.com/shenikar/crisis_relief_coordinator/internal/handler/http/v1"
	"github.com/shenikar/crisis_relief_coordinator/internal/notify"
	"github.com/shenikar/crisis_relief_coordinator/internal/repository"
	"github.com/shenikar/crisis_relief_coordinator/internal/scheduler"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/shenikar/crisis_relief_coordinator/internal/views"
	"github.com/shenikar/crisis_relief_coordinator/pkg/logger"
	"github.com/shenikar/crisis_relief_coordinator/pkg/metrics"
	"github.com/shenikar/crisis_relief_coordinator/pkg/postgres"
	redisclient "github.com/shenikar/crisis_relief_coordinator/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crisis_relief_coordinator/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crisis Relief Coordinator API
// @version 1.0
// @description Live incident dashboard: entity store, simulation feed and view synchronization.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// openBackend выбирает backend хранилища по конфигурации; closer освобождает соединения
func openBackend(ctx context.Context, cfg *config.Config, log *logrus.Logger) (store.Backend, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return repository.NewMemoryRepository(), func() {}, nil

	case config.StorageRedis:
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to Redis")
		return repository.NewRedisRepository(redisClient), func() { _ = redisClient.Close() }, nil

	case config.StoragePostgres:
		if err := runMigrations(cfg, log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresRepository(dbpool), dbpool.Close, nil

	default:
		fileRepo, err := repository.NewFileRepository(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		return fileRepo, func() {}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsManager := metrics.NewManager()

	// Инициализация хранилища
	backend, closeBackend, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer closeBackend()

	entityStore := store.New(backend, log,
		store.WithKeyPrefix(cfg.StorageKeyPrefix),
		store.WithObserver(metricsManager),
	)
	entityStore.Initialize(ctx)

	// Координатор и рендереры главной страницы
	coordinator := service.NewCoordinator(entityStore, log, metricsManager)
	board := views.NewBoard(views.DashboardRegions()...)
	trend := views.DefaultTrendSeries()
	for _, r := range views.DashboardRenderers(board, trend, views.DefaultCenter) {
		coordinator.RegisterRenderer(r)
	}

	// Симуляция входящих инцидентов
	notifications := notify.NewCenter(cfg.NotificationLifetime)
	simCfg := service.DefaultSimulationConfig()
	simCfg.Period = cfg.SimulationPeriod
	simCfg.Probability = cfg.SimulationProbability
	simCfg.BaseLat = cfg.SimulationBaseLat
	simCfg.BaseLon = cfg.SimulationBaseLon
	simCfg.JitterRadius = cfg.SimulationJitter

	engine := service.NewSimulationEngine(entityStore, coordinator, simCfg, log,
		service.WithNotifier(notifications),
		service.WithTrend(trend),
		service.WithMetrics(metricsManager),
	)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(entityStore, coordinator, engine, service.NewDetailResolver(entityStore), log)

	// Первая отрисовка всех областей
	report := coordinator.Notify(ctx)
	log.WithField("rendered", len(report.Rendered)).Info("Dashboard rendered")

	if cfg.SimulationEnabled {
		sched := scheduler.NewCron(log)
		if err := engine.ScheduleTick(ctx, sched); err != nil {
			log.Fatalf("Failed to schedule simulation: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Infof("Simulation started: every %s with probability %.2f", simCfg.Period, simCfg.Probability)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, entityStore, board, notifications, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(metricsManager.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
