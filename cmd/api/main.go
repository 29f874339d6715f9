package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/job-portal/internal/api/http"
	"github.com/spec-kit/job-portal/internal/api/http/handlers"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/config"
	"github.com/spec-kit/job-portal/internal/events"
	"github.com/spec-kit/job-portal/internal/observability"
	"github.com/spec-kit/job-portal/internal/persistence"
	"github.com/spec-kit/job-portal/internal/repository"
	"github.com/spec-kit/job-portal/internal/service"
	"github.com/spec-kit/job-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	tables := repository.Tables{Jobs: cfg.Store.JobsTable, Applications: cfg.Store.ApplicationsTable}

	var (
		jobRepo repository.JobRepository
		appRepo repository.ApplicationRepository
	)
	if pg.Enabled() {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, tables.MigrationData(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		jobRepo = repository.NewJobRepository(pg.PoolHandle(), tables)
		appRepo = repository.NewApplicationRepository(pg.PoolHandle(), tables)
	} else {
		logger.Warn("using in-memory store; data is lost on restart")
		store := repository.NewMemoryStore()
		jobRepo = store.Jobs()
		appRepo = store.Applications()
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	if redis.Enabled() {
		events.NewRedisForwarder(redis.Client, cfg.Redis.EventsChannel, logger).Register(dispatcher)
	}
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification))
	worker.StartMetricsWorker(dispatcher, metrics)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	transport := auth.NewCookieTransport(cfg.Auth.CookieName)

	jobService := service.NewJobService(jobRepo, dispatcher, logger)
	applicationService := service.NewApplicationService(service.ApplicationDependencies{
		ApplicationRepo: appRepo,
		JobRepo:         jobRepo,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})

	app := fiber.New(httptransport.ServerConfig(cfg.App.Name, cfg.App.TrustProxy, cfg.App.TrustedProxies))
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:         logger,
		Metrics:        metrics,
		Timeout:        cfg.App.RequestTimeout(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustProxy:     cfg.App.TrustProxy,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:         handlers.NewAuthHandler(service.NewAuthService(tokens), transport),
		Jobs:         handlers.NewJobsHandler(jobService),
		Applications: handlers.NewApplicationsHandler(applicationService),
		Gate:         auth.NewGate(tokens, transport, logger),
		LoginLimiter: auth.NewLoginLimiter(cfg.Auth.LoginRatePerMinute),
		Metrics:      metrics,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
