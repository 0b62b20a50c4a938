package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"result_ingestor/internal/config"
	"result_ingestor/internal/httpapi"
	"result_ingestor/internal/metrics"
	"result_ingestor/internal/publisher"
	"result_ingestor/internal/scheduler"
	"result_ingestor/internal/service"
	"result_ingestor/internal/source/oddsapi"
	"result_ingestor/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	metricsManager := metrics.NewManager(metrics.WithNamespace(cfg.Metrics.Namespace))

	var resultPublisher service.Publisher
	if cfg.RabbitMQ.IsEnabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		resultPublisher = rabbitMQ
	} else {
		logger.Warn("rabbitmq disabled, applied results will not be published")
	}

	resultMappingStore := postgres.NewResultMappingStore(db)
	eventIDMapStore := postgres.NewEventIDMapStore(db)
	ingestStateStore := postgres.NewIngestStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	resultsSource := oddsapi.New(oddsapi.Config{
		BaseURL:  cfg.API.BaseURL,
		APIKey:   cfg.API.APIKey,
		DaysFrom: cfg.API.DaysFrom,
		Timeout:  cfg.API.Timeout,
	}, logger)

	resultService := service.NewResultService(
		resultsSource,
		eventIDMapStore,
		resultMappingStore,
		ingestStateStore,
		txManager,
		resultPublisher,
		metricsManager,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(resultService, cfg.Sync.Interval, cfg.Sync.CycleTimeout, logger)

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Service: resultService,
		DB:      db,
		Metrics: metricsManager,
		Logger:  logger,
	})
	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	logger.Info("starting result ingestor",
		"source", resultsSource.Name(),
		"interval", cfg.Sync.Interval,
		"competitions", cfg.Sync.Competitions,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
