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
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsletter_sync/internal/api"
	"newsletter_sync/internal/config"
	"newsletter_sync/internal/publisher"
	"newsletter_sync/internal/render"
	"newsletter_sync/internal/scheduler"
	"newsletter_sync/internal/service"
	"newsletter_sync/internal/source/resend"
	"newsletter_sync/internal/storage"
	pgblob "newsletter_sync/internal/storage/postgres"
	s3blob "newsletter_sync/internal/storage/s3"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage backend
	blob, cleanup, err := newBlob(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("storage initialized", "backend", cfg.Storage.Backend)

	records := storage.NewRecords(blob)

	// Initialize RabbitMQ publisher (optional)
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
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
		pub = rabbitMQ
	}

	// Initialize upstream source
	source := resend.New(resend.Config{
		BaseURL:     cfg.API.BaseURL,
		APIKey:      cfg.API.Key,
		PageSize:    cfg.API.PageSize,
		Timeout:     cfg.API.Timeout,
		MinInterval: cfg.API.MinInterval,
	}, logger)

	syncService := service.NewSyncService(
		source,
		records,
		render.NewMarkdown(),
		pub,
		nil,
		logger,
		cfg.Sync,
	)

	server := api.NewServer(syncService, records, cfg.Feed, cfg.Server.TriggerSecret, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.Routes(),
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if cfg.Sync.Interval > 0 {
		sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server",
		"addr", cfg.Server.Addr,
		"mode", cfg.Sync.Mode,
		"interval", cfg.Sync.Interval,
	)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newBlob(ctx context.Context, cfg config.StorageConfig) (storage.Blob, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := sqlx.Connect("postgres", cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, err
		}
		blob, err := pgblob.NewBlob(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return blob, func() { db.Close() }, nil
	default:
		blob, err := s3blob.New(ctx, s3blob.Config{
			Bucket:       cfg.S3.Bucket,
			Prefix:       cfg.S3.Prefix,
			Region:       cfg.S3.Region,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		return blob, func() {}, nil
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
