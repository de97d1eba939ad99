package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"scanworker/internal/adapter/repo"
	"scanworker/internal/domain"
	"scanworker/internal/http/handlers"
	"scanworker/internal/http/httpapi"
	"scanworker/internal/inference"
	"scanworker/internal/infra"
	"scanworker/internal/storage"
	"scanworker/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store is optional: without credentials the worker serves its trigger
	// surface but processes nothing.
	var (
		jobs     domain.ScanJobRepository
		receipts domain.ReceiptRepository
	)
	if cfg.DatabaseURL == "" {
		logger.Warn().Msg("worker: store credentials not set, queue processing disabled")
	} else {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("worker: db connection failed")
		}
		defer pool.Close()
		runner := infra.NewSQLRunner(pool, logger)
		jobs = repo.NewScanJobRepository(runner)
		receipts = repo.NewReceiptRepository(runner)
	}

	httpClient := &http.Client{Timeout: 120 * time.Second}

	var store storage.ObjectStore
	if cfg.StorageBaseURL != "" {
		store, err = storage.NewBucketClient(storage.BucketOptions{
			BaseURL:    cfg.StorageBaseURL,
			Bucket:     cfg.StorageBucket,
			ServiceKey: cfg.StorageServiceKey,
			HTTPClient: httpClient,
			Logger:     &logger,
		})
	} else {
		store, err = storage.NewFileStore(cfg.StoragePath)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to configure storage")
	}

	engine, err := inference.NewClient(inference.Options{
		BaseURL:    cfg.InferenceBaseURL,
		Model:      cfg.InferenceModel,
		HTTPClient: httpClient,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to configure inference client")
	}

	processor := worker.NewProcessor(jobs, receipts, store, engine, logger)
	app := handlers.NewApp(processor, engine)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("model", engine.Model()).Msgf("worker listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("worker stopped")
}
