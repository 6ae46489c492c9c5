package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shark-ai/internal/config"
	"shark-ai/internal/gemini"
	"shark-ai/internal/http"
	"shark-ai/internal/logging"
	"shark-ai/internal/metrics"
	"shark-ai/internal/service"
	"shark-ai/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logging.Init(cfg); err != nil {
		slog.Warn("Log file unavailable, logging to stdout", "path", cfg.LogFile, "error", err)
	}
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// The relay checks the key per request, so a missing key is not fatal.
	if !cfg.HasAPIKey() {
		slog.Warn("GEMINI_API_KEY is not set; relay requests will fail until it is configured")
	}

	deps := &http.Deps{
		MetricsGatherer: metrics.NewRegistry(),
	}

	var relayOpts []service.RelayOption
	if cfg.DBPath != "" {
		db, err := storage.New(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			_ = db.Close()
		}()

		if err := storage.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		slog.Info("Call ledger initialized", "path", cfg.DBPath)

		callRepo := storage.NewRelayCallRepo(db)
		relayOpts = append(relayOpts, service.WithCallRecorder(callRepo))
		deps.CallStore = callRepo
	}

	// Create Gemini client (external service layer)
	geminiClient := gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiModel)
	deps.RelayService = service.NewRelayService(geminiClient, cfg.GeminiAPIKey, relayOpts...)

	srv := &nethttp.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Shark AI proxy listening", "addr", srv.Addr)
	slog.Debug("Gemini configuration", "base_url", cfg.GeminiBaseURL, "model", cfg.GeminiModel)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("Server stopped")
}
