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

	"gemtrade/assistant"
	"gemtrade/config"
	"gemtrade/database"
	"gemtrade/document"
	"gemtrade/loader"
	"gemtrade/logger"
	"gemtrade/scheduler"
	"gemtrade/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("failed to load config file, using defaults", "path", config.FilePath, "error", err)
		cfg = config.Defaults()
	}

	logger.Info("connecting to database", "path", cfg.DatabasePath)
	dbConn, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("db open error", "error", err)
	}
	defer dbConn.Close()

	if err := loader.InitDatabase(dbConn); err != nil {
		logger.Fatal("database initialization failed", "error", err)
	}

	svc := Services{
		Assistant: assistant.New(assistant.Config{
			APIKey:   cfg.Gemini.APIKey,
			Model:    cfg.Gemini.Model,
			Endpoint: cfg.Gemini.Endpoint,
		}),
	}
	if !svc.Assistant.Enabled() {
		logger.Warn("GEMINI_API_KEY not set, assistant disabled")
	}

	pdf := document.NewChromePDF(cfg.ChromePath)
	defer pdf.Close()
	svc.PDF = pdf

	store, err := storage.NewMinio(cfg.Storage)
	switch {
	case err != nil:
		logger.Warn("document storage disabled", "error", err)
	case store == nil:
		logger.Info("document storage not configured")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.Init(ctx); err != nil {
			logger.Warn("document storage unavailable", "endpoint", cfg.Storage.Endpoint, "error", err)
		} else {
			svc.Store = store
		}
		cancel()
	}

	sched, err := scheduler.New(dbConn, cfg.DigestSchedule)
	if err != nil {
		logger.Warn("digest scheduler disabled", "error", err)
	}
	if sched != nil {
		sched.Start()
	}

	mux := http.NewServeMux()
	SetupRoutes(mux, dbConn, svc)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start error", "error", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if sched != nil {
		sched.Stop(ctx)
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
}
