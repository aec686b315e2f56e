package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/backend"
	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/config"
	apphttp "github.com/Daniel-M-Sena/gerenciador-financeiro/internal/http"
	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/ledger"
	applog "github.com/Daniel-M-Sena/gerenciador-financeiro/internal/log"
)

func main() {
	// Setup structured logging
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	// Local overrides; absence is not an error.
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env file")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	if backend.Type(cfg.DataBackend) == backend.Memory {
		logger.Warn("Memory backend keeps data only for the process lifetime", "backend", cfg.DataBackend)
	}

	store, cleanup, err := backend.New(cfg, logger.WithComponent(applog.ComponentBackend).Logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend", applog.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer cleanup()

	led, err := ledger.Open(context.Background(), store)
	if err != nil {
		logger.Error("Failed to load ledger", applog.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	srv := apphttp.NewServer(":"+cfg.Port, led, cfg.ChartCacheTTL)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String(), applog.FieldOperation, applog.OpShutdown)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err, applog.FieldOperation, applog.OpShutdown)
		}
		cancel()
	}()

	logger.Info("Starting gerenciador server", "port", cfg.Port, "backend", cfg.DataBackend, applog.FieldOperation, applog.OpStartup)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
