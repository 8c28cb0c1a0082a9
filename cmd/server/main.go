package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"citator/internal/app"
	"citator/internal/platform/config"
	"citator/internal/platform/httpserver"
	"citator/internal/platform/logger"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Enrichment logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	srv := httpserver.New(cfg.Addr, a.Router(), cfg.FetchTimeout)

	log.Info("starting citator", "addr", cfg.Addr, "ledger_backend", cfg.LedgerBackend)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
