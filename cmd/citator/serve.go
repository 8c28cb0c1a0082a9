package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"citator/internal/app"
	"citator/internal/platform/config"
	"citator/internal/platform/httpserver"
	"citator/internal/platform/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the citator HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		log := logger.New()

		a, err := app.New(cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		srv := httpserver.New(cfg.Addr, a.Router(), cfg.FetchTimeout)
		log.Info("starting citator", "addr", cfg.Addr, "ledger_backend", cfg.LedgerBackend)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt)
		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
