// Package app wires the citator service graph from configuration. Both the
// standalone server binary and the CLI build on it.
package app

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// PostgreSQL driver for the optional database-backed ledger store.
	_ "github.com/lib/pq"

	"citator/internal/enrich"
	"citator/internal/enrich/handler"
	"citator/internal/expand"
	ledgerstore "citator/internal/ledger/store"
	"citator/internal/platform/config"
	"citator/internal/platform/httpclient"
	"citator/internal/platform/metrics"
	"citator/internal/platform/middleware"
	platformredis "citator/internal/platform/redis"
	"citator/internal/resolver"
)

// App holds the wired service graph and the resources to release on exit.
type App struct {
	Config  config.Server
	Logger  *slog.Logger
	Service *enrich.Service

	closers []func() error
}

// New builds the enrichment service from configuration: ledger store
// (filesystem or PostgreSQL, optionally Redis-cached), HTTP clients,
// expansion and resolution engines.
func New(cfg config.Server, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	store, err := a.buildLedgerStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	exploder, err := expand.New(store, expand.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	client := httpclient.New(cfg.FetchTimeout)
	env := &resolver.Environment{
		Client:        client,
		Ledger:        store,
		CourtListener: cfg.CourtListener,
		Logger:        logger,
	}
	orchestrator := resolver.NewOrchestrator(resolver.Default(), env)

	svc, err := enrich.New(exploder, orchestrator,
		enrich.WithMetrics(metrics.New()),
		enrich.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	a.Service = svc
	return a, nil
}

func (a *App) buildLedgerStore(cfg config.Server, logger *slog.Logger) (ledgerstore.Store, error) {
	var store ledgerstore.Store
	switch cfg.LedgerBackend {
	case "fs", "":
		store = ledgerstore.NewFSStore(cfg.LedgerDir)
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres ledger backend requires CITATOR_POSTGRES_DSN")
		}
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		store = ledgerstore.NewPostgres(db)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		a.closers = append(a.closers, redisClient.Close)
		store = ledgerstore.NewCache(store, redisClient, cfg.Redis.TTL, logger)
		logger.Info("ledger volume cache enabled", "ttl", cfg.Redis.TTL)
	}
	return store, nil
}

// Router assembles the HTTP surface: enrichment routes, health, metrics.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(a.Logger))

	h := handler.New(a.Service, a.Logger)
	h.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Close releases held resources in reverse acquisition order.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
