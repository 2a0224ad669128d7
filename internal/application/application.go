package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"numconv/internal/config"
	"numconv/internal/domain/service/converter"
	"numconv/internal/infrastructure/currency"
	"numconv/internal/infrastructure/persistence"
	"numconv/internal/server"
	"numconv/internal/worker"
	"numconv/pkg/application/connectors"
	"numconv/pkg/application/modules"
	"numconv/pkg/contextx"
	"numconv/pkg/logx"
	"numconv/pkg/metrics"
	"numconv/pkg/middlewarex"
	"numconv/pkg/probe"
)

const workerQueue = "default"

// Run wires the application and blocks until ctx is done or a module fails.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	ctx = contextx.WithLogger(ctx, log)
	g, ctx := errgroup.WithContext(ctx)

	// 1. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	converterMetrics := metrics.NewConverterMetrics(registry)

	checks := map[string]probe.Check{}

	// 2. Rate cache: Redis when configured, process memory otherwise
	var rateCache currency.RateCache = currency.NewMemoryCache(cfg.Currency.RateTTL)

	var redis *connectors.Redis

	if cfg.Redis.Enabled() {
		redis = &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redis.Close(ctx)

		rateCache = currency.NewRedisCache(redis.Client(ctx), cfg.Redis.KeyPrefix, cfg.Currency.RateTTL)
		checks["redis"] = redis.Ping
	}

	rates := currency.NewChainFromSettings(currency.Settings{
		APIKey:         cfg.Currency.APIKey,
		FreeURL:        cfg.Currency.FreeURL,
		PremiumURL:     cfg.Currency.PremiumURL,
		BackupURL:      cfg.Currency.BackupURL,
		Timeout:        cfg.Currency.HTTPTimeout,
		RetryAttempts:  cfg.Currency.RetryAttempts,
		LogFieldMaxLen: cfg.Log.FieldMaxLen,
	}, rateCache, converterMetrics)

	// 3. Conversion service, with history when Postgres is configured
	converterService := converter.NewService(rates, converterMetrics)

	if cfg.Postgres.Enabled() {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		defer pg.Close(ctx)

		db, err := pg.Connect(ctx)
		if err != nil {
			return fmt.Errorf("pg.Connect: %w", err)
		}

		if err := persistence.Migrate(ctx, db); err != nil {
			return fmt.Errorf("persistence.Migrate: %w", err)
		}

		converterService = converterService.WithHistory(persistence.NewConversionRepository(db))
		checks["postgres"] = pg.Ping

		log.Info("conversion history enabled")
	}

	// 4. HTTP
	pageServer, err := server.NewPageServer(converterService, cfg.App.Version)
	if err != nil {
		return fmt.Errorf("server.NewPageServer: %w", err)
	}

	srv := server.NewServer(
		server.NewConverterServer(converterService, rates, cfg.App.Version),
		pageServer,
	)

	mods := []modules.Module{
		modules.HTTPServer{
			ListenAddress:     cfg.HTTP.ListenAddress,
			Handler:           newRouter(srv, cfg.Log),
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			WriteTimeout:      cfg.HTTP.WriteTimeout,
			ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
		},
		modules.ProbeServer{
			Name:          cfg.App.Name,
			Version:       cfg.App.Version,
			ListenAddress: cfg.HTTP.ProbeListenAddress,
			Checks:        checks,
		},
		modules.MetricServer{
			ListenAddress: cfg.HTTP.MetricsListenAddress,
			Registry:      registry,
		},
	}

	// 5. Rate refresh worker, only with a shared cache
	if redis != nil {
		refresher := worker.NewRateRefreshWorker(rates).WithInterval(cfg.Worker.RefreshInterval)

		mods = append(mods, modules.AsynqServer{
			Redis:       redis.AsynqOpt(),
			Concurrency: cfg.Worker.Concurrency,
			Queues:      modules.AsynqQueues{workerQueue: 1},
			Handlers:    []modules.AsynqHandler{refresher.Handler()},
			Periodic:    []modules.AsynqPeriodic{refresher.Periodic()},
		})
	} else {
		log.Info("redis is not configured, rate refresh worker is off")
	}

	modules.Start(ctx, g, mods...)

	log.Info("application started")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}

func newRouter(srv server.Server, cfg config.Log) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
	)

	if cfg.RequestBodies {
		r.Use(middlewarex.RequestLogging(masker, cfg.FieldMaxLen))
	}

	if cfg.ResponseBodies {
		r.Use(middlewarex.ResponseLogging(masker, cfg.FieldMaxLen))
	}

	srv.RegisterRoutes(r)

	return r
}
