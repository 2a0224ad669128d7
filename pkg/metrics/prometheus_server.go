package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"numconv/pkg/contextx"
	"numconv/pkg/logx"
)

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	scrapeTimeout               = 10 * time.Second
	maxConcurrentScrapes        = 4
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// PrometheusServer exposes a registry on /metrics. Scrapes of the endpoint
// itself are counted in the same registry (promhttp_metric_handler_*).
type PrometheusServer struct {
	listenAddress string
	registry      *prometheus.Registry
}

func NewPrometheusServer(
	listenAddress string,
	registry *prometheus.Registry,
) PrometheusServer {
	return PrometheusServer{
		listenAddress: listenAddress,
		registry:      registry,
	}
}

func (p PrometheusServer) handler(ctx context.Context) http.Handler {
	return promhttp.InstrumentMetricHandler(p.registry, promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		//nolint:exhaustruct
		ErrorLog:            slog.NewLogLogger(logger(ctx).Handler(), slog.LevelError),
		ErrorHandling:       promhttp.ContinueOnError,
		MaxRequestsInFlight: maxConcurrentScrapes,
		Timeout:             scrapeTimeout,
	}))
}

func (p PrometheusServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.handler(ctx))

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              p.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("metrics server started", slog.String("address", p.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("metrics server stopped")

	return nil
}
