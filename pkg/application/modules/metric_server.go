package modules

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"numconv/pkg/metrics"
)

type MetricServer struct {
	ListenAddress string
	Registry      *prometheus.Registry
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	goNamed(ctx, g, "prometheusServer.Run", metrics.NewPrometheusServer(m.ListenAddress, m.Registry).Run)
}
