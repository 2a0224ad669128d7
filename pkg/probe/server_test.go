package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"numconv/pkg/probe"
)

func get(ctx context.Context, rq *require.Assertions, url string) (int, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)

	return resp.StatusCode, string(body)
}

func TestServer(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var redisDown atomic.Bool

	probeServer := probe.NewServer(":10011", probe.Options{Name: "numconv", Version: "v1.2.0"}).
		WithCheck("postgres", func(context.Context) error { return nil }).
		WithCheck("redis", func(context.Context) error {
			if redisDown.Load() {
				return errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
			}

			return nil
		})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	const state = `{"name":"numconv","version":"v1.2.0"}`

	status, body := get(ctx, rq, "http://:10011/healthz")
	rq.Equal(http.StatusOK, status)
	rq.JSONEq(state, body)

	status, body = get(ctx, rq, "http://:10011/ready")
	rq.Equal(http.StatusOK, status)
	rq.JSONEq(state, body)

	redisDown.Store(true)

	status, body = get(ctx, rq, "http://:10011/ready")
	rq.Equal(http.StatusServiceUnavailable, status)
	rq.JSONEq(`{
		"name":"numconv",
		"version":"v1.2.0",
		"failed":{"redis":"dial tcp 127.0.0.1:6379: connect: connection refused"}
	}`, body)

	// Liveness does not depend on readiness checks.
	status, _ = get(ctx, rq, "http://:10011/healthz")
	rq.Equal(http.StatusOK, status)

	status, _ = get(ctx, rq, "http://:10011/metrics")
	rq.Equal(http.StatusNotFound, status)

	cancel()

	rq.NoError(g.Wait())
}

func TestServer_WithCheckDoesNotMutate(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	base := probe.NewServer(":10012", probe.Options{Name: "numconv", Version: "dev"})
	_ = base.WithCheck("redis", func(context.Context) error { return errors.New("down") })

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return base.Run(ctx)
	})

	time.Sleep(time.Second)

	status, _ := get(ctx, rq, "http://:10012/ready")
	rq.Equal(http.StatusOK, status)

	cancel()

	rq.NoError(g.Wait())
}
