package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"numconv/pkg/logx"
)

// HTTPServer serves Handler until ctx is done, then drains in-flight
// requests for at most ShutdownTimeout.
type HTTPServer struct {
	ListenAddress     string
	Handler           http.Handler
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

func (h HTTPServer) Run(ctx context.Context, g *errgroup.Group) {
	goNamed(ctx, g, "httpServer.Run", h.serve)
}

func (h HTTPServer) serve(ctx context.Context) error {
	srv := &http.Server{
		//nolint:exhaustruct
		Addr:              h.ListenAddress,
		Handler:           h.Handler,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		WriteTimeout:      h.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger(ctx).Error("server.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("http server started", slog.String("address", h.ListenAddress))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ListenAndServe: %w", err)
	}

	<-stopped

	logger(ctx).Info("http server stopped", slog.String("address", h.ListenAddress))

	return nil
}
