package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"numconv/internal/application"
	"numconv/internal/config"
	"numconv/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load:", err)
		os.Exit(1) //nolint:gocritic
	}

	log := slog.New(logx.NewHandler(os.Stdout, cfg.Log.Format, cfg.Log.Level))
	slog.SetDefault(log)

	if err := application.Run(ctx, cfg, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
