package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"numconv/internal/infrastructure/currency"
	"numconv/pkg/application/modules"
	"numconv/pkg/contextx"
	"numconv/pkg/logx"
)

const (
	TaskRefreshRates = "rates:refresh"

	defaultRefreshInterval = 5 * time.Minute
	refreshTimeout         = time.Minute
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type RateRefresher interface {
	Refresh(ctx context.Context) (currency.Quote, error)
}

// RateRefreshWorker keeps the shared rate cache warm so conversions rarely
// wait for the upstream APIs.
type RateRefreshWorker struct {
	rates    RateRefresher
	interval time.Duration
}

func NewRateRefreshWorker(rates RateRefresher) *RateRefreshWorker {
	return &RateRefreshWorker{
		rates:    rates,
		interval: defaultRefreshInterval,
	}
}

func (w *RateRefreshWorker) WithInterval(interval time.Duration) *RateRefreshWorker {
	if interval > 0 {
		w.interval = interval
	}

	return w
}

func NewRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskRefreshRates, nil)
}

// Periodic schedules the refresh task on the worker interval.
func (w *RateRefreshWorker) Periodic() modules.AsynqPeriodic {
	return modules.AsynqPeriodic{
		CronSpec: "@every " + w.interval.String(),
		Task:     NewRefreshTask(),
		Opts: []asynq.Option{
			asynq.MaxRetry(0),
			asynq.Timeout(refreshTimeout),
			// A refresh older than the interval is stale anyway.
			asynq.Unique(w.interval),
		},
	}
}

func (w *RateRefreshWorker) Handler() modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TaskRefreshRates,
		Handle:  w.Handle,
	}
}

func (w *RateRefreshWorker) Handle(ctx context.Context, task *asynq.Task) error {
	log := logger(ctx).With(slog.String(logx.FieldTaskType, task.Type()))

	quote, err := w.rates.Refresh(ctx)
	if err != nil {
		log.Warn("rate refresh failed", logx.Error(err))

		// The next tick retries.
		return fmt.Errorf("rates.Refresh: %v: %w", err, asynq.SkipRetry)
	}

	log.Info(
		"rate refreshed",
		slog.String(logx.FieldProvider, quote.Source),
		slog.String("rate", quote.Rate.String()),
	)

	return nil
}
