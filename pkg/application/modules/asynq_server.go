package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"numconv/pkg/logx"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqPeriodic enqueues Task on every tick of the cron spec.
type AsynqPeriodic struct {
	CronSpec string
	Task     *asynq.Task
	Opts     []asynq.Option
}

// AsynqServer processes Handlers and, when Periodic is set, runs a scheduler
// enqueuing those tasks.
type AsynqServer struct {
	Redis       asynq.RedisClientOpt
	Concurrency int
	Queues      AsynqQueues
	Handlers    []AsynqHandler
	Periodic    []AsynqPeriodic
}

func (s AsynqServer) Run(ctx context.Context, g *errgroup.Group) {
	goNamed(ctx, g, "asynqServer.work", s.work)

	if len(s.Periodic) > 0 {
		goNamed(ctx, g, "asynqServer.schedule", s.schedule)
	}
}

func (s AsynqServer) logAttrs() []any {
	return []any{slog.String("redis-address", s.Redis.Addr), slog.Int("redis-db", s.Redis.DB)}
}

func (s AsynqServer) work(ctx context.Context) error {
	worker := asynq.NewServer(s.Redis, asynq.Config{
		BaseContext: func() context.Context { return ctx },
		Queues:      s.Queues,
		Concurrency: s.Concurrency,
	})

	mux := asynq.NewServeMux()

	for _, h := range s.Handlers {
		mux.HandleFunc(h.Pattern, h.Handle)
	}

	if err := worker.Start(mux); err != nil {
		return fmt.Errorf("worker.Start: %w", err)
	}

	logger(ctx).Info("asynq server started", s.logAttrs()...)

	<-ctx.Done()

	worker.Shutdown()

	logger(ctx).Info("asynq server stopped", s.logAttrs()...)

	return nil
}

func (s AsynqServer) schedule(ctx context.Context) error {
	scheduler := asynq.NewScheduler(s.Redis, &asynq.SchedulerOpts{})

	for _, p := range s.Periodic {
		entryID, err := scheduler.Register(p.CronSpec, p.Task, p.Opts...)
		if err != nil {
			return fmt.Errorf("scheduler.Register %s: %w", p.Task.Type(), err)
		}

		logger(ctx).Info(
			"periodic task registered",
			slog.String(logx.FieldTaskType, p.Task.Type()),
			slog.String("cron", p.CronSpec),
			slog.String("entry-id", entryID),
		)
	}

	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("scheduler.Start: %w", err)
	}

	<-ctx.Done()

	scheduler.Shutdown()

	logger(ctx).Info("asynq scheduler stopped")

	return nil
}
