package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"numconv/pkg/logx"
)

// Redis is shared by the rate cache (through Client) and the asynq worker
// (through AsynqOpt), so both always talk to the same database.
type Redis struct {
	Username           string
	Password           string
	Address            string
	DatabaseNumber     int
	PoolSize           int
	MinIdleConnections int
	MaxIdleConnections int

	client *redis.Client
	once   sync.Once
}

func (r *Redis) options() *redis.Options {
	return &redis.Options{
		//nolint:exhaustruct
		Network:      "tcp",
		Addr:         r.Address,
		Username:     r.Username,
		Password:     r.Password,
		DB:           r.DatabaseNumber,
		PoolSize:     r.PoolSize,
		MinIdleConns: r.MinIdleConnections,
		MaxIdleConns: r.MaxIdleConnections,
	}
}

func (r *Redis) attrs() []any {
	return []any{slog.String("address", r.Address), slog.Int("database", r.DatabaseNumber)}
}

// Client connects on first use and panics when Redis is unreachable.
func (r *Redis) Client(ctx context.Context) *redis.Client {
	r.once.Do(func() {
		r.client = redis.NewClient(r.options())

		lo.Must0(r.client.Ping(ctx).Err())

		logger(ctx).Info("redis connected", r.attrs()...)
	})

	return r.client
}

// AsynqOpt describes the same connection for asynq, which opens its own pool.
func (r *Redis) AsynqOpt() asynq.RedisClientOpt {
	opts := r.options()

	return asynq.RedisClientOpt{
		//nolint:exhaustruct
		Network:  opts.Network,
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	}
}

// Ping is a readiness check.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client(ctx).Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	return nil
}

func (r *Redis) Close(ctx context.Context) {
	if r.client == nil {
		return
	}

	if err := r.client.Close(); err != nil {
		logger(ctx).Error("redisClient.Close", logx.Error(err))
	}

	logger(ctx).Info("redis disconnected", r.attrs()...)
}
