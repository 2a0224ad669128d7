package connectors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/avast/retry-go"
	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"

	"numconv/pkg/logx"
)

const (
	defaultConnectAttempts = 5
	connectRetryDelay      = time.Second
)

var errNotConnected = errors.New("postgres is not connected")

// Postgres backs the optional conversion history. Connect is retried because
// the database often comes up after the service.
type Postgres struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnectAttempts uint

	db *sqlx.DB
}

func (p *Postgres) Connect(ctx context.Context) (*sqlx.DB, error) {
	if p.db != nil {
		return p.db, nil
	}

	attempts := p.ConnectAttempts
	if attempts == 0 {
		attempts = defaultConnectAttempts
	}

	err := retry.Do(
		func() error {
			db, err := sqlx.ConnectContext(ctx, "pgx", p.DSN)
			if err != nil {
				return fmt.Errorf("sqlx.ConnectContext: %w", err)
			}

			p.db = db

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(connectRetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger(ctx).Warn("postgres connect failed, retrying", slog.Uint64("attempt", uint64(n+1)), logx.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres %s: %w", p.redactedDSN(), err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	logger(ctx).Info("postgres connected", slog.String("dsn", p.redactedDSN()))

	return p.db, nil
}

// Ping is a readiness check.
func (p *Postgres) Ping(ctx context.Context) error {
	if p.db == nil {
		return errNotConnected
	}

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	return nil
}

func (p *Postgres) Close(ctx context.Context) {
	if p.db == nil {
		return
	}

	if err := p.db.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected", slog.String("dsn", p.redactedDSN()))
}

func (p *Postgres) redactedDSN() string {
	u, err := url.Parse(p.DSN)
	if err != nil {
		return "<invalid dsn>"
	}

	return u.Redacted()
}
