package currency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"numconv/internal/domain/value"
)

// Quote is a fetched exchange rate as it is kept in the cache.
type Quote struct {
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"`
	PrimaryError string          `json:"primaryError,omitempty"`
	FetchedAt    time.Time       `json:"fetchedAt"`
}

// RateCache keeps quotes per currency pair. Get fails with ErrCacheMiss when
// nothing fresh is stored.
type RateCache interface {
	Get(ctx context.Context, pair value.CurrencyPair) (Quote, error)
	Set(ctx context.Context, pair value.CurrencyPair, quote Quote) error
}

// MemoryCache is a per-process RateCache.
type MemoryCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: cache.New(ttl, 2*ttl), //nolint:mnd
		ttl:   ttl,
	}
}

func (c *MemoryCache) Get(_ context.Context, pair value.CurrencyPair) (Quote, error) {
	v, ok := c.cache.Get(pair.String())
	if !ok {
		return Quote{}, ErrCacheMiss
	}

	quote, ok := v.(Quote)
	if !ok {
		return Quote{}, ErrCacheMiss
	}

	return quote, nil
}

func (c *MemoryCache) Set(_ context.Context, pair value.CurrencyPair, quote Quote) error {
	c.cache.Set(pair.String(), quote, c.ttl)
	return nil
}

// RedisCache shares quotes between instances and with the refresh worker.
type RedisCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisCache) key(pair value.CurrencyPair) string {
	return c.prefix + "rate:" + pair.String()
}

func (c *RedisCache) Get(ctx context.Context, pair value.CurrencyPair) (Quote, error) {
	raw, err := c.client.Get(ctx, c.key(pair)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Quote{}, ErrCacheMiss
		}

		return Quote{}, fmt.Errorf("redis.Get: %w", err)
	}

	var quote Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return Quote{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return quote, nil
}

func (c *RedisCache) Set(ctx context.Context, pair value.CurrencyPair, quote Quote) error {
	raw, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.client.Set(ctx, c.key(pair), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
