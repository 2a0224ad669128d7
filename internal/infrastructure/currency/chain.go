package currency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/value"
	"numconv/pkg/logx"
	"numconv/pkg/metrics"
)

const (
	convertedAmountPlaces = 2
	sourceNone            = "none"
)

type Metrics interface {
	RateLookupDone(source, status string)
}

// Chain asks the main providers in order and falls back to the backup
// provider when all of them failed.
type Chain struct {
	main    []Provider
	backup  Provider
	catalog Catalog
	cache   RateCache
	metrics Metrics
	pair    value.CurrencyPair
	now     func() time.Time
}

func NewChain(main []Provider, backup Provider, cache RateCache, metrics Metrics) *Chain {
	return &Chain{
		main:    main,
		backup:  backup,
		cache:   cache,
		metrics: metrics,
		pair:    value.NewCurrencyPair(entity.BaseCurrency, entity.QuoteCurrency),
		now:     time.Now,
	}
}

// WithCatalog sets where Currencies comes from.
func (c *Chain) WithCatalog(catalog Catalog) *Chain {
	c.catalog = catalog
	return c
}

// LookupRate converts amount with the cached or freshly fetched rate. A
// failure of every provider is reported in the result, not as an error.
func (c *Chain) LookupRate(ctx context.Context, amount decimal.Decimal) (*entity.RateResult, error) {
	log := logger(ctx).With(slog.String(logx.FieldCurrencyPair, c.pair.String()))

	quote, err := c.cache.Get(ctx, c.pair)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.Warn("rate cache get failed", logx.Error(err))
		}

		quote, err = c.FetchQuote(ctx)
		if err != nil {
			log.Warn("rate lookup failed", logx.Error(err))
			c.metrics.RateLookupDone(sourceNone, metrics.StatusFailure)

			return entity.FailedRate(c.pair.From, c.pair.To, amount, err.Error()), nil
		}

		if err := c.cache.Set(ctx, c.pair, quote); err != nil {
			log.Warn("rate cache set failed", logx.Error(err))
		}
	}

	c.metrics.RateLookupDone(quote.Source, metrics.StatusSuccess)

	return &entity.RateResult{
		Success:         true,
		From:            c.pair.From,
		To:              c.pair.To,
		Amount:          amount,
		ConvertedAmount: amount.Mul(quote.Rate).Round(convertedAmountPlaces),
		Rate:            quote.Rate,
		Source:          quote.Source,
		PrimaryError:    quote.PrimaryError,
		Timestamp:       quote.FetchedAt,
	}, nil
}

// FetchQuote walks the providers without looking at the cache.
func (c *Chain) FetchQuote(ctx context.Context) (Quote, error) {
	mainErr := errors.New("no main provider configured")

	for _, provider := range c.main {
		rate, err := provider.FetchRate(ctx, c.pair)
		if err == nil {
			return c.quote(rate, provider.Name(), ""), nil
		}

		logger(ctx).Warn(
			"provider failed",
			slog.String(logx.FieldProvider, provider.Name()),
			logx.Error(err),
		)

		mainErr = err
	}

	if c.backup == nil {
		return Quote{}, &ChainError{Main: mainErr, Backup: errors.New("no backup provider configured")}
	}

	rate, err := c.backup.FetchRate(ctx, c.pair)
	if err != nil {
		return Quote{}, &ChainError{Main: mainErr, Backup: err}
	}

	return c.quote(rate, c.backup.Name(), mainErr.Error()), nil
}

// Refresh fetches a new quote and stores it in the cache.
func (c *Chain) Refresh(ctx context.Context) (Quote, error) {
	quote, err := c.FetchQuote(ctx)
	if err != nil {
		c.metrics.RateLookupDone(sourceNone, metrics.StatusFailure)
		return Quote{}, err
	}

	if err := c.cache.Set(ctx, c.pair, quote); err != nil {
		return Quote{}, fmt.Errorf("cache.Set: %w", err)
	}

	return quote, nil
}

// Currencies lists the currencies of the catalog API.
func (c *Chain) Currencies(ctx context.Context) ([]entity.Currency, error) {
	if c.catalog == nil {
		return []entity.Currency{}, nil
	}

	currencies, err := c.catalog.Currencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Currencies: %w", err)
	}

	return currencies, nil
}

func (c *Chain) quote(rate decimal.Decimal, source, primaryError string) Quote {
	return Quote{
		Rate:         rate,
		Source:       source,
		PrimaryError: primaryError,
		FetchedAt:    c.now().UTC(),
	}
}
