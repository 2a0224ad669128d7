// Package currency looks up the PHP→USD exchange rate through a chain of
// public APIs and caches the answer.
package currency

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/value"
	"numconv/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	SourcePremium = "currencyconverterapi.com (Premium)"
	SourceFree    = "currencyconverterapi.com (Free)"
	SourceBackup  = "exchangerate-api.com (Backup)"
)

var (
	ErrRateMissing       = errors.New("rate missing in response")
	ErrMalformedResponse = errors.New("malformed response")
	ErrCacheMiss         = errors.New("cache miss")
)

// Provider is one upstream exchange rate API.
type Provider interface {
	Name() string
	FetchRate(ctx context.Context, pair value.CurrencyPair) (decimal.Decimal, error)
}

// Catalog lists the currencies an upstream API knows.
type Catalog interface {
	Currencies(ctx context.Context) ([]entity.Currency, error)
}

// StatusError is a non-2xx answer of an upstream API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Temporary reports whether retrying the same request may help.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// ChainError is returned when neither the main APIs nor the backup answered.
type ChainError struct {
	Main   error
	Backup error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("Main API Error: %v. Backup API Error: %v", e.Main, e.Backup)
}

func (e *ChainError) Unwrap() []error {
	return []error{e.Main, e.Backup}
}
