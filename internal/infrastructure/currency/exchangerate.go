package currency

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"numconv/internal/domain/value"
)

// ExchangeRate is the exchangerate-api.com backup: it publishes every rate
// of a base currency at {baseURL}/{base}.
type ExchangeRate struct {
	baseURL string
	fetcher fetcher
}

func NewExchangeRate(baseURL string, client *http.Client, attempts uint) *ExchangeRate {
	return &ExchangeRate{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: newFetcher(client, attempts),
	}
}

func (e *ExchangeRate) Name() string {
	return SourceBackup
}

func (e *ExchangeRate) FetchRate(ctx context.Context, pair value.CurrencyPair) (decimal.Decimal, error) {
	var response struct {
		Rates map[string]any `json:"rates"`
	}

	if err := e.fetcher.getJSON(ctx, e.baseURL+"/"+pair.From, &response); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", e.Name(), err)
	}

	rate, err := decimalFromJSON(response.Rates[pair.To])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %s: %w", e.Name(), pair, err)
	}

	return rate, nil
}
