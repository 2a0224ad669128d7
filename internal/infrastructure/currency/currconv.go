package currency

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/value"
	"numconv/pkg/lox"
)

// CurrConv talks to currencyconverterapi.com. The free and the premium
// plans share the API and differ in host and API key.
type CurrConv struct {
	name       string
	convertURL string
	fetcher    fetcher
}

func NewCurrConv(name, convertURL string, client *http.Client, attempts uint) *CurrConv {
	return &CurrConv{
		name:       name,
		convertURL: convertURL,
		fetcher:    newFetcher(client, attempts),
	}
}

func (c *CurrConv) Name() string {
	return c.name
}

func (c *CurrConv) FetchRate(ctx context.Context, pair value.CurrencyPair) (decimal.Decimal, error) {
	u, err := url.Parse(c.convertURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("url.Parse: %w", err)
	}

	query := u.Query()
	query.Set("q", pair.String())
	query.Set("compact", "ultra")
	u.RawQuery = query.Encode()

	var response map[string]any
	if err := c.fetcher.getJSON(ctx, u.String(), &response); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", c.name, err)
	}

	if apiErr, ok := response["error"].(string); ok {
		return decimal.Zero, fmt.Errorf("%s: %s: %w", c.name, apiErr, ErrRateMissing)
	}

	rate, err := decimalFromJSON(response[pair.String()])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %s: %w", c.name, pair, err)
	}

	return rate, nil
}

type currencyDTO struct {
	ID     string `json:"id"`
	Name   string `json:"currencyName"`
	Symbol string `json:"currencySymbol"`
}

// Currencies lists the currencies the API supports, sorted by code.
func (c *CurrConv) Currencies(ctx context.Context) ([]entity.Currency, error) {
	var response struct {
		Results map[string]currencyDTO `json:"results"`
	}

	if err := c.fetcher.getJSON(ctx, c.currenciesURL(), &response); err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}

	currencies := lox.ReverseMap(response.Results, func(id string, dto currencyDTO) entity.Currency {
		if dto.ID == "" {
			dto.ID = id
		}

		return entity.Currency{
			ID:     dto.ID,
			Name:   dto.Name,
			Symbol: dto.Symbol,
		}
	})

	slices.SortFunc(currencies, func(a, b entity.Currency) int {
		return strings.Compare(a.ID, b.ID)
	})

	return currencies, nil
}

// currenciesURL turns ".../api/v7/convert" into ".../api/v7/currencies".
func (c *CurrConv) currenciesURL() string {
	u, err := url.Parse(c.convertURL)
	if err != nil {
		return c.convertURL
	}

	u.Path = path.Join(path.Dir(u.Path), "currencies")
	u.RawQuery = ""

	return u.String()
}

func decimalFromJSON(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("decimal.NewFromString: %w: %w", ErrMalformedResponse, err)
		}

		return d, nil
	case nil:
		return decimal.Zero, ErrRateMissing
	default:
		return decimal.Zero, fmt.Errorf("rate of type %T: %w", v, ErrMalformedResponse)
	}
}
