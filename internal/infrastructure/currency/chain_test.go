package currency_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"numconv/internal/infrastructure/currency"
)

type countingMetrics struct {
	lookups map[string]int
}

func (m *countingMetrics) RateLookupDone(source, status string) {
	if m.lookups == nil {
		m.lookups = map[string]int{}
	}

	m.lookups[source+"/"+status]++
}

type upstream struct {
	premiumStatus int
	freeStatus    int
	backupStatus  int

	premiumHits atomic.Int32
	freeHits    atomic.Int32
	backupHits  atomic.Int32
	lastAPIKey  atomic.Value
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/premium/convert":
		u.premiumHits.Add(1)
		u.lastAPIKey.Store(r.URL.Query().Get("apiKey"))
		writeStatus(w, u.premiumStatus, `{"PHP_USD":0.0179}`)
	case r.URL.Path == "/free/convert":
		u.freeHits.Add(1)
		if r.URL.Query().Get("q") != "PHP_USD" || r.URL.Query().Get("compact") != "ultra" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		writeStatus(w, u.freeStatus, `{"PHP_USD":0.0178}`)
	case r.URL.Path == "/free/currencies":
		_, _ = w.Write([]byte(`{"results":{
			"USD":{"id":"USD","currencyName":"United States Dollar","currencySymbol":"$"},
			"EUR":{"id":"EUR","currencyName":"Euro","currencySymbol":"€"},
			"PHP":{"currencyName":"Philippine Peso","currencySymbol":"₱"}}}`))
	case strings.HasPrefix(r.URL.Path, "/backup/"):
		u.backupHits.Add(1)
		writeStatus(w, u.backupStatus, `{"base":"PHP","rates":{"USD":0.0177,"EUR":0.016}}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeStatus(w http.ResponseWriter, status int, body string) {
	if status == 0 {
		status = http.StatusOK
	}

	w.WriteHeader(status)

	if status == http.StatusOK {
		_, _ = w.Write([]byte(body))
	}
}

func newChain(t *testing.T, u *upstream, apiKey string) (*currency.Chain, *countingMetrics) {
	t.Helper()

	server := httptest.NewServer(u)
	t.Cleanup(server.Close)

	metrics := &countingMetrics{}
	chain := currency.NewChainFromSettings(currency.Settings{
		APIKey:        apiKey,
		FreeURL:       server.URL + "/free/convert",
		PremiumURL:    server.URL + "/premium/convert",
		BackupURL:     server.URL + "/backup/",
		Timeout:       time.Second,
		RetryAttempts: 2,
	}, currency.NewMemoryCache(time.Minute), metrics)

	return chain, metrics
}

func TestChain_LookupRate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	amount := decimal.NewFromInt(1000)

	testCases := []struct {
		name         string
		apiKey       string
		upstream     *upstream
		success      bool
		source       string
		converted    string
		primaryError bool
	}{
		{
			name:      "Premium with key",
			apiKey:    "secret",
			upstream:  &upstream{},
			success:   true,
			source:    currency.SourcePremium,
			converted: "17.9",
		},
		{
			name:      "Free without key",
			upstream:  &upstream{},
			success:   true,
			source:    currency.SourceFree,
			converted: "17.8",
		},
		{
			name:      "Premium fails, free answers",
			apiKey:    "secret",
			upstream:  &upstream{premiumStatus: http.StatusUnauthorized},
			success:   true,
			source:    currency.SourceFree,
			converted: "17.8",
		},
		{
			name:         "Backup",
			upstream:     &upstream{freeStatus: http.StatusServiceUnavailable},
			success:      true,
			source:       currency.SourceBackup,
			converted:    "17.7",
			primaryError: true,
		},
		{
			name:     "Everything fails",
			upstream: &upstream{freeStatus: http.StatusInternalServerError, backupStatus: http.StatusBadGateway},
			success:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			chain, metrics := newChain(t, tc.upstream, tc.apiKey)

			result, err := chain.LookupRate(ctx, amount)
			rq.NoError(err)
			rq.Equal(tc.success, result.Success)
			rq.Equal("PHP", result.From)
			rq.Equal("USD", result.To)
			rq.True(amount.Equal(result.Amount))

			if !tc.success {
				rq.True(strings.HasPrefix(result.Error, "Main API Error: "))
				rq.Contains(result.Error, ". Backup API Error: ")
				rq.Equal(1, metrics.lookups["none/failure"])

				return
			}

			rq.Equal(tc.source, result.Source)
			rq.Equal(tc.converted, result.ConvertedAmount.String())
			rq.Equal(tc.primaryError, result.PrimaryError != "")
			rq.Equal(1, metrics.lookups[tc.source+"/success"])
		})
	}
}

func TestChain_APIKeyOnlyOnPremium(t *testing.T) {
	rq := require.New(t)

	u := &upstream{}
	chain, _ := newChain(t, u, "secret")

	_, err := chain.LookupRate(context.Background(), decimal.NewFromInt(1))
	rq.NoError(err)
	rq.Equal("secret", u.lastAPIKey.Load())
}

func TestChain_Retries(t *testing.T) {
	rq := require.New(t)

	u := &upstream{freeStatus: http.StatusTooManyRequests}
	chain, _ := newChain(t, u, "")

	result, err := chain.LookupRate(context.Background(), decimal.NewFromInt(1))
	rq.NoError(err)
	rq.Equal(currency.SourceBackup, result.Source)
	rq.Equal(int32(2), u.freeHits.Load())

	u = &upstream{freeStatus: http.StatusForbidden}
	chain, _ = newChain(t, u, "")

	_, err = chain.LookupRate(context.Background(), decimal.NewFromInt(1))
	rq.NoError(err)
	rq.Equal(int32(1), u.freeHits.Load())
}

func TestChain_Cache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	u := &upstream{}
	chain, _ := newChain(t, u, "")

	first, err := chain.LookupRate(ctx, decimal.NewFromInt(10))
	rq.NoError(err)

	second, err := chain.LookupRate(ctx, decimal.NewFromInt(20))
	rq.NoError(err)

	rq.Equal(int32(1), u.freeHits.Load())
	rq.Equal(first.Timestamp, second.Timestamp)
	rq.Equal("0.36", second.ConvertedAmount.StringFixed(2))

	_, err = chain.Refresh(ctx)
	rq.NoError(err)
	rq.Equal(int32(2), u.freeHits.Load())
}

func TestChain_Currencies(t *testing.T) {
	rq := require.New(t)

	chain, _ := newChain(t, &upstream{}, "")

	currencies, err := chain.Currencies(context.Background())
	rq.NoError(err)
	rq.Len(currencies, 3)
	rq.Equal("EUR", currencies[0].ID)
	rq.Equal("PHP", currencies[1].ID)
	rq.Equal("Philippine Peso", currencies[1].Name)
	rq.Equal("$", currencies[2].Symbol)
}
