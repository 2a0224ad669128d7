package currency

import (
	"net/http"
	"time"

	"numconv/pkg/httpx"
	"numconv/pkg/logx"
)

const apiKeyParam = "apiKey"

type Settings struct {
	APIKey         string
	FreeURL        string
	PremiumURL     string
	BackupURL      string
	Timeout        time.Duration
	RetryAttempts  uint
	LogFieldMaxLen int
}

// NewChainFromSettings wires the premium (only with an API key), free and
// backup providers. The catalog is the premium API when a key is set.
func NewChainFromSettings(s Settings, cache RateCache, metrics Metrics) *Chain {
	free := NewCurrConv(SourceFree, s.FreeURL, s.httpClient(SourceFree, ""), s.RetryAttempts)
	backup := NewExchangeRate(s.BackupURL, s.httpClient(SourceBackup, ""), s.RetryAttempts)

	main := []Provider{free}
	catalog := free

	if s.APIKey != "" {
		premium := NewCurrConv(SourcePremium, s.PremiumURL, s.httpClient(SourcePremium, s.APIKey), s.RetryAttempts)
		main = []Provider{premium, free}
		catalog = premium
	}

	return NewChain(main, backup, cache, metrics).WithCatalog(catalog)
}

func (s Settings) httpClient(provider, apiKey string) *http.Client {
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithProvider(provider),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(s.LogFieldMaxLen),
	)

	if apiKey != "" {
		transport = httpx.NewAPIKeyRoundTripper(transport, apiKeyParam, apiKey)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   s.Timeout,
	}
}
