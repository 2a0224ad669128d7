package currency

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	maxResponseBytes = 1 << 20
	retryDelay       = 200 * time.Millisecond
)

// fetcher performs GET requests with JSON answers and retries the ones that
// failed on the transport level, with 429 or with a 5xx status.
type fetcher struct {
	client   *http.Client
	attempts uint
}

func newFetcher(client *http.Client, attempts uint) fetcher {
	return fetcher{
		client:   client,
		attempts: max(attempts, 1),
	}
}

func (f fetcher) getJSON(ctx context.Context, url string, dest any) error {
	err := retry.Do(
		func() error {
			return f.get(ctx, url, dest)
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (f fetcher) get(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("http.NewRequestWithContext: %w", err))
	}

	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w: %w", ErrMalformedResponse, err)
	}

	return nil
}

func isRetryable(err error) bool {
	if !retry.IsRecoverable(err) || errors.Is(err, ErrMalformedResponse) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}

	return true
}
