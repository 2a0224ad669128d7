package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"numconv/pkg/httpx"
)

func TestAPIKeyRoundTripper(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		key      string
		path     string
		expected string
	}{
		{
			name:     "Key added",
			key:      "s3cr3t",
			path:     "/convert?q=PHP_USD",
			expected: "s3cr3t",
		},
		{
			name:     "Empty key leaves request untouched",
			path:     "/convert?q=PHP_USD",
			expected: "",
		},
		{
			name:     "Explicit key wins",
			key:      "s3cr3t",
			path:     "/convert?apiKey=own",
			expected: "own",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var received string

			httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received = r.URL.Query().Get("apiKey")
				w.WriteHeader(http.StatusOK)
			}))
			defer httpServer.Close()

			client := &http.Client{
				Transport: httpx.NewAPIKeyRoundTripper(http.DefaultTransport, "apiKey", tc.key),
			}

			req, err := http.NewRequest(http.MethodGet, httpServer.URL+tc.path, http.NoBody)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.expected, received)
			rq.NotContains(req.URL.RawQuery, "s3cr3t", "caller request must not be modified")
		})
	}
}
