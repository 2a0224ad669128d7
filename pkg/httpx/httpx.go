// Package httpx holds http.RoundTripper decorators for outbound API calls.
package httpx

import "numconv/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
