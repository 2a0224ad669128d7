package middlewarex

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"numconv/pkg/logx"
)

// ResponseLogging logs status, headers and body of every response. Rendered
// HTML pages are logged by size only.
//
// mutil.WrapWriter keeps http.Flusher and friends visible to handlers, which a
// plain wrapper struct would hide.
func ResponseLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			lw := mutil.WrapWriter(w)

			var body bytes.Buffer

			lw.Tee(&body)

			next.ServeHTTP(lw, r)

			headers, err := dumpHeaders(w.Header())
			if err != nil {
				logger(ctx).Error("dumpHeaders", logx.Error(err))
			}

			attrs := []slog.Attr{
				// Status is 0 when the handler never called WriteHeader.
				slog.Int(logx.FieldResponseStatus, cmp.Or(lw.Status(), http.StatusOK)),
				slog.String(logx.FieldResponseHeaders, string(sensitiveDataMasker.Mask(headers))),
				slog.Int(logx.FieldResponseBytes, lw.BytesWritten()),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			}

			if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
				attrs = append(attrs, slog.String(
					logx.FieldResponseBody,
					string(truncate(sensitiveDataMasker.Mask(body.Bytes()), logFieldMaxLen)),
				))
			}

			logger(ctx).LogAttrs(ctx, slog.LevelInfo, logx.FieldHTTPResponse, attrs...)
		})
	}
}

func dumpHeaders(h http.Header) ([]byte, error) {
	var buf bytes.Buffer

	if err := h.WriteSubset(&buf, nil); err != nil {
		return nil, fmt.Errorf("header.WriteSubset: %w", err)
	}

	return buf.Bytes(), nil
}
