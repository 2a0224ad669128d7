package middlewarex

import (
	"log/slog"
	"mime"
	"net/http"
	"net/http/httputil"

	"github.com/samber/lo"

	"numconv/pkg/logx"
)

// Request bodies are dumped only for the content types the converter reads.
var dumpedRequestTypes = []string{ //nolint:gochecknoglobals
	"application/json",
	"application/x-www-form-urlencoded",
}

func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, dumpRequestBody(r))

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(truncate(sensitiveDataMasker.Mask(dump), logFieldMaxLen))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

func dumpRequestBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return lo.Contains(dumpedRequestTypes, mediaType)
}
