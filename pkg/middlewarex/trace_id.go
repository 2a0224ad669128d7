package middlewarex

import (
	"net/http"

	"numconv/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
