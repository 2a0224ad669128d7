package middlewarex

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"numconv/pkg/httpx/reply"
	"numconv/pkg/logx"
)

var errPanic = errors.New("panic in handler")

// Recovery turns a handler panic into a 500 reply. http.ErrAbortHandler is
// passed through so net/http can drop the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			ctx := r.Context()

			logger(ctx).Error(
				errPanic.Error(),
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Error(ctx, w, fmt.Errorf("%w: %v", errPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
