package contextx

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/xid"
)

// TraceID ties together the log lines of one request. Callers may pass their
// own in X-Trace-Id; anything that does not look like an id is replaced.
type TraceID string

type contextKeyTraceID struct{}

var traceIDRe = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID returns a fresh id when s is empty or malformed.
func ParseTraceID(s string) TraceID {
	if !traceIDRe.MatchString(s) {
		return NewTraceID()
	}

	return TraceID(s)
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	if traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID); ok {
		return traceID, nil
	}

	return "", fmt.Errorf("trace id: %w", ErrNoValue)
}
