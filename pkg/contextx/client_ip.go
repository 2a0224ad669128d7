package contextx

import (
	"context"
	"fmt"
)

// ClientIP is the address a conversion request came from; it is stored with
// the conversion history.
type ClientIP string

type contextKeyClientIP struct{}

func (c ClientIP) String() string {
	return string(c)
}

func WithClientIP(ctx context.Context, ip ClientIP) context.Context {
	return context.WithValue(ctx, contextKeyClientIP{}, ip)
}

func ClientIPFromContext(ctx context.Context) (ClientIP, error) {
	ip, ok := ctx.Value(contextKeyClientIP{}).(ClientIP)
	if !ok {
		return "", fmt.Errorf("client ip: %w", ErrNoValue)
	}

	return ip, nil
}
