package httpx

import (
	"net/http"
)

// APIKeyRoundTripper adds an API key query parameter to every request that
// does not carry one yet.
type APIKeyRoundTripper struct {
	next  http.RoundTripper
	param string
	key   string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	param string,
	key string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:  next,
		param: param,
		key:   key,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.key == "" {
		return rt.next.RoundTrip(req) //nolint:wrapcheck
	}

	query := req.URL.Query()
	if query.Get(rt.param) != "" {
		return rt.next.RoundTrip(req) //nolint:wrapcheck
	}

	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	query.Set(rt.param, rt.key)
	clone.URL.RawQuery = query.Encode()

	return rt.next.RoundTrip(clone) //nolint:wrapcheck
}
