package middleware

import (
	"fmt"
	"net/http"
)

// TokenSource exposes the current bearer token. Empty means
// unauthenticated.
type TokenSource interface {
	Token() string
}

// Bearer attaches the Authorization header to every outgoing request
// when a token is present. Requests without a token go out
// unauthenticated.
func Bearer(source TokenSource) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if token := source.Token(); token != "" {
				req = req.Clone(req.Context())
				req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
			}
			return next.RoundTrip(req)
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
