package middleware

import (
	"net/http"
)

// retriedHeader marks a request chain whose 401 has already been
// handled, so repeated 401s cannot cause a redirect loop. No refresh
// is attempted; the mark only guards the hook.
const retriedHeader = "X-Auth-Retried"

// Unauthorized invokes hook on any 401 response, at most once per
// request chain. The response still passes through to the caller.
func Unauthorized(hook func()) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil {
				return nil, err
			}

			if resp.StatusCode == http.StatusUnauthorized && req.Header.Get(retriedHeader) == "" {
				req.Header.Set(retriedHeader, "1")
				if hook != nil {
					hook()
				}
			}

			return resp, nil
		})
	}
}
