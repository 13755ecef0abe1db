package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Logger middleware for outgoing requests
func Logger(logger *zap.Logger) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := next.RoundTrip(req)

			duration := time.Since(start)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("query", req.URL.RawQuery),
				zap.String("request_id", req.Header.Get("X-Request-ID")),
				zap.Duration("duration", duration),
			}

			if err != nil {
				logger.Warn("HTTP request failed", append(fields, zap.Error(err))...)
				return nil, err
			}

			logger.Info("HTTP request",
				append(fields, zap.Int("status", resp.StatusCode))...)

			return resp, nil
		})
	}
}
