package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimiter bounds every client to MaxRequests per second.
func (m *Middlewares) GlobalRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// PredictionRateLimiter blocks a client for PredictionBlockTimeInSecond once it
// exceeds PredictionRequestsPerMinute.
func (m *Middlewares) PredictionRateLimiter() func(next http.Handler) http.Handler {
	limiter := NewRateLimiter(
		m.Log,
		m.InternalConfig.App.PredictionRequestsPerMinute,
		time.Minute,
		time.Duration(m.InternalConfig.App.PredictionBlockTimeInSecond)*time.Second,
	)
	return limiter.Limit
}
