package middlewares

import (
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/exceptions"
	"cancer-prediction-service/internal/pkg/utils"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

// NewRateLimiter allows a burst of requests per client that refills evenly
// over per. A client that exceeds it is blocked for blockTime.
func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := clientIP(req)

		if blockedUntil, blocked := r.allow(ip); blocked {
			retryAfter := int(blockedUntil.Sub(r.now()).Seconds()) + 1
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New(constvars.ErrClientTooManyRequests), ip))
			return
		}

		next.ServeHTTP(w, req)
	})
}

// allow reports whether ip is blocked and until when.
func (r *RateLimiter) allow(ip string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return blockedUntil, true
		}
		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(max(r.requests, 1))), max(r.requests, 1))
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		blockedUntil := now.Add(r.blockTime)
		r.blocked[ip] = blockedUntil
		return blockedUntil, true
	}
	return time.Time{}, false
}

func clientIP(req *http.Request) string {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}
