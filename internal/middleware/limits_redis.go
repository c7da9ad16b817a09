package middleware

import (
	"net/http"
	"strconv"

	"github.com/trusttrack/assist/internal/logger"
	"github.com/trusttrack/assist/internal/ratelimit"
)

// RedisRateLimit enforces the shared per-client minute budget through the
// Redis manager. Redis errors fail open: a broken limiter must not take the
// assistance pipeline down with it.
func RedisRateLimit(mgr *ratelimit.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, resetSec, err := mgr.CheckRate(r.Context(), clientIP(r))
			if err != nil {
				logger.WithContext(r.Context()).Warn("rate limit check failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				write429(w, strconv.Itoa(resetSec))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
