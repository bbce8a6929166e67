// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimit returns a middleware enforcing a per-client token bucket.
// A non-positive rps disables limiting entirely.
func RateLimit(rps float64, burst int) func(http.HandlerFunc) http.HandlerFunc {
	if rps <= 0 {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip := GetClientIP(r)

			mu.Lock()
			lim, ok := limiters[ip]
			if !ok {
				lim = rate.NewLimiter(rate.Limit(rps), burst)
				limiters[ip] = lim
			}
			mu.Unlock()

			if !lim.Allow() {
				w.Header().Set("Retry-After", "1")
				ErrorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			next(w, r)
		}
	}
}
