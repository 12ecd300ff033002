// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	httptypes "github.com/canonical/company-service/internal/http/types"
	"github.com/canonical/company-service/internal/logging"
)

const (
	limiterIdleTTL       = 5 * time.Minute
	limiterSweepInterval = 3 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client address. Login and registration
// both run bcrypt, so they are the routes it guards.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time

	rate  rate.Limit
	burst int
	now   func() time.Time

	logger logging.LoggerInterface
}

func perMinute(n float64) rate.Limit {
	return rate.Limit(n / 60)
}

func (rl *RateLimiter) limiterFor(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	if c, ok := rl.clients[client]; ok {
		c.lastSeen = now
		return c.limiter
	}

	l := rate.NewLimiter(rl.rate, rl.burst)
	rl.clients[client] = &clientLimiter{limiter: l, lastSeen: now}

	return l
}

// sweep drops idle clients, mu must be held
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < limiterSweepInterval {
		return
	}

	for client, c := range rl.clients {
		if now.Sub(c.lastSeen) > limiterIdleTTL {
			delete(rl.clients, client)
		}
	}

	rl.lastSweep = now
}

func (rl *RateLimiter) retryAfter() int {
	if rl.rate <= 0 {
		return 60
	}
	return max(int(math.Ceil(1/float64(rl.rate))), 1)
}

func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientAddress(r)

			if !rl.limiterFor(client).AllowN(rl.now(), 1) {
				rl.logger.Debugf("rate limit exceeded for %s on %s %s", client, r.Method, r.URL.Path)

				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
				httptypes.WriteJSON(
					w,
					http.StatusTooManyRequests,
					httptypes.ErrorResponse{Status: http.StatusTooManyRequests, Message: "too many requests"},
					rl.logger,
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddress strips the port, RealIP has already replaced RemoteAddr when a
// proxy header was present
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func NewRateLimiter(limit rate.Limit, burst int, logger logging.LoggerInterface) *RateLimiter {
	rl := new(RateLimiter)

	rl.clients = make(map[string]*clientLimiter)
	rl.rate = limit
	rl.burst = max(burst, 1)
	rl.now = time.Now
	rl.logger = logger

	return rl
}
