// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/company-service/internal/logging"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestLimiter(perMin float64, burst int, clock *fakeClock) *RateLimiter {
	rl := NewRateLimiter(perMinute(perMin), burst, logging.NewNoopLogger())
	rl.now = clock.Now
	return rl
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newTestLimiter(60, 1, clock)

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	clock.t = clock.t.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, send().Code)
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newTestLimiter(60, 1, clock)

	rl.limiterFor("203.0.113.9")
	rl.limiterFor("198.51.100.4")
	assert.Len(t, rl.clients, 2)

	clock.t = clock.t.Add(limiterIdleTTL + time.Minute)
	rl.limiterFor("198.51.100.4")

	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "198.51.100.4")
}

func TestClientAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "203.0.113.9:1234"
	assert.Equal(t, "203.0.113.9", clientAddress(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientAddress(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientAddress(req))
}
