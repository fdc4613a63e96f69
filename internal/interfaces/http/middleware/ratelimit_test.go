package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("a")
	assert.True(t, ok)
	ok, _ = rl.Allow("a")
	assert.True(t, ok)
	ok, _ = rl.Allow("a")
	assert.False(t, ok, "burst exhausted")

	ok, _ = rl.Allow("b")
	assert.True(t, ok, "other clients have their own bucket")

	now = now.Add(time.Second)
	ok, _ = rl.Allow("a")
	assert.True(t, ok, "refilled after one second")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	now := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	rl.Allow("b")
	assert.Equal(t, 2, rl.Clients())

	now = now.Add(time.Hour)
	rl.Allow("c")
	assert.Equal(t, 1, rl.Clients())
}

func TestRateLimit_Middleware(t *testing.T) {
	r := newEngine(RequestID(), RateLimit(NewRateLimiter(0.001, 1)))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_RATE_LIMITED")
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}
