package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedHandler(rl *RateLimiter) echo.HandlerFunc {
	return rl.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func callFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 5))

	for i := 0; i < 5; i++ {
		rec := callFrom(e, handler, "192.168.1.100:12345", nil)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be within burst", i)
	}

	rec := callFrom(e, handler, "192.168.1.100:12345", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_PerClient(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 1))

	assert.Equal(t, http.StatusOK, callFrom(e, handler, "10.0.0.1:1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, callFrom(e, handler, "10.0.0.1:2", nil).Code)
	assert.Equal(t, http.StatusOK, callFrom(e, handler, "10.0.0.2:1", nil).Code)
}

func TestRateLimiter_UsesFirstForwardedHop(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 1))

	first := map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}
	second := map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}

	assert.Equal(t, http.StatusOK, callFrom(e, handler, "10.0.0.9:1", first).Code)
	assert.Equal(t, http.StatusTooManyRequests, callFrom(e, handler, "10.0.0.9:1", second).Code)
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(5, 10)
	now := time.Now()
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("a"))
	assert.True(t, rl.allow("b"))
	require.Equal(t, 2, rl.visitorCount())

	now = now.Add(visitorIdleTimeout + time.Second)
	assert.True(t, rl.allow("b"))
	rl.evictIdle()

	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(5, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- rl.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
