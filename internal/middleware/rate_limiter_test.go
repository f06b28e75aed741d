package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedHandler(rl *RateLimiter) echo.HandlerFunc {
	return rl.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}

func serveFrom(e *echo.Echo, handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serveFrom(e, handler, "10.0.0.1").Code, "request %d", i)
	}

	rec := serveFrom(e, handler, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)
	handler := rateLimitedHandler(rl)

	assert.Equal(t, http.StatusOK, serveFrom(e, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(e, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serveFrom(e, handler, "10.0.0.2").Code)
	assert.Equal(t, 2, rl.visitorCount())
}

func TestRateLimiter_ForwardedFor(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 1))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
		req.Header.Set(echo.HeaderXForwardedFor, forwarded)
		rec := httptest.NewRecorder()
		_ = handler(e.NewContext(req, rec))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("203.0.113.8"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")

	rl.evictIdle(time.Now())
	assert.Equal(t, 2, rl.visitorCount())

	rl.evictIdle(time.Now().Add(visitorIdleTimeout + time.Second))
	assert.Zero(t, rl.visitorCount())
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(1, 5))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if serveFrom(e, handler, "10.0.0.9").Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 5)
	assert.LessOrEqual(t, allowed, 6)
}
