package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"atm-simulator/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(rps, burst int) *RateLimiter {
	return NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: rps, RateLimitBurst: burst})
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func sendFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/session/authenticate", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := newTestLimiter(1, 4).Middleware()(okHandler)

	for i := 0; i < 4; i++ {
		rec := sendFrom(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be inside the burst", i)
	}

	rec := sendFrom(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_IPsAreIndependent(t *testing.T) {
	e := echo.New()
	handler := newTestLimiter(1, 2).Middleware()(okHandler)

	for _, ip := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		for i := 0; i < 2; i++ {
			assert.Equal(t, http.StatusOK, sendFrom(e, handler, ip).Code)
		}
	}
}

func TestRateLimiter_InstancesDoNotShareState(t *testing.T) {
	e := echo.New()
	first := newTestLimiter(1, 1).Middleware()(okHandler)
	second := newTestLimiter(1, 1).Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, sendFrom(e, first, "10.0.0.9:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(e, first, "10.0.0.9:1").Code)
	assert.Equal(t, http.StatusOK, sendFrom(e, second, "10.0.0.9:1").Code)
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "X-Forwarded-For chain uses the client",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.7",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.2",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "Falls back to RealIP",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			c := echo.New().NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(5, 10)
	rl.now = func() time.Time { return now }

	rl.getVisitor("old_ip")
	now = now.Add(2 * time.Minute)
	rl.getVisitor("new_ip")
	now = now.Add(2 * time.Minute)

	rl.cleanup()

	assert.Equal(t, 1, rl.visitorCount())
	rl.mu.Lock()
	_, oldExists := rl.visitors["old_ip"]
	_, newExists := rl.visitors["new_ip"]
	rl.mu.Unlock()
	assert.False(t, oldExists, "Old visitor should be removed")
	assert.True(t, newExists, "New visitor should still exist")
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl := newTestLimiter(5, 10)
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

func TestRateLimiterConcurrency(t *testing.T) {
	e := echo.New()
	handler := newTestLimiter(5, 10).Middleware()(okHandler)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount, rateLimitCount := 0, 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := sendFrom(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitCount++
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, successCount, 10)
	assert.Greater(t, rateLimitCount, 0)
	assert.Equal(t, 20, successCount+rateLimitCount)
}
