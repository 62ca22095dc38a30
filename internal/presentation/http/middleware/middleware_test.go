package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/quickmart/checkout-api/internal/config"
)

func newLoggerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestLoggerAcceptsAnyRequestIDLength(t *testing.T) {
	router := newLoggerRouter()

	// Client-supplied IDs are arbitrary strings, including ones shorter
	// than the truncated form used in log lines.
	for _, id := range []string{"abc", "", "x", "12345678", "a-much-longer-request-identifier"} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		if id != "" {
			req.Header.Set("X-Request-ID", id)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("X-Request-ID %q: status=%d want=%d", id, w.Code, http.StatusOK)
		}
	}
}

func TestLoggerEchoesRequestID(t *testing.T) {
	router := newLoggerRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc" {
		t.Errorf("echoed request id=%q want %q", got, "abc")
	}
}

func TestLoggerGeneratesRequestID(t *testing.T) {
	router := newLoggerRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got == "" {
		t.Error("missing generated request id")
	}
}

func TestRateLimiterBlocksAboveBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewClientRateLimiter(&config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("requests within burst: statuses=%v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("request above burst: status=%d want=%d", statuses[2], http.StatusTooManyRequests)
	}
}

func TestRateLimiterStopIsIdempotent(t *testing.T) {
	// Constructing and stopping multiple limiters must not leak goroutines
	// or panic on a second Stop.
	for i := 0; i < 3; i++ {
		rl := NewClientRateLimiter(&config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
		rl.Stop()
		rl.Stop()
	}
}
