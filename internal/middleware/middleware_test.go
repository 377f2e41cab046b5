package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/x", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/x", nil).Code)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/x", nil).Code)

	w := serve(r, http.MethodPost, "/x", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rate_limited", body.Code)

	// a second later one token is back
	now = now.Add(time.Second)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/x", nil).Code)
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"))
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(rl.idleTTL + time.Minute)
	rl.Allow("b")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "a")
	assert.Contains(t, rl.clients, "b")
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/x", http.Header{"Origin": {"https://shop.example"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	w := serve(r, http.MethodGet, "/items/42", http.Header{RequestIDHeader: {"abc"}})
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/items/:id", line["route"])
	assert.EqualValues(t, 200, line["status"])

	w = serve(r, http.MethodGet, "/items/42", nil)
	assert.Len(t, w.Body.String(), 36)
}

func TestRequestLogger_HeaderSpelling(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	for _, key := range []string{RequestIDHeader, "X-Request-Id", "x-request-id"} {
		t.Run(key, func(t *testing.T) {
			w := serve(r, http.MethodGet, "/x", http.Header{key: {"req-7"}})
			assert.Equal(t, "req-7", w.Body.String())
			assert.Equal(t, "req-7", w.Header().Get(RequestIDHeader))
		})
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(time.Second))
	r.GET("/x", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/x", nil).Code)
}

func TestPrometheusMiddleware_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := serve(r, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
	_, _ = io.Copy(io.Discard, w.Body)
}
