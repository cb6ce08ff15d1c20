package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/config"
	"github.com/agent-orchestra/orchestra/test/util"
)

func probeRoute(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	for _, m := range mw {
		e.Use(m)
	}
	e.GET("/probe", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestSecurityHeaders(t *testing.T) {
	e := probeRoute(securityHeaders())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		e := probeRoute(requestID())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		id := rec.Header().Get(requestIDHeader)
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("preserves a proxy-supplied id", func(t *testing.T) {
		e := probeRoute(requestID())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(requestIDHeader, "upstream-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "upstream-123", rec.Header().Get(requestIDHeader))
	})
}

func TestCORSOrigins(t *testing.T) {
	t.Run("wildcard allows any origin", func(t *testing.T) {
		e := probeRoute(corsOrigins([]string{"*"}))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowlisted origin is echoed back", func(t *testing.T) {
		e := probeRoute(corsOrigins([]string{"https://app.example.com"}))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		e := probeRoute(corsOrigins([]string{"https://app.example.com"}))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answers 204 without invoking the handler", func(t *testing.T) {
		e := echo.New()
		e.Use(corsOrigins([]string{"https://app.example.com"}))
		handlerHit := false
		e.OPTIONS("/probe", func(c *echo.Context) error {
			handlerHit = true
			return c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodOptions, "/probe", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, handlerHit)
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	})
}

func TestRecoverPanics(t *testing.T) {
	e := echo.New()
	mw := recoverPanics()
	h := mw(func(c *echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h(c)
	require.Error(t, err)
	he, ok := err.(*apiHTTPError)
	require.True(t, ok, "expected echo.HTTPError")
	assert.Equal(t, http.StatusInternalServerError, he.Code)
	body, ok := he.Message.(*ErrorBody)
	require.True(t, ok)
	assert.Equal(t, codeInternal, body.Error)
}

func TestRateLimit(t *testing.T) {
	newLimitedServer := func(t *testing.T, limit int) (*Server, *echo.Echo) {
		cacheClient, _ := util.SetupTestCache(t)
		s := &Server{
			cfg: &config.Config{
				RateLimitWindow:      time.Minute,
				RateLimitMaxRequests: limit,
			},
			cache: cacheClient,
		}
		e := probeRoute(s.rateLimit())
		return s, e
	}

	t.Run("admits up to the limit then answers 429", func(t *testing.T) {
		_, e := newLimitedServer(t, 3)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
			assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		}

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("remaining counts down per request", func(t *testing.T) {
		_, e := newLimitedServer(t, 5)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("fails open when the cache is down", func(t *testing.T) {
		cacheClient, mr := util.SetupTestCache(t)
		mr.Close()

		s := &Server{
			cfg: &config.Config{
				RateLimitWindow:      time.Minute,
				RateLimitMaxRequests: 1,
			},
			cache: cacheClient,
		}
		e := probeRoute(s.rateLimit())

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("no cache configured passes through", func(t *testing.T) {
		s := &Server{cfg: &config.Config{}}
		e := probeRoute(s.rateLimit())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	})
}

func TestUsageRecorder(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	key := h.newAPIKey(t, owner)

	rec := h.do(t, http.MethodGet, "/api/agents/"+uuid.New().String(), key, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rows, err := h.db.Client.ApiKeyUsage.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, http.StatusNotFound, rows[0].StatusCode)
	assert.Equal(t, http.MethodGet, rows[0].Method)
}
