package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/config"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

func TestHealthPass(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "pass", got.Status)
	assert.NotEmpty(t, got.Version)
	assert.GreaterOrEqual(t, got.UptimeSeconds, int64(0))
	for _, check := range []string{"database", "cache", "queue", "error_rate"} {
		assert.Contains(t, got.Checks, check)
	}
}

func TestHealthWarnsWithoutCache(t *testing.T) {
	db := testdb.NewTestClient(t)
	s := &Server{
		cfg:       &config.Config{},
		dbClient:  db,
		startedAt: time.Now(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.healthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "warn", got.Status)
}

func TestHealthWarnsWhenCacheDown(t *testing.T) {
	h := newAPIHarness(t)
	h.mr.Close()

	rec := h.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "warn", got.Status)
}

func TestHealthFailsWhenDatabaseDown(t *testing.T) {
	db := testdb.NewTestClient(t)
	require.NoError(t, db.DB().Close())

	s := &Server{
		cfg:       &config.Config{},
		dbClient:  db,
		startedAt: time.Now(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.healthHandler(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	got := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "fail", got.Status)
}
