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
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

func TestWSHandlerUnavailable(t *testing.T) {
	s := &Server{cfg: &config.Config{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setPrincipal(c, &principal{Actor: models.Actor{ID: "u1", Role: "user"}})

	err := s.wsHandler(c)
	require.Error(t, err)
	he, ok := err.(*apiHTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, he.Code)
}

func TestWSHandlerRequiresPrincipal(t *testing.T) {
	s := &Server{
		cfg:         &config.Config{},
		connManager: events.NewConnectionManager(nil, time.Second),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.wsHandler(c)
	require.Error(t, err)
	he, ok := err.(*apiHTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestWSHandlerRejectsPlainHTTP(t *testing.T) {
	// Without an Upgrade handshake websocket.Accept refuses the request.
	s := &Server{
		cfg:         &config.Config{AllowedOrigins: []string{"*"}},
		connManager: events.NewConnectionManager(nil, time.Second),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setPrincipal(c, &principal{Actor: models.Actor{ID: "u1", Role: "user"}})

	err := s.wsHandler(c)
	assert.Error(t, err)
}
