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

	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "bare scheme", header: "Bearer", wantErr: true},
		{name: "token extracted", header: "Bearer abc123", want: "abc123"},
		{name: "scheme is case-insensitive", header: "bearer abc123", want: "abc123"},
		{name: "surrounding spaces trimmed", header: "Bearer  abc123 ", want: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := bearerToken(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:   "falls back to remote address",
			remote: "10.1.2.3:4567",
			want:   "10.1.2.3",
		},
		{
			name:    "first X-Forwarded-For hop wins",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1, 10.0.0.2"},
			remote:  "10.1.2.3:4567",
			want:    "203.0.113.9",
		},
		{
			name:    "single X-Forwarded-For value",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remote:  "10.1.2.3:4567",
			want:    "203.0.113.9",
		},
		{
			name:    "X-Real-Ip when no forwarded chain",
			headers: map[string]string{"X-Real-Ip": "198.51.100.7"},
			remote:  "10.1.2.3:4567",
			want:    "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestRequireCapability(t *testing.T) {
	invoke := func(t *testing.T, p *principal) error {
		t.Helper()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if p != nil {
			setPrincipal(c, p)
		}
		h := requireCapability(auth.CapAgentsManage, func(c *echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})
		return h(c)
	}

	t.Run("missing principal answers 401", func(t *testing.T) {
		err := invoke(t, nil)
		require.Error(t, err)
		he, ok := err.(*apiHTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("key without the capability answers 403", func(t *testing.T) {
		err := invoke(t, &principal{
			Actor:       models.Actor{ID: "u1", Role: "user"},
			KeyID:       "k1",
			Permissions: []string{auth.CapExecutionsRead},
		})
		require.Error(t, err)
		he, ok := err.(*apiHTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("key holding the capability passes", func(t *testing.T) {
		err := invoke(t, &principal{
			Actor:       models.Actor{ID: "u1", Role: "user"},
			KeyID:       "k1",
			Permissions: []string{auth.CapAgentsManage},
		})
		assert.NoError(t, err)
	})

	t.Run("admin:all subsumes every capability", func(t *testing.T) {
		err := invoke(t, &principal{
			Actor:       models.Actor{ID: "u1", Role: "user"},
			KeyID:       "k1",
			Permissions: []string{auth.CapAdminAll},
		})
		assert.NoError(t, err)
	})

	t.Run("session principal passes without permission set", func(t *testing.T) {
		err := invoke(t, &principal{Actor: models.Actor{ID: "u1", Role: "user"}})
		assert.NoError(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	probe := "/api/agents/" + uuid.New().String()

	t.Run("missing credentials answer 401", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, probe, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown api key answers 401", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, probe, "aok_definitely_not_a_key", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid api key reaches the handler", func(t *testing.T) {
		key := h.newAPIKey(t, owner)
		rec := h.do(t, http.MethodGet, probe, key, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("key scoped elsewhere answers 403", func(t *testing.T) {
		key := h.newAPIKey(t, owner, auth.CapWebhooksManage)
		rec := h.do(t, http.MethodGet, probe, key, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid session token reaches the handler", func(t *testing.T) {
		token := h.newSession(t, owner)
		rec := h.do(t, http.MethodGet, probe, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("expired session token answers 401", func(t *testing.T) {
		token, err := h.jwt.Mint(owner.ID, "user", -time.Minute)
		require.NoError(t, err)
		rec := h.do(t, http.MethodGet, probe, token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked session token answers 401", func(t *testing.T) {
		token := h.newSession(t, owner)
		claims, err := h.jwt.Verify(token)
		require.NoError(t, err)
		require.NoError(t, h.cache.BlacklistToken(context.Background(), claims.ID, time.Hour))

		rec := h.do(t, http.MethodGet, probe, token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for a deleted user answers 401", func(t *testing.T) {
		token, err := h.jwt.Mint(uuid.New().String(), "user", time.Hour)
		require.NoError(t, err)
		rec := h.do(t, http.MethodGet, probe, token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for a deactivated user answers 401", func(t *testing.T) {
		suspended := h.newUser(t, "user")
		_, err := h.db.Client.User.UpdateOneID(suspended.ID).SetActive(false).Save(context.Background())
		require.NoError(t, err)

		token := h.newSession(t, suspended)
		rec := h.do(t, http.MethodGet, probe, token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthThrottle(t *testing.T) {
	h := newAPIHarness(t)
	h.s.cfg.AuthRateLimitMax = 3
	probe := "/api/agents/" + uuid.New().String()

	for i := 0; i < 3; i++ {
		rec := h.do(t, http.MethodGet, probe, "aok_bogus", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d", i+1)
	}

	rec := h.do(t, http.MethodGet, probe, "aok_bogus", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
