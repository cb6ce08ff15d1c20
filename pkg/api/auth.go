package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// principal is the authenticated identity attached to the request after
// the gate admits it. KeyID and Permissions are set only for API-key
// requests; JWT sessions act with the user's full authority.
type principal struct {
	Actor       models.Actor
	KeyID       string
	Permissions []string
}

const principalKey = "orchestra.principal"

func setPrincipal(c *echo.Context, p *principal) {
	c.Set(principalKey, p)
}

func currentPrincipal(c *echo.Context) *principal {
	p, _ := c.Get(principalKey).(*principal)
	return p
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", errors.New("missing Authorization header")
	}
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", errors.New("malformed Authorization header")
	}
	return strings.TrimSpace(h[len(prefix):]), nil
}

// clientIP resolves the caller address, trusting proxy headers in the
// order a fronting load balancer populates them.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	if rip := r.Header.Get("X-Real-Ip"); rip != "" {
		return rip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// authenticate resolves the bearer credential into a principal. API
// keys are recognized by their prefix; everything else is treated as a
// session JWT. The blacklist check fails open: a cache outage never
// locks out valid sessions.
func (s *Server) authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			raw, err := bearerToken(c.Request())
			if err != nil {
				return s.rejectCredentials(c, err.Error())
			}

			if auth.IsAPIKey(raw) {
				key, owner, err := s.keys.Verify(c.Request().Context(), raw)
				if err != nil {
					return s.rejectCredentials(c, "invalid credentials")
				}
				setPrincipal(c, &principal{
					Actor:       models.Actor{ID: owner.ID, Role: string(owner.Role)},
					KeyID:       key.ID,
					Permissions: key.Permissions,
				})
				return next(c)
			}

			claims, err := s.jwt.Verify(raw)
			if err != nil {
				return s.rejectCredentials(c, "invalid or expired token")
			}
			if s.cache != nil {
				revoked, err := s.cache.IsTokenBlacklisted(c.Request().Context(), claims.ID)
				if err != nil {
					slog.Warn("Token blacklist check failed, admitting", "error", err)
				} else if revoked {
					return s.rejectCredentials(c, "token revoked")
				}
			}
			user, err := s.users.Get(c.Request().Context(), claims.Subject)
			if err != nil {
				return s.rejectCredentials(c, "invalid or expired token")
			}
			if !user.Active {
				return s.rejectCredentials(c, "account disabled")
			}
			setPrincipal(c, &principal{
				Actor: models.Actor{ID: user.ID, Role: string(user.Role)},
			})
			return next(c)
		}
	}
}

// rejectCredentials charges the stricter auth bucket for the caller IP
// before answering 401, so credential guessing runs into 429 after a
// handful of attempts per window.
func (s *Server) rejectCredentials(c *echo.Context, msg string) error {
	if s.cache != nil {
		d, err := s.cache.Allow(c.Request().Context(), "auth", "ip:"+clientIP(c.Request()),
			s.cfg.AuthRateLimitMax, s.cfg.RateLimitWindow)
		if err != nil {
			slog.Warn("Auth rate limit check failed, failing open", "error", err)
		} else if !d.Allowed {
			return rateLimitExceeded(c, d)
		}
	}
	return apiError(http.StatusUnauthorized, codeUnauthorized, msg)
}

// requireCapability gates a handler on an API-key capability. JWT
// sessions pass through; key-authenticated requests need the
// capability in their permission set, with admin:all subsuming all.
func requireCapability(capability string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		p := currentPrincipal(c)
		if p == nil {
			return apiError(http.StatusUnauthorized, codeUnauthorized, "authentication required")
		}
		if p.KeyID != "" && !auth.HasCapability(p.Permissions, capability) {
			return apiError(http.StatusForbidden, codeForbidden,
				fmt.Sprintf("API key lacks capability %q", capability))
		}
		return next(c)
	}
}
