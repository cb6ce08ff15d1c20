package api

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/pkg/cache"
)

const requestIDHeader = "X-Request-Id"

// requestID ensures every request carries a correlation id, preserving
// one supplied by a fronting proxy.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// corsOrigins answers CORS for the configured origin allowlist. An
// empty allowlist disables cross-origin access entirely.
func corsOrigins(allowed []string) echo.MiddlewareFunc {
	allowedSet := make(map[string]bool, len(allowed))
	wildcard := false
	for _, o := range allowed {
		if o == "*" {
			wildcard = true
		}
		allowedSet[o] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			origin := c.Request().Header.Get("Origin")
			h := c.Response().Header()
			h.Add("Vary", "Origin")

			if origin != "" && (wildcard || allowedSet[origin]) {
				if wildcard {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
				}
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-Id")
				h.Set("Access-Control-Max-Age", "600")
			}

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

// recoverPanics converts handler panics into 500 responses instead of
// taking the process down with one bad request.
func recoverPanics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Handler panic recovered",
						"panic", r,
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"stack", string(debug.Stack()))
					err = apiError(http.StatusInternalServerError, codeInternal, "internal server error")
				}
			}()
			return next(c)
		}
	}
}

// rateLimit enforces the general fixed-window quota, keyed by user once
// authenticated and by caller IP otherwise. The counter lives in the
// cache; when it is unreachable the request is admitted (availability
// over strict enforcement).
func (s *Server) rateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if s.cache == nil {
				return next(c)
			}
			id := "ip:" + clientIP(c.Request())
			if p := currentPrincipal(c); p != nil {
				id = "user:" + p.Actor.ID
			}
			d, err := s.cache.Allow(c.Request().Context(), "general", id,
				s.cfg.RateLimitMaxRequests, s.cfg.RateLimitWindow)
			if err != nil {
				slog.Warn("Rate limit check failed, failing open", "error", err)
				return next(c)
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
			if !d.Allowed {
				return rateLimitExceeded(c, d)
			}
			return next(c)
		}
	}
}

// rateLimitExceeded answers 429 with the reset headers and the window
// expiry in the body.
func rateLimitExceeded(c *echo.Context, d *cache.Decision) *apiHTTPError {
	h := c.Response().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	h.Set("X-RateLimit-Remaining", "0")
	h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
	retryAfter := int64(time.Until(d.ResetAt).Seconds()) + 1
	if retryAfter < 1 {
		retryAfter = 1
	}
	h.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
	reset := d.ResetAt.UTC()
	return &apiHTTPError{Code: http.StatusTooManyRequests, Message: &ErrorBody{
		Error:   codeRateLimited,
		Message: "rate limit exceeded",
		ResetAt: &reset,
	}}
}

// usageRecorder appends an ApiKeyUsage row after the handler returns,
// for key-authenticated requests only. Best effort; the service logs
// and swallows insert failures.
func (s *Server) usageRecorder() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			err := next(c)

			p := currentPrincipal(c)
			if p == nil || p.KeyID == "" {
				return err
			}

			status := http.StatusOK
			if err != nil {
				status = http.StatusInternalServerError
				var sc echo.HTTPStatusCoder
				if errors.As(err, &sc) {
					status = sc.StatusCode()
				}
			} else if resp, _ := echo.UnwrapResponse(c.Response()); resp != nil && resp.Status != 0 {
				status = resp.Status
			}

			s.keys.RecordUsage(p.KeyID, c.Request().URL.Path, c.Request().Method,
				status, clientIP(c.Request()), c.Request().UserAgent())
			return err
		}
	}
}
