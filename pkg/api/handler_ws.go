package api

import (
	"net/http"
	"slices"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/pkg/events"
)

// wsHandler upgrades the connection and hands it to the connection
// manager, which owns the subscribe protocol and room fan-out. Blocks
// until the socket closes.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return apiError(http.StatusServiceUnavailable, codeInternal, "realtime streaming not available")
	}

	p := currentPrincipal(c)
	if p == nil {
		return apiError(http.StatusUnauthorized, codeUnauthorized, "authentication required")
	}

	opts := &websocket.AcceptOptions{}
	if slices.Contains(s.cfg.AllowedOrigins, "*") {
		opts.InsecureSkipVerify = true
	} else {
		opts.OriginPatterns = s.cfg.AllowedOrigins
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}

	sub := events.Subscriber{UserID: p.Actor.ID, Role: p.Actor.Role}

	// The server's base context, not the request context, governs the
	// connection so shutdown closes hijacked sockets promptly.
	s.connManager.HandleConnection(s.baseCtx, conn, sub)
	return nil
}
