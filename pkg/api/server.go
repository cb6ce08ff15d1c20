// Package api exposes the orchestrator over HTTP: REST handlers for
// executions, agents, and webhooks, the SSE stream, the WebSocket
// endpoint, and the middleware gate (authentication, rate limiting,
// usage recording).
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/cache"
	"github.com/agent-orchestra/orchestra/pkg/config"
	"github.com/agent-orchestra/orchestra/pkg/database"
	"github.com/agent-orchestra/orchestra/pkg/engine"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// Deps bundles the collaborators the HTTP layer is wired with.
type Deps struct {
	DB          *database.Client
	Engine      *engine.Engine
	Users       *services.UserService
	Keys        *services.APIKeyService
	Agents      *services.AgentService
	Executions  *services.ExecutionService
	Webhooks    *services.WebhookService
	ConnManager *events.ConnectionManager
	Cache       *cache.Client
	JWT         *auth.JWTManager
}

// Server is the HTTP front of the orchestrator.
type Server struct {
	cfg      *config.Config
	echo     *echo.Echo
	httpSrv  *http.Server
	dbClient *database.Client

	engine      *engine.Engine
	users       *services.UserService
	keys        *services.APIKeyService
	agents      *services.AgentService
	execs       *services.ExecutionService
	hooks       *services.WebhookService
	connManager *events.ConnectionManager
	cache       *cache.Client
	jwt         *auth.JWTManager

	// baseCtx ends at shutdown; long-lived streams (SSE, WS) watch it
	// so draining does not wait out the full grace period.
	baseCtx    context.Context
	cancelBase context.CancelFunc

	startedAt time.Time
}

// NewServer builds the echo instance, registers middleware and routes,
// and returns a Server ready to Start.
func NewServer(cfg *config.Config, d Deps) *Server {
	baseCtx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:         cfg,
		dbClient:    d.DB,
		engine:      d.Engine,
		users:       d.Users,
		keys:        d.Keys,
		agents:      d.Agents,
		execs:       d.Executions,
		hooks:       d.Webhooks,
		connManager: d.ConnManager,
		cache:       d.Cache,
		jwt:         d.JWT,
		baseCtx:     baseCtx,
		cancelBase:  cancel,
		startedAt:   time.Now(),
	}

	e := echo.New()
	e.Use(requestID())
	e.Use(securityHeaders())
	e.Use(corsOrigins(cfg.AllowedOrigins))
	e.Use(recoverPanics())

	e.GET("/health", s.healthHandler)

	api := e.Group("/api")
	api.Use(s.authenticate())
	api.Use(s.rateLimit())
	api.Use(s.usageRecorder())

	api.POST("/executions", requireCapability(auth.CapExecutionsWrite, s.submitExecutionHandler))
	api.GET("/executions/:id", requireCapability(auth.CapExecutionsRead, s.getExecutionHandler))
	api.GET("/executions/:id/logs", requireCapability(auth.CapExecutionsRead, s.executionLogsHandler))
	api.GET("/executions/:id/stream", requireCapability(auth.CapExecutionsRead, s.streamExecutionHandler))
	api.DELETE("/executions/:id", requireCapability(auth.CapExecutionsWrite, s.cancelExecutionHandler))

	api.POST("/agents", requireCapability(auth.CapAgentsManage, s.createAgentHandler))
	api.GET("/agents/:id", requireCapability(auth.CapExecutionsRead, s.getAgentHandler))
	api.PUT("/agents/:id", requireCapability(auth.CapAgentsManage, s.updateAgentHandler))

	api.POST("/webhooks", requireCapability(auth.CapWebhooksManage, s.createWebhookHandler))
	api.PUT("/webhooks/:id", requireCapability(auth.CapWebhooksManage, s.updateWebhookHandler))
	api.DELETE("/webhooks/:id", requireCapability(auth.CapWebhooksManage, s.deleteWebhookHandler))
	api.GET("/webhooks/:id/stats", requireCapability(auth.CapWebhooksManage, s.webhookStatsHandler))

	api.GET("/ws", s.wsHandler)

	s.echo = e
	s.httpSrv = &http.Server{
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the routing tree, mainly for tests that drive the
// full middleware chain through httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on the configured port until the listener fails or
// Shutdown is called.
func (s *Server) Start() error {
	s.httpSrv.Addr = fmt.Sprintf(":%d", s.cfg.Port)
	slog.Info("HTTP server listening", "addr", s.httpSrv.Addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// StartWithListener serves on a caller-provided listener. Tests use it
// to bind an ephemeral port.
func (s *Server) StartWithListener(ln net.Listener) error {
	err := s.httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections, ends long-lived streams, and
// drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancelBase()
	return s.httpSrv.Shutdown(ctx)
}
