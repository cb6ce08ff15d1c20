// Package e2e boots complete AgentOrchestra instances and drives the
// seed scenarios over the real HTTP surface.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/pkg/api"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/cache"
	"github.com/agent-orchestra/orchestra/pkg/config"
	"github.com/agent-orchestra/orchestra/pkg/database"
	"github.com/agent-orchestra/orchestra/pkg/engine"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/scheduler"
	"github.com/agent-orchestra/orchestra/pkg/services"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
	testdb "github.com/agent-orchestra/orchestra/test/database"
	"github.com/agent-orchestra/orchestra/test/util"
)

// testEncryptionKey seals webhook secrets in e2e runs (32 bytes).
var testEncryptionKey = []byte("0123456789abcdef0123456789abcdef")

// testJWTSecret signs session tokens; tests minting their own tokens
// must use the same value.
const testJWTSecret = "e2e-test-secret-with-32-byte-len!"

// TestApp boots a complete orchestrator instance for e2e testing.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client
	Cache     *cache.Client
	Redis     *miniredis.Miniredis

	Users      *services.UserService
	Keys       *services.APIKeyService
	Agents     *services.AgentService
	Executions *services.ExecutionService
	Webhooks   *services.WebhookService

	Publisher    *events.Publisher
	ConnManager  *events.ConnectionManager
	Engine       *engine.Engine
	DeliveryPool *webhook.DeliveryPool
	Scheduler    *scheduler.Scheduler
	Server       *api.Server

	// BaseURL is "http://127.0.0.1:<port>"; WSURL the matching ws:// endpoint.
	BaseURL string
	WSURL   string

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg         *config.Config
	engineCfg   engine.Config
	deliveryCfg webhook.Config
	dbClient    *database.Client
	cacheClient *cache.Client
	redis       *miniredis.Miniredis
	podID       string
	startEngine bool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom process config. Tests use it to tighten the
// rate limit or change origins.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithEngineConfig overrides the default fast-poll engine settings.
func WithEngineConfig(cfg engine.Config) TestAppOption {
	return func(c *testAppConfig) { c.engineCfg = cfg }
}

// WithDeliveryConfig overrides the webhook delivery pool settings.
func WithDeliveryConfig(cfg webhook.Config) TestAppOption {
	return func(c *testAppConfig) { c.deliveryCfg = cfg }
}

// WithDBClient injects a pre-created database client, skipping the
// default per-test schema creation. Used for multi-replica tests where
// several TestApp instances share one schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithCache injects a shared cache client and its miniredis backend so
// replicas see each other's published events.
func WithCache(client *cache.Client, mr *miniredis.Miniredis) TestAppOption {
	return func(c *testAppConfig) {
		c.cacheClient = client
		c.redis = mr
	}
}

// WithPodID overrides the auto-generated pod ID. Multi-replica tests
// need distinct identities for row claiming and orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// WithoutEngine constructs the engine but does not start its pool.
// Orphan-recovery tests use it to leave claimed rows untouched.
func WithoutEngine() TestAppOption {
	return func(c *testAppConfig) { c.startEngine = false }
}

// NewTestApp creates and starts a fully wired orchestrator instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		engineCfg:   defaultEngineConfig(),
		deliveryCfg: defaultDeliveryConfig(),
		startEngine: true,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = DefaultTestConfig()
	}

	ctx := context.Background()

	// 1. Store: per-test schema on the shared Postgres container.
	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Cache: miniredis unless a shared one was injected.
	cacheClient, mr := tc.cacheClient, tc.redis
	if cacheClient == nil {
		cacheClient, mr = util.SetupTestCache(t)
	}

	// 3. Secrets.
	box, err := auth.NewSecretBox(testEncryptionKey)
	require.NoError(t, err)
	jwtManager := auth.NewJWTManager(testJWTSecret)

	// 4. Frameworks: the real plugins; echo's delay/fail knobs drive the
	// cancellation and failure scenarios.
	registry := framework.NewRegistry()
	require.NoError(t, registry.Register(framework.NewEchoPlugin()))
	require.NoError(t, registry.Register(framework.NewCerebrasPlugin()))

	// 5. Domain services.
	users := services.NewUserService(entClient)
	keys := services.NewAPIKeyService(entClient, "e2e-test-pepper")
	agents := services.NewAgentService(entClient, registry)
	execs := services.NewExecutionService(entClient)
	hooks := services.NewWebhookService(entClient, box, webhook.URLPolicy{AllowLoopback: true})
	audit := services.NewAuditService(entClient)

	// 6. Event fan-out.
	publisher := events.NewPublisher(events.NewBus(0), cacheClient)
	connManager := events.NewConnectionManager(execs, 5*time.Second)
	bridge := events.NewBridge(cacheClient, connManager)
	require.NoError(t, bridge.Start(ctx))
	connManager.SetBridge(bridge)

	// 7. Engine.
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", t.Name())
	}
	eng := engine.New(podID, engine.Deps{
		Client:     entClient,
		Executions: execs,
		Agents:     agents,
		Registry:   registry,
		Publisher:  publisher,
		Hooks:      webhook.NewEnqueuer(entClient),
	}, tc.engineCfg)
	if tc.startEngine {
		require.NoError(t, eng.Start(ctx))
	}

	// 8. Webhook delivery pool.
	deliveryPool := webhook.NewDeliveryPool(entClient, box, publisher, tc.deliveryCfg)
	deliveryPool.Start(ctx)

	// 9. Scheduler: constructed but not started; tests drive Tick
	// directly for deterministic firing.
	sched := scheduler.New(entClient, eng, execs, hooks, audit, scheduler.Config{})

	// 10. HTTP server on an ephemeral port.
	server := api.NewServer(tc.cfg, api.Deps{
		DB:          dbClient,
		Engine:      eng,
		Users:       users,
		Keys:        keys,
		Agents:      agents,
		Executions:  execs,
		Webhooks:    hooks,
		ConnManager: connManager,
		Cache:       cacheClient,
		JWT:         jwtManager,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		Config:       tc.cfg,
		DBClient:     dbClient,
		EntClient:    entClient,
		Cache:        cacheClient,
		Redis:        mr,
		Users:        users,
		Keys:         keys,
		Agents:       agents,
		Executions:   execs,
		Webhooks:     hooks,
		Publisher:    publisher,
		ConnManager:  connManager,
		Engine:       eng,
		DeliveryPool: deliveryPool,
		Scheduler:    sched,
		Server:       server,
		BaseURL:      "http://" + addr,
		WSURL:        "ws://" + addr + "/api/ws",
		t:            t,
	}

	// Cleanup in reverse-creation order. The DB and miniredis register
	// their own cleanups inside their helpers.
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		if tc.startEngine {
			eng.Stop()
		}
		deliveryPool.Stop()
		bridge.Stop()
	})

	return app
}

// DefaultTestConfig returns process settings sized for e2e runs: a
// permissive rate limit and a short shutdown grace.
func DefaultTestConfig() *config.Config {
	return &config.Config{
		Port:                    0,
		Environment:             config.EnvTest,
		AllowedOrigins:          []string{"*"},
		RateLimitWindow:         time.Minute,
		RateLimitMaxRequests:    1000,
		AuthRateLimitMax:        100,
		MaxExecutionTime:        30 * time.Second,
		MaxConcurrentExecutions: 4,
		MaxConcurrentPerUser:    10,
		ShutdownGrace:           5 * time.Second,
	}
}

// defaultEngineConfig polls fast enough that submissions are picked up
// within a few tens of milliseconds.
func defaultEngineConfig() engine.Config {
	return engine.Config{
		Workers:              2,
		MaxConcurrentPerUser: 10,
		MaxExecutionTime:     30 * time.Second,
		DefaultTimeout:       10 * time.Second,
		PollInterval:         50 * time.Millisecond,
		HeartbeatInterval:    time.Second,
		StopGrace:            5 * time.Second,
	}
}

// defaultDeliveryConfig shortens the retry ladder so a full
// retry-until-delivered chain settles in a few seconds.
func defaultDeliveryConfig() webhook.Config {
	return webhook.Config{
		Workers:        2,
		PollInterval:   50 * time.Millisecond,
		RequestTimeout: 5 * time.Second,
		MaxAttempts:    5,
		BaseDelay:      250 * time.Millisecond,
	}
}
