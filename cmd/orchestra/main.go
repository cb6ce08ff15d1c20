// AgentOrchestra server: the HTTP API, the execution engine, the
// webhook delivery pool, and the background scheduler in one process.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

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
	"github.com/agent-orchestra/orchestra/pkg/version"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Load .env if present; deployments usually inject the environment
	// directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	// 1. Configuration (aggregated validation; abort on any error)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	podID := resolvePodID()
	slog.Info("Starting AgentOrchestra",
		"version", version.Full(),
		"port", cfg.Port,
		"pod_id", podID,
		"environment", cfg.Environment)

	ctx := context.Background()

	// 2. Persistent store (applies embedded migrations)
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Cache / pub-sub
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cacheClient.Close(); err != nil {
			slog.Error("Error closing cache client", "error", err)
		}
	}()
	slog.Info("Connected to Redis")

	// 4. Secrets
	box, err := auth.NewSecretBox(cfg.EncryptionKey)
	if err != nil {
		slog.Error("Failed to initialize encryption", "error", err)
		os.Exit(1)
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret)

	// 5. Framework registry
	registry := framework.NewRegistry()
	for _, p := range []framework.Plugin{
		framework.NewEchoPlugin(),
		framework.NewCerebrasPlugin(),
	} {
		if err := registry.Register(p); err != nil {
			slog.Error("Failed to register framework plugin", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Framework plugins registered", "frameworks", registry.Names())

	// 6. Domain services
	users := services.NewUserService(dbClient.Client)
	keys := services.NewAPIKeyService(dbClient.Client, cfg.APISecretKey)
	agents := services.NewAgentService(dbClient.Client, registry)
	execs := services.NewExecutionService(dbClient.Client)
	hooks := services.NewWebhookService(dbClient.Client, box,
		webhook.URLPolicy{AllowLoopback: !cfg.IsProduction()})
	audit := services.NewAuditService(dbClient.Client)
	slog.Info("Services initialized")

	// 7. Event fan-out: local bus, Redis relay, WebSocket manager
	publisher := events.NewPublisher(events.NewBus(0), cacheClient)
	connManager := events.NewConnectionManager(execs, 10*time.Second)
	bridge := events.NewBridge(cacheClient, connManager)
	if err := bridge.Start(ctx); err != nil {
		slog.Error("Failed to start event bridge", "error", err)
		os.Exit(1)
	}
	connManager.SetBridge(bridge)
	slog.Info("Event fan-out initialized")

	// 8. Execution engine (startup orphan recovery, then the pool)
	eng := engine.New(podID, engine.Deps{
		Client:     dbClient.Client,
		Executions: execs,
		Agents:     agents,
		Registry:   registry,
		Publisher:  publisher,
		Hooks:      webhook.NewEnqueuer(dbClient.Client),
	}, engine.Config{
		Workers:              cfg.MaxConcurrentExecutions,
		MaxConcurrentPerUser: cfg.MaxConcurrentPerUser,
		MaxExecutionTime:     cfg.MaxExecutionTime,
		StopGrace:            cfg.ShutdownGrace,
	})

	if recovered, err := eng.RecoverStartupOrphans(ctx); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
		// Non-fatal; the periodic sweep retries
	} else if recovered > 0 {
		slog.Info("Recovered startup orphans", "count", recovered)
	}

	if err := eng.Start(ctx); err != nil {
		slog.Error("Failed to start execution engine", "error", err)
		os.Exit(1)
	}

	// 9. Webhook delivery pool
	deliveryPool := webhook.NewDeliveryPool(dbClient.Client, box, publisher, webhook.Config{})
	deliveryPool.Start(ctx)

	// 10. Background scheduler (deferred/recurring executions, retention)
	sched := scheduler.New(dbClient.Client, eng, execs, hooks, audit, scheduler.Config{})
	if err := sched.EnsureSystemJobs(ctx); err != nil {
		slog.Error("Failed to ensure system jobs", "error", err)
		// Non-fatal; another replica may have them, and the next boot retries
	}
	sched.Start(ctx)

	// 11. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, api.Deps{
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

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("AgentOrchestra started",
		"pod_id", podID,
		"workers", cfg.MaxConcurrentExecutions)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown. The HTTP server stops accepting first so no
	// new work arrives while the pools drain.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Engine.Stop bounds itself: half the grace waiting for in-flight
	// runs, then force-cancel and wait out the rest.
	eng.Stop()

	// Scheduler and delivery pool finish their in-flight work; anything
	// they leave behind is claimed again by the next tick on any pod.
	bgCtx, bgCancel := context.WithTimeout(ctx, cfg.ShutdownGrace)
	defer bgCancel()
	bgDone := make(chan struct{})
	go func() {
		sched.Stop()
		deliveryPool.Stop()
		bridge.Stop()
		close(bgDone)
	}()

	select {
	case <-bgDone:
		slog.Info("Background workers stopped gracefully")
	case <-bgCtx.Done():
		slog.Warn("Background worker shutdown timeout exceeded")
	}

	slog.Info("Shutdown complete")
}
