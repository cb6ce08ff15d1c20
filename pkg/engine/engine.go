// Package engine runs the execution lifecycle: submission validation,
// durable queuing, claim-based dispatch across replicas, per-run
// timeout enforcement, and terminal-state fan-out.
//
// Dispatch is pull-based. Each pod runs a Pool of workers that claim
// pending rows with FOR UPDATE SKIP LOCKED, so replicas never need to
// coordinate beyond the database. At most one execution per agent is in
// flight at a time; the partial unique index behind
// services.ExecutionService.CreatePending enforces that at the store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// Sentinel errors used by the claim path.
var (
	// ErrNoExecutionsAvailable signals an empty queue (not a failure).
	ErrNoExecutionsAvailable = errors.New("no executions available")
)

// DeliveryHooks receives lifecycle events for durable fan-out (webhook
// deliveries). The engine calls it after the corresponding state
// transition is persisted, never before.
type DeliveryHooks interface {
	EnqueueEvent(ctx context.Context, evt events.Event)
}

// Config tunes the engine. Zero values select the defaults below.
type Config struct {
	// Workers is the pool size and therefore this pod's concurrency
	// ceiling. Default 50.
	Workers int

	// MaxConcurrentPerUser caps a submitter's pending+running rows.
	// Default 10.
	MaxConcurrentPerUser int

	// MaxExecutionTime is the hard ceiling a requested timeout is
	// clamped to, and the base for orphan staleness. Default 5m.
	MaxExecutionTime time.Duration

	// DefaultTimeout applies when a submission names none. Default 60s.
	DefaultTimeout time.Duration

	// PollInterval is the idle sleep between claim attempts; each sleep
	// is jittered by ±PollJitter to spread replica load. Defaults
	// 500ms / PollInterval/5.
	PollInterval time.Duration
	PollJitter   time.Duration

	// HeartbeatInterval is how often a worker stamps its claimed row.
	// Default 30s.
	HeartbeatInterval time.Duration

	// OrphanScanInterval spaces periodic stale-heartbeat sweeps.
	// Default 1m.
	OrphanScanInterval time.Duration

	// StopGrace bounds Stop: half of it waits for in-flight runs to
	// finish on their own, the rest after force-cancelling them.
	// Default 30s.
	StopGrace time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 50
	}
	if c.MaxConcurrentPerUser <= 0 {
		c.MaxConcurrentPerUser = 10
	}
	if c.MaxExecutionTime <= 0 {
		c.MaxExecutionTime = 5 * time.Minute
	}
	if c.DefaultTimeout <= 0 {
		c.DefaultTimeout = 60 * time.Second
	}
	if c.DefaultTimeout > c.MaxExecutionTime {
		c.DefaultTimeout = c.MaxExecutionTime
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
	if c.PollJitter <= 0 {
		c.PollJitter = c.PollInterval / 5
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = 30 * time.Second
	}
	if c.OrphanScanInterval <= 0 {
		c.OrphanScanInterval = time.Minute
	}
	if c.StopGrace <= 0 {
		c.StopGrace = 30 * time.Second
	}
	return c
}

// staleAfter is how long a row may go without progress before the
// orphan sweeps reclaim it.
func (c Config) staleAfter() time.Duration {
	return 2 * c.MaxExecutionTime
}

// Deps collects the collaborators an Engine needs.
type Deps struct {
	Client     *ent.Client
	Executions *services.ExecutionService
	Agents     *services.AgentService
	Registry   *framework.Registry
	Publisher  *events.Publisher

	// Hooks is optional; nil disables webhook fan-out.
	Hooks DeliveryHooks
}

// Engine validates submissions into the durable queue and owns the
// worker pool that drains it.
type Engine struct {
	podID      string
	client     *ent.Client
	executions *services.ExecutionService
	agents     *services.AgentService
	registry   *framework.Registry
	publisher  *events.Publisher
	hooks      DeliveryHooks
	cfg        Config
	pool       *Pool
}

// New creates an Engine. podID identifies this replica in claimed rows
// and must be unique across live pods.
func New(podID string, deps Deps, cfg Config) *Engine {
	e := &Engine{
		podID:      podID,
		client:     deps.Client,
		executions: deps.Executions,
		agents:     deps.Agents,
		registry:   deps.Registry,
		publisher:  deps.Publisher,
		hooks:      deps.Hooks,
		cfg:        cfg.withDefaults(),
	}
	e.pool = newPool(e)
	return e
}

// Start launches the worker pool and the periodic orphan scan.
func (e *Engine) Start(ctx context.Context) error {
	return e.pool.Start(ctx)
}

// Stop drains the pool within the configured grace period.
func (e *Engine) Stop() {
	e.pool.Stop()
}

// Health reports pool and queue state for the health endpoint.
func (e *Engine) Health(ctx context.Context) *PoolHealth {
	return e.pool.Health(ctx)
}

// SubmitInput is one execution request. Zero-valued optional fields
// take their documented defaults.
type SubmitInput struct {
	AgentID string
	Actor   models.Actor

	// Input is the prompt or task payload handed to the framework.
	Input string

	// Priority defaults to PriorityNormal.
	Priority models.Priority

	// Trigger defaults to TriggerManual.
	Trigger execution.Trigger

	// Environment defaults to the schema default ("production").
	Environment string

	// ConfigOverride is overlaid on the agent's configuration per run.
	ConfigOverride map[string]any

	// Metadata is opaque caller context stored on the row.
	Metadata map[string]any

	// Timeout is clamped to [1s, MaxExecutionTime]; zero selects
	// DefaultTimeout.
	Timeout time.Duration
}

// Submit validates a request and inserts a pending execution row. The
// row is picked up by any replica's pool; Submit itself never blocks on
// dispatch.
//
// Rejections: unknown or foreign agent (services.ErrNotFound), inactive
// agent (services.ErrAgentInactive), unregistered framework, malformed
// override bag (validation error), submitter at the concurrency cap
// (services.ErrConcurrencyExceeded), agent already running
// (*services.AgentBusyError).
func (e *Engine) Submit(ctx context.Context, in SubmitInput) (*ent.Execution, error) {
	if in.AgentID == "" {
		return nil, services.NewValidationError("agent_id", "is required")
	}
	if strings.TrimSpace(in.Input) == "" {
		return nil, services.NewValidationError("input", "is required")
	}

	agent, err := e.agents.Get(ctx, in.Actor, in.AgentID)
	if err != nil {
		return nil, err
	}
	if !agent.Active {
		return nil, services.ErrAgentInactive
	}
	if _, err := e.registry.Get(agent.Framework); err != nil {
		return nil, err
	}
	if in.ConfigOverride != nil {
		if err := framework.Config(in.ConfigOverride).CheckBag(); err != nil {
			return nil, services.NewValidationError("config_override", err.Error())
		}
	}

	priority := in.Priority
	if priority == 0 {
		priority = models.PriorityNormal
	}
	if priority < models.PriorityHigh || priority > models.PriorityLow {
		return nil, services.NewValidationError("priority", "must be high, normal, or low")
	}

	trigger := in.Trigger
	if trigger == "" {
		trigger = execution.TriggerManual
	}
	if err := execution.TriggerValidator(trigger); err != nil {
		return nil, services.NewValidationError("trigger", fmt.Sprintf("unknown trigger %q", in.Trigger))
	}

	// Advisory cap: the check runs outside the insert transaction, so
	// two racing submissions can both pass and the ceiling is
	// approximate.
	active, err := e.executions.CountActiveForUser(ctx, in.Actor.ID)
	if err != nil {
		return nil, err
	}
	if active >= e.cfg.MaxConcurrentPerUser {
		return nil, services.ErrConcurrencyExceeded
	}

	row, err := e.executions.CreatePending(ctx, services.CreatePendingParams{
		AgentID:        agent.ID,
		SubmitterID:    in.Actor.ID,
		Input:          in.Input,
		Priority:       priority,
		Trigger:        trigger,
		Environment:    in.Environment,
		ConfigOverride: in.ConfigOverride,
		Metadata:       in.Metadata,
		Timeout:        e.clampTimeout(in.Timeout),
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Execution queued",
		"execution_id", row.ID,
		"agent_id", agent.ID,
		"submitter_id", in.Actor.ID,
		"priority", priority.String(),
		"trigger", trigger,
		"timeout_ms", row.TimeoutMs)
	return row, nil
}

func (e *Engine) clampTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		d = e.cfg.DefaultTimeout
	}
	if d < time.Second {
		d = time.Second
	}
	if d > e.cfg.MaxExecutionTime {
		d = e.cfg.MaxExecutionTime
	}
	return d
}

// Cancel requests cancellation of a pending or running execution on
// behalf of actor. The returned bool reports whether this call won the
// transition; a false with nil error means the run reached a terminal
// state first (caller treats it as a conflict).
//
// The state flip is persisted before the local plugin context is
// interrupted, so a worker racing us on the terminal update always
// loses and stays silent. When the run is live on another replica, its
// plugin keeps the CPU until its deadline, but its terminal write is a
// no-op all the same.
func (e *Engine) Cancel(ctx context.Context, actor models.Actor, id string) (*ent.Execution, bool, error) {
	row, won, err := e.executions.Cancel(ctx, actor, id)
	if err != nil || !won {
		return row, false, err
	}

	e.pool.CancelExecution(id)

	if row.StartedAt != nil {
		if err := e.agents.RecordRun(ctx, row.AgentID, execution.StateCancelled, terminalDuration(row)); err != nil {
			slog.Warn("Failed to record cancelled run on agent stats",
				"execution_id", id, "agent_id", row.AgentID, "error", err)
		}
	}
	e.publishTerminal(ctx, row, events.TypeExecutionCancelled)

	slog.Info("Execution cancelled", "execution_id", id, "user_id", actor.ID)
	return row, true, nil
}

// publishTerminal emits a terminal event for transitions decided
// outside a worker (cancel, orphan recovery). The sequence is the
// emission clock in nanoseconds, which lands above any worker-assigned
// counter value, keeping the per-execution stream monotonic; nothing
// follows a terminal event.
func (e *Engine) publishTerminal(ctx context.Context, row *ent.Execution, evtType string) {
	now := time.Now()
	evt := events.Event{
		ID:          uuid.New().String(),
		Type:        evtType,
		ExecutionID: row.ID,
		AgentID:     row.AgentID,
		UserID:      row.SubmitterID,
		Sequence:    now.UnixNano(),
		Timestamp:   now,
		Data:        terminalData(row),
	}
	e.publisher.Publish(ctx, evt)
	if e.hooks != nil {
		e.hooks.EnqueueEvent(ctx, evt)
	}
}

// terminalData is the payload shape shared by every terminal event.
func terminalData(row *ent.Execution) map[string]any {
	data := map[string]any{
		"state": string(row.State),
	}
	if row.Error != nil {
		data["error"] = *row.Error
	}
	if row.DurationMs != nil {
		data["duration_ms"] = *row.DurationMs
	}
	if row.Output != nil {
		data["output"] = row.Output
	}
	if row.TokensUsed != nil {
		data["tokens_used"] = *row.TokensUsed
	}
	if row.CostUsd != nil {
		data["cost_usd"] = *row.CostUsd
	}
	return data
}

// terminalDuration derives the run duration recorded on agent stats.
func terminalDuration(row *ent.Execution) time.Duration {
	if row.DurationMs != nil {
		return time.Duration(*row.DurationMs) * time.Millisecond
	}
	if row.StartedAt != nil && row.CompletedAt != nil {
		return row.CompletedAt.Sub(*row.StartedAt)
	}
	return 0
}
