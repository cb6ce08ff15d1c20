package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// logPersistTimeout bounds each log insert independently of the run
// deadline, so lines emitted near the deadline still land.
const logPersistTimeout = 5 * time.Second

// emitter is the single funnel for one execution's stream: it assigns
// sequences, persists log rows, and publishes bus events. Exactly one
// worker owns an emitter; plugins reach it only through RunContext
// sinks.
//
// Two counters run side by side: seq orders bus events, logSeq numbers
// persisted log rows densely from zero. Close flips a gate that drops
// any sink traffic arriving after the run's outcome is decided, which
// is what keeps "no logs after terminal" true even when an abandoned
// plugin goroutine keeps writing.
type emitter struct {
	executions *services.ExecutionService
	publisher  *events.Publisher
	hooks      DeliveryHooks

	executionID string
	agentID     string
	userID      string

	seq    atomic.Int64
	logSeq atomic.Int64
	closed atomic.Bool
}

func newEmitter(e *Engine, row *ent.Execution) *emitter {
	return &emitter{
		executions:  e.executions,
		publisher:   e.publisher,
		hooks:       e.hooks,
		executionID: row.ID,
		agentID:     row.AgentID,
		userID:      row.SubmitterID,
	}
}

func (em *emitter) event(typ string, data map[string]any) events.Event {
	return events.Event{
		ID:          uuid.New().String(),
		Type:        typ,
		ExecutionID: em.executionID,
		AgentID:     em.agentID,
		UserID:      em.userID,
		Sequence:    em.seq.Add(1) - 1,
		Timestamp:   time.Now(),
		Data:        data,
	}
}

// Started announces the pending → running transition. Published after
// the claim transaction commits.
func (em *emitter) Started(ctx context.Context, row *ent.Execution) {
	data := map[string]any{"state": string(execution.StateRunning)}
	if row.StartedAt != nil {
		data["started_at"] = row.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	evt := em.event(events.TypeExecutionStarted, data)
	em.publisher.Publish(ctx, evt)
	if em.hooks != nil {
		em.hooks.EnqueueEvent(ctx, evt)
	}
}

// Log persists one log row and publishes the matching stream event.
// Dropped silently once the emitter is closed. Persistence failures are
// logged and the live event still goes out; the snapshot path will be
// short that line but the stream stays whole.
func (em *emitter) Log(level, message string, meta map[string]any) {
	if em.closed.Load() {
		return
	}
	if level == "" {
		level = framework.LevelInfo
	}
	sequence := int(em.logSeq.Add(1) - 1)

	ctx, cancel := context.WithTimeout(context.Background(), logPersistTimeout)
	defer cancel()

	if _, err := em.executions.AppendLog(ctx, em.executionID, sequence, level, message, meta); err != nil {
		if errors.Is(err, services.ErrExecutionFinished) {
			// The row turned terminal under us (cancel on another
			// replica, orphan sweep). Seal the funnel and drop the line.
			em.Close()
			return
		}
		slog.Warn("Failed to persist execution log",
			"execution_id", em.executionID, "sequence", sequence, "error", err)
	}

	data := map[string]any{
		"level":    level,
		"message":  message,
		"sequence": sequence,
	}
	if len(meta) > 0 {
		data["metadata"] = meta
	}
	em.publisher.Publish(ctx, em.event(events.TypeExecutionLog, data))
}

// Progress publishes a completion-percentage event. Not persisted.
func (em *emitter) Progress(percent float64) {
	if em.closed.Load() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), logPersistTimeout)
	defer cancel()
	em.publisher.Publish(ctx, em.event(events.TypeExecutionProgress, map[string]any{
		"percent": percent,
	}))
}

// Close seals the emitter ahead of the terminal transition. Idempotent.
func (em *emitter) Close() {
	em.closed.Store(true)
}

// Terminal publishes the closing event for a transition this worker
// won, then hands it to the delivery hooks. Callers Close first and
// pass the reloaded terminal row.
func (em *emitter) Terminal(ctx context.Context, typ string, row *ent.Execution) {
	evt := em.event(typ, terminalData(row))
	em.publisher.Publish(ctx, evt)
	if em.hooks != nil {
		em.hooks.EnqueueEvent(ctx, evt)
	}
}
