package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/framework"
)

// abandonGrace is how long a worker waits after cancelling a run for
// the plugin goroutine to return before abandoning it. An abandoned
// goroutine may linger, but its emitter is closed so nothing it does is
// observable.
const abandonGrace = 5 * time.Second

// terminalWriteTimeout bounds the terminal update, which runs on its
// own context so outcomes land even mid-shutdown.
const terminalWriteTimeout = 10 * time.Second

// WorkerState is a worker's lifecycle phase.
type WorkerState string

const (
	WorkerIdle    WorkerState = "idle"
	WorkerBusy    WorkerState = "busy"
	WorkerStopped WorkerState = "stopped"
)

// WorkerHealth is a point-in-time snapshot of one worker.
type WorkerHealth struct {
	ID               string      `json:"id"`
	State            WorkerState `json:"state"`
	CurrentExecution string      `json:"current_execution,omitempty"`
	Processed        int         `json:"processed"`
	LastActive       time.Time   `json:"last_active"`
}

// Worker claims pending executions one at a time and runs them to a
// terminal state. Safe to run many per pod; the SKIP LOCKED claim keeps
// them from colliding.
type Worker struct {
	id     string
	engine *Engine
	pool   *Pool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu               sync.RWMutex
	state            WorkerState
	currentExecution string
	processed        int
	lastActive       time.Time
}

func newWorker(id string, e *Engine, p *Pool) *Worker {
	return &Worker{
		id:         id,
		engine:     e,
		pool:       p,
		stopCh:     make(chan struct{}),
		state:      WorkerIdle,
		lastActive: time.Now(),
	}
}

// Start launches the worker's poll loop.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// signalStop asks the loop to exit after the current execution.
func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// wait blocks until the loop has exited.
func (w *Worker) wait() {
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	defer w.setState(WorkerStopped)

	slog.Debug("Worker started", "worker_id", w.id)
	for {
		select {
		case <-w.stopCh:
			slog.Debug("Worker stopping", "worker_id", w.id)
			return
		case <-ctx.Done():
			return
		default:
		}

		err := w.pollOnce(ctx)
		switch {
		case err == nil:
			// Claimed and ran one; poll again immediately.
		case errors.Is(err, ErrNoExecutionsAvailable):
			w.sleep(ctx)
		case ctx.Err() != nil:
			return
		default:
			slog.Error("Worker poll failed", "worker_id", w.id, "error", err)
			w.sleep(ctx)
		}
	}
}

// sleep idles for the poll interval plus jitter, waking early on stop.
func (w *Worker) sleep(ctx context.Context) {
	d := w.engine.cfg.PollInterval
	if j := w.engine.cfg.PollJitter; j > 0 {
		d += time.Duration(rand.Int64N(int64(2*j))) - j
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-w.stopCh:
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (w *Worker) pollOnce(ctx context.Context) error {
	row, err := w.claim(ctx)
	if err != nil {
		return err
	}
	w.process(ctx, row)
	return nil
}

// claim locks the oldest highest-priority pending row, flips it to
// running stamped with this pod, and commits. SKIP LOCKED makes
// concurrent claimers pass over rows another worker holds, so each row
// is dispatched exactly once.
func (w *Worker) claim(ctx context.Context) (*ent.Execution, error) {
	tx, err := w.engine.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Execution.Query().
		Where(execution.StateEQ(execution.StatePending)).
		Order(ent.Asc(execution.FieldPriority, execution.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoExecutionsAvailable
		}
		return nil, fmt.Errorf("failed to query pending executions: %w", err)
	}

	now := time.Now()
	row, err = tx.Execution.UpdateOne(row).
		SetState(execution.StateRunning).
		SetPodID(w.engine.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark execution running: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return row, nil
}

// pluginReturn carries the plugin goroutine's result over a channel.
type pluginReturn struct {
	res *framework.Result
	err error
}

// outcome is a decided run: the terminal state to persist and the event
// to publish if this worker wins the transition.
type outcome struct {
	state  execution.State
	event  string
	errMsg string
	result *framework.Result
}

func failedOutcome(msg string) outcome {
	return outcome{state: execution.StateFailed, event: events.TypeExecutionFailed, errMsg: msg}
}

func (w *Worker) process(ctx context.Context, row *ent.Execution) {
	w.setBusy(row.ID)
	defer w.setIdle()

	log := slog.With("worker_id", w.id, "execution_id", row.ID, "agent_id", row.AgentID)
	log.Info("Execution claimed", "priority", row.Priority, "trigger", row.Trigger)

	em := newEmitter(w.engine, row)
	em.Started(ctx, row)

	out := w.dispatch(ctx, row, em, log)
	w.finish(row, em, out, log)
}

// dispatch revalidates the agent at run time, arms the deadline, and
// drives the plugin. Validation failures become failed outcomes without
// ever invoking the plugin.
func (w *Worker) dispatch(ctx context.Context, row *ent.Execution, em *emitter, log *slog.Logger) outcome {
	agent, err := w.engine.client.Agent.Get(ctx, row.AgentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return failedOutcome("agent no longer exists")
		}
		return failedOutcome(fmt.Sprintf("agent lookup failed: %v", err))
	}
	if !agent.Active {
		return failedOutcome("agent is inactive")
	}

	plugin, err := w.engine.registry.Get(agent.Framework)
	if err != nil {
		return failedOutcome(err.Error())
	}

	merged, err := framework.Merge(agent.Configuration, row.ConfigOverride)
	if err != nil {
		return failedOutcome(fmt.Sprintf("invalid configuration: %v", err))
	}
	if err := merged.CheckBag(); err != nil {
		return failedOutcome(fmt.Sprintf("invalid configuration: %v", err))
	}
	if problems := plugin.Validate(merged); len(problems) > 0 {
		return failedOutcome("configuration rejected: " + strings.Join(problems, "; "))
	}

	timeout := time.Duration(row.TimeoutMs) * time.Millisecond
	runCtx, cancelRun := context.WithTimeout(ctx, timeout)
	defer cancelRun()

	// Registering the cancel func lets a same-pod Cancel interrupt the
	// plugin immediately instead of waiting out the deadline.
	w.pool.register(row.ID, cancelRun)
	defer w.pool.unregister(row.ID)

	go w.heartbeatLoop(runCtx, row.ID)

	run := &framework.RunContext{
		AgentID:      agent.ID,
		SubmitterID:  row.SubmitterID,
		Input:        row.Input,
		Config:       merged,
		Environment:  row.Environment,
		LogSink:      em.Log,
		ProgressSink: em.Progress,
	}

	resCh := make(chan pluginReturn, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Plugin panicked",
					"framework", agent.Framework, "panic", r, "stack", string(debug.Stack()))
				resCh <- pluginReturn{err: fmt.Errorf("plugin panicked: %v", r)}
			}
		}()
		res, execErr := plugin.Execute(runCtx, run)
		resCh <- pluginReturn{res: res, err: execErr}
	}()

	select {
	case ret := <-resCh:
		return w.classify(ctx, ret, timeout, em)
	case <-runCtx.Done():
		// Give a cooperative plugin a beat to observe the cancellation
		// and return; an uncooperative one is abandoned.
		select {
		case <-resCh:
		case <-time.After(abandonGrace):
			log.Warn("Plugin ignored cancellation, abandoning its goroutine",
				"framework", agent.Framework)
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return w.timeoutOutcome(timeout, em)
		}
		return failedOutcome("interrupted by shutdown")
	}
}

// classify maps a plugin return to an outcome. A deadline error is
// normalized to the timeout state even when the plugin's own return
// beat the select's Done branch.
func (w *Worker) classify(ctx context.Context, ret pluginReturn, timeout time.Duration, em *emitter) outcome {
	switch {
	case ret.err == nil:
		res := ret.res
		if res == nil {
			res = &framework.Result{}
		}
		return outcome{state: execution.StateCompleted, event: events.TypeExecutionCompleted, result: res}
	case errors.Is(ret.err, context.DeadlineExceeded):
		return w.timeoutOutcome(timeout, em)
	case errors.Is(ret.err, context.Canceled) && ctx.Err() != nil:
		return failedOutcome("interrupted by shutdown")
	default:
		return failedOutcome(ret.err.Error())
	}
}

// timeoutOutcome appends the synthetic timeout log before the emitter
// closes, so the line is persisted ahead of the terminal transition.
func (w *Worker) timeoutOutcome(timeout time.Duration, em *emitter) outcome {
	msg := fmt.Sprintf("execution timed out after %s", timeout)
	em.Log(framework.LevelError, msg, nil)
	return outcome{state: execution.StateTimeout, event: events.TypeExecutionTimeout, errMsg: msg}
}

// heartbeatLoop stamps the claimed row until the run context ends. The
// conditional WHERE keeps a late beat from resurrecting a row another
// writer already finished. A beat that matches zero rows means exactly
// that happened (a cancel on another replica, or an orphan sweep), so
// the loop interrupts the local run instead of letting it keep
// emitting past the terminal transition.
func (w *Worker) heartbeatLoop(runCtx context.Context, executionID string) {
	interval := w.engine.cfg.HeartbeatInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-runCtx.Done():
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			n, err := w.engine.client.Execution.Update().
				Where(execution.IDEQ(executionID), execution.StateEQ(execution.StateRunning)).
				SetLastHeartbeatAt(time.Now()).
				Save(ctx)
			cancel()
			if err != nil {
				slog.Warn("Failed to heartbeat execution",
					"worker_id", w.id, "execution_id", executionID, "error", err)
				continue
			}
			if n == 0 && runCtx.Err() == nil {
				slog.Info("Execution finished externally, interrupting local run",
					"worker_id", w.id, "execution_id", executionID)
				w.pool.CancelExecution(executionID)
				return
			}
		}
	}
}

// finish persists the outcome and, if this worker won the terminal
// transition, records agent stats and publishes the closing event.
// Losing the conditional update means a cancel or orphan sweep got
// there first and already told the world; the loser stays silent.
func (w *Worker) finish(row *ent.Execution, em *emitter, out outcome, log *slog.Logger) {
	em.Close()

	now := time.Now()
	var dur time.Duration
	if row.StartedAt != nil {
		dur = now.Sub(*row.StartedAt)
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), terminalWriteTimeout)
	defer cancel()

	update := w.engine.client.Execution.Update().
		Where(execution.IDEQ(row.ID), execution.StateEQ(execution.StateRunning)).
		SetState(out.state).
		SetCompletedAt(now).
		SetDurationMs(dur.Milliseconds())
	if out.errMsg != "" {
		update.SetError(out.errMsg)
	}
	if out.result != nil {
		if out.result.Output != nil {
			update.SetOutput(out.result.Output)
		}
		if out.result.TokensUsed > 0 {
			update.SetTokensUsed(out.result.TokensUsed)
		}
		if out.result.CostUSD > 0 {
			update.SetCostUsd(out.result.CostUSD)
		}
	}

	n, err := update.Save(dbCtx)
	if err != nil {
		log.Error("Failed to persist terminal state, orphan sweep will reclaim the row",
			"target_state", out.state, "error", err)
		return
	}
	if n == 0 {
		log.Info("Terminal transition lost to a concurrent writer", "target_state", out.state)
		return
	}

	if err := w.engine.agents.RecordRun(dbCtx, row.AgentID, out.state, dur); err != nil {
		log.Warn("Failed to record run on agent stats", "error", err)
	}

	reloaded, err := w.engine.client.Execution.Get(dbCtx, row.ID)
	if err != nil {
		log.Warn("Failed to reload execution for terminal event", "error", err)
		// Patch the claimed snapshot with what we just wrote.
		ms := dur.Milliseconds()
		row.State = out.state
		if out.errMsg != "" {
			row.Error = &out.errMsg
		}
		row.CompletedAt = &now
		row.DurationMs = &ms
		reloaded = row
	}
	em.Terminal(dbCtx, out.event, reloaded)

	w.incProcessed()
	log.Info("Execution finished",
		"state", out.state, "duration_ms", dur.Milliseconds())
}

func (w *Worker) setBusy(executionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = WorkerBusy
	w.currentExecution = executionID
	w.lastActive = time.Now()
}

func (w *Worker) setIdle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = WorkerIdle
	w.currentExecution = ""
	w.lastActive = time.Now()
}

func (w *Worker) setState(s WorkerState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = s
}

func (w *Worker) incProcessed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.processed++
}

// Health snapshots the worker's current state.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		State:            w.state,
		CurrentExecution: w.currentExecution,
		Processed:        w.processed,
		LastActive:       w.lastActive,
	}
}
